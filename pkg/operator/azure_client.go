/*
       Copyright (c) Microsoft Corporation.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package operator

import (
	"fmt"
	"maps"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"k8s.io/klog/v2"

	"github.com/azure/azurerm-adapter/pkg/auth"
	"github.com/azure/azurerm-adapter/pkg/providers/compute"
	"github.com/azure/azurerm-adapter/pkg/providers/network"
	"github.com/azure/azurerm-adapter/pkg/providers/storage"
	"github.com/azure/azurerm-adapter/pkg/utils"
	armopts "github.com/azure/azurerm-adapter/pkg/utils/opts"
)

const envARMEndpoint = "ARM_ENDPOINT"

// AZClient holds the management plane clients the gateways are built on.
type AZClient struct {
	virtualMachinesClient compute.VirtualMachinesAPI
	interfacesClient      network.InterfacesAPI
	accountsClient        storage.AccountsAPI
}

func NewAZClientFromAPI(
	virtualMachinesClient compute.VirtualMachinesAPI,
	interfacesClient network.InterfacesAPI,
	accountsClient storage.AccountsAPI,
) *AZClient {
	return &AZClient{
		virtualMachinesClient: virtualMachinesClient,
		interfacesClient:      interfacesClient,
		accountsClient:        accountsClient,
	}
}

func NewAZClient(cfg *auth.Config, cred azcore.TokenCredential) (*AZClient, error) {
	opts, err := armClientOptions(cfg)
	if err != nil {
		return nil, err
	}

	virtualMachinesClient, err := armcompute.NewVirtualMachinesClient(cfg.SubscriptionID, cred, opts)
	if err != nil {
		return nil, err
	}
	klog.V(5).Infof("Created virtual machines client %v using token credential", virtualMachinesClient)
	interfacesClient, err := armnetwork.NewInterfacesClient(cfg.SubscriptionID, cred, opts)
	if err != nil {
		return nil, err
	}
	klog.V(5).Infof("Created network interface client %v using token credential", interfacesClient)
	accountsClient, err := armstorage.NewAccountsClient(cfg.SubscriptionID, cred, opts)
	if err != nil {
		return nil, err
	}
	klog.V(5).Infof("Created storage accounts client %v using token credential", accountsClient)

	return NewAZClientFromAPI(virtualMachinesClient, network.NewInterfacesAPI(interfacesClient), accountsClient), nil
}

// armClientOptions starts from the adapter defaults, selects the cloud named by the config and,
// when ARM_ENDPOINT is set, sends every management call to that endpoint instead.
func armClientOptions(cfg *auth.Config) (*arm.ClientOptions, error) {
	opts := armopts.DefaultArmOpts()
	cloudCfg, err := cloudConfiguration(cfg.CloudEnvironment)
	if err != nil {
		return nil, err
	}
	opts.Cloud = cloudCfg

	endpoint := utils.WithDefaultString(envARMEndpoint, "")
	if endpoint == "" {
		return opts, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid %s %q", envARMEndpoint, endpoint)
	}
	opts.PerCallPolicies = append(opts.PerCallPolicies, armopts.PolicySetHeaders{
		"Referer": []string{u.Host},
	})
	opts.Cloud.Services = maps.Clone(opts.Cloud.Services)
	opts.Cloud.Services[cloud.ResourceManager] = cloud.ServiceConfiguration{
		Audience: cloudCfg.Services[cloud.ResourceManager].Audience,
		Endpoint: endpoint,
	}
	return opts, nil
}

func cloudConfiguration(name string) (cloud.Configuration, error) {
	switch strings.ToLower(name) {
	case "", "azurecloud", "azurepubliccloud":
		return cloud.AzurePublic, nil
	case "azurechinacloud":
		return cloud.AzureChina, nil
	case "azureusgovernment", "azureusgovernmentcloud":
		return cloud.AzureGovernment, nil
	default:
		return cloud.Configuration{}, fmt.Errorf("unsupported cloud environment: %s", name)
	}
}

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
	"context"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/azure/azurerm-adapter/pkg/auth"
	"github.com/azure/azurerm-adapter/pkg/providers/compute"
	"github.com/azure/azurerm-adapter/pkg/providers/network"
	"github.com/azure/azurerm-adapter/pkg/providers/storage"
)

// Operator wires the gateways of every service for one configuration.
type Operator struct {
	Config *auth.Config

	Compute  compute.Gateway
	Network  network.Gateway
	Sessions storage.SessionFactory
}

// NewOperator builds the real or the mock gateways depending on cfg.Mode.
func NewOperator(ctx context.Context, cfg *auth.Config) (*Operator, error) {
	switch cfg.Mode {
	case auth.ModeMock:
		klog.V(2).InfoS("Creating mock gateways")
		return newMockOperator(cfg), nil
	case auth.ModeReal:
		klog.V(2).InfoS("Creating Azure gateways", "subscriptionID", cfg.SubscriptionID, "cloud", cfg.CloudEnvironment)
		cred, err := auth.NewCredential(cfg)
		if err != nil {
			return nil, fmt.Errorf("creating Azure credential, %w", err)
		}
		azClient, err := NewAZClient(cfg, cred)
		if err != nil {
			return nil, fmt.Errorf("creating Azure client, %w", err)
		}
		return newRealOperator(cfg, azClient), nil
	default:
		return nil, fmt.Errorf("unsupported adapter mode: %s. Supported modes are: %s, %s", cfg.Mode, auth.ModeReal, auth.ModeMock)
	}
}

func newRealOperator(cfg *auth.Config, azClient *AZClient) *Operator {
	sessions := storage.NewSessions(azClient.accountsClient, cfg.StorageEndpointSuffix, cfg.StorageKeyCacheTTL)
	stager := compute.NewVHDStager(sessions, cfg.StorageEndpointSuffix, cfg.CopyPollInterval, cfg.CopyTimeout)
	return &Operator{
		Config:   cfg,
		Compute:  compute.NewRealGateway(azClient.virtualMachinesClient, stager, cfg.StorageEndpointSuffix),
		Network:  network.NewRealGateway(azClient.interfacesClient),
		Sessions: sessions,
	}
}

func newMockOperator(cfg *auth.Config) *Operator {
	return &Operator{
		Config:   cfg,
		Compute:  compute.NewMockGateway(),
		Network:  network.NewMockGateway(),
		Sessions: &storage.MockSessions{EndpointSuffix: cfg.StorageEndpointSuffix},
	}
}

// Storage opens a gateway on accountName, or on the configured default account when it is empty.
func (o *Operator) Storage(ctx context.Context, accountName string) (storage.Gateway, error) {
	if accountName == "" {
		accountName = o.Config.StorageAccountName
	}
	if accountName == "" {
		return nil, fmt.Errorf("storage account name not set")
	}
	return o.Sessions.NewSession(ctx, o.Config.ResourceGroup, accountName)
}

func (o *Operator) Containers(ctx context.Context, accountName string) (*storage.Containers, error) {
	gateway, err := o.Storage(ctx, accountName)
	if err != nil {
		return nil, err
	}
	return storage.NewContainers(gateway), nil
}

func GetAzConfig() (*auth.Config, error) {
	cfg, err := auth.BuildAzureConfig()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

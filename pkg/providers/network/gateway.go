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

package network

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/samber/lo"
	"k8s.io/klog/v2"

	"github.com/azure/azurerm-adapter/pkg/metrics"
	"github.com/azure/azurerm-adapter/pkg/utils"
)

const serviceName = "network"

//go:generate mockgen -destination=../../fake/mock_network_gateway.go -package=fake -mock_names=Gateway=MockNetworkGateway -source=gateway.go

// InterfaceList is a fully drained listing. NextLink is "" once the listing is exhausted.
type InterfaceList struct {
	Value    []*armnetwork.Interface `json:"value" yaml:"value"`
	NextLink string                  `json:"nextLink" yaml:"nextLink"`
}

type Gateway interface {
	ListNetworkInterfaces(ctx context.Context, resourceGroup string) (*InterfaceList, error)
}

type RealGateway struct {
	interfaces InterfacesAPI
}

var _ Gateway = (*RealGateway)(nil)

func NewRealGateway(interfaces InterfacesAPI) *RealGateway {
	return &RealGateway{interfaces: interfaces}
}

func (g *RealGateway) ListNetworkInterfaces(ctx context.Context, resourceGroup string) (*InterfaceList, error) {
	klog.V(5).InfoS("Listing network interfaces", "resourceGroup", resourceGroup)
	list := &InterfaceList{}
	pager := g.interfaces.NewListPager(resourceGroup, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		metrics.ObserveCall(serviceName, "ListNetworkInterfaces", err)
		if err != nil {
			return nil, utils.NewOperationError(err, fmt.Sprintf("Getting list of NetworkInterfaces from Resource Group %s", resourceGroup))
		}
		list.Value = append(list.Value, page.Value...)
		list.NextLink = lo.FromPtr(page.NextLink)
	}
	return list, nil
}

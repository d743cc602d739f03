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

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
)

//go:generate mockgen -destination=../../fake/mock_interfaces_api.go -package=fake -mock_names=InterfacesAPI=MockInterfacesAPI,InterfacesPager=MockInterfacesPager -source=client.go

// InterfacesPager is the part of runtime.Pager the gateway drains.
type InterfacesPager interface {
	More() bool
	NextPage(ctx context.Context) (armnetwork.InterfacesClientListResponse, error)
}

type InterfacesAPI interface {
	NewListPager(resourceGroupName string, options *armnetwork.InterfacesClientListOptions) InterfacesPager
}

type interfacesClient struct {
	client *armnetwork.InterfacesClient
}

var _ InterfacesAPI = (*interfacesClient)(nil)

// NewInterfacesAPI adapts the SDK client, whose pager is a concrete generic type, to InterfacesAPI.
func NewInterfacesAPI(client *armnetwork.InterfacesClient) InterfacesAPI {
	return &interfacesClient{client: client}
}

func (c *interfacesClient) NewListPager(resourceGroupName string, options *armnetwork.InterfacesClientListOptions) InterfacesPager {
	return c.client.NewListPager(resourceGroupName, options)
}

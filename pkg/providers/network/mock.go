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
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/samber/lo"
)

const resourceGroupPlaceholder = "{{resourceGroup}}"

//go:embed fixtures/network_interfaces.json
var interfacesFixture []byte

// MockGateway returns a canned listing with one interface in the requested resource group.
type MockGateway struct{}

var _ Gateway = (*MockGateway)(nil)

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (g *MockGateway) ListNetworkInterfaces(_ context.Context, resourceGroup string) (*InterfaceList, error) {
	raw := bytes.ReplaceAll(interfacesFixture, []byte(resourceGroupPlaceholder), []byte(resourceGroup))
	result := armnetwork.InterfaceListResult{}
	if err := result.UnmarshalJSON(raw); err != nil {
		return nil, fmt.Errorf("decoding network interfaces fixture: %w", err)
	}
	return &InterfaceList{
		Value:    result.Value,
		NextLink: lo.FromPtr(result.NextLink),
	}, nil
}

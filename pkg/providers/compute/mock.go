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

package compute

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute"
	"k8s.io/klog/v2"
)

//go:embed fixtures/virtual_machine.json
var virtualMachineFixture []byte

// MockGateway returns a canned virtual machine without calling Azure.
type MockGateway struct{}

var _ Gateway = (*MockGateway)(nil)

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (g *MockGateway) CreateVirtualMachine(_ context.Context, params *VirtualMachineParams) (*armcompute.VirtualMachine, error) {
	vm := &armcompute.VirtualMachine{}
	if err := json.Unmarshal(virtualMachineFixture, vm); err != nil {
		return nil, fmt.Errorf("decoding virtual machine fixture: %w", err)
	}
	if params != nil {
		klog.V(5).InfoS("Created virtual machine", "virtualMachine", params.Name, "mock", true)
	}
	return vm, nil
}

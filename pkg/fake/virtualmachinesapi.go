/*
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

package fake

import (
	"context"
	"fmt"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute"
	"github.com/Azure/go-autorest/autorest/to"

	"github.com/azure/azurerm-adapter/pkg/providers/compute"
)

type VirtualMachineCreateOrUpdateInput struct {
	ResourceGroupName string
	VMName            string
	VM                armcompute.VirtualMachine
	Options           *armcompute.VirtualMachinesClientBeginCreateOrUpdateOptions
}

// assert that the fake implements the interface
var _ compute.VirtualMachinesAPI = (*VirtualMachinesAPI)(nil)

// VirtualMachinesAPI records create requests and stores the resulting virtual machines by ID.
type VirtualMachinesAPI struct {
	// CreateOrUpdateError, when set, is returned by BeginCreateOrUpdate instead of a poller.
	CreateOrUpdateError error

	mu        sync.Mutex
	calls     []VirtualMachineCreateOrUpdateInput
	Instances sync.Map
}

// Reset must be called between tests otherwise tests will pollute each other.
func (c *VirtualMachinesAPI) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CreateOrUpdateError = nil
	c.calls = nil
	c.Instances.Range(func(k, v any) bool {
		c.Instances.Delete(k)
		return true
	})
}

func (c *VirtualMachinesAPI) CreateOrUpdateCalls() []VirtualMachineCreateOrUpdateInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]VirtualMachineCreateOrUpdateInput(nil), c.calls...)
}

func (c *VirtualMachinesAPI) BeginCreateOrUpdate(_ context.Context, resourceGroupName string, vmName string, parameters armcompute.VirtualMachine, options *armcompute.VirtualMachinesClientBeginCreateOrUpdateOptions) (*runtime.Poller[armcompute.VirtualMachinesClientCreateOrUpdateResponse], error) {
	c.mu.Lock()
	c.calls = append(c.calls, VirtualMachineCreateOrUpdateInput{
		ResourceGroupName: resourceGroupName,
		VMName:            vmName,
		VM:                parameters,
		Options:           options,
	})
	err := c.CreateOrUpdateError
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	vm := parameters
	id := mkVMID(resourceGroupName, vmName)
	vm.ID = to.StringPtr(id)
	vm.Name = to.StringPtr(vmName)
	if vm.Properties == nil {
		vm.Properties = &armcompute.VirtualMachineProperties{}
	}
	vm.Properties.ProvisioningState = to.StringPtr("Succeeded")
	c.Instances.Store(id, vm)
	return NewDonePoller[armcompute.VirtualMachinesClientCreateOrUpdateResponse](vm)
}

func mkVMID(resourceGroupName string, vmName string) string {
	const idFormat = "/subscriptions/subscriptionID/resourceGroups/%s/providers/Microsoft.Compute/virtualMachines/%s"
	return fmt.Sprintf(idFormat, resourceGroupName, vmName)
}

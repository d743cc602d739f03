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

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute"
	"k8s.io/klog/v2"
)

//go:generate mockgen -destination=../../fake/mock_virtualmachines_api.go -package=fake -mock_names=VirtualMachinesAPI=MockVirtualMachinesAPI -source=armutils.go

type VirtualMachinesAPI interface {
	BeginCreateOrUpdate(ctx context.Context, resourceGroupName string, vmName string, parameters armcompute.VirtualMachine, options *armcompute.VirtualMachinesClientBeginCreateOrUpdateOptions) (*runtime.Poller[armcompute.VirtualMachinesClientCreateOrUpdateResponse], error)
}

func createVirtualMachine(ctx context.Context, client VirtualMachinesAPI, resourceGroup, vmName string, vm armcompute.VirtualMachine) (*armcompute.VirtualMachine, error) {
	klog.InfoS("createVirtualMachine", "resourceGroup", resourceGroup, "virtualMachine", vmName)
	poller, err := client.BeginCreateOrUpdate(ctx, resourceGroup, vmName, vm, nil)
	if err != nil {
		return nil, err
	}
	res, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &res.VirtualMachine, nil
}

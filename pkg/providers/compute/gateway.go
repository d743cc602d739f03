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
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute"
	"k8s.io/klog/v2"

	"github.com/azure/azurerm-adapter/pkg/metrics"
	"github.com/azure/azurerm-adapter/pkg/utils"
)

const serviceName = "compute"

//go:generate mockgen -destination=../../fake/mock_compute_gateway.go -package=fake -mock_names=Gateway=MockComputeGateway -source=gateway.go

type Gateway interface {
	CreateVirtualMachine(ctx context.Context, params *VirtualMachineParams) (*armcompute.VirtualMachine, error)
}

// ImageStager resolves the image URI a new OS disk is read from.
type ImageStager interface {
	Stage(ctx context.Context, resourceGroup, targetAccount, vhdPath string) (string, error)
}

type RealGateway struct {
	virtualMachines VirtualMachinesAPI
	stager          ImageStager
	endpointSuffix  string
}

var _ Gateway = (*RealGateway)(nil)

func NewRealGateway(virtualMachines VirtualMachinesAPI, stager ImageStager, endpointSuffix string) *RealGateway {
	return &RealGateway{
		virtualMachines: virtualMachines,
		stager:          stager,
		endpointSuffix:  endpointSuffix,
	}
}

func (g *RealGateway) CreateVirtualMachine(ctx context.Context, params *VirtualMachineParams) (*armcompute.VirtualMachine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	klog.InfoS("Creating virtual machine", "virtualMachine", params.Name, "resourceGroup", params.ResourceGroup)

	var imageURI string
	if params.VHDPath != "" {
		uri, err := g.stager.Stage(ctx, params.ResourceGroup, params.StorageAccountName, params.VHDPath)
		if err != nil {
			return nil, fmt.Errorf("staging VHD for virtual machine %s: %w", params.Name, err)
		}
		imageURI = uri
	}

	vm, err := createVirtualMachine(ctx, g.virtualMachines, params.ResourceGroup, params.Name, newVirtualMachine(params, g.endpointSuffix, imageURI))
	metrics.ObserveCall(serviceName, "CreateVirtualMachine", err)
	if err != nil {
		return nil, utils.NewOperationError(err, fmt.Sprintf("Creating Virtual Machine %s in Resource Group %s.", params.Name, params.ResourceGroup))
	}
	klog.InfoS("Virtual Machine created successfully", "virtualMachine", params.Name, "resourceGroup", params.ResourceGroup)
	return vm, nil
}

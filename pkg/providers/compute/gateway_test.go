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

package compute_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/azure/azurerm-adapter/pkg/fake"
	"github.com/azure/azurerm-adapter/pkg/providers/compute"
	"github.com/azure/azurerm-adapter/pkg/providers/storage"
	"github.com/azure/azurerm-adapter/pkg/utils"
)

func testParams() *compute.VirtualMachineParams {
	return &compute.VirtualMachineParams{
		Name:                   "fog-test-server",
		ResourceGroup:          "fog-test-rg",
		Location:               "westus",
		VMSize:                 "Standard_A0",
		StorageAccountName:     "mystorage1",
		Platform:               "Windows",
		Username:               "fog",
		Password:               "fog-password",
		Publisher:              "MicrosoftWindowsServerEssentials",
		Offer:                  "WindowsServerEssentials",
		SKU:                    "WindowsServerEssentials",
		Version:                "latest",
		NetworkInterfaceCardID: "/subscriptions/sub/resourceGroups/fog-test-rg/providers/Microsoft.Network/networkInterfaces/fog-test-nic",
		ProvisionVMAgent:       true,
		EnableAutomaticUpdates: true,
	}
}

func TestCreateVirtualMachineFromImageReference(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	stager := fake.NewMockImageStager(mockCtrl)

	vms := &fake.VirtualMachinesAPI{}
	g := compute.NewRealGateway(vms, stager, "core.windows.net")

	vm, err := g.CreateVirtualMachine(context.Background(), testParams())
	assert.NoError(t, err)
	assert.Equal(t, "fog-test-server", *vm.Name)
	assert.Equal(t, "Succeeded", *vm.Properties.ProvisioningState)
	assert.True(t, *vm.Properties.OSProfile.WindowsConfiguration.ProvisionVMAgent)

	calls := vms.CreateOrUpdateCalls()
	assert.Len(t, calls, 1)
	assert.Equal(t, "fog-test-rg", calls[0].ResourceGroupName)
	assert.Equal(t, "IA==", *calls[0].VM.Properties.OSProfile.CustomData)
	assert.NotNil(t, calls[0].VM.Properties.StorageProfile.ImageReference)
}

func TestCreateVirtualMachineStagesForeignVHD(t *testing.T) {
	params := testParams()
	params.VHDPath = "https://otheraccount.blob.core.windows.net/vhds/custom.vhd"
	params.Platform = "windows"

	vms := &fake.VirtualMachinesAPI{}
	stager := compute.NewVHDStager(&storage.MockSessions{EndpointSuffix: "core.windows.net"}, "core.windows.net", time.Millisecond, time.Second)
	g := compute.NewRealGateway(vms, stager, "core.windows.net")

	_, err := g.CreateVirtualMachine(context.Background(), params)
	assert.NoError(t, err)

	calls := vms.CreateOrUpdateCalls()
	assert.Len(t, calls, 1)
	osDisk := calls[0].VM.Properties.StorageProfile.OSDisk
	assert.Nil(t, calls[0].VM.Properties.StorageProfile.ImageReference)
	assert.True(t, strings.HasPrefix(*osDisk.Image.URI, "https://mystorage1.blob.core.windows.net/customvhd"), *osDisk.Image.URI)
	assert.Contains(t, *osDisk.Image.URI, "/vhd_image")
	assert.True(t, strings.HasSuffix(*osDisk.Image.URI, ".vhd"))
	assert.Equal(t, armcompute.OperatingSystemTypesWindows, *osDisk.OSType)
}

func TestCreateVirtualMachineSameAccountVHD(t *testing.T) {
	params := testParams()
	params.VHDPath = "https://mystorage1.blob.core.windows.net/vhds/custom.vhd"

	mockCtrl := gomock.NewController(t)
	sessions := fake.NewMockSessionFactory(mockCtrl)
	vms := &fake.VirtualMachinesAPI{}
	g := compute.NewRealGateway(vms, compute.NewVHDStager(sessions, "core.windows.net", time.Millisecond, 0), "core.windows.net")

	_, err := g.CreateVirtualMachine(context.Background(), params)
	assert.NoError(t, err)
	assert.Equal(t, params.VHDPath, *vms.CreateOrUpdateCalls()[0].VM.Properties.StorageProfile.OSDisk.Image.URI)
}

func TestCreateVirtualMachineStagingFailure(t *testing.T) {
	params := testParams()
	params.VHDPath = "https://otheraccount.blob.core.windows.net/vhds/custom.vhd"

	mockCtrl := gomock.NewController(t)
	stager := fake.NewMockImageStager(mockCtrl)
	stager.EXPECT().Stage(gomock.Any(), "fog-test-rg", "mystorage1", params.VHDPath).Return("", errors.New("copy failed"))

	vms := &fake.VirtualMachinesAPI{}
	g := compute.NewRealGateway(vms, stager, "core.windows.net")

	vm, err := g.CreateVirtualMachine(context.Background(), params)
	assert.Nil(t, vm)
	assert.ErrorContains(t, err, "copy failed")
	assert.Empty(t, vms.CreateOrUpdateCalls())
}

func TestCreateVirtualMachineProviderError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	vms := fake.NewMockVirtualMachinesAPI(mockCtrl)
	vms.EXPECT().BeginCreateOrUpdate(gomock.Any(), "fog-test-rg", "fog-test-server", gomock.Any(), gomock.Nil()).
		Return(nil, fake.NewResponseError("InvalidParameter", http.StatusBadRequest))

	g := compute.NewRealGateway(vms, fake.NewMockImageStager(mockCtrl), "core.windows.net")
	_, err := g.CreateVirtualMachine(context.Background(), testParams())

	assert.True(t, utils.IsOperationError(err))
	opErr := &utils.OperationError{}
	assert.True(t, errors.As(err, &opErr))
	assert.Equal(t, "Creating Virtual Machine fog-test-server in Resource Group fog-test-rg.", opErr.Context)
	assert.Equal(t, "InvalidParameter", opErr.Code)
	assert.Equal(t, http.StatusBadRequest, opErr.StatusCode)
}

func TestCreateVirtualMachineValidation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	vms := fake.NewMockVirtualMachinesAPI(mockCtrl)
	g := compute.NewRealGateway(vms, fake.NewMockImageStager(mockCtrl), "core.windows.net")

	params := testParams()
	params.VMSize = ""
	_, err := g.CreateVirtualMachine(context.Background(), params)
	assert.Error(t, err)
}

func TestMockGateway(t *testing.T) {
	vm, err := compute.NewMockGateway().CreateVirtualMachine(context.Background(), testParams())
	assert.NoError(t, err)
	assert.Equal(t, "fog-test-server", *vm.Name)
	assert.Equal(t, "westus", *vm.Location)
	assert.Equal(t, armcompute.VirtualMachineSizeTypes("Standard_A0"), *vm.Properties.HardwareProfile.VMSize)
	assert.Equal(t, "ZWNobyBjdXN0b21EYXRh", *vm.Properties.OSProfile.CustomData)
	assert.Equal(t, armcompute.OperatingSystemTypesLinux, *vm.Properties.StorageProfile.OSDisk.OSType)
	assert.Equal(t, "Succeeded", lo.FromPtr(vm.Properties.ProvisioningState))
}

func TestCreateVirtualMachineStoresInstance(t *testing.T) {
	ctx := context.Background()
	vms := &fake.VirtualMachinesAPI{}
	g := compute.NewRealGateway(vms, fake.NewMockImageStager(gomock.NewController(t)), "core.windows.net")

	vm, err := g.CreateVirtualMachine(ctx, testParams())
	assert.NoError(t, err)
	id := "/subscriptions/subscriptionID/resourceGroups/fog-test-rg/providers/Microsoft.Compute/virtualMachines/fog-test-server"
	assert.Equal(t, id, lo.FromPtr(vm.ID))
	stored, ok := vms.Instances.Load(id)
	assert.True(t, ok)
	assert.Equal(t, "fog-test-server", lo.FromPtr(stored.(armcompute.VirtualMachine).Name))

	vms.CreateOrUpdateError = fake.NewResponseError("OperationNotAllowed", http.StatusConflict)
	_, err = g.CreateVirtualMachine(ctx, testParams())
	assert.Error(t, err)
	assert.Len(t, vms.CreateOrUpdateCalls(), 2)

	vms.Reset()
	assert.Empty(t, vms.CreateOrUpdateCalls())
	_, ok = vms.Instances.Load(id)
	assert.False(t, ok)

	_, err = g.CreateVirtualMachine(ctx, testParams())
	assert.NoError(t, err)
	_, ok = vms.Instances.Load(id)
	assert.True(t, ok)
}

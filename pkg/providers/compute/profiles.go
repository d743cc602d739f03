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
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute"

	"github.com/azure/azurerm-adapter/pkg/utils"
)

const (
	platformWindows = "windows"
	// the service rejects an empty customData, so blank input is sent as a single space
	blankCustomData = " "
)

// newVirtualMachine translates params into the resource body sent to the compute service.
// imageURI, when set, is the staged VHD the OS disk is created from instead of a marketplace image.
func newVirtualMachine(params *VirtualMachineParams, endpointSuffix, imageURI string) armcompute.VirtualMachine {
	vm := armcompute.VirtualMachine{
		Location: to.Ptr(params.Location),
		Properties: &armcompute.VirtualMachineProperties{
			HardwareProfile: &armcompute.HardwareProfile{
				VMSize: to.Ptr(armcompute.VirtualMachineSizeTypes(params.VMSize)),
			},
			StorageProfile: storageProfile(params, endpointSuffix, imageURI),
			OSProfile:      osProfile(params),
			NetworkProfile: &armcompute.NetworkProfile{
				NetworkInterfaces: []*armcompute.NetworkInterfaceReference{
					{ID: to.Ptr(params.NetworkInterfaceCardID)},
				},
			},
		},
	}
	if params.AvailabilitySetID != "" {
		vm.Properties.AvailabilitySet = &armcompute.SubResource{ID: to.Ptr(params.AvailabilitySetID)}
	}
	return vm
}

func storageProfile(params *VirtualMachineParams, endpointSuffix, imageURI string) *armcompute.StorageProfile {
	diskName := params.Name + "_os_disk"
	osDisk := &armcompute.OSDisk{
		Name:         to.Ptr(diskName),
		CreateOption: to.Ptr(armcompute.DiskCreateOptionTypesFromImage),
		Vhd: &armcompute.VirtualHardDisk{
			URI: to.Ptr(fmt.Sprintf("%s/vhds/%s.vhd", utils.BlobEndpoint(params.StorageAccountName, endpointSuffix), diskName)),
		},
	}

	profile := &armcompute.StorageProfile{OSDisk: osDisk}
	if imageURI == "" {
		profile.ImageReference = &armcompute.ImageReference{
			Publisher: to.Ptr(params.Publisher),
			Offer:     to.Ptr(params.Offer),
			SKU:       to.Ptr(params.SKU),
			Version:   to.Ptr(params.Version),
		}
		return profile
	}
	osDisk.Image = &armcompute.VirtualHardDisk{URI: to.Ptr(imageURI)}
	osDisk.OSType = to.Ptr(osType(params.Platform))
	return profile
}

func osProfile(params *VirtualMachineParams) *armcompute.OSProfile {
	profile := &armcompute.OSProfile{
		ComputerName:  to.Ptr(params.Name),
		AdminUsername: to.Ptr(params.Username),
		CustomData:    to.Ptr(encodeCustomData(params.CustomData)),
	}
	if params.Password != "" {
		profile.AdminPassword = to.Ptr(params.Password)
	}
	if isWindows(params.Platform) {
		profile.WindowsConfiguration = &armcompute.WindowsConfiguration{
			ProvisionVMAgent:       to.Ptr(params.ProvisionVMAgent),
			EnableAutomaticUpdates: to.Ptr(params.EnableAutomaticUpdates),
		}
		return profile
	}
	profile.LinuxConfiguration = linuxConfiguration(params)
	return profile
}

func linuxConfiguration(params *VirtualMachineParams) *armcompute.LinuxConfiguration {
	cfg := &armcompute.LinuxConfiguration{
		DisablePasswordAuthentication: to.Ptr(params.DisablePasswordAuthentication),
	}
	if params.SSHKeyPath != "" && params.SSHKeyData != "" {
		cfg.SSH = &armcompute.SSHConfiguration{
			PublicKeys: []*armcompute.SSHPublicKey{
				{Path: to.Ptr(params.SSHKeyPath), KeyData: to.Ptr(params.SSHKeyData)},
			},
		}
	}
	return cfg
}

func encodeCustomData(data string) string {
	if data == "" {
		data = blankCustomData
	}
	return base64.StdEncoding.EncodeToString([]byte(data))
}

func isWindows(platform string) bool {
	return strings.EqualFold(platform, platformWindows)
}

func osType(platform string) armcompute.OperatingSystemTypes {
	if isWindows(platform) {
		return armcompute.OperatingSystemTypesWindows
	}
	return armcompute.OperatingSystemTypesLinux
}

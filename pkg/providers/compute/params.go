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
	"fmt"

	"github.com/go-playground/validator/v10"
)

// VirtualMachineParams is the flat description of a virtual machine to create.
// Either the marketplace image fields or VHDPath must be set; VHDPath wins when both are.
type VirtualMachineParams struct {
	Name               string `json:"name" yaml:"name" validate:"required"`
	ResourceGroup      string `json:"resourceGroup" yaml:"resourceGroup" validate:"required"`
	Location           string `json:"location" yaml:"location" validate:"required"`
	VMSize             string `json:"vmSize" yaml:"vmSize" validate:"required"`
	StorageAccountName string `json:"storageAccountName" yaml:"storageAccountName" validate:"required"`
	// Platform selects the OS profile, "Windows" (any case) or anything else for Linux.
	Platform string `json:"platform" yaml:"platform" validate:"required"`
	Username string `json:"username" yaml:"username" validate:"required"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`

	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty" validate:"required_without=VHDPath"`
	Offer     string `json:"offer,omitempty" yaml:"offer,omitempty" validate:"required_without=VHDPath"`
	SKU       string `json:"sku,omitempty" yaml:"sku,omitempty" validate:"required_without=VHDPath"`
	Version   string `json:"version,omitempty" yaml:"version,omitempty" validate:"required_without=VHDPath"`
	VHDPath   string `json:"vhdPath,omitempty" yaml:"vhdPath,omitempty" validate:"omitempty,url"`

	AvailabilitySetID      string `json:"availabilitySetId,omitempty" yaml:"availabilitySetId,omitempty"`
	NetworkInterfaceCardID string `json:"networkInterfaceCardId" yaml:"networkInterfaceCardId" validate:"required"`
	CustomData             string `json:"customData,omitempty" yaml:"customData,omitempty"`

	// Windows only.
	ProvisionVMAgent       bool `json:"provisionVmAgent,omitempty" yaml:"provisionVmAgent,omitempty"`
	EnableAutomaticUpdates bool `json:"enableAutomaticUpdates,omitempty" yaml:"enableAutomaticUpdates,omitempty"`

	// Linux only.
	DisablePasswordAuthentication bool   `json:"disablePasswordAuthentication,omitempty" yaml:"disablePasswordAuthentication,omitempty"`
	SSHKeyPath                    string `json:"sshKeyPath,omitempty" yaml:"sshKeyPath,omitempty"`
	SSHKeyData                    string `json:"sshKeyData,omitempty" yaml:"sshKeyData,omitempty"`
}

// Validate leverages struct tags with go-playground/validator.
func (p *VirtualMachineParams) Validate() error {
	if p == nil {
		return fmt.Errorf("virtual machine parameters not set")
	}
	if err := validator.New().Struct(p); err != nil {
		return fmt.Errorf("validating virtual machine %q, %w", p.Name, err)
	}
	return nil
}

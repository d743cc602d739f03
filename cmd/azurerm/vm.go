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

package main

import (
	"fmt"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/azure/azurerm-adapter/pkg/output"
	"github.com/azure/azurerm-adapter/pkg/providers/compute"
)

func newVMCmd(a *app) *cobra.Command {
	vmCmd := &cobra.Command{
		Use:   "vm",
		Short: "Manage virtual machines",
	}

	var file string
	createCmd := &cobra.Command{
		Use:   "create -f <params.yaml>",
		Short: "Create a virtual machine from a parameters file",
		Long: `Create a virtual machine from a YAML parameters file.

When vhdPath points at a VHD in another storage account than storageAccountName,
the VHD is first copied into storageAccountName and the copy is polled until it
succeeds. The resource group and location default to ARM_RESOURCE_GROUP and LOCATION.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := readVMParams(file)
			if err != nil {
				return err
			}
			params.ResourceGroup = lo.Ternary(params.ResourceGroup != "", params.ResourceGroup, a.op.Config.ResourceGroup)
			params.Location = lo.Ternary(params.Location != "", params.Location, a.op.Config.Location)
			params.StorageAccountName = lo.Ternary(params.StorageAccountName != "", params.StorageAccountName, a.op.Config.StorageAccountName)

			vm, err := a.op.Compute.CreateVirtualMachine(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to create virtual machine: %w", err)
			}
			return a.printer.Print(vm, vmTable(vm))
		},
	}
	createCmd.Flags().StringVarP(&file, "filename", "f", "", "YAML file with the virtual machine parameters")
	_ = createCmd.MarkFlagRequired("filename")

	vmCmd.AddCommand(createCmd)
	return vmCmd
}

func readVMParams(path string) (*compute.VirtualMachineParams, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	params := &compute.VirtualMachineParams{}
	if err := yaml.Unmarshal(raw, params); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return params, nil
}

func vmTable(vm *armcompute.VirtualMachine) output.Table {
	var size, state string
	if vm.Properties != nil {
		state = lo.FromPtr(vm.Properties.ProvisioningState)
		if vm.Properties.HardwareProfile != nil {
			size = string(lo.FromPtr(vm.Properties.HardwareProfile.VMSize))
		}
	}
	return output.Table{
		Headers: []string{"NAME", "LOCATION", "SIZE", "STATE"},
		Rows: [][]string{{
			lo.FromPtr(vm.Name),
			output.Cell(lo.FromPtr(vm.Location)),
			output.Cell(size),
			output.Cell(state),
		}},
	}
}

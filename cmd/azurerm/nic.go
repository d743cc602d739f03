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

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/azure/azurerm-adapter/pkg/output"
	"github.com/azure/azurerm-adapter/pkg/providers/network"
)

func newNICCmd(a *app) *cobra.Command {
	nicCmd := &cobra.Command{
		Use:   "nic",
		Short: "Inspect network interfaces",
	}

	var resourceGroup string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the network interfaces of a resource group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rg := lo.Ternary(resourceGroup != "", resourceGroup, a.op.Config.ResourceGroup)
			if rg == "" {
				return fmt.Errorf("resource group not set, use --resource-group or ARM_RESOURCE_GROUP")
			}
			list, err := a.op.Network.ListNetworkInterfaces(cmd.Context(), rg)
			if err != nil {
				return err
			}
			return a.printer.Print(list, nicTable(list))
		},
	}
	listCmd.Flags().StringVarP(&resourceGroup, "resource-group", "g", "", "Resource group to list")

	nicCmd.AddCommand(listCmd)
	return nicCmd
}

func nicTable(list *network.InterfaceList) output.Table {
	table := output.Table{Headers: []string{"NAME", "LOCATION", "PRIVATE IP", "ALLOCATION"}}
	for _, nic := range list.Value {
		var ip, allocation string
		if nic.Properties != nil && len(nic.Properties.IPConfigurations) > 0 {
			if props := nic.Properties.IPConfigurations[0].Properties; props != nil {
				ip = lo.FromPtr(props.PrivateIPAddress)
				allocation = string(lo.FromPtr(props.PrivateIPAllocationMethod))
			}
		}
		table.Rows = append(table.Rows, []string{
			lo.FromPtr(nic.Name),
			output.Cell(lo.FromPtr(nic.Location)),
			output.Cell(ip),
			output.Cell(allocation),
		})
	}
	return table
}

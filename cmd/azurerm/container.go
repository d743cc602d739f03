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
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/azure/azurerm-adapter/pkg/output"
	"github.com/azure/azurerm-adapter/pkg/providers/storage"
)

func newContainerCmd(a *app) *cobra.Command {
	var account string
	containerCmd := &cobra.Command{
		Use:   "container",
		Short: "Manage blob containers",
	}
	containerCmd.PersistentFlags().StringVar(&account, "account", "", "Storage account, defaults to AZURE_STORAGE_ACCOUNT_NAME")

	var prefix string
	var noMetadata bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List containers",
		Long: `List the containers of a storage account.

The listing does not report access levels, so the ACCESS column shows "unknown";
use "container get" for the access level of one container.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			containers, err := a.op.Containers(cmd.Context(), account)
			if err != nil {
				return err
			}
			all, err := containers.All(cmd.Context(), &storage.ListOptions{Prefix: prefix, Metadata: !noMetadata})
			if err != nil {
				return err
			}
			return a.printer.Print(all, containerTable(all))
		},
	}
	listCmd.Flags().StringVar(&prefix, "prefix", "", "Only list containers whose name starts with prefix")
	listCmd.Flags().BoolVar(&noMetadata, "no-metadata", false, "Do not fetch container metadata")

	getCmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Get one container with its access level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			containers, err := a.op.Containers(cmd.Context(), account)
			if err != nil {
				return err
			}
			c, err := containers.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if c == nil {
				return fmt.Errorf("container %s not found", args[0])
			}
			return a.printer.Print(c, containerTable([]*storage.Container{c}))
		},
	}

	containerCmd.AddCommand(listCmd, getCmd, newMetadataCmd(a, &account))
	return containerCmd
}

func newMetadataCmd(a *app, account *string) *cobra.Command {
	metadataCmd := &cobra.Command{
		Use:   "metadata",
		Short: "Read or replace container metadata",
	}

	getCmd := &cobra.Command{
		Use:   "get <container>",
		Short: "Print the metadata of a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			containers, err := a.op.Containers(cmd.Context(), *account)
			if err != nil {
				return err
			}
			md, err := containers.GetMetadata(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printer.Print(md, metadataTable(md))
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <container> key=value...",
		Short: "Replace the metadata of a container",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			md, err := parseMetadata(args[1:])
			if err != nil {
				return err
			}
			containers, err := a.op.Containers(cmd.Context(), *account)
			if err != nil {
				return err
			}
			if err := containers.SetMetadata(cmd.Context(), args[0], md); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "metadata of container %s updated\n", args[0])
			return err
		},
	}

	metadataCmd.AddCommand(getCmd, setCmd)
	return metadataCmd
}

func parseMetadata(pairs []string) (map[string]string, error) {
	md := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid metadata %q, expected key=value", pair)
		}
		md[k] = v
	}
	return md, nil
}

func containerTable(containers []*storage.Container) output.Table {
	table := output.Table{Headers: []string{"NAME", "ACCESS", "LAST MODIFIED", "METADATA"}}
	for _, c := range containers {
		lastModified := ""
		if c.LastModified != nil {
			lastModified = c.LastModified.UTC().Format("2006-01-02T15:04:05Z")
		}
		table.Rows = append(table.Rows, []string{
			c.Name,
			c.PublicAccessLevel,
			output.Cell(lastModified),
			output.Cell(joinMetadata(c.Metadata)),
		})
	}
	return table
}

func metadataTable(md map[string]string) output.Table {
	table := output.Table{Headers: []string{"KEY", "VALUE"}}
	for _, k := range sortedKeys(md) {
		table.Rows = append(table.Rows, []string{k, md[k]})
	}
	return table
}

func joinMetadata(md map[string]string) string {
	return strings.Join(lo.Map(sortedKeys(md), func(k string, _ int) string {
		return k + "=" + md[k]
	}), ",")
}

func sortedKeys(md map[string]string) []string {
	keys := lo.Keys(md)
	sort.Strings(keys)
	return keys
}

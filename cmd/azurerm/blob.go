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
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/azure/azurerm-adapter/pkg/providers/storage"
)

func newBlobCmd(a *app) *cobra.Command {
	var account string
	blobCmd := &cobra.Command{
		Use:   "blob",
		Short: "Manage blobs",
	}
	blobCmd.PersistentFlags().StringVar(&account, "account", "", "Storage account, defaults to AZURE_STORAGE_ACCOUNT_NAME")

	var props storage.BlobProperties
	var contentMD5 string
	setPropertiesCmd := &cobra.Command{
		Use:   "set-properties <container> <blob>",
		Short: "Set the system properties of a blob",
		Long: `Set the content headers of a blob. Properties that are not given are cleared,
as the blob service replaces all of them at once.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if contentMD5 != "" {
				md5, err := base64.StdEncoding.DecodeString(contentMD5)
				if err != nil {
					return fmt.Errorf("invalid --content-md5, expected base64: %w", err)
				}
				props.ContentMD5 = md5
			}
			gateway, err := a.op.Storage(cmd.Context(), account)
			if err != nil {
				return err
			}
			if _, err := gateway.SetBlobProperties(cmd.Context(), args[0], args[1], props); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "properties of blob %s/%s updated\n", args[0], args[1])
			return err
		},
	}
	flags := setPropertiesCmd.Flags()
	flags.StringVar(&props.ContentType, "content-type", "", "Content-Type of the blob")
	flags.StringVar(&props.ContentEncoding, "content-encoding", "", "Content-Encoding of the blob")
	flags.StringVar(&props.ContentLanguage, "content-language", "", "Content-Language of the blob")
	flags.StringVar(&props.ContentDisposition, "content-disposition", "", "Content-Disposition of the blob")
	flags.StringVar(&props.CacheControl, "cache-control", "", "Cache-Control of the blob")
	flags.StringVar(&contentMD5, "content-md5", "", "Base64 encoded MD5 of the blob content")

	blobCmd.AddCommand(setPropertiesCmd)
	return blobCmd
}

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

package storage

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/service"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"k8s.io/klog/v2"

	"github.com/azure/azurerm-adapter/pkg/metrics"
	"github.com/azure/azurerm-adapter/pkg/utils"
)

const serviceName = "storage"

// RealGateway talks to the blob endpoint of one storage account using its shared key.
type RealGateway struct {
	accountName string
	client      *service.Client
}

var _ Gateway = (*RealGateway)(nil)

func NewRealGateway(serviceURL, accountName, accessKey string) (*RealGateway, error) {
	cred, err := azblob.NewSharedKeyCredential(accountName, accessKey)
	if err != nil {
		return nil, fmt.Errorf("creating shared key credential for %s: %w", accountName, err)
	}
	client, err := azblob.NewClientWithSharedKeyCredential(serviceURL+"/", cred, nil)
	if err != nil {
		return nil, fmt.Errorf("creating blob client for %s: %w", accountName, err)
	}
	klog.V(5).InfoS("Created blob client", "account", accountName, "url", client.URL())
	return &RealGateway{
		accountName: accountName,
		client:      client.ServiceClient(),
	}, nil
}

func (g *RealGateway) BlobURL(containerName, blobName string) string {
	return g.client.NewContainerClient(containerName).NewBlobClient(blobName).URL()
}

func (g *RealGateway) CreateContainer(ctx context.Context, name string) error {
	klog.InfoS("createContainer", "account", g.accountName, "container", name)
	_, err := g.client.NewContainerClient(name).Create(ctx, nil)
	metrics.ObserveCall(serviceName, "CreateContainer", err)
	return utils.NewOperationError(err, fmt.Sprintf("Creating container %s in storage account %s", name, g.accountName))
}

func (g *RealGateway) CopyBlobFromURI(ctx context.Context, containerName, blobName, sourceURI string) (*CopyInfo, error) {
	klog.InfoS("copyBlobFromURI", "container", containerName, "blob", blobName, "source", sourceURI)
	resp, err := g.client.NewContainerClient(containerName).NewBlobClient(blobName).StartCopyFromURL(ctx, sourceURI, nil)
	metrics.ObserveCall(serviceName, "CopyBlobFromURI", err)
	if err != nil {
		return nil, utils.NewOperationError(err, fmt.Sprintf("Copying blob %s into container %s from %s", blobName, containerName, sourceURI))
	}
	return &CopyInfo{
		ID:     lo.FromPtr(resp.CopyID),
		Status: string(lo.FromPtr(resp.CopyStatus)),
	}, nil
}

func (g *RealGateway) GetBlobProperties(ctx context.Context, containerName, blobName string) (*BlobInfo, error) {
	resp, err := g.client.NewContainerClient(containerName).NewBlobClient(blobName).GetProperties(ctx, nil)
	metrics.ObserveCall(serviceName, "GetBlobProperties", err)
	if err != nil {
		return nil, utils.NewOperationError(err, fmt.Sprintf("Getting properties of blob %s in container %s", blobName, containerName))
	}
	return blobInfoFromResponse(containerName, blobName, resp), nil
}

func (g *RealGateway) SetBlobProperties(ctx context.Context, containerName, blobName string, props BlobProperties) (bool, error) {
	klog.V(5).InfoS("Set blob properties", "container", containerName, "blob", blobName, "properties", props)
	_, err := g.client.NewContainerClient(containerName).NewBlobClient(blobName).SetHTTPHeaders(ctx, httpHeaders(props), nil)
	metrics.ObserveCall(serviceName, "SetBlobProperties", err)
	if err != nil {
		return false, errors.Wrapf(err, "exception in setting properties of blob %s", blobName)
	}
	klog.V(5).InfoS("Setting properties of blob successfully", "blob", blobName)
	return true, nil
}

func (g *RealGateway) ListContainers(ctx context.Context, opts ListOptions) ([]*Container, error) {
	klog.InfoS("listContainers", "account", g.accountName, "prefix", opts.Prefix)
	listOpts := &service.ListContainersOptions{
		Include: service.ListContainersInclude{Metadata: opts.Metadata},
	}
	if opts.Prefix != "" {
		listOpts.Prefix = to.Ptr(opts.Prefix)
	}

	var containers []*Container
	pager := g.client.NewListContainersPager(listOpts)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		metrics.ObserveCall(serviceName, "ListContainers", err)
		if err != nil {
			return nil, utils.NewOperationError(err, fmt.Sprintf("Listing containers in storage account %s", g.accountName))
		}
		for _, item := range page.ContainerItems {
			containers = append(containers, containerFromItem(item))
		}
	}
	return containers, nil
}

func (g *RealGateway) GetContainerAccessControlList(ctx context.Context, name string) (*AccessControlList, error) {
	resp, err := g.client.NewContainerClient(name).GetAccessPolicy(ctx, nil)
	metrics.ObserveCall(serviceName, "GetContainerAccessControlList", err)
	if err != nil {
		return nil, utils.NewOperationError(err, fmt.Sprintf("Getting access control list of container %s", name))
	}
	return accessControlListFromPolicy(resp), nil
}

func (g *RealGateway) GetContainerMetadata(ctx context.Context, name string) (map[string]string, error) {
	resp, err := g.client.NewContainerClient(name).GetProperties(ctx, nil)
	metrics.ObserveCall(serviceName, "GetContainerMetadata", err)
	if err != nil {
		return nil, utils.NewOperationError(err, fmt.Sprintf("Getting metadata of container %s", name))
	}
	return fromMetadata(resp.Metadata), nil
}

func (g *RealGateway) SetContainerMetadata(ctx context.Context, name string, metadata map[string]string) error {
	klog.InfoS("setContainerMetadata", "container", name)
	_, err := g.client.NewContainerClient(name).SetMetadata(ctx, &container.SetMetadataOptions{
		Metadata: toMetadata(metadata),
	})
	metrics.ObserveCall(serviceName, "SetContainerMetadata", err)
	return utils.NewOperationError(err, fmt.Sprintf("Setting metadata of container %s", name))
}

func blobInfoFromResponse(containerName, blobName string, resp blob.GetPropertiesResponse) *BlobInfo {
	return &BlobInfo{
		Container:     containerName,
		Name:          blobName,
		CopyStatus:    string(lo.FromPtr(resp.CopyStatus)),
		CopyProgress:  lo.FromPtr(resp.CopyProgress),
		ContentLength: lo.FromPtr(resp.ContentLength),
		ContentType:   lo.FromPtr(resp.ContentType),
		ETag:          string(lo.FromPtr(resp.ETag)),
		LastModified:  resp.LastModified,
	}
}

func containerFromItem(item *service.ContainerItem) *Container {
	c := &Container{
		Name:     lo.FromPtr(item.Name),
		Metadata: fromMetadata(item.Metadata),
	}
	if item.Properties != nil {
		c.LastModified = item.Properties.LastModified
		c.ETag = string(lo.FromPtr(item.Properties.ETag))
	}
	return c
}

// accessControlListFromPolicy maps the typed access policy response. A missing public
// access header means the container is private.
func accessControlListFromPolicy(resp container.GetAccessPolicyResponse) *AccessControlList {
	acl := &AccessControlList{PublicAccessLevel: AccessLevelPrivate}
	if resp.BlobPublicAccess != nil {
		acl.PublicAccessLevel = string(*resp.BlobPublicAccess)
	}
	for _, id := range resp.SignedIdentifiers {
		if id != nil && id.ID != nil {
			acl.SignedIdentifiers = append(acl.SignedIdentifiers, *id.ID)
		}
	}
	return acl
}

func httpHeaders(props BlobProperties) blob.HTTPHeaders {
	return blob.HTTPHeaders{
		BlobContentType:        optional(props.ContentType),
		BlobContentEncoding:    optional(props.ContentEncoding),
		BlobContentLanguage:    optional(props.ContentLanguage),
		BlobContentDisposition: optional(props.ContentDisposition),
		BlobCacheControl:       optional(props.CacheControl),
		BlobContentMD5:         props.ContentMD5,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return to.Ptr(s)
}

func fromMetadata(md map[string]*string) map[string]string {
	if md == nil {
		return nil
	}
	return lo.MapValues(md, func(v *string, _ string) string { return lo.FromPtr(v) })
}

func toMetadata(md map[string]string) map[string]*string {
	return lo.MapValues(md, func(v string, _ string) *string { return to.Ptr(v) })
}

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
	"time"
)

const (
	// AccessLevelUnknown marks a container whose access level was not returned by the list call.
	AccessLevelUnknown   = "unknown"
	AccessLevelPrivate   = "private"
	AccessLevelContainer = "container"
	AccessLevelBlob      = "blob"

	CopyStatusPending = "pending"
	CopyStatusSuccess = "success"
)

// Container is the adapter's record of a blob container.
type Container struct {
	Name              string            `json:"name" yaml:"name"`
	Metadata          map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	LastModified      *time.Time        `json:"lastModified,omitempty" yaml:"lastModified,omitempty"`
	ETag              string            `json:"etag,omitempty" yaml:"etag,omitempty"`
	PublicAccessLevel string            `json:"publicAccessLevel" yaml:"publicAccessLevel"`
}

// AccessControlList is the normalized access policy of a container.
type AccessControlList struct {
	PublicAccessLevel string
	SignedIdentifiers []string
}

// ListOptions filters a container listing.
type ListOptions struct {
	Prefix   string
	Metadata bool
}

// CopyInfo describes a server side copy right after it was started.
type CopyInfo struct {
	ID     string
	Status string
}

// BlobInfo is the subset of blob properties the adapter reads.
type BlobInfo struct {
	Container     string
	Name          string
	CopyStatus    string
	CopyProgress  string
	ContentLength int64
	ContentType   string
	ETag          string
	LastModified  *time.Time
}

// BlobProperties are the settable system properties of a blob.
type BlobProperties struct {
	ContentType        string `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	ContentEncoding    string `json:"contentEncoding,omitempty" yaml:"contentEncoding,omitempty"`
	ContentLanguage    string `json:"contentLanguage,omitempty" yaml:"contentLanguage,omitempty"`
	ContentDisposition string `json:"contentDisposition,omitempty" yaml:"contentDisposition,omitempty"`
	CacheControl       string `json:"cacheControl,omitempty" yaml:"cacheControl,omitempty"`
	ContentMD5         []byte `json:"contentMD5,omitempty" yaml:"contentMD5,omitempty"`
}

//go:generate mockgen -destination=../../fake/mock_storage_gateway.go -package=fake -mock_names=Gateway=MockStorageGateway,SessionFactory=MockSessionFactory -source=types.go

// Gateway is the blob data plane of one storage account.
type Gateway interface {
	// BlobURL returns the address of a blob in this account.
	BlobURL(containerName, blobName string) string
	CreateContainer(ctx context.Context, name string) error
	// CopyBlobFromURI starts an asynchronous server side copy of sourceURI into containerName/blobName.
	CopyBlobFromURI(ctx context.Context, containerName, blobName, sourceURI string) (*CopyInfo, error)
	GetBlobProperties(ctx context.Context, containerName, blobName string) (*BlobInfo, error)
	SetBlobProperties(ctx context.Context, containerName, blobName string, props BlobProperties) (bool, error)
	ListContainers(ctx context.Context, opts ListOptions) ([]*Container, error)
	GetContainerAccessControlList(ctx context.Context, name string) (*AccessControlList, error)
	GetContainerMetadata(ctx context.Context, name string) (map[string]string, error)
	SetContainerMetadata(ctx context.Context, name string, metadata map[string]string) error
}

// SessionFactory opens a Gateway against a storage account.
type SessionFactory interface {
	NewSession(ctx context.Context, resourceGroup, accountName string) (Gateway, error)
}

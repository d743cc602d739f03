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
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"k8s.io/klog/v2"

	"github.com/azure/azurerm-adapter/pkg/utils"
)

//go:embed fixtures/*.json
var fixtures embed.FS

type containerFixture struct {
	Name       string            `json:"name"`
	Metadata   map[string]string `json:"metadata"`
	Properties struct {
		LastModified time.Time `json:"last_modified"`
		ETag         string    `json:"etag"`
	} `json:"properties"`
}

type blobFixture struct {
	ContentLength int64     `json:"content_length"`
	ContentType   string    `json:"content_type"`
	ETag          string    `json:"etag"`
	LastModified  time.Time `json:"last_modified"`
	CopyID        string    `json:"copy_id"`
	CopyStatus    string    `json:"copy_status"`
	CopyProgress  string    `json:"copy_progress"`
}

// MockGateway serves canned responses shaped like the blob service's, for running the
// adapter without an Azure endpoint.
type MockGateway struct {
	accountName    string
	endpointSuffix string
}

var _ Gateway = (*MockGateway)(nil)

func NewMockGateway(accountName, endpointSuffix string) *MockGateway {
	return &MockGateway{accountName: accountName, endpointSuffix: endpointSuffix}
}

func (g *MockGateway) BlobURL(containerName, blobName string) string {
	return fmt.Sprintf("%s/%s/%s", utils.BlobEndpoint(g.accountName, g.endpointSuffix), containerName, blobName)
}

func (g *MockGateway) CreateContainer(_ context.Context, name string) error {
	klog.V(5).InfoS("Created container", "container", name, "mock", true)
	return nil
}

func (g *MockGateway) CopyBlobFromURI(_ context.Context, containerName, blobName, sourceURI string) (*CopyInfo, error) {
	b, err := loadBlobFixture()
	if err != nil {
		return nil, err
	}
	klog.V(5).InfoS("Started blob copy", "container", containerName, "blob", blobName, "source", sourceURI, "mock", true)
	return &CopyInfo{ID: b.CopyID, Status: CopyStatusPending}, nil
}

func (g *MockGateway) GetBlobProperties(_ context.Context, containerName, blobName string) (*BlobInfo, error) {
	b, err := loadBlobFixture()
	if err != nil {
		return nil, err
	}
	return &BlobInfo{
		Container:     containerName,
		Name:          blobName,
		CopyStatus:    b.CopyStatus,
		CopyProgress:  b.CopyProgress,
		ContentLength: b.ContentLength,
		ContentType:   b.ContentType,
		ETag:          b.ETag,
		LastModified:  lo.ToPtr(b.LastModified),
	}, nil
}

func (g *MockGateway) SetBlobProperties(_ context.Context, containerName, blobName string, props BlobProperties) (bool, error) {
	klog.V(5).InfoS("Set blob properties successfully", "container", containerName, "blob", blobName, "properties", props, "mock", true)
	return true, nil
}

func (g *MockGateway) ListContainers(_ context.Context, opts ListOptions) ([]*Container, error) {
	var items []containerFixture
	if err := loadFixture("fixtures/containers.json", &items); err != nil {
		return nil, err
	}
	var containers []*Container
	for _, item := range items {
		if !strings.HasPrefix(item.Name, opts.Prefix) {
			continue
		}
		c := &Container{
			Name:         item.Name,
			LastModified: lo.ToPtr(item.Properties.LastModified),
			ETag:         item.Properties.ETag,
		}
		if opts.Metadata {
			c.Metadata = item.Metadata
		}
		containers = append(containers, c)
	}
	return containers, nil
}

// GetContainerAccessControlList reads the fixture as a plain keyed map, the shape the
// service's JSON form of an access policy has.
func (g *MockGateway) GetContainerAccessControlList(_ context.Context, name string) (*AccessControlList, error) {
	var raw map[string]any
	if err := loadFixture("fixtures/container_acl.json", &raw); err != nil {
		return nil, err
	}
	return accessControlListFromMap(raw), nil
}

func (g *MockGateway) GetContainerMetadata(_ context.Context, name string) (map[string]string, error) {
	var items []containerFixture
	if err := loadFixture("fixtures/containers.json", &items); err != nil {
		return nil, err
	}
	if item, ok := lo.Find(items, func(c containerFixture) bool { return c.Name == name }); ok {
		return item.Metadata, nil
	}
	return map[string]string{}, nil
}

func (g *MockGateway) SetContainerMetadata(_ context.Context, name string, metadata map[string]string) error {
	klog.V(5).InfoS("Set container metadata", "container", name, "metadata", metadata, "mock", true)
	return nil
}

// MockSessions hands out MockGateways for any account.
type MockSessions struct {
	EndpointSuffix string
}

var _ SessionFactory = (*MockSessions)(nil)

func (s *MockSessions) NewSession(_ context.Context, _ string, accountName string) (Gateway, error) {
	return NewMockGateway(accountName, s.EndpointSuffix), nil
}

func accessControlListFromMap(raw map[string]any) *AccessControlList {
	acl := &AccessControlList{PublicAccessLevel: AccessLevelPrivate}
	if level, ok := raw["public_access_level"].(string); ok && level != "" {
		acl.PublicAccessLevel = level
	}
	if ids, ok := raw["signed_identifiers"].([]any); ok {
		for _, id := range ids {
			if s, ok := id.(string); ok {
				acl.SignedIdentifiers = append(acl.SignedIdentifiers, s)
			}
		}
	}
	return acl
}

func loadBlobFixture() (*blobFixture, error) {
	b := &blobFixture{}
	if err := loadFixture("fixtures/blob_properties.json", b); err != nil {
		return nil, err
	}
	return b, nil
}

func loadFixture(name string, out any) error {
	raw, err := fixtures.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding fixture %s: %w", name, err)
	}
	return nil
}

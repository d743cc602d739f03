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

	"github.com/samber/lo"
	"k8s.io/klog/v2"

	"github.com/azure/azurerm-adapter/pkg/utils"
)

// Containers is the container collection of one storage account.
type Containers struct {
	gateway Gateway
}

func NewContainers(gateway Gateway) *Containers {
	return &Containers{gateway: gateway}
}

// All lists the containers matching opts. A nil opts lists every container with metadata.
// The list endpoint does not report access levels, so every record carries AccessLevelUnknown.
func (c *Containers) All(ctx context.Context, opts *ListOptions) ([]*Container, error) {
	if opts == nil {
		opts = &ListOptions{Metadata: true}
	}
	containers, err := c.gateway.ListContainers(ctx, *opts)
	if err != nil {
		return nil, err
	}
	for _, container := range containers {
		container.PublicAccessLevel = AccessLevelUnknown
	}
	return containers, nil
}

// Get returns the container named exactly name, or nil when there is none. A container
// deleted between the listing and the access list read is reported as missing.
func (c *Containers) Get(ctx context.Context, name string) (*Container, error) {
	containers, err := c.All(ctx, &ListOptions{Prefix: name, Metadata: true})
	if err != nil {
		return nil, err
	}
	container, ok := lo.Find(containers, func(item *Container) bool {
		return item.Name == name
	})
	if !ok {
		klog.V(5).InfoS("Container not found", "container", name)
		return nil, nil
	}

	acl, err := c.gateway.GetContainerAccessControlList(ctx, name)
	if err != nil {
		if err = utils.ShouldIgnoreNotFoundError(err); err == nil {
			klog.V(5).InfoS("Container removed before its access list was read", "container", name)
		}
		return nil, err
	}
	container.PublicAccessLevel = acl.PublicAccessLevel
	return container, nil
}

func (c *Containers) GetMetadata(ctx context.Context, name string) (map[string]string, error) {
	return c.gateway.GetContainerMetadata(ctx, name)
}

func (c *Containers) SetMetadata(ctx context.Context, name string, metadata map[string]string) error {
	return c.gateway.SetContainerMetadata(ctx, name, metadata)
}

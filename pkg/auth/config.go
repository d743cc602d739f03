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

package auth

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"github.com/azure/azurerm-adapter/pkg/utils"
)

// Mode selects which gateway implementations the adapter is wired with.
type Mode string

const (
	ModeReal Mode = "real"
	ModeMock Mode = "mock"
)

const (
	defaultCopyPollInterval   = 10 * time.Second
	defaultCopyTimeout        = time.Duration(0)
	defaultStorageKeyCacheTTL = 5 * time.Minute

	envAdapterMode           = "AZURE_ADAPTER_MODE"
	envStorageAccountName    = "AZURE_STORAGE_ACCOUNT_NAME"
	envStorageEndpointSuffix = "AZURE_STORAGE_ENDPOINT_SUFFIX"
	envCopyPollInterval      = "AZURE_VHD_COPY_POLL_INTERVAL"
	envCopyTimeout           = "AZURE_VHD_COPY_TIMEOUT"
	envStorageKeyCacheTTL    = "AZURE_STORAGE_KEY_CACHE_TTL"
)

// Config holds the configuration parsed from the environment
type Config struct {
	Location               string `json:"location" yaml:"location"`
	TenantID               string `json:"tenantId" yaml:"tenantId"`
	SubscriptionID         string `json:"subscriptionId" yaml:"subscriptionId"`
	ResourceGroup          string `json:"resourceGroup" yaml:"resourceGroup"`
	CloudEnvironment       string `json:"cloudEnvironment" yaml:"cloudEnvironment"`
	UserAssignedIdentityID string `json:"userAssignedIdentityID" yaml:"userAssignedIdentityID"`

	// Mode is either "real" (ARM and blob endpoints) or "mock" (canned fixtures).
	Mode Mode `json:"mode" yaml:"mode" validate:"oneof=real mock"`

	// StorageAccountName is the default account used by the container and blob commands.
	StorageAccountName string `json:"storageAccountName,omitempty" yaml:"storageAccountName,omitempty"`
	// StorageEndpointSuffix is the DNS suffix of blob endpoints, core.windows.net on the public cloud.
	StorageEndpointSuffix string `json:"storageEndpointSuffix,omitempty" yaml:"storageEndpointSuffix,omitempty" validate:"required,hostname"`

	// CopyPollInterval is how often the status of a staged VHD copy is checked.
	CopyPollInterval time.Duration `json:"copyPollInterval,omitempty" yaml:"copyPollInterval,omitempty" validate:"gt=0"`
	// CopyTimeout bounds the wait for a staged VHD copy. Zero waits until the copy succeeds
	// or the caller's context is done.
	CopyTimeout time.Duration `json:"copyTimeout,omitempty" yaml:"copyTimeout,omitempty" validate:"gte=0"`
	// StorageKeyCacheTTL is how long storage account keys are reused between sessions.
	StorageKeyCacheTTL time.Duration `json:"storageKeyCacheTTL,omitempty" yaml:"storageKeyCacheTTL,omitempty" validate:"gte=0"`
}

func (cfg *Config) BaseVars() {
	cfg.Location = os.Getenv("LOCATION")
	cfg.ResourceGroup = os.Getenv("ARM_RESOURCE_GROUP")
	cfg.TenantID = os.Getenv("AZURE_TENANT_ID")
	cfg.UserAssignedIdentityID = os.Getenv("AZURE_CLIENT_ID")
	cfg.SubscriptionID = os.Getenv("ARM_SUBSCRIPTION_ID")
	cfg.CloudEnvironment = os.Getenv("CLOUD_ENVIRONMENT")
	cfg.StorageAccountName = os.Getenv(envStorageAccountName)
	cfg.StorageEndpointSuffix = utils.WithDefaultString(envStorageEndpointSuffix, utils.DefaultStorageEndpointSuffix)
	cfg.Mode = Mode(strings.ToLower(utils.WithDefaultString(envAdapterMode, string(ModeReal))))
}

// BuildAzureConfig returns a Config object for the Azure clients
func BuildAzureConfig() (*Config, error) {
	var err error
	cfg := &Config{}
	cfg.BaseVars()

	if cfg.CopyPollInterval, err = utils.WithDefaultDuration(envCopyPollInterval, defaultCopyPollInterval); err != nil {
		return nil, err
	}
	if cfg.CopyTimeout, err = utils.WithDefaultDuration(envCopyTimeout, defaultCopyTimeout); err != nil {
		return nil, err
	}
	if cfg.StorageKeyCacheTTL, err = utils.WithDefaultDuration(envStorageKeyCacheTTL, defaultStorageKeyCacheTTL); err != nil {
		return nil, err
	}

	cfg.TrimSpace()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsMock reports whether the adapter should be wired with fixture gateways.
func (cfg *Config) IsMock() bool {
	return cfg.Mode == ModeMock
}

// TrimSpace removes all leading and trailing white spaces.
func (cfg *Config) TrimSpace() {
	cfg.TenantID = strings.TrimSpace(cfg.TenantID)
	cfg.SubscriptionID = strings.TrimSpace(cfg.SubscriptionID)
	cfg.ResourceGroup = strings.TrimSpace(cfg.ResourceGroup)
	cfg.StorageAccountName = strings.TrimSpace(cfg.StorageAccountName)
	cfg.StorageEndpointSuffix = strings.TrimSpace(cfg.StorageEndpointSuffix)
}

func (cfg *Config) validate() error {
	var errs []error
	if !cfg.IsMock() {
		if cfg.SubscriptionID == "" {
			errs = append(errs, fmt.Errorf("subscription ID not set"))
		}
		if cfg.TenantID == "" {
			errs = append(errs, fmt.Errorf("tenant ID not set"))
		}
	}
	if err := validator.New().Struct(cfg); err != nil {
		errs = append(errs, err)
	}
	return multierr.Combine(errs...)
}

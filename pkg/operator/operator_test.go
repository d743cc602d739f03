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

package operator

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/azure/azurerm-adapter/pkg/auth"
	"github.com/azure/azurerm-adapter/pkg/fake"
	"github.com/azure/azurerm-adapter/pkg/providers/compute"
	"github.com/azure/azurerm-adapter/pkg/providers/network"
	"github.com/azure/azurerm-adapter/pkg/providers/storage"
)

func testConfig(mode auth.Mode) *auth.Config {
	return &auth.Config{
		Mode:                  mode,
		SubscriptionID:        "sub",
		TenantID:              "tenant",
		ResourceGroup:         "fog-test-rg",
		StorageAccountName:    "mystorage1",
		StorageEndpointSuffix: "core.windows.net",
		CopyPollInterval:      time.Millisecond,
		StorageKeyCacheTTL:    time.Minute,
	}
}

func TestNewOperatorMockMode(t *testing.T) {
	op, err := NewOperator(context.Background(), testConfig(auth.ModeMock))
	assert.NoError(t, err)
	assert.IsType(t, &compute.MockGateway{}, op.Compute)
	assert.IsType(t, &network.MockGateway{}, op.Network)
	assert.IsType(t, &storage.MockSessions{}, op.Sessions)

	containers, err := op.Containers(context.Background(), "")
	assert.NoError(t, err)
	c, err := containers.Get(context.Background(), "testcontainer1")
	assert.NoError(t, err)
	assert.Equal(t, storage.AccessLevelContainer, c.PublicAccessLevel)
}

func TestNewOperatorUnsupportedMode(t *testing.T) {
	_, err := NewOperator(context.Background(), testConfig("fake"))
	assert.EqualError(t, err, "unsupported adapter mode: fake. Supported modes are: real, mock")
}

func TestNewRealOperator(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	accounts := fake.NewMockAccountsAPI(mockCtrl)
	accounts.EXPECT().ListKeys(gomock.Any(), "fog-test-rg", "other", gomock.Any()).Return(armstorage.AccountsClientListKeysResponse{
		AccountListKeysResult: armstorage.AccountListKeysResult{
			Keys: []*armstorage.AccountKey{{KeyName: to.Ptr("key1"), Value: to.Ptr("dGVzdGtleQ==")}},
		},
	}, nil)

	azClient := NewAZClientFromAPI(&fake.VirtualMachinesAPI{}, fake.NewMockInterfacesAPI(mockCtrl), accounts)
	op := newRealOperator(testConfig(auth.ModeReal), azClient)
	assert.IsType(t, &compute.RealGateway{}, op.Compute)
	assert.IsType(t, &network.RealGateway{}, op.Network)

	g, err := op.Storage(context.Background(), "other")
	assert.NoError(t, err)
	assert.Equal(t, "https://other.blob.core.windows.net/c/b", g.BlobURL("c", "b"))
}

func TestStorageRequiresAccount(t *testing.T) {
	cfg := testConfig(auth.ModeMock)
	cfg.StorageAccountName = ""
	op := newMockOperator(cfg)
	_, err := op.Storage(context.Background(), "")
	assert.EqualError(t, err, "storage account name not set")
}

func TestArmClientOptions(t *testing.T) {
	testCases := []struct {
		name          string
		cloudEnv      string
		endpoint      string
		expectedARM   string
		expectedError bool
	}{
		{name: "public by default", expectedARM: cloud.AzurePublic.Services[cloud.ResourceManager].Endpoint},
		{name: "china", cloudEnv: "AzureChinaCloud", expectedARM: cloud.AzureChina.Services[cloud.ResourceManager].Endpoint},
		{name: "government", cloudEnv: "AzureUSGovernmentCloud", expectedARM: cloud.AzureGovernment.Services[cloud.ResourceManager].Endpoint},
		{name: "endpoint override", endpoint: "https://rp.e2e.azure.example", expectedARM: "https://rp.e2e.azure.example"},
		{name: "unknown cloud", cloudEnv: "AzureMarsCloud", expectedError: true},
		{name: "invalid endpoint", endpoint: "not-a-url", expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.endpoint != "" {
				os.Setenv(envARMEndpoint, tc.endpoint)
				defer os.Unsetenv(envARMEndpoint)
			}
			cfg := testConfig(auth.ModeReal)
			cfg.CloudEnvironment = tc.cloudEnv

			opts, err := armClientOptions(cfg)
			if tc.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedARM, opts.Cloud.Services[cloud.ResourceManager].Endpoint)
			assert.Equal(t, "azurerm-adapter", opts.Telemetry.ApplicationID)
		})
	}
	// the override must not leak into the shared public cloud configuration
	assert.NotEqual(t, "https://rp.e2e.azure.example", cloud.AzurePublic.Services[cloud.ResourceManager].Endpoint)
}

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
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"k8s.io/klog/v2"

	"github.com/azure/azurerm-adapter/pkg/metrics"
	"github.com/azure/azurerm-adapter/pkg/utils"
)

//go:generate mockgen -destination=../../fake/mock_accounts_api.go -package=fake -mock_names=AccountsAPI=MockAccountsAPI -source=accounts.go

type AccountsAPI interface {
	ListKeys(ctx context.Context, resourceGroupName string, accountName string, options *armstorage.AccountsClientListKeysOptions) (armstorage.AccountsClientListKeysResponse, error)
}

// GatewayBuilder opens a data plane gateway for an account given its blob endpoint and key.
type GatewayBuilder func(serviceURL, accountName, accessKey string) (Gateway, error)

// Sessions opens shared key sessions against storage accounts, reusing access keys for keyTTL.
type Sessions struct {
	accounts       AccountsAPI
	endpointSuffix string
	keys           *cache.Cache
	newGateway     GatewayBuilder
}

var _ SessionFactory = (*Sessions)(nil)

func NewSessions(accounts AccountsAPI, endpointSuffix string, keyTTL time.Duration) *Sessions {
	return NewSessionsWithBuilder(accounts, endpointSuffix, keyTTL, func(serviceURL, accountName, accessKey string) (Gateway, error) {
		return NewRealGateway(serviceURL, accountName, accessKey)
	})
}

func NewSessionsWithBuilder(accounts AccountsAPI, endpointSuffix string, keyTTL time.Duration, builder GatewayBuilder) *Sessions {
	s := &Sessions{
		accounts:       accounts,
		endpointSuffix: endpointSuffix,
		newGateway:     builder,
	}
	// a zero TTL would mean "never expire" to go-cache
	if keyTTL > 0 {
		s.keys = cache.New(keyTTL, 2*keyTTL)
	}
	return s
}

func (s *Sessions) NewSession(ctx context.Context, resourceGroup, accountName string) (Gateway, error) {
	key, err := s.accessKey(ctx, resourceGroup, accountName)
	if err != nil {
		return nil, err
	}
	return s.newGateway(utils.BlobEndpoint(accountName, s.endpointSuffix), accountName, key)
}

func (s *Sessions) accessKey(ctx context.Context, resourceGroup, accountName string) (string, error) {
	cacheKey := resourceGroup + "/" + accountName
	if s.keys != nil {
		if key, ok := s.keys.Get(cacheKey); ok {
			return key.(string), nil
		}
	}

	klog.InfoS("listStorageAccountKeys", "resourceGroup", resourceGroup, "account", accountName)
	resp, err := s.accounts.ListKeys(ctx, resourceGroup, accountName, nil)
	metrics.ObserveCall(serviceName, "ListKeys", err)
	if err != nil {
		return "", utils.NewOperationError(err, fmt.Sprintf("Getting access keys of storage account %s in Resource Group %s", accountName, resourceGroup))
	}
	first, ok := lo.Find(resp.Keys, func(k *armstorage.AccountKey) bool {
		return k != nil && lo.FromPtr(k.Value) != ""
	})
	if !ok {
		return "", fmt.Errorf("storage account %s has no access keys", accountName)
	}

	key := lo.FromPtr(first.Value)
	if s.keys != nil {
		s.keys.SetDefault(cacheKey, key)
	}
	return key, nil
}

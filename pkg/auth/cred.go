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
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/AzureAD/microsoft-authentication-library-for-go/apps/confidential"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const (
	envFederatedTokenFile = "AZURE_FEDERATED_TOKEN_FILE"
	envAuthorityHost      = "AZURE_AUTHORITY_HOST"
	assertionRefresh      = 5 * time.Minute
)

// ClientAssertionCredential authenticates an application with assertions provided by a callback function.
type ClientAssertionCredential struct {
	assertion, file    string
	ConfidentialClient confidential.Client
	lastRead           time.Time
}

// NewCredential provides the token credential the ARM clients are created with. Mock mode
// never talks to Azure AD; workload identity is used when its token file is mounted and the
// default azidentity chain otherwise.
func NewCredential(cfg *Config) (azcore.TokenCredential, error) {
	if cfg == nil {
		return nil, fmt.Errorf("failed to create credential, nil config provided")
	}
	if cfg.IsMock() {
		return &DummyCredential{}, nil
	}

	// Azure AD Workload Identity webhook will inject the following env vars:
	// 	AZURE_FEDERATED_TOKEN_FILE is the service account token path
	// 	AZURE_AUTHORITY_HOST is the AAD authority hostname
	if tokenFilePath := os.Getenv(envFederatedTokenFile); tokenFilePath != "" {
		klog.V(2).InfoS("Using workload identity credential", "tokenFile", tokenFilePath)
		return newClientAssertionCredential(cfg, tokenFilePath)
	}

	klog.V(2).InfoS("Using default azure credential", "tenantID", cfg.TenantID)
	cred, err := azidentity.NewDefaultAzureCredential(&azidentity.DefaultAzureCredentialOptions{
		TenantID: cfg.TenantID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create default azure credential")
	}
	return cred, nil
}

func newClientAssertionCredential(cfg *Config, tokenFilePath string) (*ClientAssertionCredential, error) {
	clientAssertionCredential := &ClientAssertionCredential{file: tokenFilePath}

	confidentialClientApp, err := GetConfidentialClient(cfg, clientAssertionCredential)
	if err != nil {
		klog.ErrorS(err, "failed to create confidential client")
		return nil, err
	}
	clientAssertionCredential.ConfidentialClient = confidentialClientApp
	return clientAssertionCredential, nil
}

func GetConfidentialClient(cfg *Config, client *ClientAssertionCredential) (confidential.Client, error) {
	authority := os.Getenv(envAuthorityHost)
	if authority == "" {
		return confidential.Client{}, fmt.Errorf("required environment variable is not set %s: %s", envAuthorityHost, authority)
	}

	cred := confidential.NewCredFromAssertionCallback(
		func(ctx context.Context, _ confidential.AssertionRequestOptions) (string, error) {
			return client.readJWTFromFS()
		},
	)

	// create the confidential client to request an AAD token
	confidentialClientApp, err := confidential.New(
		fmt.Sprintf("%s%s/oauth2/token", authority, cfg.TenantID),
		cfg.UserAssignedIdentityID,
		cred)
	if err != nil {
		return confidential.Client{}, fmt.Errorf("failed to create confidential client app: %w", err)
	}
	return confidentialClientApp, nil
}

// GetToken implements the TokenCredential interface
func (c *ClientAssertionCredential) GetToken(ctx context.Context, opts policy.TokenRequestOptions) (azcore.AccessToken, error) {
	token, err := c.ConfidentialClient.AcquireTokenByCredential(ctx, opts.Scopes)
	if err != nil {
		return azcore.AccessToken{}, err
	}

	return azcore.AccessToken{
		Token:     token.AccessToken,
		ExpiresOn: token.ExpiresOn,
	}, nil
}

// readJWTFromFS reads the jwt from file system
// Source: https://github.com/Azure/azure-workload-identity/blob/d126293e3c7c669378b225ad1b1f29cf6af4e56d/examples/msal-go/token_credential.go#L88
func (c *ClientAssertionCredential) readJWTFromFS() (string, error) {
	if now := time.Now(); c.lastRead.Add(assertionRefresh).Before(now) {
		content, err := os.ReadFile(c.file)
		if err != nil {
			return "", err
		}
		c.assertion = string(content)
		c.lastRead = now
	}
	return c.assertion, nil
}

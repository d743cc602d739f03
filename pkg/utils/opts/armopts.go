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

package opts

import (
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	armbalancer "github.com/Azure/go-armbalancer"
	"github.com/google/uuid"
)

const (
	HeaderCorrelationRequestID = "x-ms-correlation-request-id"
	applicationID              = "azurerm-adapter"
	armPoolSize                = 100
)

var defaultHTTPClient = &http.Client{
	Transport: armbalancer.New(armbalancer.Options{
		PoolSize: armPoolSize,
	}),
}

// DefaultArmOpts returns the client options every ARM client of the adapter is created with.
func DefaultArmOpts() *arm.ClientOptions {
	opts := &arm.ClientOptions{}
	opts.Telemetry = DefaultTelemetryOpts()
	opts.Transport = defaultHTTPClient
	opts.PerCallPolicies = append(opts.PerCallPolicies, CorrelationIDPolicy{})
	return opts
}

func DefaultTelemetryOpts() policy.TelemetryOptions {
	return policy.TelemetryOptions{
		ApplicationID: applicationID,
	}
}

// CorrelationIDPolicy stamps each request with a fresh correlation id unless the caller set one.
type CorrelationIDPolicy struct{}

func (CorrelationIDPolicy) Do(req *policy.Request) (*http.Response, error) {
	header := req.Raw().Header
	if header.Get(HeaderCorrelationRequestID) == "" {
		header.Set(HeaderCorrelationRequestID, uuid.New().String())
	}
	return req.Next()
}

// PolicySetHeaders sets http header
type PolicySetHeaders http.Header

func (p PolicySetHeaders) Do(req *policy.Request) (*http.Response, error) {
	header := req.Raw().Header
	for k, v := range p {
		header[k] = v
	}
	return req.Next()
}

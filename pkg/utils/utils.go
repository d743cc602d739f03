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

package utils

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultStorageEndpointSuffix is the blob endpoint suffix of the public cloud.
const DefaultStorageEndpointSuffix = "core.windows.net"

var resourceGroupRegexp = regexp.MustCompile(`(?i)/subscriptions/[^/]+/resourceGroups/(?P<ResourceGroup>[^/]+)`)

// ParseStorageAccountFromURI returns the storage account name a blob URI lives in,
// i.e. the first DNS label of its host: https://<account>.blob.core.windows.net/c/b.vhd
func ParseStorageAccountFromURI(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("parsing blob uri %q: %w", uri, err)
	}
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("parsing blob uri %q: missing host", uri)
	}
	account, _, _ := strings.Cut(host, ".")
	return account, nil
}

// ParseResourceGroupFromID parses the resource group segment of an ARM resource ID.
func ParseResourceGroupFromID(id string) (string, error) {
	matches := resourceGroupRegexp.FindStringSubmatch(id)
	if matches == nil {
		return "", fmt.Errorf("parsing resource id %s", id)
	}
	return matches[resourceGroupRegexp.SubexpIndex("ResourceGroup")], nil
}

// BlobEndpoint returns the blob service URL of a storage account, without a trailing slash.
func BlobEndpoint(accountName, endpointSuffix string) string {
	if endpointSuffix == "" {
		endpointSuffix = DefaultStorageEndpointSuffix
	}
	return fmt.Sprintf("https://%s.blob.%s", accountName, endpointSuffix)
}

// WithDefaultBool returns the boolean value of the supplied environment variable or, if not present,
// the supplied default value.
func WithDefaultBool(key string, def bool) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	parsedVal, err := strconv.ParseBool(val)
	if err != nil {
		return def
	}
	return parsedVal
}

// WithDefaultString returns the value of the supplied environment variable or, if not present,
// the supplied default value.
func WithDefaultString(key string, def string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return def
}

// WithDefaultDuration parses the supplied environment variable as a time.Duration. Unset or
// empty values yield the default; malformed values are returned as an error.
func WithDefaultDuration(key string, def time.Duration) (time.Duration, error) {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return def, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return def, fmt.Errorf("failed to parse %s %q: %w", key, val, err)
	}
	return d, nil
}

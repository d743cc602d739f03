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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStorageAccountFromURI(t *testing.T) {
	testCases := []struct {
		name        string
		uri         string
		expected    string
		expectedErr bool
	}{
		{name: "public cloud blob", uri: "https://srcaccount.blob.core.windows.net/vhds/image.vhd", expected: "srcaccount"},
		{name: "http blob", uri: "http://mystorage1.blob.core.windows.net/vhds/fog-test-server_os_disk.vhd", expected: "mystorage1"},
		{name: "sovereign cloud", uri: "https://acct.blob.core.chinacloudapi.cn/c/b.vhd", expected: "acct"},
		{name: "no host", uri: "/vhds/image.vhd", expectedErr: true},
		{name: "unparsable", uri: "://bad", expectedErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			account, err := ParseStorageAccountFromURI(tc.uri)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, account)
		})
	}
}

func TestParseResourceGroupFromID(t *testing.T) {
	rg, err := ParseResourceGroupFromID("/subscriptions/sub/resourceGroups/fog-test-rg/providers/Microsoft.Network/networkInterfaces/test-NIC")
	require.NoError(t, err)
	assert.Equal(t, "fog-test-rg", rg)

	_, err = ParseResourceGroupFromID("/providers/Microsoft.Network/networkInterfaces/test-NIC")
	assert.Error(t, err)
}

func TestBlobEndpoint(t *testing.T) {
	assert.Equal(t, "https://acct.blob.core.windows.net", BlobEndpoint("acct", ""))
	assert.Equal(t, "https://acct.blob.core.usgovcloudapi.net", BlobEndpoint("acct", "core.usgovcloudapi.net"))
}

func TestWithDefaults(t *testing.T) {
	t.Setenv("UTILS_TEST_BOOL", "true")
	t.Setenv("UTILS_TEST_BAD_BOOL", "nope")
	t.Setenv("UTILS_TEST_STRING", "value")
	t.Setenv("UTILS_TEST_DURATION", "250ms")
	t.Setenv("UTILS_TEST_BAD_DURATION", "soon")

	assert.True(t, WithDefaultBool("UTILS_TEST_BOOL", false))
	assert.True(t, WithDefaultBool("UTILS_TEST_BAD_BOOL", true))
	assert.False(t, WithDefaultBool("UTILS_TEST_MISSING_BOOL", false))

	assert.Equal(t, "value", WithDefaultString("UTILS_TEST_STRING", "def"))
	assert.Equal(t, "def", WithDefaultString("UTILS_TEST_MISSING_STRING", "def"))

	d, err := WithDefaultDuration("UTILS_TEST_DURATION", time.Second)
	assert.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)

	d, err = WithDefaultDuration("UTILS_TEST_MISSING_DURATION", time.Second)
	assert.NoError(t, err)
	assert.Equal(t, time.Second, d)

	_, err = WithDefaultDuration("UTILS_TEST_BAD_DURATION", time.Second)
	assert.Error(t, err)
}

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

package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"table", "yaml", "json"} {
		assert.NoError(t, ValidateFormat(f))
	}
	assert.EqualError(t, ValidateFormat("xml"), "invalid format: xml (valid formats: table, yaml, json)")
	_, err := NewPrinter(&bytes.Buffer{}, "xml", false)
	assert.Error(t, err)
}

func lines(out string) []string {
	return lo.Map(strings.Split(strings.TrimRight(out, "\n"), "\n"), func(l string, _ int) string {
		return strings.TrimRight(l, " ")
	})
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewPrinter(&buf, "table", false)
	assert.NoError(t, err)

	assert.NoError(t, p.Print(nil, Table{
		Headers: []string{"NAME", "ACCESS"},
		Rows:    [][]string{{"testcontainer1", "container"}, {"testcontainer20", Cell("")}},
	}))
	got := lines(buf.String())
	assert.Len(t, got, 3)
	assert.True(t, strings.HasPrefix(got[0], "NAME"))
	assert.NotContains(t, buf.String(), "|")
	assert.NotContains(t, buf.String(), "---")
	// columns are aligned on the widest cell
	assert.Equal(t, strings.Index(got[0], "ACCESS"), strings.Index(got[1], "container"))
	assert.Equal(t, strings.Index(got[0], "ACCESS"), strings.Index(got[2], "-"))
}

func TestPrintTableNoHeadersAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, Format: FormatTable, NoHeaders: true}
	assert.NoError(t, p.Print(nil, Table{Headers: []string{"NAME"}, Rows: [][]string{{"a"}}}))
	assert.Equal(t, []string{"a"}, lines(buf.String()))

	buf.Reset()
	assert.NoError(t, p.Print(nil, Table{Headers: []string{"NAME"}}))
	assert.Equal(t, "No resources found\n", buf.String())
}

func TestPrintStructuredKeepsWireNames(t *testing.T) {
	nic := &armnetwork.Interface{
		Name: to.Ptr("test-NIC"),
		Properties: &armnetwork.InterfacePropertiesFormat{
			EnableIPForwarding: to.Ptr(false),
		},
	}

	var buf bytes.Buffer
	p := &Printer{Out: &buf, Format: FormatJSON}
	assert.NoError(t, p.Print(nic, Table{}))
	assert.Contains(t, buf.String(), `"enableIPForwarding": false`)

	buf.Reset()
	p.Format = FormatYAML
	assert.NoError(t, p.Print(nic, Table{}))
	assert.Contains(t, buf.String(), "enableIPForwarding: false")
	assert.Contains(t, buf.String(), "name: test-NIC")
}

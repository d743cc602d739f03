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

package fake

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// NewDonePoller returns a poller whose long running operation already finished with body as
// its result. T is the SDK response type the body decodes into.
func NewDonePoller[T any](body any) (*runtime.Poller[T], error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader(raw)),
		Request: &http.Request{
			Method: http.MethodPut,
			URL:    &url.URL{Scheme: "https", Host: "management.azure.com", Path: "/fake"},
		},
	}
	return runtime.NewPoller[T](resp, runtime.Pipeline{}, nil)
}

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

package common

import (
	"sync"

	. "github.com/onsi/ginkgo/v2" //nolint:revive,stylecheck
	. "github.com/onsi/gomega"    //nolint:revive,stylecheck
)

// AddCleanup registers f to undo a change the running test made to live resources.
func (env *Environment) AddCleanup(f func()) {
	env.cleanups = append(env.cleanups, f)
}

func (env *Environment) BeforeEach() {
	Expect(env.Operator).ToNot(BeNil())
	env.cleanups = nil
}

func (env *Environment) Cleanup() {
	wg := sync.WaitGroup{}
	for _, f := range env.cleanups {
		wg.Add(1)
		go func(f func()) {
			defer wg.Done()
			defer GinkgoRecover()
			f()
		}(f)
	}
	wg.Wait()
	env.cleanups = nil
}

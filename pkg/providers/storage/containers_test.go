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

package storage_test

import (
	"context"
	"errors"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/azure/azurerm-adapter/pkg/fake"
	"github.com/azure/azurerm-adapter/pkg/providers/storage"
	"github.com/azure/azurerm-adapter/pkg/utils"
)

var _ = Describe("Containers gateway errors", func() {
	var (
		ctx        context.Context
		gateway    *fake.MockStorageGateway
		containers *storage.Containers
	)

	BeforeEach(func() {
		ctx = context.Background()
		gateway = fake.NewMockStorageGateway(gomock.NewController(GinkgoT()))
		containers = storage.NewContainers(gateway)
	})

	expectListing := func(prefix string, names ...string) {
		var listed []*storage.Container
		for _, name := range names {
			listed = append(listed, &storage.Container{Name: name})
		}
		gateway.EXPECT().ListContainers(gomock.Any(), storage.ListOptions{Prefix: prefix, Metadata: true}).Return(listed, nil)
	}

	It("should return list errors", func() {
		gateway.EXPECT().ListContainers(gomock.Any(), storage.ListOptions{Metadata: true}).Return(nil, errors.New("boom"))
		all, err := containers.All(ctx, nil)
		Expect(err).To(MatchError("boom"))
		Expect(all).To(BeNil())
	})
	It("should return list errors from Get without reading the access list", func() {
		gateway.EXPECT().ListContainers(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
		c, err := containers.Get(ctx, "testcontainer1")
		Expect(err).To(MatchError("boom"))
		Expect(c).To(BeNil())
	})
	It("should return access list errors", func() {
		expectListing("testcontainer1", "testcontainer1", "testcontainer10")
		gateway.EXPECT().GetContainerAccessControlList(gomock.Any(), "testcontainer1").Return(nil, errors.New("acl failed"))
		c, err := containers.Get(ctx, "testcontainer1")
		Expect(err).To(MatchError("acl failed"))
		Expect(c).To(BeNil())
	})
	It("should keep provider errors other than not found", func() {
		expectListing("testcontainer1", "testcontainer1")
		gateway.EXPECT().GetContainerAccessControlList(gomock.Any(), "testcontainer1").
			Return(nil, utils.NewOperationError(fake.NewResponseError("AuthorizationFailure", http.StatusForbidden), "Getting access control list of container testcontainer1"))
		c, err := containers.Get(ctx, "testcontainer1")
		Expect(utils.IsOperationError(err)).To(BeTrue())
		Expect(c).To(BeNil())
	})
	It("should treat a container deleted after listing as missing", func() {
		expectListing("testcontainer1", "testcontainer1")
		gateway.EXPECT().GetContainerAccessControlList(gomock.Any(), "testcontainer1").
			Return(nil, utils.NewOperationError(fake.NewResponseError("ContainerNotFound", http.StatusNotFound), "Getting access control list of container testcontainer1"))
		c, err := containers.Get(ctx, "testcontainer1")
		Expect(err).ToNot(HaveOccurred())
		Expect(c).To(BeNil())
	})
	It("should pass metadata errors through", func() {
		gateway.EXPECT().SetContainerMetadata(gomock.Any(), "testcontainer1", map[string]string{"env": "prod"}).Return(errors.New("denied"))
		Expect(containers.SetMetadata(ctx, "testcontainer1", map[string]string{"env": "prod"})).To(MatchError("denied"))
	})
})

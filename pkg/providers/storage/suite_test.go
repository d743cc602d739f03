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
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestStorage(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Providers/Storage")
}

// stubGateway serves the fixture data and lets a test swap out single calls.
type stubGateway struct {
	*MockGateway
	acl         *AccessControlList
	aclCalls    int
	lastListOpt ListOptions
	metadata    map[string]map[string]string
}

func newStubGateway() *stubGateway {
	return &stubGateway{
		MockGateway: NewMockGateway("fogstorage", "core.windows.net"),
		metadata:    map[string]map[string]string{},
	}
}

func (s *stubGateway) ListContainers(ctx context.Context, opts ListOptions) ([]*Container, error) {
	s.lastListOpt = opts
	return s.MockGateway.ListContainers(ctx, opts)
}

func (s *stubGateway) GetContainerAccessControlList(ctx context.Context, name string) (*AccessControlList, error) {
	s.aclCalls++
	if s.acl != nil {
		return s.acl, nil
	}
	return s.MockGateway.GetContainerAccessControlList(ctx, name)
}

func (s *stubGateway) GetContainerMetadata(_ context.Context, name string) (map[string]string, error) {
	return s.metadata[name], nil
}

func (s *stubGateway) SetContainerMetadata(_ context.Context, name string, metadata map[string]string) error {
	s.metadata[name] = metadata
	return nil
}

var _ = Describe("Containers", func() {
	var (
		ctx        context.Context
		gateway    *stubGateway
		containers *Containers
	)

	BeforeEach(func() {
		ctx = context.Background()
		gateway = newStubGateway()
		containers = NewContainers(gateway)
	})

	Context("All", func() {
		It("should list every container with metadata when no options are given", func() {
			all, err := containers.All(ctx, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(all).To(HaveLen(3))
			Expect(gateway.lastListOpt.Metadata).To(BeTrue())
			Expect(all[0].Metadata).To(HaveKeyWithValue("owner", "fog"))
		})
		It("should mark every record with the unknown access level", func() {
			all, err := containers.All(ctx, nil)
			Expect(err).ToNot(HaveOccurred())
			for _, c := range all {
				Expect(c.PublicAccessLevel).To(Equal(AccessLevelUnknown))
			}
			Expect(gateway.aclCalls).To(BeZero())
		})
		It("should pass options through", func() {
			all, err := containers.All(ctx, &ListOptions{Prefix: "testcontainer1"})
			Expect(err).ToNot(HaveOccurred())
			Expect(all).To(HaveLen(2))
			Expect(all[0].Metadata).To(BeNil())
		})
	})

	Context("Get", func() {
		It("should return the exact match and fill in its access level", func() {
			c, err := containers.Get(ctx, "testcontainer1")
			Expect(err).ToNot(HaveOccurred())
			Expect(c).ToNot(BeNil())
			Expect(c.Name).To(Equal("testcontainer1"))
			Expect(c.PublicAccessLevel).To(Equal(AccessLevelContainer))
			Expect(c.Metadata).To(HaveKeyWithValue("env", "test"))
			Expect(gateway.lastListOpt).To(Equal(ListOptions{Prefix: "testcontainer1", Metadata: true}))
		})
		It("should not return a container that only shares the prefix", func() {
			c, err := containers.Get(ctx, "testcontainer")
			Expect(err).ToNot(HaveOccurred())
			Expect(c).To(BeNil())
			Expect(gateway.aclCalls).To(BeZero())
		})
		It("should return nil when nothing matches", func() {
			c, err := containers.Get(ctx, "missing")
			Expect(err).ToNot(HaveOccurred())
			Expect(c).To(BeNil())
		})
		It("should report private containers", func() {
			gateway.acl = &AccessControlList{PublicAccessLevel: AccessLevelPrivate}
			c, err := containers.Get(ctx, "testcontainer2")
			Expect(err).ToNot(HaveOccurred())
			Expect(c.PublicAccessLevel).To(Equal(AccessLevelPrivate))
		})
	})

	Context("Metadata", func() {
		It("should round trip through the gateway", func() {
			Expect(containers.SetMetadata(ctx, "testcontainer2", map[string]string{"k": "v"})).To(Succeed())
			md, err := containers.GetMetadata(ctx, "testcontainer2")
			Expect(err).ToNot(HaveOccurred())
			Expect(md).To(Equal(map[string]string{"k": "v"}))
		})
	})
})

var _ = Describe("MockGateway", func() {
	var gateway *MockGateway

	BeforeEach(func() {
		gateway = NewMockGateway("fogstorage", "core.windows.net")
	})

	It("should read the access list from its keyed form", func() {
		acl, err := gateway.GetContainerAccessControlList(context.Background(), "testcontainer1")
		Expect(err).ToNot(HaveOccurred())
		Expect(acl.PublicAccessLevel).To(Equal(AccessLevelContainer))
		Expect(acl.SignedIdentifiers).To(ConsistOf("fog-read-policy"))
	})
	It("should report a finished copy", func() {
		copyInfo, err := gateway.CopyBlobFromURI(context.Background(), "c", "b.vhd", "https://src.blob.core.windows.net/vhds/a.vhd")
		Expect(err).ToNot(HaveOccurred())
		Expect(copyInfo.Status).To(Equal(CopyStatusPending))
		props, err := gateway.GetBlobProperties(context.Background(), "c", "b.vhd")
		Expect(err).ToNot(HaveOccurred())
		Expect(props.CopyStatus).To(Equal(CopyStatusSuccess))
		Expect(props.Container).To(Equal("c"))
	})
	It("should build blob URLs on the account endpoint", func() {
		Expect(gateway.BlobURL("c", "b.vhd")).To(Equal("https://fogstorage.blob.core.windows.net/c/b.vhd"))
	})
	It("should succeed setting blob properties", func() {
		ok, err := gateway.SetBlobProperties(context.Background(), "c", "b", BlobProperties{ContentType: "text/plain"})
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeTrue())
	})
	It("should return fixture metadata", func() {
		md, err := gateway.GetContainerMetadata(context.Background(), "testcontainer10")
		Expect(err).ToNot(HaveOccurred())
		Expect(md).To(HaveKeyWithValue("env", "staging"))
	})
})

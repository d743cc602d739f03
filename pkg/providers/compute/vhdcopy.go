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

package compute

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/klog/v2"

	"github.com/azure/azurerm-adapter/pkg/metrics"
	"github.com/azure/azurerm-adapter/pkg/providers/storage"
	"github.com/azure/azurerm-adapter/pkg/utils"
)

const (
	stagingContainerPrefix = "customvhd"
	stagingBlobPrefix      = "vhd_image"
)

// VHDStager makes a source VHD readable by a virtual machine whose disks live in another
// storage account, by copying it into that account first.
type VHDStager struct {
	sessions       storage.SessionFactory
	endpointSuffix string
	pollInterval   time.Duration
	timeout        time.Duration
	now            func() time.Time
}

// NewVHDStager returns a stager polling copies every pollInterval. A zero timeout waits until ctx is done.
func NewVHDStager(sessions storage.SessionFactory, endpointSuffix string, pollInterval, timeout time.Duration) *VHDStager {
	return &VHDStager{
		sessions:       sessions,
		endpointSuffix: endpointSuffix,
		pollInterval:   pollInterval,
		timeout:        timeout,
		now:            time.Now,
	}
}

// Stage returns the URI the OS disk image should be read from. A VHD already in
// targetAccount is used in place; anything else is copied into a fresh container there.
func (s *VHDStager) Stage(ctx context.Context, resourceGroup, targetAccount, vhdPath string) (string, error) {
	sourceAccount, err := utils.ParseStorageAccountFromURI(vhdPath)
	if err != nil {
		return "", err
	}
	if sourceAccount == targetAccount {
		klog.V(5).InfoS("VHD already in target storage account", "account", targetAccount, "vhd", vhdPath)
		return vhdPath, nil
	}

	session, err := s.sessions.NewSession(ctx, resourceGroup, targetAccount)
	if err != nil {
		return "", err
	}

	stamp := timestamp(s.now())
	containerName := stagingContainerPrefix + stamp
	blobName := stagingBlobPrefix + stamp + ".vhd"

	if err := session.CreateContainer(ctx, containerName); err != nil {
		return "", err
	}
	copyInfo, err := session.CopyBlobFromURI(ctx, containerName, blobName, vhdPath)
	if err != nil {
		return "", err
	}
	klog.InfoS("Copying VHD", "source", vhdPath, "account", targetAccount, "container", containerName, "blob", blobName, "copyID", copyInfo.ID)

	if err := s.waitForCopy(ctx, session, containerName, blobName); err != nil {
		return "", err
	}
	return session.BlobURL(containerName, blobName), nil
}

// waitForCopy polls the blob until its copy status is exactly success. Any other status,
// failed included, keeps the loop going; only read errors, ctx or the timeout end it early.
func (s *VHDStager) waitForCopy(ctx context.Context, session storage.Gateway, containerName, blobName string) error {
	start := time.Now()
	condition := func(ctx context.Context) (bool, error) {
		props, err := session.GetBlobProperties(ctx, containerName, blobName)
		if err != nil {
			return false, err
		}
		metrics.VHDCopyPollsTotal.WithLabelValues(props.CopyStatus).Inc()
		if props.CopyStatus == storage.CopyStatusSuccess {
			return true, nil
		}
		klog.V(5).InfoS("Waiting for VHD copy", "container", containerName, "blob", blobName, "status", props.CopyStatus, "progress", props.CopyProgress)
		return false, nil
	}

	var err error
	if s.timeout > 0 {
		err = wait.PollUntilContextTimeout(ctx, s.pollInterval, s.timeout, true, condition)
	} else {
		err = wait.PollUntilContextCancel(ctx, s.pollInterval, true, condition)
	}
	if err != nil {
		return fmt.Errorf("waiting for copy of %s/%s: %w", containerName, blobName, err)
	}
	metrics.ObserveCopy(start)
	klog.InfoS("VHD copied", "container", containerName, "blob", blobName, "elapsed", time.Since(start))
	return nil
}

// timestamp renders t as epoch seconds followed by six digits of microseconds.
func timestamp(t time.Time) string {
	return fmt.Sprintf("%d%06d", t.Unix(), t.Nanosecond()/int(time.Microsecond))
}

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
	"context"
	"os"
	"testing"
	"time"

	"github.com/onsi/gomega"
	"github.com/samber/lo"
	"k8s.io/klog/v2"

	"github.com/azure/azurerm-adapter/pkg/operator"
	"github.com/azure/azurerm-adapter/pkg/utils"
)

const (
	envE2ETestMode = "E2E_TEST_MODE"
	// envE2EContainer names an existing container whose metadata the suite may rewrite and restore.
	envE2EContainer = "E2E_CONTAINER"
)

type Environment struct {
	context.Context

	Operator *operator.Operator
	// Container is the scratch container from E2E_CONTAINER, empty when none was given.
	Container string

	cleanups []func()
}

// Enabled reports whether the suite should talk to Azure at all.
func Enabled() bool {
	return utils.WithDefaultBool(envE2ETestMode, false)
}

func NewEnvironment(t *testing.T) *Environment {
	ctx := context.Background()
	cfg := lo.Must(operator.GetAzConfig())
	op := lo.Must(operator.NewOperator(ctx, cfg))
	klog.InfoS("Running e2e suite", "mode", cfg.Mode, "resourceGroup", cfg.ResourceGroup, "account", cfg.StorageAccountName)

	gomega.SetDefaultEventuallyTimeout(10 * time.Minute)
	gomega.SetDefaultEventuallyPollingInterval(10 * time.Second)
	return &Environment{
		Context:   ctx,
		Operator:  op,
		Container: os.Getenv(envE2EContainer),
	}
}

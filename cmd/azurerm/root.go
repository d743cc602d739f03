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

package main

import (
	"context"
	"errors"
	goflag "flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/azure/azurerm-adapter/pkg/auth"
	"github.com/azure/azurerm-adapter/pkg/operator"
	"github.com/azure/azurerm-adapter/pkg/output"
)

var (
	version = "dev"
	commit  = "unknown"
)

type operatorFactory func(ctx context.Context, cfg *auth.Config) (*operator.Operator, error)

// app carries the state shared by every subcommand once the root command ran its pre-run.
type app struct {
	out                io.Writer
	outputFormat       string
	noHeaders          bool
	metricsBindAddress string

	newOperator operatorFactory
	op      *operator.Operator
	printer *output.Printer
}

func newRootCmd(out io.Writer) *cobra.Command {
	return newRootCmdWithOperator(out, operator.NewOperator)
}

func newRootCmdWithOperator(out io.Writer, newOperator operatorFactory) *cobra.Command {
	a := &app{out: out, newOperator: newOperator}

	rootCmd := &cobra.Command{
		Use:   "azurerm",
		Short: "azurerm - Azure Resource Manager adapter",
		Long: `azurerm provisions virtual machines, lists network interfaces and manages
blob containers through Azure Resource Manager.

Set AZURE_ADAPTER_MODE=mock to serve canned responses without calling Azure.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context())
		},
	}

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)
	rootCmd.PersistentFlags().StringVarP(&a.outputFormat, "output", "o", string(output.FormatTable), "Output format: table, yaml or json")
	rootCmd.PersistentFlags().BoolVar(&a.noHeaders, "no-headers", false, "Omit the header row of table output")
	rootCmd.PersistentFlags().StringVar(&a.metricsBindAddress, "metrics-bind-address", "", "Address to serve Prometheus metrics on while the command runs, e.g. :8080")

	rootCmd.AddCommand(
		newVMCmd(a),
		newNICCmd(a),
		newContainerCmd(a),
		newBlobCmd(a),
	)
	return rootCmd
}

func (a *app) init(ctx context.Context) error {
	printer, err := output.NewPrinter(a.out, a.outputFormat, a.noHeaders)
	if err != nil {
		return err
	}
	a.printer = printer

	cfg, err := operator.GetAzConfig()
	if err != nil {
		return fmt.Errorf("creating Azure config, %w", err)
	}
	if a.op, err = a.newOperator(ctx, cfg); err != nil {
		return err
	}

	if a.metricsBindAddress != "" {
		serveMetrics(ctx, a.metricsBindAddress)
	}
	return nil
}

func serveMetrics(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		klog.InfoS("Serving metrics", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.ErrorS(err, "metrics server stopped")
		}
	}()
	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()
}

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

// Package metrics holds the prometheus collectors of the adapter.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "azurerm"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	GatewayCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "calls_total",
			Help:      "Total number of provider calls by service, operation and result",
		},
		[]string{"service", "operation", "result"},
	)

	VHDCopyPollsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "vhd_copy",
			Name:      "polls_total",
			Help:      "Total number of copy status reads by observed status",
		},
		[]string{"status"},
	)

	VHDCopyDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "vhd_copy",
			Name:      "duration_seconds",
			Help:      "Time spent waiting for staged VHD copies to succeed",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 10), // 10s to ~85min
		},
	)
)

func init() {
	prometheus.MustRegister(GatewayCallsTotal, VHDCopyPollsTotal, VHDCopyDuration)
}

// ObserveCall records the outcome of one provider call.
func ObserveCall(service, operation string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	GatewayCallsTotal.WithLabelValues(service, operation, result).Inc()
}

// ObserveCopy records a finished copy wait that started at start.
func ObserveCopy(start time.Time) {
	VHDCopyDuration.Observe(time.Since(start).Seconds())
}

// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package checker

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records check outcomes. A nil *Metrics is valid and records nothing.
type Metrics struct {
	checks      *prometheus.CounterVec
	runDuration prometheus.Histogram
}

// NewMetrics creates the check metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crxcheck_checks_total",
				Help: "Total number of version consistency checks by check and status",
			},
			[]string{"check", "status"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "crxcheck_run_duration_seconds",
				Help:    "Duration of a version consistency run in seconds",
				Buckets: []float64{.001, .005, .01, .05, .1, .5, 1},
			},
		),
	}
	reg.MustRegister(m.checks, m.runDuration)
	return m
}

func (m *Metrics) observeCheck(res CheckResult) {
	if m == nil {
		return
	}
	m.checks.WithLabelValues(string(res.Name), string(res.Status)).Inc()
}

func (m *Metrics) observeRun(d time.Duration) {
	if m == nil {
		return
	}
	m.runDuration.Observe(d.Seconds())
}

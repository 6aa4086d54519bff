// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package threadgroup

import (
	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

// Metric names registered by NewMetrics
const (
	SpawnedCounterName = "thread_group_spawned_task_count"
	FailureCounterName = "thread_group_task_failure_count"
	PendingGaugeName   = "thread_group_pending_task_count"
)

// Metrics holds prebuilt go-kit metrics suitable for passing to Instrument via
// WithSpawned, WithFailures, and WithPending.
type Metrics struct {
	Spawned  metrics.Counter
	Failures metrics.Counter
	Pending  metrics.Gauge
}

// NewMetrics constructs the thread group metrics as prometheus collectors,
// registers them with the given registerer, and returns them wrapped as
// go-kit metrics.  Registration conflicts are returned as errors rather
// than panics so that multiple components can share a registry.
func NewMetrics(r prometheus.Registerer) (*Metrics, error) {
	var (
		spawned = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: SpawnedCounterName,
				Help: "the count of tasks successfully spawned into thread groups",
			},
			nil,
		)

		failures = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: FailureCounterName,
				Help: "the count of abnormal task terminations and failed spawn attempts",
			},
			nil,
		)

		pending = prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: PendingGaugeName,
				Help: "the count of spawned tasks not yet consumed by a join",
			},
			nil,
		)
	)

	for _, c := range []prometheus.Collector{spawned, failures, pending} {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}

	return &Metrics{
		Spawned:  gokitprometheus.NewCounter(spawned),
		Failures: gokitprometheus.NewCounter(failures),
		Pending:  gokitprometheus.NewGauge(pending),
	}, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus instrumentation of the server core.
package metrics

import (
	"github.com/MKhiriev/go-remote-service/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "remote_service"

// Metrics is the set of collectors updated by the server core and host.
type Metrics struct {
	Ticks          prometheus.Counter
	CounterValue   prometheus.Gauge
	Deliveries     prometheus.Counter
	PrunedHandles  prometheus.Counter
	Callbacks      prometheus.Gauge
	Bindings       *prometheus.GaugeVec
	Lifecycle      *prometheus.CounterVec
	PriorityFlags  *prometheus.GaugeVec
	RPCRequests    *prometheus.CounterVec
	RPCDurationSec *prometheus.HistogramVec
}

// New registers all collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Ticks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Scheduler ticks fired",
		}),
		CounterValue: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "counter",
			Help:      "Current value of the server counter",
		}),
		Deliveries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "callback_deliveries_total",
			Help:      "Values accepted by callback handles",
		}),
		PrunedHandles: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "callback_pruned_total",
			Help:      "Callback handles removed after a failed delivery",
		}),
		Callbacks: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "callbacks",
			Help:      "Registered callback handles",
		}),
		Bindings: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bindings",
			Help:      "Live bindings per interface",
		}, []string{"interface"}),
		Lifecycle: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lifecycle_events_total",
			Help:      "Service lifecycle events",
		}, []string{"event"}),
		PriorityFlags: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "priority_flag",
			Help:      "1 when at least one live binding carries the policy flag",
		}, []string{"flag"}),
		RPCRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC calls by method and status code",
		}, []string{"method", "code"}),
		RPCDurationSec: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "Unary RPC duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// NewNop returns collectors registered on a private registry, for tests and
// for processes that do not export metrics.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

// SetPriority publishes one gauge per policy flag.
func (m *Metrics) SetPriority(flags models.PolicyFlag) {
	for _, f := range models.AllPolicyFlags() {
		v := 0.0
		if flags.Has(f) {
			v = 1
		}
		m.PriorityFlags.WithLabelValues(f.String()).Set(v)
	}
}

// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts conversions performed by a Store.
type Metrics struct {
	Binds            *prometheus.CounterVec
	Extracts         *prometheus.CounterVec
	ConversionErrors *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg when reg is
// non-nil. Registering twice on the same registry reuses the existing
// collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	labels := []string{"type", "dialect"}
	m := &Metrics{
		Binds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "typemap_binds_total",
			Help: "Values bound as statement parameters.",
		}, labels),
		Extracts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "typemap_extracts_total",
			Help: "Values extracted from result columns.",
		}, labels),
		ConversionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "typemap_conversion_errors_total",
			Help: "Bind or extract calls that failed.",
		}, labels),
	}
	if reg == nil {
		return m
	}
	m.Binds = register(reg, m.Binds)
	m.Extracts = register(reg, m.Extracts)
	m.ConversionErrors = register(reg, m.ConversionErrors)
	return m
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		dbLogf("db: metrics registration failed: %v", err)
	}
	return c
}

func (m *Metrics) bind(typ, dialect string, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.ConversionErrors.WithLabelValues(typ, dialect).Inc()
		return
	}
	m.Binds.WithLabelValues(typ, dialect).Inc()
}

func (m *Metrics) extract(typ, dialect string, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.ConversionErrors.WithLabelValues(typ, dialect).Inc()
		return
	}
	m.Extracts.WithLabelValues(typ, dialect).Inc()
}

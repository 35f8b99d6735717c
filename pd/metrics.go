// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// run metrics; exported by the monitor through the default registry
var (
	metricSteps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gopd_steps_total",
		Help: "Total time steps completed",
	})

	metricBroken = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gopd_broken_bonds_total",
		Help: "Total bonds broken by stretch",
	})

	metricTime = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gopd_time",
		Help: "Current simulation time",
	})

	metricDt = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gopd_dt",
		Help: "Time step used in the last iteration",
	})

	metricStepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gopd_step_duration_seconds",
		Help:    "Wall time spent in one time step",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
	})
)

package nictag

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	configDiagnosticsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nictag_config_diagnostics_total",
			Help: "Total number of config lines or values skipped while collecting nic tags",
		},
		[]string{"kind"}, // malformed-line, line-too-long, malformed-mac
	)
)

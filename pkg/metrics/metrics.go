package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the auth core
type Metrics struct {
	// JWT generation metrics
	TokenRequestsTotal      *prometheus.CounterVec
	TokenGenerationDuration prometheus.Histogram

	// Signature generation metrics
	SignatureRequestsTotal      *prometheus.CounterVec
	SignatureGenerationDuration *prometheus.HistogramVec

	// Key materialization metrics
	KeyMaterializationsTotal *prometheus.CounterVec
}

// Config holds configuration for metrics
type Config struct {
	// Namespace for metrics (default: "wavelink_auth")
	Namespace string

	// Registry to use (default: prometheus.DefaultRegisterer)
	Registry prometheus.Registerer
}

// DefaultConfig returns default metrics configuration
func DefaultConfig() Config {
	return Config{
		Namespace: "wavelink_auth",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// New creates and registers all Prometheus metrics
func New(config Config) *Metrics {
	if config.Namespace == "" {
		config.Namespace = "wavelink_auth"
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		TokenRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: config.Namespace,
				Name:      "token_requests_total",
				Help:      "Total number of JWT generation requests",
			},
			[]string{"status"},
		),

		TokenGenerationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: config.Namespace,
				Name:      "token_generation_duration_seconds",
				Help:      "JWT generation duration in seconds",
				Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
		),

		SignatureRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: config.Namespace,
				Name:      "signature_requests_total",
				Help:      "Total number of signature generation requests",
			},
			[]string{"method", "status"},
		),

		SignatureGenerationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: config.Namespace,
				Name:      "signature_generation_duration_seconds",
				Help:      "Signature generation duration in seconds",
				Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025},
			},
			[]string{"method"},
		),

		KeyMaterializationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: config.Namespace,
				Name:      "key_materializations_total",
				Help:      "Total number of private key materializations by source form",
			},
			[]string{"source"},
		),
	}
}

// RecordTokenGeneration records a JWT generation attempt
func (m *Metrics) RecordTokenGeneration(err error, duration time.Duration) {
	if m == nil {
		return
	}
	m.TokenRequestsTotal.WithLabelValues(statusLabel(err)).Inc()
	if err == nil {
		m.TokenGenerationDuration.Observe(duration.Seconds())
	}
}

// RecordSignatureGeneration records a signature generation attempt
func (m *Metrics) RecordSignatureGeneration(method string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "default"
	}
	m.SignatureRequestsTotal.WithLabelValues(method, statusLabel(err)).Inc()
	if err == nil {
		m.SignatureGenerationDuration.WithLabelValues(method).Observe(duration.Seconds())
	}
}

// RecordKeyMaterialization records a private key materialization.
// Source is one of "file", "literal", "bytes".
func (m *Metrics) RecordKeyMaterialization(source string) {
	if m == nil {
		return
	}
	m.KeyMaterializationsTotal.WithLabelValues(source).Inc()
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(Config{Namespace: "test", Registry: registry})

	require.NotNil(t, m)
	assert.NotNil(t, m.TokenRequestsTotal)
	assert.NotNil(t, m.TokenGenerationDuration)
	assert.NotNil(t, m.SignatureRequestsTotal)
	assert.NotNil(t, m.SignatureGenerationDuration)
	assert.NotNil(t, m.KeyMaterializationsTotal)
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "wavelink_auth", config.Namespace)
	assert.NotNil(t, config.Registry)
}

func TestRecordTokenGeneration(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(Config{Namespace: "test", Registry: registry})

	m.RecordTokenGeneration(nil, 2*time.Millisecond)
	m.RecordTokenGeneration(nil, 3*time.Millisecond)
	m.RecordTokenGeneration(assert.AnError, 0)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.TokenRequestsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.TokenRequestsTotal.WithLabelValues("error")))

	metricFamilies, err := registry.Gather()
	require.NoError(t, err)

	found := false
	for _, mf := range metricFamilies {
		if strings.Contains(mf.GetName(), "token_generation_duration_seconds") {
			found = true
			// failed generations are not observed
			assert.Equal(t, uint64(2), mf.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}
	assert.True(t, found, "token_generation_duration_seconds metric not found")
}

func TestRecordSignatureGeneration(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(Config{Namespace: "test", Registry: registry})

	m.RecordSignatureGeneration("sha256", nil, time.Millisecond)
	m.RecordSignatureGeneration("", nil, time.Millisecond)
	m.RecordSignatureGeneration("md5", assert.AnError, 0)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.SignatureRequestsTotal.WithLabelValues("sha256", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SignatureRequestsTotal.WithLabelValues("default", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SignatureRequestsTotal.WithLabelValues("md5", "error")))
}

func TestRecordKeyMaterialization(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(Config{Namespace: "test", Registry: registry})

	m.RecordKeyMaterialization("file")
	m.RecordKeyMaterialization("file")
	m.RecordKeyMaterialization("literal")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.KeyMaterializationsTotal.WithLabelValues("file")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.KeyMaterializationsTotal.WithLabelValues("literal")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.RecordTokenGeneration(nil, time.Millisecond)
	m.RecordSignatureGeneration("sha1", nil, time.Millisecond)
	m.RecordKeyMaterialization("bytes")
}

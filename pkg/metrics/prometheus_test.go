package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("salon", reg)

	m.Transitions.WithLabelValues("Agendada", "Confirmada").Inc()
	m.SalesConverted.Inc()
	m.LifecycleRejections.WithLabelValues("already_paid").Add(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("Agendada", "Confirmada")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SalesConverted))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.LifecycleRejections.WithLabelValues("already_paid")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["salon_service_detail_transitions_total"])
	assert.True(t, names["salon_sales_converted_total"])
}

func TestNewMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics("salon", reg)
	assert.Panics(t, func() { NewMetrics("salon", reg) })
}

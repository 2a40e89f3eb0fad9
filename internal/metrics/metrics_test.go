package metrics

import (
	"testing"

	"github.com/civiclink/backend/internal/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveFieldUpdates([]string{"status"})
		m.ObserveComment()
		m.RecordStats(models.DashboardStats{})
	})
	assert.Nil(t, m.Registry())
}

func TestCounters(t *testing.T) {
	m := New()

	m.ObserveFieldUpdates([]string{"status", "priority", "status"})
	m.ObserveComment()
	m.ObserveComment()
	m.RecordStats(models.DashboardStats{OpenComplaints: 2, InProgressComplaints: 1, ResolvedComplaints: 1})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Mutations.WithLabelValues("status")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mutations.WithLabelValues("priority")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Comments))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ComplaintsByStatus.WithLabelValues("open")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ComplaintsByStatus.WithLabelValues("resolved")))
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.ObserveComment()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Comments))
}

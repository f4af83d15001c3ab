package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPurchaseCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.PurchaseCreated(2, 15)
	m.PurchaseCreated(1, 5)
	m.PurchaseFailed("BUSINESS_RULE")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.purchasesCreated))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.purchaseLines))
	assert.Equal(t, 20.0, testutil.ToFloat64(m.stockIncrements))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.purchasesFailed.WithLabelValues("BUSINESS_RULE")))
}

func TestObserveHTTP(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveHTTP("GET", "GET /api/supplier", 200, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "GET /api/supplier", "200")))
}

func TestNew_ReusesCollectorsOnSameRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := New(reg)
	second := New(reg)

	first.PurchaseCreated(1, 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(second.purchasesCreated))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.PurchaseCreated(1, 1)
		m.PurchaseFailed("x")
		m.ObserveHTTP("GET", "/", 200, time.Millisecond)
	})
}

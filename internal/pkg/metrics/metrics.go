package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics reúne os coletores Prometheus do serviço.
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	purchasesCreated prometheus.Counter
	purchasesFailed  *prometheus.CounterVec
	purchaseLines    prometheus.Counter
	stockIncrements  prometheus.Counter
}

// New registra os coletores em registerer (DefaultRegisterer quando nil).
// Registrar duas vezes no mesmo registry reaproveita os coletores existentes.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		httpRequests: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "gosupply_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "gosupply_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		purchasesCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "gosupply_purchases_created_total",
			Help: "Total number of purchases committed",
		}),
		purchasesFailed: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "gosupply_purchases_failed_total",
			Help: "Total number of purchase creations rolled back or rejected, by error category",
		}, []string{"category"}),
		purchaseLines: registerCounter(registerer, prometheus.CounterOpts{
			Name: "gosupply_purchase_lines_total",
			Help: "Total number of purchase detail lines committed",
		}),
		stockIncrements: registerCounter(registerer, prometheus.CounterOpts{
			Name: "gosupply_stock_units_received_total",
			Help: "Total number of stock units added by committed purchases",
		}),
	}
}

// ObserveHTTP registra uma requisição HTTP concluída.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, fmt.Sprint(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// PurchaseCreated registra uma compra confirmada com suas linhas e unidades.
func (m *Metrics) PurchaseCreated(lines int, units int64) {
	if m == nil {
		return
	}
	m.purchasesCreated.Inc()
	m.purchaseLines.Add(float64(lines))
	m.stockIncrements.Add(float64(units))
}

// PurchaseFailed registra uma compra rejeitada ou desfeita.
func (m *Metrics) PurchaseFailed(category string) {
	if m == nil {
		return
	}
	m.purchasesFailed.WithLabelValues(category).Inc()
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

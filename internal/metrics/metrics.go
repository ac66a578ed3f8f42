package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	OrdersAdmitted  prometheus.Counter
	OrdersRejected  prometheus.Counter
	Resets          prometheus.Counter
	PurchaseLatency prometheus.Histogram
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	admitted := prometheus.NewCounter(prometheus.CounterOpts{Name: "flashsale_orders_admitted_total"})
	rejected := prometheus.NewCounter(prometheus.CounterOpts{Name: "flashsale_orders_rejected_total"})
	resets := prometheus.NewCounter(prometheus.CounterOpts{Name: "flashsale_resets_total"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "flashsale_purchase_latency_seconds",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(admitted, rejected, resets, latency)
	return &Registry{
		reg:             r,
		OrdersAdmitted:  admitted,
		OrdersRejected:  rejected,
		Resets:          resets,
		PurchaseLatency: latency,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

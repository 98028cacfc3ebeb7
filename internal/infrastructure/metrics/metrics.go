// Package metrics exposes Prometheus counters for the blog cache and the
// HTTP surface. Scraped via the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	listHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkwell_blog_list_cache_hits_total",
		Help: "Cache hits on the blog list endpoint.",
	})
	listMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkwell_blog_list_cache_misses_total",
		Help: "Cache misses on the blog list endpoint.",
	})
	detailHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkwell_blog_detail_cache_hits_total",
		Help: "Cache hits on the blog detail endpoint.",
	})
	detailMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkwell_blog_detail_cache_misses_total",
		Help: "Cache misses on the blog detail endpoint.",
	})
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_http_requests_total",
		Help: "HTTP requests by method and status.",
	}, []string{"method", "status"})
)

func IncListHit()    { listHits.Inc() }
func IncListMiss()   { listMisses.Inc() }
func IncDetailHit()  { detailHits.Inc() }
func IncDetailMiss() { detailMisses.Inc() }

// IncRequest records one handled HTTP request.
func IncRequest(method, status string) {
	requestsTotal.WithLabelValues(method, status).Inc()
}

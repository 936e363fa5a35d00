package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lockdownmap_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lockdownmap_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"method", "route"})
	MapBuildsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lockdownmap_map_builds_total",
		Help: "Total number of enriched map builds by result",
	}, []string{"result"})
	RegionsByStatus = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "lockdownmap_regions_by_status",
		Help: "Number of map regions per lockdown status in the last build",
	}, []string{"status"})
	LockdownCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lockdownmap_lockdown_cache_hits_total",
		Help: "Total lockdown lookup cache hits",
	})
	LockdownCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lockdownmap_lockdown_cache_misses_total",
		Help: "Total lockdown lookup cache misses",
	})
	WebhookDeliveriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lockdownmap_webhook_deliveries_total",
		Help: "Total webhook deliveries by result",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(MapBuildsTotal)
	prometheus.MustRegister(RegionsByStatus)
	prometheus.MustRegister(LockdownCacheHitsTotal)
	prometheus.MustRegister(LockdownCacheMissesTotal)
	prometheus.MustRegister(WebhookDeliveriesTotal)
}

// Handler отдаёт зарегистрированные метрики для Prometheus
func Handler() http.Handler { return promhttp.Handler() }

// GinMiddleware считает запросы и их длительность по шаблону маршрута
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDurationMs.WithLabelValues(c.Request.Method, route).Observe(float64(time.Since(start).Milliseconds()))
	}
}

// Package metrics exposes Prometheus instrumentation for query executions and the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonathan/portfolio-explorer/internal/query"
)

const namespace = "portfolio"

// Collector holds every metric of the service. It implements query.Observer.
type Collector struct {
	gatherer prometheus.Gatherer

	queriesTotal      *prometheus.CounterVec
	queryErrorsTotal  *prometheus.CounterVec
	fieldsTotal       *prometheus.CounterVec
	queryDuration     *prometheus.HistogramVec
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	rateLimitRejected *prometheus.CounterVec
}

// New registers the collector's metrics with reg. A nil reg uses a fresh registry.
func New(reg *prometheus.Registry) *Collector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Collector{
		gatherer: reg,

		queriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Total query executions by surface and mode",
		}, []string{"surface", "mode"}),

		queryErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_errors_total",
			Help:      "Total queries rejected by the parser, by error kind",
		}, []string{"surface", "kind"}),

		fieldsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fields_total",
			Help:      "Total requested fields by classification",
		}, []string{"classification"}),

		queryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Query execution duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 12), // 10us to ~20ms
		}, []string{"surface"}),

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by route and status code",
		}, []string{"route", "code"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),

		rateLimitRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_rejections_total",
			Help:      "Total requests rejected by the rate limiter, by endpoint tier",
		}, []string{"tier"}),
	}
}

// ObserveQuery records one execution.
func (c *Collector) ObserveQuery(surface query.Surface, md query.Metadata, failure *query.ErrorDescriptor, elapsed time.Duration) {
	c.queryDuration.WithLabelValues(string(surface)).Observe(elapsed.Seconds())

	if failure != nil {
		c.queryErrorsTotal.WithLabelValues(string(surface), string(failure.Kind)).Inc()
		c.queriesTotal.WithLabelValues(string(surface), string(query.ModeError)).Inc()
		return
	}

	c.queriesTotal.WithLabelValues(string(surface), string(md.Mode)).Inc()
	c.fieldsTotal.WithLabelValues("normal").Add(float64(md.ValidFields))
	c.fieldsTotal.WithLabelValues("hidden").Add(float64(md.HiddenFields))
	c.fieldsTotal.WithLabelValues("invalid").Add(float64(md.InvalidFields))
}

// ObserveRequest records one HTTP request.
func (c *Collector) ObserveRequest(route string, code int, elapsed time.Duration) {
	c.requestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
	c.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// RateLimited records a rejected request.
func (c *Collector) RateLimited(tier string) {
	c.rateLimitRejected.WithLabelValues(tier).Inc()
}

// Handler serves the registered metrics in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

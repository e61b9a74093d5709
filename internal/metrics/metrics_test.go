package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
	"github.com/jonathan/portfolio-explorer/internal/query"
)

func TestCollector_ObservesEngine(t *testing.T) {
	c := New(prometheus.NewRegistry())
	engine := query.NewEngine(catalog.Builtin(), query.WithObserver(c))

	engine.Execute("{ about { name nickname foo } }")
	engine.ExecuteTerminal("name python")
	engine.Execute("{ bogus { name } }")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.queriesTotal.WithLabelValues("graphql", "category")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.queriesTotal.WithLabelValues("terminal", "freestyle")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.queriesTotal.WithLabelValues("graphql", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.queryErrorsTotal.WithLabelValues("graphql", "unknown_category")))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.fieldsTotal.WithLabelValues("normal")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.fieldsTotal.WithLabelValues("hidden")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.fieldsTotal.WithLabelValues("invalid")))

	assert.Equal(t, 2, testutil.CollectAndCount(c.queryDuration))
}

func TestCollector_Requests(t *testing.T) {
	c := New(nil)

	c.ObserveRequest("/query", http.StatusOK, 3*time.Millisecond)
	c.ObserveRequest("/query", http.StatusBadRequest, time.Millisecond)
	c.RateLimited("query")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestsTotal.WithLabelValues("/query", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestsTotal.WithLabelValues("/query", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.rateLimitRejected.WithLabelValues("query")))
}

func TestCollector_Handler(t *testing.T) {
	c := New(nil)
	c.RateLimited("default")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `portfolio_rate_limit_rejections_total{tier="default"} 1`))
}

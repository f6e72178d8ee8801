package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_observesPathAndCode(t *testing.T) {
	before := testutil.CollectAndCount(HistogramResponseTime)
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), "/teapot")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.CollectAndCount(HistogramResponseTime))
	assert.Equal(t, float64(0), testutil.ToFloat64(InFlightRequests))
}

func TestMiddleware_unknownPaths_shareOneSeries(t *testing.T) {
	handler := Middleware(http.NotFoundHandler(), "/now", "/calc")
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/first-unknown", nil))
	before := testutil.CollectAndCount(HistogramResponseTime)
	beforeOther := histogramCount(t, "other", "404")

	for _, path := range []string{"/second-unknown", "/third", "/a/b/c"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, before, testutil.CollectAndCount(HistogramResponseTime))
	assert.Equal(t, beforeOther+3, histogramCount(t, "other", "404"))
}

// histogramCount Количество наблюдений в гистограмме с заданными метками.
func histogramCount(t *testing.T, labels ...string) uint64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, HistogramResponseTime.WithLabelValues(labels...).(prometheus.Metric).Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func TestHandler_exposesMetrics(t *testing.T) {
	Middleware(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "datecalc_http_histogram_response_time_seconds"))
	assert.True(t, strings.Contains(rec.Body.String(), `path="other"`))
	assert.False(t, strings.Contains(rec.Body.String(), `path="/missing"`))
}

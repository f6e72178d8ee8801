package tracing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_startsSpanInRequestContext(t *testing.T) {
	tracer := mocktracer.New()
	previous := opentracing.GlobalTracer()
	opentracing.SetGlobalTracer(tracer)
	t.Cleanup(func() { opentracing.SetGlobalTracer(previous) })

	var inHandler opentracing.Span
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inHandler = opentracing.SpanFromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/calc?ops=toNoon", nil))

	spans := tracer.FinishedSpans()
	require.Len(t, spans, 1)
	assert.Same(t, spans[0], inHandler)
	assert.Equal(t, "/calc", spans[0].OperationName)
	assert.Equal(t, "GET", spans[0].Tag("http.method"))
}

func TestMiddleware_continuesIncomingTrace(t *testing.T) {
	tracer := mocktracer.New()
	previous := opentracing.GlobalTracer()
	opentracing.SetGlobalTracer(tracer)
	t.Cleanup(func() { opentracing.SetGlobalTracer(previous) })

	parent := tracer.StartSpan("client")
	req := httptest.NewRequest(http.MethodGet, "/now", nil)
	require.NoError(t, tracer.Inject(parent.Context(), opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(req.Header)))

	Middleware(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), req)

	spans := tracer.FinishedSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, parent.Context().(mocktracer.MockSpanContext).SpanID, spans[0].ParentID)
}

func TestInit(t *testing.T) {
	previous := opentracing.GlobalTracer()
	t.Cleanup(func() { opentracing.SetGlobalTracer(previous) })

	closer, err := Init("datecalc-test")

	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

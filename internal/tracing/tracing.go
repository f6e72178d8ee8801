package tracing

import (
	"io"
	"net/http"

	"github.com/ellavs/extdatetime/internal/logger"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	"github.com/uber/jaeger-client-go/config"
)

// Init Инициализация глобального трейсера Jaeger. Closer нужно закрыть при завершении приложения.
func Init(serviceName string) (io.Closer, error) {
	cfg := config.Configuration{
		ServiceName: serviceName,
		Sampler: &config.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
	}

	closer, err := cfg.InitGlobalTracer(serviceName)
	if err != nil {
		return nil, errors.Wrap(err, "init jaeger tracer")
	}
	return closer, nil
}

// Middleware Функция трейсинга HTTP запросов. Контекст входящего запроса
// извлекается из заголовков, если клиент его передал.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tracer := opentracing.GlobalTracer()
		var opts []opentracing.StartSpanOption
		if parent, err := tracer.Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(r.Header)); err == nil {
			opts = append(opts, ext.RPCServerOption(parent))
		}

		span := tracer.StartSpan(r.URL.Path, opts...)
		defer span.Finish()
		if spanContext, ok := span.Context().(jaeger.SpanContext); ok {
			logger.Debug("start span trace", "traceId", spanContext.TraceID().String())
		}
		ext.HTTPMethod.Set(span, r.Method)
		ext.HTTPUrl.Set(span, r.URL.String())

		// Выполнение обработки запроса.
		next.ServeHTTP(w, r.WithContext(opentracing.ContextWithSpan(r.Context(), span)))

		ext.SpanKindRPCServer.Set(span)
	})
}

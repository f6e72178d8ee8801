package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики.
var (
	InFlightRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "datecalc",
		Subsystem: "http",
		Name:      "in_flight_requests", // Количество запросов в обработке.
	})
	SummaryResponseTime = promauto.NewSummary(prometheus.SummaryOpts{
		Namespace: "datecalc",
		Subsystem: "http",
		Name:      "summary_response_time_seconds", // Время обработки запросов.
		Objectives: map[float64]float64{
			0.5:  0.1,
			0.9:  0.01,
			0.99: 0.001,
		},
	})
	HistogramResponseTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "datecalc",
			Subsystem: "http",
			Name:      "histogram_response_time_seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"path", "code"},
	)
)

// statusRecorder Запоминает код ответа для метки метрики.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Handler Отдача метрик в формате Prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}

// otherPath Метка для путей, не переданных в Middleware (в том числе 404).
const otherPath = "other"

// Middleware Функция сбора метрик. paths - известные пути обработчиков, остальные
// запросы попадают в метрики с меткой "other", чтобы не плодить временные ряды.
func Middleware(next http.Handler, paths ...string) http.Handler {
	known := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		known[p] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		InFlightRequests.Inc()
		defer InFlightRequests.Dec()

		// Сохранение времени начала обработки запроса.
		startTime := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		// Расчет продолжительности обработки запроса.
		duration := time.Since(startTime)

		SummaryResponseTime.Observe(duration.Seconds())
		path := r.URL.Path
		if _, ok := known[path]; !ok {
			path = otherPath
		}
		HistogramResponseTime.
			WithLabelValues(path, strconv.Itoa(rec.status)).
			Observe(duration.Seconds())
	})
}

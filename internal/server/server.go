// Package server HTTP сервис вычислений над датами.
package server

//go:generate mockgen -source=server.go -destination=../mocks/server/server_mocks.go -package=mock_server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	extdatetime "github.com/ellavs/extdatetime"
	"github.com/ellavs/extdatetime/internal/calc"
	"github.com/ellavs/extdatetime/internal/logger"
	"github.com/ellavs/extdatetime/internal/metrics"
	"github.com/ellavs/extdatetime/internal/tracing"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Calculator Выполнение цепочки операций над датой.
type Calculator interface {
	Apply(ctx context.Context, m extdatetime.Moment, ops []calc.Op, mutable bool) (calc.Result, error)
}

// LocationLoader Поиск часового пояса по имени.
type LocationLoader interface {
	Load(name string) (*time.Location, error)
}

// Options Параметры сервера.
type Options struct {
	OutputLayout   string // Шаблон вывода дат по умолчанию.
	MetricsEnabled bool   // Отдавать /metrics.
}

const (
	pathNow  = "/now"
	pathCalc = "/calc"
)

type Server struct {
	calculator Calculator
	locations  LocationLoader
	opts       Options
}

func New(calculator Calculator, locations LocationLoader, opts Options) *Server {
	if opts.OutputLayout == "" {
		opts.OutputLayout = extdatetime.LayoutMicro
	}
	return &Server{calculator: calculator, locations: locations, opts: opts}
}

// Routes Обработчики сервиса, обернутые в Middleware метрик и трейсинга.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(pathNow, s.handleNow)
	mux.HandleFunc(pathCalc, s.handleCalc)

	var handler http.Handler = mux
	handler = metrics.Middleware(handler, pathNow, pathCalc)
	handler = tracing.Middleware(handler)

	if !s.opts.MetricsEnabled {
		return handler
	}
	root := http.NewServeMux()
	root.Handle("/metrics", metrics.Handler())
	root.Handle("/", handler)
	return root
}

type nowResponse struct {
	Time      string `json:"time"`
	UnixMicro int64  `json:"unixMicro"`
}

type stepResponse struct {
	Op   string `json:"op"`
	Time string `json:"time"`
}

type calcResponse struct {
	Input  string         `json:"input"`
	Result string         `json:"result"`
	Mode   string         `json:"mode"`
	Steps  []stepResponse `json:"steps"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleNow GET /now?tz=Europe/Moscow - текущий момент.
func (s *Server) handleNow(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	loc, err := s.location(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	current, err := extdatetime.CurrentImmutable()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	current = current.SetLocation(loc)
	writeJSON(w, http.StatusOK, nowResponse{
		Time:      current.Format(layout(r, s.opts.OutputLayout)),
		UnixMicro: current.UnixMicro(),
	})
}

// handleCalc GET /calc?date=...&tz=...&ops=...&mode=mutable|immutable&layout=... - выполнение цепочки операций.
func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	query := r.URL.Query()
	loc, err := s.location(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	input, err := extdatetime.CreateImmutable(query.Get("date"), loc)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	ops, err := calc.Parse(query.Get("ops"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	mode := query.Get("mode")
	switch mode {
	case "":
		mode = "immutable"
	case "mutable", "immutable":
	default:
		writeError(w, http.StatusBadRequest, errors.Errorf("unknown mode %q", mode))
		return
	}

	res, err := s.calculator.Apply(r.Context(), input, ops, mode == "mutable")
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, calc.ErrUnknownOperation) || errors.Is(err, calc.ErrInvalidArgument) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	outLayout := layout(r, s.opts.OutputLayout)
	writeJSON(w, http.StatusOK, calcResponse{
		Input:  res.Input.Format(outLayout),
		Result: res.Result.Format(outLayout),
		Mode:   mode,
		Steps: lo.Map(res.Steps, func(step calc.Step, _ int) stepResponse {
			return stepResponse{Op: step.Op.String(), Time: step.Time.Format(outLayout)}
		}),
	})
}

// location Часовой пояс из параметра tz, без параметра - пояс по умолчанию.
func (s *Server) location(r *http.Request) (*time.Location, error) {
	name := r.URL.Query().Get("tz")
	if name == "" {
		return extdatetime.DefaultLocation(), nil
	}
	return s.locations.Load(name)
}

func layout(r *http.Request, fallback string) string {
	if l := r.URL.Query().Get("layout"); l != "" {
		return l
	}
	return fallback
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, http.StatusMethodNotAllowed, errors.Errorf("method %s not allowed", r.Method))
	return false
}

func writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error("Ошибка обработки запроса", "err", err)
	} else {
		logger.Debug("Некорректный запрос", "err", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Ошибка записи ответа", "err", err)
	}
}

// Listen Запуск HTTP сервера до отмены ctx, затем плавная остановка.
func Listen(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Старт HTTP сервера", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "listen and serve")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	logger.Info("HTTP сервер остановлен")
	return nil
}

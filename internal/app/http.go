package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MetricsServer отдаёт /healthz и /metrics для мониторинга
type MetricsServer struct {
	srv    *http.Server
	logger *zap.Logger
}

// NewMetricsServer создаёт HTTP сервер мониторинга на указанном адресе
func NewMetricsServer(addr string, logger *zap.Logger) *MetricsServer {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start запускает сервер в отдельной горутине
func (m *MetricsServer) Start() {
	go func() {
		m.logger.Info("Starting metrics server", zap.String("addr", m.srv.Addr))
		if err := m.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.logger.Error("Metrics server failed", zap.Error(err))
		}
	}()
}

// Stop останавливает сервер
func (m *MetricsServer) Stop(ctx context.Context) {
	if err := m.srv.Shutdown(ctx); err != nil {
		m.logger.Error("Metrics server shutdown failed", zap.Error(err))
	}
}

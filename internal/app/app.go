package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/config"
	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/middleware"
)

type application struct {
	logger *slog.Logger

	router  chi.Router
	httpSrv *http.Server
	closers []io.Closer
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics)
	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-User-Id", "X-User-Role"},
	}))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	httpSrv := &http.Server{
		Handler: router,
		Addr:    net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
	}

	return &application{
		logger:  logger,
		httpSrv: httpSrv,
		router:  router,
	}
}

type HttpHandler interface {
	Init(r chi.Router)
}

func (a *application) SetHttpHandlers(handlers ...HttpHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

// SetClosers registers resources flushed and released on shutdown.
func (a *application) SetClosers(closers ...io.Closer) {
	a.closers = append(a.closers, closers...)
}

func (a *application) Start(ctx context.Context) {
	go a.startServer()

	a.logger.Info("application started")
}

func (a *application) startServer() {
	a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
	if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error("failed to start http server", slog.Any("error", err))
		os.Exit(1)
	}
}

const gracefulShutdownTimeout = 5 * time.Second

func (a *application) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Shutdown(ctx); err != nil {
		a.logger.Error("failed to shutdown http server", slog.Any("error", err))
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Error("failed to close resource", slog.Any("error", err))
		}
	}

	a.logger.Info("application stopped")
}

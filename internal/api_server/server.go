package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/config"
	handlers "github.com/PratikS7412/Tower-Retrival-Time/internal/handlers/v1alpha1"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service"
	"github.com/PratikS7412/Tower-Retrival-Time/pkg/log"
	"github.com/PratikS7412/Tower-Retrival-Time/pkg/metrics"
	"github.com/PratikS7412/Tower-Retrival-Time/pkg/middleware"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg          *config.Config
	listener     net.Listener
	retrievalSrv *service.RetrievalService
	reportSrv    *service.ReportService
	metrics      *metrics.Middleware
}

// New returns a new instance of the retrieval planner API server.
func New(
	cfg *config.Config,
	listener net.Listener,
	retrievalSrv *service.RetrievalService,
	reportSrv *service.ReportService,
) *Server {
	return &Server{
		cfg:          cfg,
		listener:     listener,
		retrievalSrv: retrievalSrv,
		reportSrv:    reportSrv,
		metrics:      metrics.NewMiddleware("api_server"),
	}
}

// Router builds the chi router with the full middleware chain.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()

	router.Use(
		s.metrics.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins:   s.cfg.Service.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			ExposedHeaders:   []string{"Content-Disposition", "X-Request-Id"},
			AllowCredentials: false,
			MaxAge:           300,
		}),
		middleware.RequestID,
		log.ConditionalLogger(s.cfg.Log.Level, zap.L(), "api_server"),
		chiMiddleware.Recoverer,
	)

	h := handlers.NewServiceHandler(s.retrievalSrv, s.reportSrv, s.cfg.Service.AllowedOrigins)
	h.Routes(router)

	return router
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	s.metrics.MustRegisterDefault()
	srv := http.Server{Addr: s.cfg.Service.Address, Handler: s.Router()}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

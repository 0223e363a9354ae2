package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/eksdemo/greeting-service/internal/config"
	"github.com/eksdemo/greeting-service/internal/http/greeting"
	"github.com/eksdemo/greeting-service/internal/http/health"
	"github.com/eksdemo/greeting-service/internal/logging"
	"github.com/eksdemo/greeting-service/internal/metrics"
	appmiddleware "github.com/eksdemo/greeting-service/internal/middleware"
	"github.com/eksdemo/greeting-service/internal/respond"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

// addCBORContentType mirrors the JSON media type as application/cbor on every
// operation, matching what the negotiation layer actually serves.
func addCBORContentType(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}

func main() {
	defer func() {
		if err := logging.Sync(); err != nil {
			logging.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := logging.Err(); err != nil {
		logging.LogError(context.Background(), "logger init error", err)
	}

	cfg := config.Load()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	apiCfg := huma.DefaultConfig("Greeting Service API", Version)
	// The default schema-link transformer injects a $schema member into
	// every response body; the greeting record must stay a single field.
	apiCfg.CreateHooks = nil

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security(apiCfg.DocsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., an ingress
		// controller). Without one, clients can spoof their IP address.
		chimiddleware.RealIP,
		// RequestSize limits request body size to prevent memory exhaustion
		// from large payloads.
		chimiddleware.RequestSize(cfg.MaxBodyBytes),
		logging.RequestLogger(),
		logging.AccessLogger(),
		m.Instrument(),
		respond.Recoverer(),
	)

	// Huma negotiates Accept by exact match only; wildcards like */* and
	// unknown types such as text/plain get the default JSON format instead of
	// 406 (RFC 9110 section 12.4.1 permits serving a default representation).
	api := humachi.New(router, apiCfg)

	// Advertise CBOR alongside JSON in the OpenAPI document
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, addCBORContentType)

	// Register routes
	greeting.Register(api)
	router.Get("/health", health.Handler)
	router.Method(http.MethodGet, "/metrics", metrics.Handler(reg))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	listenErr := make(chan error, 1)
	go func() {
		logging.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.String("version", Version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		logging.LogFatal(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
	case <-stop:
		logging.LogInfo(context.Background(), "shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.LogError(ctx, "server shutdown error", err)
	}
	logging.LogInfo(context.Background(), "server exited")
}

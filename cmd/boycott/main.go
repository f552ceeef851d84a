package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"

	_ "github.com/tair/boycott-service/docs"
	"github.com/tair/boycott-service/internal/boycott"
	grpcDelivery "github.com/tair/boycott-service/internal/boycott/delivery/grpc"
	httpDelivery "github.com/tair/boycott-service/internal/boycott/delivery/http"
	"github.com/tair/boycott-service/internal/boycott/domain"
	"github.com/tair/boycott-service/kafka"
	"github.com/tair/boycott-service/pkg/config"
	"github.com/tair/boycott-service/pkg/database"
	"github.com/tair/boycott-service/pkg/logger"
	"github.com/tair/boycott-service/pkg/tracing"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting boycott service")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.Tracing)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}

	// Storage handle is created before the listener starts; a failed connect is logged, not fatal
	store := database.NewMongoStore(context.Background(), database.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})

	publisher, closePublisher := newPublisher(cfg.Kafka)

	metrics := httpDelivery.NewMetrics(prometheus.DefaultRegisterer)

	// Initialize handler with Wire DI
	handler, err := boycott.InitializeHTTPHandler(store, publisher, metrics)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	middlewareConfig := httpDelivery.DefaultMiddlewareConfig(metrics, cfg.RequestTimeout)
	httpServer := startHTTPServer(handler, middlewareConfig, cfg.HTTPPort)

	var grpcServer *grpc.Server
	if cfg.GRPCPort != "" {
		grpcServer = startGRPCServer(store, cfg.GRPCPort)
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	if err := closePublisher(); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to close Kafka publisher")
	}
	if err := store.Disconnect(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to disconnect from MongoDB")
	}
	if err := tracing.Shutdown(ctx, tp); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
	}

	logger.Logger.Info().Msg("Server stopped")
}

// newPublisher returns the Kafka publisher when brokers are configured and a
// no-op publisher otherwise. Activity events are best-effort, so a broker that
// cannot be reached at start only disables them.
func newPublisher(cfg config.KafkaConfig) (domain.EventPublisher, func() error) {
	noop := func() error { return nil }

	if len(cfg.Brokers) == 0 {
		logger.Logger.Info().Msg("KAFKA_BROKERS not set, activity events disabled")
		return domain.NoopPublisher{}, noop
	}

	publisher, err := kafka.NewPublisher(cfg.Brokers, cfg.Topic)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka unavailable, activity events disabled")
		return domain.NoopPublisher{}, noop
	}

	return publisher, publisher.Close
}

func startHTTPServer(handler *httpDelivery.BoycottHandler, middlewareConfig *httpDelivery.MiddlewareConfig, port string) *http.Server {
	router := mux.NewRouter()

	httpDelivery.RegisterMiddlewares(router, middlewareConfig)

	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	httpDelivery.RegisterSwaggerDocs(router, httpDelivery.SwaggerHandler())

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           httpDelivery.SetupCORS(middlewareConfig)(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", port).
			Str("metrics_endpoint", "/metrics").
			Str("swagger", "/swagger/index.html").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	return server
}

func startGRPCServer(store *database.MongoStore, port string) *grpc.Server {
	server := grpcDelivery.NewServer(store)

	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		logger.Logger.Fatal().Err(err).Str("port", port).Msg("Failed to listen for gRPC")
	}

	go func() {
		logger.Logger.Info().
			Str("port", port).
			Msg("gRPC health server started")

		if err := server.Serve(lis); err != nil {
			logger.Logger.Error().Err(err).Msg("gRPC server stopped")
		}
	}()

	return server
}

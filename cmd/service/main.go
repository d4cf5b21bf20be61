package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "relay/internal/app"
	"relay/internal/handlers/rest/courier_position_get"
	"relay/internal/handlers/rest/courier_position_post"
	"relay/internal/handlers/rest/delivery_chat_post"
	"relay/internal/handlers/rest/delivery_coordination_post"
	"relay/internal/handlers/rest/delivery_get"
	"relay/internal/handlers/rest/delivery_post"
	"relay/internal/handlers/rest/handover_confirm_post"
	"relay/internal/handlers/rest/healthcheck_head"
	"relay/internal/handlers/rest/ping_get"
	"relay/internal/handlers/rest/route_optimize_post"
	"relay/internal/handlers/rest/segment_accept_post"
	"relay/internal/handlers/rest/segment_proposal_post"
	"relay/internal/handlers/rest/segment_status_post"
	"relay/internal/handlers/rest/segments_available_get"
	wsevents "relay/internal/handlers/ws/events"
	"relay/internal/pkg/config"
	"relay/internal/pkg/dotenv"
	"relay/internal/pkg/grpcclient"
	metrics_system "relay/internal/pkg/metrics"
	"relay/internal/pkg/middlewares/graceful_shutdown"
	"relay/internal/pkg/middlewares/metrics"
	"relay/internal/pkg/middlewares/rate_limiter"
	"relay/internal/pkg/middlewares/timeout"
	"relay/pkg/logger"
	"relay/pkg/logger/zap_adapter"
	"relay/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting relay application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // наследование от context.Background() - часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	storage, err := newStorage(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer storage.close()

	conn, err := grpcclient.NewConnClient(ctx, log, &cfg.Geocoder)
	if err != nil {
		return fmt.Errorf("gRPC client: %w", err)
	}
	defer func() {
		err := conn.Close()
		if err != nil {
			runLog.Error("failed to close gRPC connection",
				logger.NewField("error", err),
			)
		}
	}()

	producer, err := newProducer(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	if producer != nil {
		defer func() {
			if err := producer.Close(); err != nil {
				runLog.Error("failed to close Kafka producer", logger.NewField("error", err))
			}
		}()
	}

	businessApp, err := application.InitializeApplication(ctx, log, storage.Storage, conn, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// kafka: экспорт событий и приём позиций
	kafkaErr, err := startKafka(ongoingCtx, log, cfg, businessApp)
	if err != nil {
		return fmt.Errorf("kafka: %w", err)
	}
	// kafka

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server, storage.pingers...),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // при выключенном pprof канал nil и кейс не срабатывает
		return fmt.Errorf("pprof server: %w", err)
	case err := <-kafkaErr: // nil, если Kafka выключена
		return fmt.Errorf("kafka: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg config.HTTPServer,
	pingers ...healthcheck_head.Pinger,
) http.Handler {
	router := mux.NewRouter()

	// websocket живёт дольше request timeout, а обёртка metrics не умеет Hijack
	router.Handle("/ws",
		graceful_shutdown.Middleware(isShuttingDown, ongoingCtx)(wsevents.New(log, app.Hub)),
	).Methods("GET")

	api := router.PathPrefix("/").Subrouter()
	api.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	api.Use(timeout.Middleware(cfg.RequestTimeout))
	api.Use(metrics.Middleware(log))
	api.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	api.Handle("/metrics", promhttp.Handler())

	api.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pingers...)).Methods("HEAD")
	api.Handle("/ping", ping_get.New(log)).Methods("GET")

	api.Handle("/routes/optimize", route_optimize_post.New(log, app.ServiceRouting)).Methods("POST")

	api.Handle("/deliveries", delivery_post.New(log, app.ServiceMarketplace)).Methods("POST")
	api.Handle("/deliveries/{id}", delivery_get.New(log, app.ServiceMarketplace)).Methods("GET")
	api.Handle("/segments/available", segments_available_get.New(log, app.ServiceMarketplace)).Methods("GET")
	api.Handle("/segments/{id}/proposals", segment_proposal_post.New(log, app.ServiceMarketplace)).Methods("POST")
	api.Handle("/segments/{id}/accept", segment_accept_post.New(log, app.ServiceMarketplace)).Methods("POST")

	api.Handle("/segments/{id}/status", segment_status_post.New(log, app.ServiceStatus)).Methods("POST")
	api.Handle("/deliveries/{id}/coordination", delivery_coordination_post.New(log, app.ServiceHandoff)).Methods("POST")
	api.Handle("/deliveries/{id}/handover/confirm", handover_confirm_post.New(log, app.ServiceHandoff)).Methods("POST")

	api.Handle("/deliveries/{id}/chat", delivery_chat_post.New(log, app.ServiceChat)).Methods("POST")
	api.Handle("/couriers/{id}/position", courier_position_post.New(log, app.ServiceFleet)).Methods("POST")
	api.Handle("/couriers/{id}/position", courier_position_get.New(log, app.ServiceFleet)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}

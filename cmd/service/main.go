package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "bookstore/internal/app"
	"bookstore/internal/handlers/rest/author_get"
	"bookstore/internal/handlers/rest/author_post"
	"bookstore/internal/handlers/rest/authors_get"
	"bookstore/internal/handlers/rest/book_delete"
	"bookstore/internal/handlers/rest/book_get"
	"bookstore/internal/handlers/rest/book_post"
	"bookstore/internal/handlers/rest/book_put"
	"bookstore/internal/handlers/rest/books_get"
	"bookstore/internal/handlers/rest/checkout_post"
	"bookstore/internal/handlers/rest/healthcheck_head"
	"bookstore/internal/handlers/rest/ledger_resync_post"
	"bookstore/internal/handlers/rest/order_get"
	"bookstore/internal/handlers/rest/order_notifications_get"
	"bookstore/internal/handlers/rest/order_receipt_get"
	"bookstore/internal/handlers/rest/order_status_put"
	"bookstore/internal/handlers/rest/orders_get"
	"bookstore/internal/handlers/rest/ping_get"
	"bookstore/internal/pkg/config"
	"bookstore/internal/pkg/credentials"
	"bookstore/internal/pkg/dotenv"
	"bookstore/internal/pkg/grpchealth"
	metrics_system "bookstore/internal/pkg/metrics"
	"bookstore/internal/pkg/middlewares/graceful_shutdown"
	"bookstore/internal/pkg/middlewares/metrics"
	"bookstore/internal/pkg/middlewares/rate_limiter"
	"bookstore/internal/pkg/middlewares/timeout"
	"bookstore/internal/pkg/postgres"
	"bookstore/internal/receipt"
	"bookstore/pkg/logger"
	"bookstore/pkg/logger/zap_adapter"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter("bookstore-api")
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

	mainLog.Info("starting bookstore application")

	envFiles, err := dotenv.Load()
	if err != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		return
	}
	if len(envFiles) == 0 {
		mainLog.Warn("No .env file found, using system environment variables")
	} else {
		mainLog.Info("environment loaded", logger.NewField("files", envFiles))
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	if err := zapLogger.SetLevel(cfg.Log.Level); err != nil {
		mainLog.Error("log level", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
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

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	// учетные данные Google читаются один раз и живут только в памяти
	var googleCreds *credentials.Google
	if cfg.Sheets.Enabled() {
		googleCreds, err = credentials.LoadGoogle(&cfg.Sheets)
		if err != nil {
			return fmt.Errorf("google credentials: %w", err)
		}
	}

	businessApp, cleanup, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, googleCreds, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	// нотификатор дожидается поставленных в очередь заказов
	defer cleanup()

	metrics_system.StartSystemMetricsCollector(ctx, pool)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg.Server),
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

	// grpc health сервер
	var healthServer *grpchealth.Server
	var healthServerErr chan error
	if cfg.Server.GRPCHealthPort != "" {
		healthServer = grpchealth.New(log, cfg.Server.GRPCHealthPort)
		healthServer.SetServing(true)

		healthServerErr = make(chan error, 1)
		go func() {
			defer close(healthServerErr)
			if err := healthServer.Start(); err != nil {
				healthServerErr <- err
			}
		}()
	}
	// grpc health сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("grpc health server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	if healthServer != nil {
		healthServer.SetServing(false)
	}

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
	if healthServer != nil {
		healthServer.Stop()
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

// клиенту предлагается повторить запрос после перезапуска инстанса
const retryAfterShutdown = 5 * time.Second

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	db healthcheck_head.Pinger,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx, retryAfterShutdown))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, rate_limiter.NewLimiter(cfg.RateLimiterQPS, cfg.RateLimiterBurst)))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log, app.NotificationChannels)).Methods("GET")

	router.Handle("/author", author_post.New(log, app.ServiceAuthor)).Methods("POST")
	router.Handle("/authors", authors_get.New(log, app.ServiceAuthor)).Methods("GET")
	router.Handle("/author/{id}", author_get.New(log, app.ServiceAuthor)).Methods("GET")

	router.Handle("/book", book_post.New(log, app.ServiceBook)).Methods("POST")
	router.Handle("/books", books_get.New(log, app.ServiceBook)).Methods("GET")
	router.Handle("/book/{id}", book_get.New(log, app.ServiceBook)).Methods("GET")
	router.Handle("/book/{id}", book_put.New(log, app.ServiceBook)).Methods("PUT")
	router.Handle("/book/{id}", book_delete.New(log, app.ServiceBook)).Methods("DELETE")
	router.Handle("/book/{id}/buy", checkout_post.New(log, app.ServiceCheckout)).Methods("POST")

	router.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/order/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/order/{id}/status", order_status_put.New(log, app.ServiceOrder)).Methods("PUT")
	router.Handle("/order/{id}/receipt", order_receipt_get.New(log, app.ServiceOrder, receipt.PDF{})).Methods("GET")
	router.Handle("/order/{id}/notifications", order_notifications_get.New(log, app.ServiceNotification)).Methods("GET")

	router.Handle("/ledger/resync", ledger_resync_post.New(log, app.ServiceLedger)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}

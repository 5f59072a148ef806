package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kashoe/chessclub-api/internal/application"
	appCatalog "github.com/kashoe/chessclub-api/internal/application/catalog"
	appContact "github.com/kashoe/chessclub-api/internal/application/contact"
	appEvents "github.com/kashoe/chessclub-api/internal/application/events"
	appLessons "github.com/kashoe/chessclub-api/internal/application/lessons"
	appNewsletter "github.com/kashoe/chessclub-api/internal/application/newsletter"
	appOrders "github.com/kashoe/chessclub-api/internal/application/orders"
	appPayment "github.com/kashoe/chessclub-api/internal/application/payment"
	"github.com/kashoe/chessclub-api/internal/config"
	"github.com/kashoe/chessclub-api/internal/infrastructure/docstore"
	"github.com/kashoe/chessclub-api/internal/infrastructure/id"
	"github.com/kashoe/chessclub-api/internal/infrastructure/memory"
	"github.com/kashoe/chessclub-api/internal/infrastructure/mpesa"
	"github.com/kashoe/chessclub-api/internal/infrastructure/observability/oteltrace"
	"github.com/kashoe/chessclub-api/internal/infrastructure/observability/prometrics"
	"github.com/kashoe/chessclub-api/internal/infrastructure/observability/telemetry"
	"github.com/kashoe/chessclub-api/internal/infrastructure/observability/zaplogger"
	"github.com/kashoe/chessclub-api/internal/observability"
	"github.com/kashoe/chessclub-api/internal/seed"
	httppresentation "github.com/kashoe/chessclub-api/internal/presentation/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chessclub-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	baseLogger, err := zaplogger.New(zaplogger.Options{Service: cfg.ServiceName, Env: cfg.Env, LogFile: cfg.LogFile})
	if err != nil {
		return err
	}
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger.Zap())
	systemLogger := baseLogger.With(observability.F("component", "system"))

	shutdownTracing, err := oteltrace.Setup(cfg.ServiceName, cfg.TraceExporter)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	counters, histograms := prometrics.Instruments(prometrics.New(reg, cfg.MetricsNamespace, ""))
	tel := telemetry.New(oteltrace.New(cfg.ServiceName), baseLogger, counters, histograms)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rawStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	systemLogger.Info("store_connected", observability.F("driver", cfg.StoreDriver), observability.F("db", cfg.DBName))
	store := docstore.Instrument(rawStore, tel)
	if err := docstore.EnsureIndexes(ctx, store); err != nil {
		_ = rawStore.Close(context.Background())
		return err
	}

	ids := id.NewUUIDGenerator()
	orderService := appOrders.NewService(docstore.NewOrderRepository(store, cfg.ListLimit), ids, application.SystemClock, tel)
	gateway := mpesa.NewGateway(baseLogger)

	catalogService := appCatalog.NewService(docstore.NewProductRepository(store, cfg.ListLimit), ids, application.SystemClock, tel)
	eventService := appEvents.NewService(docstore.NewEventRepository(store, cfg.ListLimit), ids, application.SystemClock, tel)
	if cfg.SeedSampleData {
		if _, err := seed.Run(ctx, catalogService, eventService, time.Now(), systemLogger); err != nil {
			_ = rawStore.Close(context.Background())
			return err
		}
	}

	handler := httppresentation.NewHandler(httppresentation.Services{
		Catalog:         catalogService,
		Events:          eventService,
		Lessons:         appLessons.NewService(docstore.NewLessonRepository(store, cfg.ListLimit), ids, application.SystemClock, tel),
		Orders:          orderService,
		Contact:         appContact.NewService(docstore.NewContactRepository(store, cfg.ListLimit), ids, application.SystemClock, tel),
		Newsletter:      appNewsletter.NewService(docstore.NewNewsletterRepository(store), ids, application.SystemClock, tel),
		PaymentInitiate: appPayment.NewInitiateUseCase(gateway, tel),
		PaymentCallback: appPayment.NewCallbackUseCase(gateway, orderService, tel),
	}, cfg.APIPrefix, baseLogger, tel)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.Handle("/", handler.Router())

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httppresentation.WithCORS(cfg.CORSOrigins, mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		systemLogger.Info("http_server_start",
			observability.F("addr", server.Addr),
			observability.F("prefix", cfg.APIPrefix),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			systemLogger.Error("http_server_error", observability.Err(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		systemLogger.Error("http_server_shutdown_error", observability.Err(err))
	} else {
		systemLogger.Info("http_server_stopped")
	}

	if err := rawStore.Close(shutdownCtx); err != nil {
		systemLogger.Error("store_close_error", observability.Err(err))
	} else {
		systemLogger.Info("store_closed")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		systemLogger.Error("tracer_shutdown_error", observability.Err(err))
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (docstore.Store, error) {
	if cfg.StoreDriver == config.DriverMemory {
		return memory.NewStore(), nil
	}
	return docstore.Connect(ctx, cfg.MongoURL, cfg.DBName, cfg.MongoConnectTimeout)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"budget-engine/internal/config"
	"budget-engine/internal/database"
	"budget-engine/internal/handlers"
	"budget-engine/internal/middleware"
	"budget-engine/internal/repositories"
	"budget-engine/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "budget-engine"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped gracefully")
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts)).With("service", serviceName)
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts)).With("service", serviceName)
}

func run(ctx context.Context, cfg *config.Config) error {
	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repos := services.BudgetRepositories{
		Budgets:      repositories.NewBudgetRepository(db.DB),
		Transactions: repositories.NewTransactionRepository(db.DB),
		Accounts:     repositories.NewAccountRepository(db.DB),
		Categories:   repositories.NewCategoryRepository(db.DB),
		Settings:     repositories.NewSettingsRepository(db.DB),
	}
	rateRepo := repositories.NewExchangeRateRepository(db.DB)

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	budgetLogger := services.NewBudgetLogger(slog.Default())

	resolver, err := services.NewTimePeriodResolver(cfg.Budget.StartDayOfMonth, time.Now)
	if err != nil {
		return err
	}

	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:     cfg.Rates.BreakerMaxFailures,
		ResetTimeout:    cfg.Rates.BreakerResetTimeout,
		HalfOpenMaxSucc: 1,
	})
	rateProvider := services.NewGuardedRateProvider(
		services.NewStoredRateProvider(rateRepo),
		breaker,
		cfg.Rates.LookupTimeout,
		budgetLogger,
		metrics,
	)
	currency := services.NewCurrencyService(rateProvider, metrics, budgetLogger)
	aggregator := services.NewSpendAggregator(services.NewBudgetFilter(), currency, cfg.Budget.ConversionConcurrency)
	rollup := services.NewBudgetRollupService(aggregator, budgetLogger, metrics)

	syncTrigger := newSyncTrigger(cfg)
	defer syncTrigger.Close()

	order := services.NewBudgetOrderService(repos.Budgets, syncTrigger, budgetLogger, metrics)
	budgetService := services.NewBudgetService(repos, resolver, rollup, order, budgetLogger, metrics, cfg.Budget.DefaultCurrency)
	rateService := services.NewExchangeRateService(rateRepo, metrics)

	generator := services.NewLedgerGenerator(0)
	if cfg.Database.SeedDemoData {
		if err := services.SeedDemoLedger(repos, generator, cfg.Budget.DefaultCurrency, time.Now()); err != nil {
			slog.Warn("failed to seed demo ledger", "error", err)
		}
	}

	h := handlers.Handlers{
		Health:        handlers.NewHealthCheckHandler(db.DB, serviceName),
		Budgets:       handlers.NewBudgetHandler(budgetService, resolver, time.Now),
		Periods:       handlers.NewPeriodHandler(resolver, time.Now),
		ExchangeRates: handlers.NewExchangeRateHandler(rateService),
	}
	if cfg.IsDevelopment() {
		h.Dev = handlers.NewDevHandler(repos, generator, cfg.Budget.DefaultCurrency, time.Now)
	}

	e := newServer(cfg, h)

	errCh := make(chan error, 1)
	go func() {
		address := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		slog.Info("starting budget engine", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newSyncTrigger(cfg *config.Config) services.SyncTriggerInterface {
	if !cfg.SyncEnabled() {
		return services.NewNoopSyncTrigger(slog.Default())
	}

	trigger, err := services.NewAMQPSyncTrigger(cfg.Sync.AMQPURL, cfg.Sync.Exchange, cfg.Sync.RoutingKey)
	if err != nil {
		slog.Warn("sync broker unavailable, budget changes stay local", "error", err)
		return services.NewNoopSyncTrigger(slog.Default())
	}
	return trigger
}

func newServer(cfg *config.Config, h handlers.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("correlation_id", services.CorrelationID(c.Request().Context())),
			)
			return nil
		},
	}))
	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimitConfig{
		RequestsPerSecond: float64(cfg.Security.RateLimitPerSecond),
		Burst:             cfg.Security.RateLimitBurst,
		Skipper:           middleware.SkipProbes,
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	handlers.RegisterRoutes(e, h)

	return e
}

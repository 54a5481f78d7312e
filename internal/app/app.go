package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fxwatch/internal/adapters/cache"
	"fxwatch/internal/adapters/httpclient"
	"fxwatch/internal/adapters/postgres"
	"fxwatch/internal/alerting"
	"fxwatch/internal/api"
	"fxwatch/internal/api/handler"
	"fxwatch/internal/auth"
	"fxwatch/internal/config"
	"fxwatch/internal/currency"
	"fxwatch/internal/history"
	"fxwatch/internal/ingest"
	"fxwatch/internal/news"
	"fxwatch/internal/platform/db"
	httpserver "fxwatch/internal/platform/http"
	"fxwatch/internal/watchlist"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	if appCfg.Auth.JWTSecret == "" {
		return errors.New("auth jwt secret is required")
	}

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, initial reads)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Load supported currencies codes
	supportedCodes, err := loadSupportedCodes(startupCtx, pool)
	if err != nil || len(supportedCodes) == 0 {
		if err == nil {
			err = errors.New("no supported currencies available")
		}
		logrus.WithError(err).Error("Failed to load supported currencies")
		return err
	}
	logrus.Info("✅ Supported currencies loaded")

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// External clients
	quoteClient := httpclient.NewExchangeRateClient(
		baseHTTPClient,
		strings.TrimSuffix(appCfg.QuoteAPI.BaseURL, "/"),
	)
	newsClient := httpclient.NewNewsDataClient(
		baseHTTPClient,
		strings.TrimSuffix(appCfg.NewsAPI.BaseURL, "/"),
		appCfg.NewsAPI.APIKey,
		time.Duration(appCfg.NewsAPI.TimeoutSeconds)*time.Second,
	)
	newsCache, err := cache.NewNewsCache(
		appCfg.NewsAPI.CacheMaxItems,
		time.Duration(appCfg.NewsAPI.CacheTTLSec)*time.Second,
	)
	if err != nil {
		return fmt.Errorf("failed to init news cache: %w", err)
	}

	// Repositories
	snapshotRepo := postgres.NewSnapshotRepository(pool)
	sampleRepo := postgres.NewSampleRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	watchlistRepo := postgres.NewWatchlistRepository(pool)

	// Services
	historySvc := history.NewService(sampleRepo, snapshotRepo)
	alertSvc := alerting.NewService(alertRepo)
	watchlistSvc := watchlist.NewService(watchlistRepo)
	newsSvc := news.NewService(newsClient, newsCache)
	ingestSvc := ingest.NewService(quoteClient, snapshotRepo, historySvc, alertSvc, watchlistRepo)
	codeValidator := currency.NewValidator(supportedCodes)
	authMW := auth.NewMiddleware(appCfg.Auth.JWTSecret)

	// Nightly retention sweep
	scheduler := history.NewScheduler(historySvc, appCfg.Retention.SweepCron)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	// Start scheduler tied to root context
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	apiHandler := handler.NewHandler(codeValidator, historySvc, ingestSvc, alertSvc, watchlistSvc, newsSvc)
	router := api.NewRouter(apiHandler, authMW)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// loadSupportedCodes loads supported currencies codes from DB
func loadSupportedCodes(ctx context.Context, pool *pgxpool.Pool) (map[string]struct{}, error) {
	rows, err := pool.Query(ctx, `select code from currencies`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := make(map[string]struct{})
	for rows.Next() {
		var c string
		if err = rows.Scan(&c); err != nil {
			return nil, err
		}
		m[c] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

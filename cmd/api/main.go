package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apihttp "github.com/leadsfynder/leadsfynder-api/internal/api/http"
	"github.com/leadsfynder/leadsfynder-api/internal/api/http/handlers"
	"github.com/leadsfynder/leadsfynder-api/internal/auth"
	"github.com/leadsfynder/leadsfynder-api/internal/config"
	"github.com/leadsfynder/leadsfynder-api/internal/events"
	"github.com/leadsfynder/leadsfynder-api/internal/identity"
	"github.com/leadsfynder/leadsfynder-api/internal/mail"
	"github.com/leadsfynder/leadsfynder-api/internal/observability"
	"github.com/leadsfynder/leadsfynder-api/internal/persistence"
	"github.com/leadsfynder/leadsfynder-api/internal/repository"
	"github.com/leadsfynder/leadsfynder-api/internal/service"
	"github.com/leadsfynder/leadsfynder-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	sentryEnabled := cfg.Sentry.DSN != ""
	if sentryEnabled {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.App.Env,
			Release:     cfg.App.Version,
		}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
			sentryEnabled = false
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("postgres connection failed", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}
	}

	cache := persistence.NewRedis(cfg.Redis, logger)
	defer cache.Close()
	if err := cache.Ping(ctx); err != nil {
		logger.Warn("redis unavailable, caching disabled at startup", zap.Error(err))
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	leadRepo := repository.NewLeadRepository(pool)
	emailRepo := repository.NewEmailCampaignRepository(pool)
	whatsappRepo := repository.NewWhatsAppCampaignRepository(pool)
	smtpRepo := repository.NewSMTPConfigRepository(pool)
	intentRepo := repository.NewSignupIntentRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		Identity:   identity.NewPostgresProvider(pool, cfg.Auth.BcryptCost),
		UserRepo:   userRepo,
		IntentRepo: intentRepo,
		Logger:     logger,
	})
	leadService := service.NewLeadService(leadRepo, dispatcher)
	campaignService := service.NewCampaignService(service.CampaignDependencies{
		EmailRepo:    emailRepo,
		WhatsAppRepo: whatsappRepo,
		SMTPRepo:     smtpRepo,
		Verifier:     mail.NewSMTPVerifier(),
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	analyticsService := service.NewAnalyticsService(service.AnalyticsDependencies{
		LeadRepo:     leadRepo,
		CampaignRepo: emailRepo,
		ActivityRepo: activityRepo,
		Cache:        cache,
		Logger:       logger,
	})

	recorder := service.NewActivityRecorder(dispatcher, activityRepo, logger)
	recorder.RegisterHandlers()

	worker.StartReconciliationWorker(ctx, authService, cfg.Signup, logger)

	if cfg.Metrics.Addr != "" {
		go observability.ServeMetrics(cfg.Metrics.Addr, logger)
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
	})
	apihttp.RegisterMiddlewares(app, logger, apihttp.MiddlewareConfig{
		RequestTimeout: cfg.App.RequestTimeout(),
		SentryEnabled:  sentryEnabled,
	})

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)
	apihttp.RegisterRoutes(app, apihttp.Handlers{
		Auth:      handlers.NewAuthHandler(authService, cfg.Signup),
		Leads:     handlers.NewLeadsHandler(leadService),
		Campaigns: handlers.NewCampaignsHandler(campaignService),
		Analytics: handlers.NewAnalyticsHandler(analyticsService),
		Health:    handlers.NewHealthHandler(pg, cache, cfg.Health, cfg.App.Version),
	}, authMiddleware)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()
	logger.Info("server started",
		zap.String("addr", cfg.App.Addr()),
		zap.String("env", cfg.App.Env),
		zap.String("version", cfg.App.Version),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	cancel()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

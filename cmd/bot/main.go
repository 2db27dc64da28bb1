package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/danielleeas/simple-tattooer-sub000/internal/app"
	"github.com/danielleeas/simple-tattooer-sub000/internal/availability"
	"github.com/danielleeas/simple-tattooer-sub000/internal/calendar"
	"github.com/danielleeas/simple-tattooer-sub000/internal/config"
	"github.com/danielleeas/simple-tattooer-sub000/internal/controller"
	"github.com/danielleeas/simple-tattooer-sub000/internal/controller/state"
	"github.com/danielleeas/simple-tattooer-sub000/internal/repository"
	"github.com/danielleeas/simple-tattooer-sub000/internal/service"
)

const serviceName = "tattoo-availability"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment, serviceName)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Service stopped with error", zap.Error(err))
	}
	logger.Info("Service stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("Starting availability service",
		zap.String("environment", cfg.Environment),
		zap.String("timezone", cfg.Location.String()),
		zap.Bool("strict_reads", cfg.Calendar.StrictReads))

	shutdownTracing, err := app.SetupTracing(ctx, app.TracingConfig{
		Enabled:      cfg.Tracing.Enabled,
		ServiceName:  serviceName,
		OTLPEndpoint: cfg.Tracing.Endpoint,
		SampleRatio:  cfg.Tracing.SampleRatio,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Tracing shutdown failed", zap.Error(err))
		}
	}()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}
	logger.Info("Connected to database")

	migrator, err := app.NewMigrator(pool, cfg.MigrationsDir, logger)
	if err != nil {
		return err
	}
	if err := migrator.Run(ctx); err != nil {
		migrator.Close()
		return err
	}
	migrator.Close()

	// Репозитории
	artistRepo := repository.NewArtistRepository(pool)
	eventRepo := repository.NewCalendarEventRepository(pool)
	overrideRepo := repository.NewOverrideRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)

	// Календарь и движок доступности
	reader := calendar.NewReader(eventRepo, overrideRepo, calendar.ReaderConfig{
		ReadTimeout:        cfg.Calendar.ReadTimeout,
		CacheSize:          cfg.Calendar.CacheSize,
		CacheTTL:           cfg.Calendar.CacheTTL,
		ResolveConcurrency: cfg.Calendar.ResolveConcurrency,
	}, logger)

	engine := availability.NewEngine(reader, projectRepo, logger,
		availability.WithLocation(cfg.Location),
		availability.WithStrictReads(cfg.Calendar.StrictReads),
		availability.WithReadTimeout(cfg.Calendar.ReadTimeout))

	// Сервисы
	availabilityService := service.NewAvailabilityService(artistRepo, engine, logger)
	bookingService := service.NewBookingService(artistRepo, engine, logger)

	scheduler := app.NewScheduler(availabilityService, cfg.WarmUp.Weeks, cfg.WarmUp.Interval, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	if cfg.TelegramToken == "" {
		logger.Warn("TELEGRAM_TOKEN is not set, running background tasks only")
		<-ctx.Done()
		return nil
	}

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		return err
	}

	botController := controller.NewBotController(
		b,
		availabilityService,
		bookingService,
		state.NewManager(time.Hour),
		logger,
	)
	if err := botController.RegisterHandlers(ctx); err != nil {
		return err
	}

	// Блокируется до сигнала
	return botController.Start(ctx)
}

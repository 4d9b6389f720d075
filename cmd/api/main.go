package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/bachelorhub-backend/api/routes"
	"github.com/angelmondragon/bachelorhub-backend/internal/auth"
	"github.com/angelmondragon/bachelorhub-backend/internal/housing"
	"github.com/angelmondragon/bachelorhub-backend/internal/maids"
	"github.com/angelmondragon/bachelorhub-backend/internal/seed"
	"github.com/angelmondragon/bachelorhub-backend/internal/shops"
	"github.com/angelmondragon/bachelorhub-backend/internal/users"
	"github.com/angelmondragon/bachelorhub-backend/pkg/auth/session"
	"github.com/angelmondragon/bachelorhub-backend/pkg/config"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	"github.com/angelmondragon/bachelorhub-backend/pkg/logger"
	"github.com/angelmondragon/bachelorhub-backend/pkg/migrate"
	"github.com/angelmondragon/bachelorhub-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      cfg.App.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap redis", err)
		_ = dbClient.Close()
		os.Exit(1)
	}

	if err := run(ctx, cfg, logg, dbClient, redisClient); err != nil {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		closeAll(logg, dbClient, redisClient)
		os.Exit(1)
	}
	closeAll(logg, dbClient, redisClient)
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger, dbClient *db.Client, redisClient *redis.Client) error {
	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		return err
	}
	if err := maybeSeed(ctx, cfg, logg, dbClient); err != nil {
		return err
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		return err
	}

	userRepo := users.NewRepository(dbClient.DB())
	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		return err
	}
	userService, err := users.NewService(userRepo, sessionManager)
	if err != nil {
		return err
	}
	housingService, err := housing.NewService(housing.NewRepository(dbClient.DB()))
	if err != nil {
		return err
	}
	shopService, err := shops.NewService(shops.NewRepository(dbClient.DB()))
	if err != nil {
		return err
	}
	maidService, err := maids.NewService(maids.NewRepository(dbClient.DB()))
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	handler := routes.NewRouter(cfg, logg, routes.Deps{
		DB:       dbClient,
		Cache:    redisClient,
		Sessions: sessionManager,
		Registry: registry,
	}, routes.Services{
		Auth:    authService,
		Users:   userService,
		Owners:  users.NewOwnerDirectory(userRepo),
		Housing: housingService,
		Shops:   shopService,
		Maids:   maidService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	logCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(logCtx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logg.Info(logCtx, "shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// maybeSeed loads the sample listings into an empty database when enabled.
func maybeSeed(ctx context.Context, cfg *config.Config, logg *logger.Logger, dbClient *db.Client) error {
	if !cfg.FeatureFlags.SeedOnBoot {
		return nil
	}
	var existing int64
	if err := dbClient.DB().WithContext(ctx).Model(&models.Housing{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		logg.Info(ctx, "seed.skipped")
		return nil
	}
	seeder, err := seed.NewSeeder(dbClient.DB(), logg)
	if err != nil {
		return err
	}
	_, err = seeder.Run(ctx, seed.Sample(), seed.Options{})
	return err
}

func closeAll(logg *logger.Logger, dbClient *db.Client, redisClient *redis.Client) {
	err := multierr.Combine(dbClient.Close(), redisClient.Close())
	if err != nil {
		logg.Error(context.Background(), "error closing resources", err)
	}
}

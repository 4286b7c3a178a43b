// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/rwc-wellness/internal/admin"
	"github.com/carterperez-dev/rwc-wellness/internal/booking"
	"github.com/carterperez-dev/rwc-wellness/internal/catalog"
	"github.com/carterperez-dev/rwc-wellness/internal/config"
	"github.com/carterperez-dev/rwc-wellness/internal/core"
	"github.com/carterperez-dev/rwc-wellness/internal/health"
	"github.com/carterperez-dev/rwc-wellness/internal/middleware"
	"github.com/carterperez-dev/rwc-wellness/internal/money"
	"github.com/carterperez-dev/rwc-wellness/internal/server"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	backing, err := connectStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer backing.Close(logger)
	db, rdb := backing.db, backing.rdb

	source, err := catalogSource(cfg.Catalog, db)
	if err != nil {
		return err
	}

	cat, err := catalog.Load(ctx, source, cfg.Catalog.Strict, logger)
	if err != nil {
		return err
	}

	formatter := money.NewFormatter(cfg.Pricing.CurrencySymbol, cfg.Pricing.Locale)
	quoteSvc := catalog.NewQuoteService(cat, cfg.Pricing.VATRate)
	catalogHandler := catalog.NewHandler(cat, quoteSvc, formatter)

	generator := booking.NewGenerator(booking.WithPrefix(cfg.Booking.ReferencePrefix))
	var registry *booking.Registry
	if rdb != nil {
		registry = booking.NewRegistry(rdb, generator, booking.RegistryConfig{
			TTL:         cfg.Booking.ReferenceTTL,
			MaxAttempts: cfg.Booking.MaxAttempts,
		})
	} else {
		logger.Warn("redis not configured, booking references are not reserved")
	}
	bookingHandler := booking.NewHandler(registry, generator)

	deps := []health.Dependency{{
		Name: "catalog",
		Checker: health.CheckerFunc(func(context.Context) error {
			if cat.Counts().Services == 0 {
				return errors.New("catalog has no services")
			}
			return nil
		}),
	}}
	if db != nil {
		deps = append(deps, health.Dependency{Name: "database", Checker: db})
	}
	if rdb != nil {
		deps = append(deps, health.Dependency{Name: "redis", Checker: rdb})
	}
	healthHandler := health.NewHandler(deps...)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	var limiterClient *redis.Client
	limiterKey := middleware.KeyByIP
	if rdb != nil {
		limiterClient = rdb.Client
		limiterKey = func(r *http.Request) string {
			return rdb.Key("ratelimit", middleware.KeyByIP(r))
		}
	}

	router.Use(middleware.RequestID)
	router.Use(middleware.Tracing(cfg.Otel.ServiceName))
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(limiterClient, middleware.RateLimitConfig{
			Limit: middleware.Per(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
				cfg.RateLimit.Window,
			),
			KeyFunc:  limiterKey,
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Route("/v1", func(r chi.Router) {
		catalogHandler.RegisterRoutes(r)
		bookingHandler.RegisterRoutes(r)

		if cfg.Admin.Enabled {
			adminCfg := admin.HandlerConfig{
				Catalog:       cat,
				CatalogSource: source.Name(),
			}
			if db != nil {
				adminCfg.DBStats = db.Stats
				adminCfg.DBPing = db.Ping
			}
			if rdb != nil {
				adminCfg.RedisStats = rdb.PoolStats
				adminCfg.RedisPing = rdb.Ping
			}
			admin.NewHandler(adminCfg).RegisterRoutes(r)
		}
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	logger.Info("application stopped")
	return nil
}

// stores holds the optional backing services. Either field may be nil.
type stores struct {
	db  *core.Database
	rdb *core.Redis
}

var (
	openDatabase = core.NewDatabase
	openRedis    = core.NewRedis
)

// connectStores opens the configured database and Redis. When a later
// connection fails, the ones already opened are closed before returning.
func connectStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*stores, error) {
	s := &stores{}

	if cfg.Database.URL != "" {
		db, err := openDatabase(ctx, cfg.Database, cfg.Otel.ServiceName)
		if err != nil {
			return nil, err
		}
		s.db = db
		logger.Info("database connected",
			"max_open_conns", cfg.Database.MaxOpenConns,
			"max_idle_conns", cfg.Database.MaxIdleConns,
		)
	}

	if cfg.Redis.Enabled() {
		rdb, err := openRedis(ctx, cfg.Redis, cfg.Otel.ServiceName)
		if err != nil {
			s.Close(logger)
			return nil, err
		}
		s.rdb = rdb
		logger.Info("redis connected",
			"pool_size", cfg.Redis.PoolSize,
			"namespace", cfg.Redis.Namespace,
		)
	}

	return s, nil
}

func (s *stores) Close(logger *slog.Logger) {
	if s.rdb != nil {
		if err := s.rdb.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			logger.Error("database close error", "error", err)
		}
	}
}

func catalogSource(cfg config.CatalogConfig, db *core.Database) (catalog.Source, error) {
	switch cfg.Source {
	case config.SourceEmbedded:
		return catalog.EmbeddedSource{}, nil
	case config.SourceFile:
		return catalog.FileSource{Path: cfg.Path}, nil
	case config.SourcePostgres:
		if db == nil {
			return nil, fmt.Errorf("catalog source %q needs a database", cfg.Source)
		}
		return catalog.PostgresSource{DB: db.DB}, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

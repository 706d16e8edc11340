package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/plant-telemetry/internal/api/handlers"
	"github.com/donaldgifford/plant-telemetry/internal/api/middleware"
	"github.com/donaldgifford/plant-telemetry/internal/config"
	"github.com/donaldgifford/plant-telemetry/internal/engine"
	"github.com/donaldgifford/plant-telemetry/internal/mqttingest"
	"github.com/donaldgifford/plant-telemetry/internal/store"
	"github.com/donaldgifford/plant-telemetry/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and the MQTT subscriber",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := openStore(ctx, &cfg.Database, log)
	if err != nil {
		return err
	}
	defer closeStore()

	eng := engine.NewEngine(st, engine.WithLogger(log))
	e := newServer(cfg, st, eng, log)

	var sub *mqttingest.Subscriber
	if cfg.MQTT.Enabled {
		sub = mqttingest.New(cfg.MQTT, eng, mqttingest.WithLogger(log))
		if err := sub.Start(ctx); err != nil {
			return fmt.Errorf("starting mqtt subscriber: %w", err)
		}
		defer sub.Stop()
	}

	addr := cfg.Server.Addr()
	log.Info("starting server", "addr", addr, "driver", cfg.Database.Driver, "mqtt", cfg.MQTT.Enabled)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("serving http: %w", err)
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// openStore connects the configured datastore and applies migrations.
func openStore(ctx context.Context, cfg *config.DatabaseConfig, log *slog.Logger) (store.Store, func(), error) {
	switch cfg.Driver {
	case config.DriverMemory:
		log.Warn("using in-memory store, data is lost on restart")
		return store.NewMemoryStore(), func() {}, nil
	default:
		connectCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
		defer cancel()

		pg, err := store.NewPostgresStore(connectCtx, cfg.DSN(), cfg.PoolSize)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		if err := pg.Migrate(connectCtx); err != nil {
			pg.Close()
			return nil, nil, fmt.Errorf("running migrations: %w", err)
		}
		log.Info("connected to database", "host", cfg.Host, "database", cfg.Name)
		return pg, pg.Close, nil
	}
}

// newServer builds the echo server with every route mounted.
func newServer(cfg *config.Config, st store.Store, eng *engine.Engine, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(
		middleware.Recovery(log),
		middleware.RequestLog(log),
		middleware.Metrics(),
	)

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(st))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	limiter := middleware.NewRateLimiter(cfg.Ingest.RateLimit.PerSecond, cfg.Ingest.RateLimit.Burst)
	handlers.RegisterIngestRoutes(e,
		handlers.NewIngestHandler(eng,
			handlers.WithMaxBodyBytes(cfg.Ingest.MaxBodyBytes),
			handlers.WithIngestLogger(log),
		),
		middleware.IngestRateLimit(limiter),
	)

	api := humaecho.New(e, huma.DefaultConfig("plant-telemetry API", Version))
	handlers.RegisterSensorRoutes(api, handlers.NewSensorsHandler(st))
	handlers.RegisterActuatorRoutes(api, handlers.NewActuatorsHandler(st, eng))
	handlers.RegisterRuleRoutes(api, handlers.NewRulesHandler(st))
	handlers.RegisterReadingRoutes(api, handlers.NewReadingsHandler(st))
	handlers.RegisterAlertRoutes(api, handlers.NewAlertsHandler(st))

	return e
}

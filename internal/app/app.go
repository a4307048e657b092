package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"storepulse/internal/config"
	"storepulse/internal/db"
	httpserver "storepulse/internal/http"
	"storepulse/internal/http/handlers"
	"storepulse/internal/metrics"
	"storepulse/internal/redis"
)

// App wires dependencies for the storepulse service.
type App struct {
	server      *httpserver.Server
	pool        *sql.DB
	redisClient *goredis.Client
	logger      *zap.Logger
}

// New builds application graph.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	redisClient, err := redis.NewClient(cfg.Redis.URL, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	healthSvc := redis.NewHealthService(redisClient, cfg.ProbeTimeout())

	var pool *sql.DB
	probes := []handlers.Probe{healthSvc}
	if cfg.PostgresConfigured() {
		pool, err = db.NewPostgres(cfg.Database.DSN)
		if err != nil {
			redisClient.Close()
			return nil, err
		}
		probes = append(probes, db.NewProbe(pool, cfg.ProbeTimeout()))
	}

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	env := handlers.Environment{
		Mode:            cfg.App.Env,
		RedisConfigured: cfg.RedisConfigured(),
	}

	routes := httpserver.Routes{
		Health:      handlers.NewHealthHandler(),
		RedisHealth: handlers.NewRedisHealthHandler(healthSvc, env, m, logger),
		RedisMemory: handlers.NewRedisMemoryHandler(healthSvc, m, logger),
		Ready:       handlers.NewReadinessHandler(probes, m, logger),
		Metrics:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	router := httpserver.NewRouter(routes)
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	app := &App{
		server:      server,
		pool:        pool,
		redisClient: redisClient,
		logger:      logger,
	}
	app.logStartupState(probes)

	return app, nil
}

// logStartupState probes dependencies once at boot for operator visibility.
// Failures are logged, never fatal: the service exists to report them.
func (a *App) logStartupState(probes []handlers.Probe) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, probe := range probes {
		if err := probe.Ping(ctx); err != nil {
			a.logger.Warn("dependency unavailable at startup",
				zap.String("dependency", probe.Name()),
				zap.Error(err))
			continue
		}
		a.logger.Info("dependency reachable", zap.String("dependency", probe.Name()))
	}
}

// Run starts serving HTTP traffic until context cancellation.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases acquired resources.
func (a *App) Close() {
	if a.pool != nil {
		if err := a.pool.Close(); err != nil {
			a.logger.Warn("failed to close db pool", zap.Error(err))
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis client", zap.Error(err))
		}
	}
}

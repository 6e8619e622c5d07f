package cli

import (
	"context"
	"fmt"

	"github.com/mecsphere/appo/engine/infra/postgres"
	"github.com/mecsphere/appo/engine/infra/server"
	"github.com/mecsphere/appo/engine/infra/server/appstate"
	instpostgres "github.com/mecsphere/appo/engine/instanceinfo/infra/postgres"
	instredis "github.com/mecsphere/appo/engine/instanceinfo/infra/redis"
	"github.com/mecsphere/appo/engine/instanceinfo/uc"
	"github.com/mecsphere/appo/pkg/config"
	"github.com/mecsphere/appo/pkg/logger"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log := logger.SetupLogger(cfg.Runtime.LogLevel, cfg.Runtime.LogJSON, false)
	ctx = logger.ContextWithLogger(ctx, log)

	if cfg.Database.AutoMigrate {
		if err := postgres.ApplyMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	store, err := postgres.NewStore(ctx, &postgres.Config{DSN: cfg.Database.DSN()})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := store.Close(ctx); err != nil {
			log.Error("Failed to close database store", "error", err)
		}
	}()

	repo, err := buildRepository(ctx, cfg, store)
	if err != nil {
		return err
	}

	state, err := appstate.NewState(appstate.NewBaseDeps(cfg, repo))
	if err != nil {
		return fmt.Errorf("failed to initialize application state: %w", err)
	}
	return server.NewServer(cfg, state, log).Run()
}

// buildRepository wires the Postgres repository, wrapped by the Redis
// read-through cache when one is configured.
func buildRepository(ctx context.Context, cfg *config.Config, store *postgres.Store) (uc.Repository, error) {
	repo := instpostgres.NewRepository(store.Pool())
	if !cfg.Redis.Enabled {
		return repo, nil
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.FromContext(ctx).Info("Redis cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
	return instredis.NewCachedRepository(repo, client, cfg.Redis.CacheTTL), nil
}

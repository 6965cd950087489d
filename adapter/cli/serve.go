package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	grpcadapter "github.com/felixgeelhaar/taskstream/adapter/grpc"
	"github.com/felixgeelhaar/taskstream/internal/tracking/application/queries"
	"github.com/felixgeelhaar/taskstream/internal/tracking/application/services"
	"github.com/felixgeelhaar/taskstream/internal/tracking/domain/task"
	"github.com/felixgeelhaar/taskstream/internal/tracking/infrastructure/cache"
	"github.com/felixgeelhaar/taskstream/internal/tracking/infrastructure/eventbus"
	"github.com/felixgeelhaar/taskstream/internal/tracking/infrastructure/persistence"
	"github.com/felixgeelhaar/taskstream/internal/tracking/infrastructure/seed"
	"github.com/jackc/pgx/v5/pgxpool"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the taskstream gRPC server",
	Long: `Serve starts the TaskManager gRPC service on the configured address
and blocks until interrupted. The backing store is selected by
TASKSTREAM_STORE_DRIVER (memory, sqlite or postgres); the memory driver
is seeded with a generated task corpus at startup.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	var statsCache queries.StatsCache
	if cfg.RedisURL != "" {
		client, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			if !cfg.IsDevelopment() {
				return fmt.Errorf("connect redis: %w", err)
			}
			logger.Warn("redis not available, stats caching disabled", "error", err)
		} else {
			defer client.Close()
			statsCache = cache.NewRedisStatsCache(client, cfg.StatsCacheTTL, logger)
			logger.Info("stats cache enabled", "ttl", cfg.StatsCacheTTL)
		}
	}

	var publisher eventbus.Publisher
	rabbit, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, logger)
	if err != nil {
		if !cfg.IsDevelopment() {
			return fmt.Errorf("connect rabbitmq: %w", err)
		}
		logger.Warn("RabbitMQ not available, using noop publisher", "error", err)
		publisher = eventbus.NewNoopPublisher(logger)
	} else {
		defer rabbit.Close()
		publisher = rabbit
	}

	streamHandler := queries.NewStreamUserTasksHandler(store)
	statsHandler := queries.NewUserStatsHandler(store, services.NewStatsAggregator(), statsCache, logger)
	handler := grpcadapter.NewTaskManagerHandler(streamHandler, statsHandler, publisher, nil, logger)

	server := grpcadapter.NewServer(grpcadapter.ServerConfig{
		Addr:          cfg.GRPCAddr,
		StreamWorkers: cfg.StreamWorkers,
	}, handler, logger)

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// openStore builds the task store named by the configured driver. The
// returned cleanup closes any underlying connections and is safe to call
// even when it is a no-op.
func openStore(ctx context.Context) (task.Store, func(), error) {
	switch cfg.StoreDriver {
	case "memory":
		seedCfg := seed.DefaultConfig()
		seedCfg.Count = cfg.SeedTaskCount
		seedCfg.Seed = cfg.SeedValue
		if len(cfg.SeedUsers) > 0 {
			seedCfg.Users = cfg.SeedUsers
		}

		store := persistence.NewMemoryStore()
		if err := store.AddAll(seed.Generate(seedCfg)); err != nil {
			return nil, nil, fmt.Errorf("seed memory store: %w", err)
		}
		logger.Info("memory store seeded", "tasks", store.Len(), "users", len(seedCfg.Users))
		return store, func() {}, nil

	case "sqlite":
		store, err := persistence.OpenSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		logger.Info("sqlite store opened", "path", cfg.SQLitePath)
		return store, func() { _ = store.Close() }, nil

	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		logger.Info("connected to postgres")
		return persistence.NewPostgresStore(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

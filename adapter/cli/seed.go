package cli

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskstream/internal/tracking/domain/task"
	"github.com/felixgeelhaar/taskstream/internal/tracking/infrastructure/persistence"
	"github.com/felixgeelhaar/taskstream/internal/tracking/infrastructure/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate a sqlite or postgres store with a generated task corpus",
	Long: `Seed generates a deterministic task corpus and inserts it into the
configured store. The memory driver needs no seeding; it is populated on
every serve. Re-running with the same seed value against a non-empty
store fails on the first duplicate task id.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	seedCfg := seed.DefaultConfig()
	seedCfg.Count = cfg.SeedTaskCount
	seedCfg.Seed = cfg.SeedValue
	if len(cfg.SeedUsers) > 0 {
		seedCfg.Users = cfg.SeedUsers
	}
	tasks := seed.Generate(seedCfg)

	switch cfg.StoreDriver {
	case "sqlite":
		store, err := persistence.OpenSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return fmt.Errorf("open sqlite store: %w", err)
		}
		defer store.Close()
		if err := insertAll(ctx, store, tasks); err != nil {
			return err
		}
		logger.Info("sqlite store seeded", "path", cfg.SQLitePath, "tasks", len(tasks))

	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()
		store := persistence.NewPostgresStore(pool)
		if err := store.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate postgres: %w", err)
		}
		if err := insertAll(ctx, store, tasks); err != nil {
			return err
		}
		logger.Info("postgres store seeded", "tasks", len(tasks))

	case "memory":
		return fmt.Errorf("the memory driver is seeded at serve time, nothing to do")

	default:
		return fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d tasks for %d users\n", len(tasks), len(seedCfg.Users))
	return nil
}

type inserter interface {
	Insert(ctx context.Context, t task.Task) error
}

func insertAll(ctx context.Context, store inserter, tasks []task.Task) error {
	for _, t := range tasks {
		if err := store.Insert(ctx, t); err != nil {
			return fmt.Errorf("insert %s: %w", t.ID, err)
		}
	}
	return nil
}

// Package cli implements the taskstream command line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskstream/pkg/config"
	"github.com/felixgeelhaar/taskstream/pkg/observability"
)

var (
	verbose bool
	cfg     *config.Config
	logger  *slog.Logger
)

type commandContext struct {
	correlationID uuid.UUID
	startedAt     time.Time
}

type commandContextKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskstream",
	Short: "taskstream - task tracking over gRPC",
	Long: `taskstream serves a read-only task corpus over gRPC and ships a
client for streaming tasks and fetching per-user completion statistics.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logCfg := observability.DefaultLogConfig()
		if cfg.IsProduction() {
			logCfg = observability.ProductionLogConfig()
		}
		logCfg.Level = observability.LogLevel(cfg.LogLevel)
		logCfg.Format = observability.LogFormat(cfg.LogFormat)
		if verbose {
			logCfg.Level = observability.LogLevelDebug
		}
		logger = observability.NewLogger(logCfg)

		info := commandContext{
			correlationID: uuid.New(),
			startedAt:     time.Now(),
		}
		ctx := observability.WithCorrelationID(cmd.Context(), info.correlationID.String())
		cmd.SetContext(context.WithValue(ctx, commandContextKey{}, info))

		logger.Debug("command start", "command", cmd.CommandPath())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			return
		}
		info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
		if !ok {
			return
		}
		logger.Debug("command end",
			"command", cmd.CommandPath(),
			"duration_ms", time.Since(info.startedAt).Milliseconds(),
		)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

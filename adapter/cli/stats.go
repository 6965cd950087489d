package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskstream/pkg/client"
)

var statsCmd = &cobra.Command{
	Use:   "stats <user-id>",
	Short: "Fetch a user's completion statistics",
	Long: `Stats asks the server for aggregate task statistics for one user.
A user the server holds no tasks for reports not found.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	userID := args[0]

	c, err := client.New(client.Config{
		Target:         cfg.ClientTarget,
		RequestTimeout: cfg.RequestTimeout,
	}, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	stats, err := c.FetchUserStats(cmd.Context(), userID)
	if err != nil {
		return describeClientError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "stats for %s\n", stats.UserID)
	fmt.Fprintf(out, "  total:        %d\n", stats.TotalTasks)
	fmt.Fprintf(out, "  pending:      %d\n", stats.PendingTasks)
	fmt.Fprintf(out, "  in progress:  %d\n", stats.InProgressTasks)
	fmt.Fprintf(out, "  completed:    %d\n", stats.CompletedTasks)
	fmt.Fprintf(out, "  completion:   %.2f%%\n", stats.CompletionRate)
	return nil
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskstream/pkg/client"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks <user-id>",
	Short: "Stream a user's tasks from the server",
	Long: `Tasks opens a server stream and prints the user's tasks as they
arrive. A user with no tasks prints an empty listing; this is not an
error.`,
	Args: cobra.ExactArgs(1),
	RunE: runTasks,
}

func init() {
	rootCmd.AddCommand(tasksCmd)
}

func runTasks(cmd *cobra.Command, args []string) error {
	userID := args[0]

	c, err := client.New(client.Config{
		Target:         cfg.ClientTarget,
		RequestTimeout: cfg.RequestTimeout,
	}, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	stream, err := c.StreamTasksForUser(cmd.Context(), userID)
	if err != nil {
		return describeClientError(err)
	}

	out := cmd.OutOrStdout()
	count := 0
	for {
		t, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return describeClientError(err)
		}
		count++
		fmt.Fprintf(out, "%-10s  %-12s  %-7s  %s\n", t.ID, t.Status, t.Priority, t.Title)
		if verbose {
			fmt.Fprintf(out, "            %s\n", t.Description)
			fmt.Fprintf(out, "            tags: %s  created: %s  updated: %s\n",
				strings.Join(t.Tags, ","),
				t.CreatedAt.Format("2006-01-02"),
				t.UpdatedAt.Format("2006-01-02"),
			)
		}
	}

	if count == 0 {
		fmt.Fprintf(out, "no tasks for %s\n", userID)
		return nil
	}
	fmt.Fprintf(out, "%d task(s) for %s\n", count, userID)
	return nil
}

// describeClientError rewraps client errors into terse, user-facing messages
// while keeping the original error in the chain.
func describeClientError(err error) error {
	var transport *client.TransportError
	var decode *client.DecodeError
	switch {
	case errors.Is(err, client.ErrUserNotFound):
		return fmt.Errorf("not found: %w", err)
	case errors.As(err, &transport):
		return fmt.Errorf("cannot reach server: %w", err)
	case errors.As(err, &decode):
		return fmt.Errorf("malformed response: %w", err)
	default:
		return err
	}
}

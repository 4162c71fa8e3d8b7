package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	var userID string
	var limit int
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live view of the routing decision log",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("watch requires an interactive terminal; use 'attune report' instead")
			}

			model := newWatchModel(app.Decisions, userID, limit, interval)
			_, err := tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID to watch")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of decisions to show")
	cmd.Flags().DurationVar(&interval, "interval", 5*time.Second, "Refresh interval")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

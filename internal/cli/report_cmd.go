package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/attune/internal/cli/formatter"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var userID string
	var limit int
	var noColor bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the routing decision log for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			decisions, err := app.Decisions.ListByUser(cmd.Context(), userID, limit)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDecisions(userID, decisions))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID to report on")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of decisions to show")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

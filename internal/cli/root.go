// Package cli wires the attune commands: the HTTP server, the decision log
// report, the live watch view, and manual mood intake.
package cli

import (
	"database/sql"
	"log/slog"

	"github.com/alexanderramin/attune/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Evaluation service.EvaluationService
	Intake     service.IntakeService
	Decisions  service.DecisionService

	// DB backs the HTTP health check.
	DB     *sql.DB
	Logger *slog.Logger

	// Addr is the default HTTP listen address.
	Addr string

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "attune" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "attune",
		Short: "Therapy session adaptation engine",
	}

	root.AddCommand(
		newServeCmd(app),
		newReportCmd(app),
		newWatchCmd(app),
		newMoodCmd(app),
	)

	return root
}

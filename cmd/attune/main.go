package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/attune/internal/cli"
	"github.com/alexanderramin/attune/internal/config"
	"github.com/alexanderramin/attune/internal/db"
	"github.com/alexanderramin/attune/internal/repository"
	"github.com/alexanderramin/attune/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	moodRepo := repository.NewSQLiteMoodRepo(database)
	alertRepo := repository.NewSQLiteCrisisAlertRepo(database)
	techniqueRepo := repository.NewSQLiteTechniqueRepo(database)
	decisionRepo := repository.NewSQLiteDecisionRepo(database)

	// Telemetry goes to stderr so stdout stays clean for command output.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	var logger *slog.Logger
	if cfg.LogJSON {
		observer = service.NewLogUseCaseObserver(os.Stderr)
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	app := &cli.App{
		Evaluation: service.NewEvaluationService(moodRepo, alertRepo, techniqueRepo, decisionRepo, cfg.ModelTag, observer),
		Intake:     service.NewIntakeService(moodRepo, alertRepo, techniqueRepo),
		Decisions:  service.NewDecisionService(decisionRepo),
		DB:         database,
		Logger:     logger,
		Addr:       cfg.Addr,
	}

	// Detect interactive terminal for prompt-based commands.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newMoodCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Record mood check-ins",
	}
	cmd.AddCommand(newMoodLogCmd(app))
	return cmd
}

func newMoodLogCmd(app *App) *cobra.Command {
	var userID string
	var overall float64

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a mood check-in (1-10)",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Prompt interactively when the flags are missing and we
			// have a terminal to ask on.
			if (userID == "" || !cmd.Flags().Changed("overall")) && app.IsInteractive != nil && app.IsInteractive() {
				var err error
				userID, overall, err = promptMood(userID)
				if err != nil {
					return err
				}
			}

			entry, err := app.Intake.RecordMood(cmd.Context(), userID, overall)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded mood %.0f for %s (%s)\n",
				entry.Overall, entry.UserID, entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().Float64Var(&overall, "overall", 0, "Overall mood, 1 (worst) to 10 (best)")

	return cmd
}

func promptMood(userID string) (string, float64, error) {
	moodStr := ""
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("User ID").
				Value(&userID).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("user ID is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Overall mood (1-10)").
				Placeholder("5").
				Value(&moodStr).
				Validate(validateMoodScore),
		),
	).WithTheme(attuneHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", 0, err
	}

	overall, err := strconv.ParseFloat(strings.TrimSpace(moodStr), 64)
	if err != nil {
		return "", 0, fmt.Errorf("parsing mood score: %w", err)
	}
	return userID, overall, nil
}

func validateMoodScore(s string) error {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number between 1 and 10")
	}
	if n < 1 || n > 10 {
		return fmt.Errorf("mood must be between 1 and 10")
	}
	return nil
}

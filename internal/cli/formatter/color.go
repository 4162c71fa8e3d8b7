package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/attune/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SeverityColor returns the lipgloss style for a trigger severity.
func SeverityColor(sev domain.Severity) lipgloss.Style {
	switch sev {
	case domain.SeverityCritical:
		return StyleRed
	case domain.SeverityHigh:
		return StyleYellow
	case domain.SeverityMedium:
		return StyleBlue
	default:
		return StyleDim
	}
}

// SeverityIndicator returns a colored severity marker such as "● CRITICAL".
func SeverityIndicator(sev domain.Severity) string {
	label := strings.ToUpper(string(sev))
	if label == "" {
		label = "NONE"
	}
	return SeverityColor(sev).Render("● " + label)
}

// PriorityLabel renders a routing priority with its urgency color.
func PriorityLabel(priority int) string {
	switch priority {
	case domain.PriorityUrgent:
		return StyleRed.Render("URGENT")
	case domain.PriorityElevated:
		return StyleYellow.Render("ELEVATED")
	case domain.PriorityRoutine:
		return StyleGreen.Render("ROUTINE")
	default:
		return StyleDim.Render(fmt.Sprintf("P%d", priority))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

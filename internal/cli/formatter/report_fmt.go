package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/attune/internal/domain"
)

const maxReasoningWidth = 60

// FormatDecisions renders the routing decision log as a table, newest first.
func FormatDecisions(userID string, decisions []*domain.RoutingDecision) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Routing decisions — %s", userID)))
	b.WriteString("\n\n")

	if len(decisions) == 0 {
		b.WriteString(Dim("No routing decisions recorded.") + "\n")
		return b.String()
	}

	headers := []string{"WHEN", "SESSION", "PRIORITY", "PREDICTED", "TRIGGERS", "REASONING"}
	rows := make([][]string, 0, len(decisions))
	for _, d := range decisions {
		rows = append(rows, []string{
			d.CreatedAt.Local().Format("2006-01-02 15:04"),
			d.SessionID,
			PriorityLabel(d.Priority),
			fmt.Sprintf("%.2f", d.EffectivenessPrediction),
			fmt.Sprintf("%d", d.TriggerCount),
			truncate(d.Reasoning, maxReasoningWidth),
		})
	}

	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// FormatTriggers renders a short one-line-per-trigger summary.
func FormatTriggers(triggers []domain.Trigger) string {
	if len(triggers) == 0 {
		return Dim("No active triggers.") + "\n"
	}

	var b strings.Builder
	for _, t := range triggers {
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			SeverityIndicator(t.Severity),
			Bold(string(t.Type)),
			Dim(fmt.Sprintf("(confidence %.2f)", t.Confidence)),
		))
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return s[:max-1] + "…"
}

package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/attune/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatDecisions_Empty(t *testing.T) {
	out := FormatDecisions("u1", nil)
	assert.Contains(t, out, "ROUTING DECISIONS — U1")
	assert.Contains(t, out, "No routing decisions recorded.")
}

func TestFormatDecisions_Rows(t *testing.T) {
	decisions := []*domain.RoutingDecision{
		{
			ID:                      "d1",
			UserID:                  "u1",
			SessionID:               "s1",
			Priority:                domain.PriorityUrgent,
			EffectivenessPrediction: 0.5,
			TriggerCount:            2,
			Reasoning:               "Crisis indicators detected (severity: critical)",
			CreatedAt:               time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:        "d2",
			UserID:    "u1",
			SessionID: "s2",
			Priority:  domain.PriorityRoutine,
			Reasoning: strings.Repeat("x", 200),
			CreatedAt: time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC),
		},
	}

	out := FormatDecisions("u1", decisions)
	assert.Contains(t, out, "URGENT")
	assert.Contains(t, out, "ROUTINE")
	assert.Contains(t, out, "s1")
	assert.Contains(t, out, "0.50")
	// Long reasoning is truncated with an ellipsis.
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, strings.Repeat("x", 200))
}

func TestFormatTriggers(t *testing.T) {
	out := FormatTriggers([]domain.Trigger{
		{Type: domain.TriggerCrisisIndicators, Severity: domain.SeverityCritical, Confidence: 0.9},
		{Type: domain.TriggerLowEngagement, Severity: domain.SeverityMedium, Confidence: 0.8},
	})
	assert.Contains(t, out, "CRITICAL")
	assert.Contains(t, out, "crisis_indicators")
	assert.Contains(t, out, "0.90")

	assert.Contains(t, FormatTriggers(nil), "No active triggers.")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable([]string{"A", "BBBB"}, [][]string{{"xx", "y"}, {"x", "yy"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[1], "─")
}

func TestSeverityIndicator(t *testing.T) {
	assert.Contains(t, SeverityIndicator(domain.SeverityCritical), "CRITICAL")
	assert.Contains(t, SeverityIndicator(domain.SeverityHigh), "HIGH")
	assert.Contains(t, SeverityIndicator(""), "NONE")
}

package analysis

import (
	"github.com/alexanderramin/attune/internal/domain"
)

// AnalyzeMoodDecline inspects the user's recent mood history and the
// in-session mood shift. Entries arrive most recent first, already limited to
// the 7-day window. Fewer than two entries gives no signal.
func AnalyzeMoodDecline(entries []*domain.MoodEntry, snap domain.SessionSnapshot) *domain.Trigger {
	if len(entries) < 2 {
		return nil
	}

	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = e.Overall
	}
	weeklyTrend := Trend(values)

	var sessionDecline float64
	if shift, ok := snap.MoodShift(); ok {
		sessionDecline = -shift
	}

	// First tier that matches wins; anything milder than medium is absence.
	var severity domain.Severity
	switch {
	case weeklyTrend < -2 || sessionDecline > 3:
		severity = domain.SeverityCritical
	case weeklyTrend < -1 || sessionDecline > 2:
		severity = domain.SeverityHigh
	case weeklyTrend < -0.5 || sessionDecline > 1:
		severity = domain.SeverityMedium
	default:
		return nil
	}

	confidence := float64(len(entries)) / float64(MoodEntryLimit)
	if confidence > 1 {
		confidence = 1
	}

	return &domain.Trigger{
		Type:     domain.TriggerMoodDecline,
		Severity: severity,
		Data: map[string]any{
			"weekly_trend":    weeklyTrend,
			"session_decline": sessionDecline,
			"entry_count":     len(entries),
		},
		Confidence: confidence,
	}
}

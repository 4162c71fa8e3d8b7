package analysis

import (
	"strings"

	"github.com/alexanderramin/attune/internal/domain"
)

// breakthroughKeywords mark moments of insight in user-authored messages.
var breakthroughKeywords = []string{
	"breakthrough",
	"i understand now",
	"that makes sense",
	"i see it differently",
	"never thought of it that way",
	"it clicked",
	"i realize now",
	"feel lighter",
}

const (
	breakthroughConfidence = 0.7
	// moodImprovementBonus is added when in-session mood rose by two or
	// more points.
	moodImprovementBonus = 2
	breakthroughMinScore = 2
)

// AnalyzeBreakthrough detects positive turning points: insight language in
// the user's messages plus a meaningful in-session mood lift. Emits a single
// medium trigger when the combined score reaches the threshold.
func AnalyzeBreakthrough(snap domain.SessionSnapshot) *domain.Trigger {
	var corpus strings.Builder
	for _, m := range snap.Messages {
		if !m.IsUser {
			continue
		}
		corpus.WriteString(strings.ToLower(m.Content))
		corpus.WriteByte('\n')
	}
	text := corpus.String()

	score := 0
	var matched []string
	for _, kw := range breakthroughKeywords {
		if strings.Contains(text, kw) {
			score++
			matched = append(matched, kw)
		}
	}

	moodLift := false
	if shift, ok := snap.MoodShift(); ok && shift >= 2 {
		score += moodImprovementBonus
		moodLift = true
	}

	if score < breakthroughMinScore {
		return nil
	}

	return &domain.Trigger{
		Type:     domain.TriggerBreakthrough,
		Severity: domain.SeverityMedium,
		Data: map[string]any{
			"breakthrough_score": score,
			"matched_keywords":   matched,
			"mood_lift":          moodLift,
		},
		Confidence: breakthroughConfidence,
	}
}

package analysis

import (
	"strings"

	"github.com/alexanderramin/attune/internal/domain"
)

// crisisKeywords is the literal substring list scanned against user-authored
// messages. Substring matching is a known-weak heuristic (no negation or
// context handling); the list is kept verbatim for behavioral parity and is
// not a validated clinical instrument.
var crisisKeywords = []string{
	"suicide",
	"kill myself",
	"end it all",
	"self-harm",
	"hurt myself",
	"hopeless",
	"no reason to live",
	"better off dead",
	"can't go on",
	"want to die",
}

// crisisConfidence is fixed: keyword hits are treated as strong evidence
// regardless of how much history backs them.
const crisisConfidence = 0.9

// maxRecordedMatches caps how many matched keywords are echoed back in
// trigger data.
const maxRecordedMatches = 3

// ScanCrisisKeywords returns the number of crisis keywords present across
// the user-authored messages and the first few matches. Each keyword counts
// once no matter how often it appears.
func ScanCrisisKeywords(messages []domain.Message) (int, []string) {
	var corpus strings.Builder
	for _, m := range messages {
		if !m.IsUser {
			continue
		}
		corpus.WriteString(strings.ToLower(m.Content))
		corpus.WriteByte('\n')
	}
	text := corpus.String()

	score := 0
	var matched []string
	for _, kw := range crisisKeywords {
		if strings.Contains(text, kw) {
			score++
			if len(matched) < maxRecordedMatches {
				matched = append(matched, kw)
			}
		}
	}
	return score, matched
}

// AnalyzeCrisis combines in-session keyword hits with the count of crisis
// alerts raised for the user in the trailing 24 hours (each worth 2 points).
func AnalyzeCrisis(snap domain.SessionSnapshot, recentAlerts int) *domain.Trigger {
	score, matched := ScanCrisisKeywords(snap.Messages)
	score += recentAlerts * 2

	var severity domain.Severity
	switch {
	case score >= 3:
		severity = domain.SeverityCritical
	case score >= 2:
		severity = domain.SeverityHigh
	case score >= 1:
		severity = domain.SeverityMedium
	default:
		return nil
	}

	return &domain.Trigger{
		Type:     domain.TriggerCrisisIndicators,
		Severity: severity,
		Data: map[string]any{
			"crisis_score":     score,
			"matched_keywords": matched,
			"recent_alerts":    recentAlerts,
		},
		Confidence: crisisConfidence,
	}
}

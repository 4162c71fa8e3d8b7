package analysis

import "github.com/alexanderramin/attune/internal/domain"

// engagementConfidence is fixed: the inputs are direct session measurements,
// not sampled history.
const engagementConfidence = 0.8

// EngagementScore computes a 0-1 engagement estimate from session metrics.
// Starts at a neutral 0.5 and moves with response length, response latency,
// and interaction depth.
func EngagementScore(snap domain.SessionSnapshot) float64 {
	score := 0.5

	switch {
	case snap.AvgResponseLen > 50:
		score += 0.2
	case snap.AvgResponseLen < 20:
		score -= 0.2
	}

	switch {
	case snap.AvgResponseSec > 180:
		score -= 0.3
	case snap.AvgResponseSec < 60:
		score += 0.2
	}

	depth := float64(snap.InteractionDepth) / 10
	if depth > 1 {
		depth = 1
	}
	score += 0.3 * depth

	return clamp01(score)
}

// AnalyzeEngagement emits a low-engagement trigger when the score falls
// below the medium threshold. Pure function, no stored history involved.
func AnalyzeEngagement(snap domain.SessionSnapshot) *domain.Trigger {
	score := EngagementScore(snap)

	var severity domain.Severity
	switch {
	case score < 0.3:
		severity = domain.SeverityHigh
	case score < 0.5:
		severity = domain.SeverityMedium
	default:
		return nil
	}

	return &domain.Trigger{
		Type:     domain.TriggerLowEngagement,
		Severity: severity,
		Data: map[string]any{
			"engagement_score":  score,
			"interaction_depth": snap.InteractionDepth,
		},
		Confidence: engagementConfidence,
	}
}

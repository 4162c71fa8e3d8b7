package analysis

import "github.com/alexanderramin/attune/internal/domain"

// AnalyzeTechnique averages the user's recent response scores (0-10) for the
// technique currently in use. No history means no signal, not a bad one.
func AnalyzeTechnique(technique string, scores []float64) *domain.Trigger {
	if technique == "" || len(scores) == 0 {
		return nil
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	avg := sum / float64(len(scores))

	var severity domain.Severity
	switch {
	case avg < 3:
		severity = domain.SeverityHigh
	case avg < 5:
		severity = domain.SeverityMedium
	default:
		return nil
	}

	confidence := float64(len(scores)) / float64(TechniqueScoreLimit)
	if confidence > 1 {
		confidence = 1
	}

	return &domain.Trigger{
		Type:     domain.TriggerTechniqueIneffective,
		Severity: severity,
		Data: map[string]any{
			"technique":     technique,
			"average_score": avg,
			"sample_count":  len(scores),
		},
		Confidence: confidence,
	}
}

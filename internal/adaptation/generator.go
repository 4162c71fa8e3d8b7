// Package adaptation turns a set of triggers into concrete session changes.
// The mapping is a static lookup per trigger type, deliberately not a model:
// every arm of the switch returns the same fixed recommendations so that
// clinical reviewers can audit exactly what the system will ever suggest.
package adaptation

import (
	"strings"

	"github.com/alexanderramin/attune/internal/domain"
)

// Effectiveness prediction tuning. Additive penalties and bonuses around a
// neutral baseline, clamped so the prediction never reads as certainty or
// total failure.
const (
	baselinePrediction = 0.7
	criticalPenalty    = 0.2
	highPenalty        = 0.1
	perAdaptationBonus = 0.05
	maxAdaptationBonus = 0.2
	predictionFloor    = 0.1
	predictionCeiling  = 1.0
)

// BuildPlan assembles the adaptation bundle for a trigger set. Callers gate
// on severity before invoking; this function applies no threshold of its own.
func BuildPlan(sessionID, userID string, triggers []domain.Trigger) *domain.SessionAdaptation {
	var set domain.AdaptationSet
	var clauses []string

	for _, t := range triggers {
		switch t.Type {
		case domain.TriggerMoodDecline:
			set.TechniqueChanges = append(set.TechniqueChanges,
				"Switch to mood-boosting techniques",
				"Introduce behavioral activation",
			)
			set.ApproachAdjustments = append(set.ApproachAdjustments,
				"Increase validation and emotional support",
			)
			clauses = append(clauses, "mood decline detected across recent entries")

		case domain.TriggerLowEngagement:
			set.ApproachAdjustments = append(set.ApproachAdjustments,
				"Use more interactive exercises",
				"Ask shorter, more direct questions",
			)
			set.IntensityModifications = append(set.IntensityModifications,
				"Reduce session intensity",
			)
			clauses = append(clauses, "engagement has dropped below expected levels")

		case domain.TriggerCrisisIndicators:
			set.CrisisProtocols = append(set.CrisisProtocols,
				"Implement safety planning",
				"Assess immediate risk",
				"Provide crisis hotline resources",
			)
			set.ApproachAdjustments = append(set.ApproachAdjustments,
				"Shift to supportive stabilization",
			)
			clauses = append(clauses, "crisis indicators present in session content")

		case domain.TriggerTechniqueIneffective:
			set.TechniqueChanges = append(set.TechniqueChanges,
				"Try an alternative evidence-based technique",
				"Revisit pacing of the current technique",
			)
			clauses = append(clauses, "current technique showing low effectiveness")

		case domain.TriggerBreakthrough:
			set.IntensityModifications = append(set.IntensityModifications,
				"Deepen exploration of the current topic",
				"Reinforce the new insight",
			)
			clauses = append(clauses, "breakthrough moment worth consolidating")
		}
	}

	return &domain.SessionAdaptation{
		SessionID:               sessionID,
		UserID:                  userID,
		Adaptations:             set,
		Reasoning:               strings.Join(clauses, "; "),
		EffectivenessPrediction: PredictEffectiveness(triggers, set.Count()),
	}
}

// PredictEffectiveness estimates how helpful the adaptation bundle might be.
// Heuristic arithmetic, not a trained model: severe situations are harder to
// turn around, while having more concrete changes to offer helps a little.
func PredictEffectiveness(triggers []domain.Trigger, adaptationCount int) float64 {
	p := baselinePrediction
	for _, t := range triggers {
		switch t.Severity {
		case domain.SeverityCritical:
			p -= criticalPenalty
		case domain.SeverityHigh:
			p -= highPenalty
		}
	}

	bonus := perAdaptationBonus * float64(adaptationCount)
	if bonus > maxAdaptationBonus {
		bonus = maxAdaptationBonus
	}
	p += bonus

	if p < predictionFloor {
		p = predictionFloor
	}
	if p > predictionCeiling {
		p = predictionCeiling
	}
	return p
}

package adaptation

import (
	"testing"

	"github.com/alexanderramin/attune/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trig(tt domain.TriggerType, sev domain.Severity) domain.Trigger {
	return domain.Trigger{Type: tt, Severity: sev, Confidence: 0.9}
}

func TestBuildPlan_CrisisBucket(t *testing.T) {
	plan := BuildPlan("s1", "u1", []domain.Trigger{
		trig(domain.TriggerCrisisIndicators, domain.SeverityHigh),
	})

	assert.Contains(t, plan.Adaptations.CrisisProtocols, "Implement safety planning")
	assert.Contains(t, plan.Adaptations.CrisisProtocols, "Assess immediate risk")
	assert.NotEmpty(t, plan.Reasoning)
	assert.Equal(t, "s1", plan.SessionID)
	assert.Equal(t, "u1", plan.UserID)
}

func TestBuildPlan_BucketsPerType(t *testing.T) {
	plan := BuildPlan("s1", "u1", []domain.Trigger{
		trig(domain.TriggerMoodDecline, domain.SeverityHigh),
		trig(domain.TriggerTechniqueIneffective, domain.SeverityHigh),
		trig(domain.TriggerBreakthrough, domain.SeverityMedium),
	})

	assert.NotEmpty(t, plan.Adaptations.TechniqueChanges)
	assert.NotEmpty(t, plan.Adaptations.ApproachAdjustments)
	assert.NotEmpty(t, plan.Adaptations.IntensityModifications)
	assert.Empty(t, plan.Adaptations.CrisisProtocols)

	// One reasoning clause per trigger, joined.
	assert.Contains(t, plan.Reasoning, "mood decline")
	assert.Contains(t, plan.Reasoning, "technique")
	assert.Contains(t, plan.Reasoning, "breakthrough")
}

func TestPredictEffectiveness_AlwaysInRange(t *testing.T) {
	severities := []domain.Severity{
		domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh, domain.SeverityCritical,
	}

	// All combinations of up to 5 triggers at every severity is overkill;
	// sweep counts per severity instead.
	for _, sev := range severities {
		for n := 0; n <= 6; n++ {
			var triggers []domain.Trigger
			for i := 0; i < n; i++ {
				triggers = append(triggers, trig(domain.TriggerMoodDecline, sev))
			}
			for count := 0; count <= 12; count++ {
				p := PredictEffectiveness(triggers, count)
				assert.GreaterOrEqual(t, p, 0.1)
				assert.LessOrEqual(t, p, 1.0)
			}
		}
	}
}

func TestPredictEffectiveness_PenaltiesAndBonus(t *testing.T) {
	// Baseline with nothing at all.
	assert.InDelta(t, 0.7, PredictEffectiveness(nil, 0), 1e-9)

	// One critical: 0.7 - 0.2 = 0.5.
	p := PredictEffectiveness([]domain.Trigger{trig(domain.TriggerCrisisIndicators, domain.SeverityCritical)}, 0)
	assert.InDelta(t, 0.5, p, 1e-9)

	// One high plus four adaptations: 0.7 - 0.1 + 0.2 = 0.8.
	p = PredictEffectiveness([]domain.Trigger{trig(domain.TriggerMoodDecline, domain.SeverityHigh)}, 4)
	assert.InDelta(t, 0.8, p, 1e-9)

	// Bonus caps at 0.2 regardless of adaptation count.
	p = PredictEffectiveness(nil, 50)
	assert.InDelta(t, 0.9, p, 1e-9)

	// Floor holds under many criticals.
	many := []domain.Trigger{
		trig(domain.TriggerCrisisIndicators, domain.SeverityCritical),
		trig(domain.TriggerMoodDecline, domain.SeverityCritical),
		trig(domain.TriggerLowEngagement, domain.SeverityCritical),
		trig(domain.TriggerTechniqueIneffective, domain.SeverityCritical),
	}
	assert.InDelta(t, 0.1, PredictEffectiveness(many, 0), 1e-9)
}

func TestImmediateActions_CrisisFirstAndCapped(t *testing.T) {
	triggers := []domain.Trigger{
		trig(domain.TriggerMoodDecline, domain.SeverityHigh),
		trig(domain.TriggerLowEngagement, domain.SeverityMedium),
		trig(domain.TriggerCrisisIndicators, domain.SeverityCritical),
		trig(domain.TriggerTechniqueIneffective, domain.SeverityHigh),
		trig(domain.TriggerBreakthrough, domain.SeverityMedium),
	}

	actions := ImmediateActions(triggers)
	require.NotEmpty(t, actions)
	assert.LessOrEqual(t, len(actions), 5)
	assert.Equal(t, "Conduct immediate risk assessment", actions[0])
}

func TestImmediateActions_Deduplicates(t *testing.T) {
	triggers := []domain.Trigger{
		trig(domain.TriggerMoodDecline, domain.SeverityHigh),
		trig(domain.TriggerMoodDecline, domain.SeverityHigh),
	}
	actions := ImmediateActions(triggers)
	assert.Equal(t, []string{"Acknowledge the mood shift with the user"}, actions)
}

func TestFollowUpRequired(t *testing.T) {
	assert.False(t, FollowUpRequired(nil))
	assert.False(t, FollowUpRequired([]domain.Trigger{trig(domain.TriggerBreakthrough, domain.SeverityMedium)}))
	assert.True(t, FollowUpRequired([]domain.Trigger{trig(domain.TriggerCrisisIndicators, domain.SeverityCritical)}))
	assert.True(t, FollowUpRequired([]domain.Trigger{trig(domain.TriggerMoodDecline, domain.SeverityHigh)}))
}

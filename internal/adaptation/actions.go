package adaptation

import "github.com/alexanderramin/attune/internal/domain"

// maxImmediateActions caps the action list returned to the frontend.
const maxImmediateActions = 5

var immediateActionsByType = map[domain.TriggerType][]string{
	domain.TriggerCrisisIndicators: {
		"Conduct immediate risk assessment",
		"Activate safety protocol",
	},
	domain.TriggerMoodDecline: {
		"Acknowledge the mood shift with the user",
	},
	domain.TriggerLowEngagement: {
		"Check in about session pacing",
	},
	domain.TriggerTechniqueIneffective: {
		"Offer an alternative exercise",
	},
	domain.TriggerBreakthrough: {
		"Capture and reflect the insight back to the user",
	},
}

// ImmediateActions returns the deduplicated, capped action list for the
// trigger set. Crisis actions come first regardless of trigger order.
func ImmediateActions(triggers []domain.Trigger) []string {
	ordered := make([]domain.Trigger, 0, len(triggers))
	for _, t := range triggers {
		if t.Type == domain.TriggerCrisisIndicators {
			ordered = append(ordered, t)
		}
	}
	for _, t := range triggers {
		if t.Type != domain.TriggerCrisisIndicators {
			ordered = append(ordered, t)
		}
	}

	seen := make(map[string]bool)
	var actions []string
	for _, t := range ordered {
		for _, a := range immediateActionsByType[t.Type] {
			if seen[a] || len(actions) >= maxImmediateActions {
				continue
			}
			seen[a] = true
			actions = append(actions, a)
		}
	}
	return actions
}

// FollowUpRequired reports whether any trigger warrants follow-up outside
// the current session.
func FollowUpRequired(triggers []domain.Trigger) bool {
	return domain.AnyAtLeast(triggers, domain.SeverityHigh)
}

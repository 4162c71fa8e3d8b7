package domain

// Severity grades how urgently a trigger should influence the running session.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// AtLeast reports whether s is at or above the given severity.
func (s Severity) AtLeast(min Severity) bool {
	return severityRank[s] >= severityRank[min]
}

type TriggerType string

const (
	TriggerMoodDecline          TriggerType = "mood_decline"
	TriggerLowEngagement        TriggerType = "low_engagement"
	TriggerCrisisIndicators     TriggerType = "crisis_indicators"
	TriggerTechniqueIneffective TriggerType = "technique_ineffective"
	TriggerBreakthrough         TriggerType = "breakthrough"
)

// ValidTriggerTypes is the canonical set of accepted trigger type strings.
var ValidTriggerTypes = map[string]bool{
	"mood_decline": true, "low_engagement": true, "crisis_indicators": true,
	"technique_ineffective": true, "breakthrough": true,
}

// Priority levels written to the routing decision log.
const (
	PriorityRoutine  = 3
	PriorityElevated = 4
	PriorityUrgent   = 5
)

// PriorityFor maps the highest severity present in a trigger set to the
// priority level recorded on the routing decision row.
func PriorityFor(max Severity) int {
	switch max {
	case SeverityCritical:
		return PriorityUrgent
	case SeverityHigh:
		return PriorityElevated
	default:
		return PriorityRoutine
	}
}

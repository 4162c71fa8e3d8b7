package domain

import "time"

// AdaptationSet groups recommended session changes into the four buckets the
// care frontend understands.
type AdaptationSet struct {
	TechniqueChanges       []string
	ApproachAdjustments    []string
	IntensityModifications []string
	CrisisProtocols        []string
}

// Count returns the total number of recommendation strings across buckets.
func (a AdaptationSet) Count() int {
	return len(a.TechniqueChanges) + len(a.ApproachAdjustments) +
		len(a.IntensityModifications) + len(a.CrisisProtocols)
}

// SessionAdaptation is the full adaptation bundle produced when triggers
// reach high or critical severity.
type SessionAdaptation struct {
	SessionID               string
	UserID                  string
	Adaptations             AdaptationSet
	Reasoning               string
	EffectivenessPrediction float64
}

// RoutingDecision is the write-once log row capturing one adaptation
// decision for later analytics.
type RoutingDecision struct {
	ID                      string
	UserID                  string
	SessionID               string
	ModelTag                string
	Reasoning               string
	Priority                int
	EffectivenessPrediction float64
	TriggerCount            int
	CreatedAt               time.Time
}

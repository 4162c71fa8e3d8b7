package domain

// Trigger is a detected condition with enough weight to justify adapting the
// session. Triggers are built fresh per evaluation and never persisted
// directly; only the resulting routing decision is logged.
type Trigger struct {
	Type       TriggerType
	Severity   Severity
	Data       map[string]any
	Confidence float64
}

// MaxSeverity returns the highest severity present in the trigger set, or
// SeverityLow for an empty set.
func MaxSeverity(triggers []Trigger) Severity {
	max := SeverityLow
	for _, t := range triggers {
		if t.Severity.AtLeast(max) {
			max = t.Severity
		}
	}
	return max
}

// AnyAtLeast reports whether any trigger is at or above the given severity.
func AnyAtLeast(triggers []Trigger, min Severity) bool {
	for _, t := range triggers {
		if t.Severity.AtLeast(min) {
			return true
		}
	}
	return false
}

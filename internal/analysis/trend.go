// Package analysis holds the stateless per-signal analyzers that decide
// whether a live session needs adapting. Each analyzer is a pure function
// over its inputs; fetching stored history is the caller's job.
package analysis

// Lookback windows and fetch limits shared by analyzers and their callers.
const (
	MoodLookbackDays      = 7
	MoodEntryLimit        = 5
	AlertLookbackHours    = 24
	TechniqueLookbackDays = 14
	TechniqueScoreLimit   = 5
)

// Trend computes the mean first difference of a mood series given most
// recent first, i.e. the average day-over-day change in chronological order.
// Fewer than two values yields 0.
func Trend(recentFirst []float64) float64 {
	n := len(recentFirst)
	if n < 2 {
		return 0
	}
	// Reorder to chronological before differencing.
	chrono := make([]float64, n)
	for i, v := range recentFirst {
		chrono[n-1-i] = v
	}
	var sum float64
	for i := 1; i < n; i++ {
		sum += chrono[i] - chrono[i-1]
	}
	return sum / float64(n-1)
}

// clamp01 restricts v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrend(t *testing.T) {
	tests := []struct {
		name        string
		recentFirst []float64
		want        float64
	}{
		{"empty", nil, 0},
		{"single", []float64{5}, 0},
		{"constant", []float64{7, 7, 7, 7}, 0},
		// Most recent first 2,3,4,5 is chronologically 5,4,3,2: steady -1/day.
		{"steady-decline", []float64{2, 3, 4, 5}, -1},
		{"steady-rise", []float64{8, 6, 4}, 2},
		// 8,8,3 chronologically 3,8,8: (+5 + 0) / 2.
		{"mixed", []float64{8, 8, 3}, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Trend(tt.recentFirst), 1e-9)
		})
	}
}

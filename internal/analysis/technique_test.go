package analysis

import (
	"testing"

	"github.com/alexanderramin/attune/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeTechnique(t *testing.T) {
	tests := []struct {
		name      string
		technique string
		scores    []float64
		want      domain.Severity
		wantNil   bool
	}{
		{"no-history", "breathing exercise", nil, "", true},
		{"no-technique", "", []float64{1, 1}, "", true},
		{"working-well", "journaling", []float64{7, 8, 6}, "", true},
		// Average 1.8 < 3.
		{"ineffective-high", "breathing exercise", []float64{1, 2, 2, 3, 1}, domain.SeverityHigh, false},
		// Average 4 in [3, 5).
		{"mediocre-medium", "grounding", []float64{4, 3, 5}, domain.SeverityMedium, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trigger := AnalyzeTechnique(tt.technique, tt.scores)
			if tt.wantNil {
				assert.Nil(t, trigger)
				return
			}
			require.NotNil(t, trigger)
			assert.Equal(t, domain.TriggerTechniqueIneffective, trigger.Type)
			assert.Equal(t, tt.want, trigger.Severity)
			assert.Equal(t, tt.technique, trigger.Data["technique"])
		})
	}
}

func TestAnalyzeTechnique_Confidence(t *testing.T) {
	trigger := AnalyzeTechnique("breathing exercise", []float64{1, 2})
	require.NotNil(t, trigger)
	assert.InDelta(t, 2.0/5.0, trigger.Confidence, 1e-9)

	trigger = AnalyzeTechnique("breathing exercise", []float64{1, 2, 2, 3, 1})
	require.NotNil(t, trigger)
	assert.InDelta(t, 1.0, trigger.Confidence, 1e-9)
}

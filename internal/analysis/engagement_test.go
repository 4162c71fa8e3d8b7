package analysis

import (
	"testing"

	"github.com/alexanderramin/attune/internal/domain"
	"github.com/alexanderramin/attune/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementScore_ClampedForExtremeInputs(t *testing.T) {
	tests := []struct {
		name string
		snap domain.SessionSnapshot
	}{
		{"huge-fast-deep", domain.SessionSnapshot{AvgResponseLen: 10000, AvgResponseSec: 0, InteractionDepth: 100}},
		{"terse-slow-shallow", domain.SessionSnapshot{AvgResponseLen: 1, AvgResponseSec: 10000, InteractionDepth: 0}},
		{"zero-values", domain.SessionSnapshot{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := EngagementScore(tt.snap)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		})
	}
}

func TestEngagementScore_Components(t *testing.T) {
	// Long responses, quick replies, full depth: 0.5+0.2+0.2+0.3 clamped to 1.
	engaged := domain.SessionSnapshot{AvgResponseLen: 120, AvgResponseSec: 30, InteractionDepth: 10}
	assert.InDelta(t, 1.0, EngagementScore(engaged), 1e-9)

	// Terse and slow: 0.5-0.2-0.3 = 0.
	disengaged := domain.SessionSnapshot{AvgResponseLen: 5, AvgResponseSec: 300}
	assert.InDelta(t, 0.0, EngagementScore(disengaged), 1e-9)
}

func TestAnalyzeEngagement_Tiers(t *testing.T) {
	// Score 0.0 → high severity.
	trigger := AnalyzeEngagement(domain.SessionSnapshot{AvgResponseLen: 5, AvgResponseSec: 300})
	require.NotNil(t, trigger)
	assert.Equal(t, domain.TriggerLowEngagement, trigger.Type)
	assert.Equal(t, domain.SeverityHigh, trigger.Severity)
	assert.InDelta(t, 0.8, trigger.Confidence, 1e-9)

	// Moderate length, quick replies: 0.5+0.2 = 0.7, no trigger.
	ok := AnalyzeEngagement(domain.SessionSnapshot{AvgResponseLen: 30, AvgResponseSec: 30})
	assert.Nil(t, ok)

	// Short responses at neutral latency: 0.5-0.2 = 0.3, the medium tier.
	mid := AnalyzeEngagement(domain.SessionSnapshot{AvgResponseLen: 10, AvgResponseSec: 90, InteractionDepth: 0})
	require.NotNil(t, mid)
	assert.Equal(t, domain.SeverityMedium, mid.Severity)
}

func TestAnalyzeEngagement_IgnoresStoredHistory(t *testing.T) {
	// Purely snapshot-driven: messages alone don't change the score.
	base := EngagementScore(domain.SessionSnapshot{AvgResponseLen: 30, AvgResponseSec: 90})
	withMsgs := testutil.Snapshot("hello", "still here")
	withMsgs.AvgResponseLen = 30
	withMsgs.AvgResponseSec = 90
	assert.InDelta(t, base, EngagementScore(withMsgs), 1e-9)
}

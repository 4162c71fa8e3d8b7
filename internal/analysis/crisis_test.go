package analysis

import (
	"testing"

	"github.com/alexanderramin/attune/internal/domain"
	"github.com/alexanderramin/attune/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanCrisisKeywords(t *testing.T) {
	tests := []struct {
		name        string
		messages    []domain.Message
		wantScore   int
		wantMatched []string
	}{
		{"no-messages", nil, 0, nil},
		{
			"single-hit",
			[]domain.Message{{IsUser: true, Content: "Everything feels HOPELESS lately"}},
			1,
			[]string{"hopeless"},
		},
		{
			"two-hits-one-message",
			[]domain.Message{{IsUser: true, Content: "I feel hopeless and want to end it all"}},
			2,
			[]string{"end it all", "hopeless"},
		},
		{
			"assistant-messages-ignored",
			[]domain.Message{{IsUser: false, Content: "suicide is mentioned here"}},
			0,
			nil,
		},
		{
			"keyword-counted-once",
			[]domain.Message{
				{IsUser: true, Content: "hopeless"},
				{IsUser: true, Content: "so hopeless"},
			},
			1,
			[]string{"hopeless"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, matched := ScanCrisisKeywords(tt.messages)
			assert.Equal(t, tt.wantScore, score)
			assert.ElementsMatch(t, tt.wantMatched, matched)
		})
	}
}

func TestScanCrisisKeywords_RecordsAtMostThree(t *testing.T) {
	msgs := []domain.Message{{
		IsUser:  true,
		Content: "suicide, self-harm, hopeless, want to die, can't go on",
	}}
	score, matched := ScanCrisisKeywords(msgs)
	assert.Equal(t, 5, score)
	assert.Len(t, matched, 3)
}

func TestAnalyzeCrisis_SeverityTiers(t *testing.T) {
	tests := []struct {
		name         string
		snap         domain.SessionSnapshot
		recentAlerts int
		want         domain.Severity
		wantNil      bool
	}{
		{"score-zero", testutil.Snapshot("I had a nice walk today"), 0, "", true},
		{"score-one-medium", testutil.Snapshot("it all feels hopeless"), 0, domain.SeverityMedium, false},
		{"score-two-high", testutil.Snapshot("I feel hopeless and want to end it all"), 0, domain.SeverityHigh, false},
		{"score-three-critical", testutil.Snapshot("hopeless, thinking about suicide, want to die"), 0, domain.SeverityCritical, false},
		{"alerts-only-high", testutil.Snapshot("I had a nice walk today"), 1, domain.SeverityHigh, false},
		{"alerts-escalate-critical", testutil.Snapshot("it all feels hopeless"), 1, domain.SeverityCritical, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trigger := AnalyzeCrisis(tt.snap, tt.recentAlerts)
			if tt.wantNil {
				assert.Nil(t, trigger)
				return
			}
			require.NotNil(t, trigger)
			assert.Equal(t, domain.TriggerCrisisIndicators, trigger.Type)
			assert.Equal(t, tt.want, trigger.Severity)
			assert.InDelta(t, 0.9, trigger.Confidence, 1e-9)
		})
	}
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpportunityCandidate_Validate(t *testing.T) {
	tests := []struct {
		name      string
		candidate OpportunityCandidate
		wantErr   bool
	}{
		{
			name:      "matching payload",
			candidate: OpportunityCandidate{SourceType: SourceCatalog, RawSourceID: "a", Payload: &SettlementPayload{}},
		},
		{
			name:      "mismatched payload",
			candidate: OpportunityCandidate{SourceType: SourceEmail, RawSourceID: "b", Payload: &PropertyPayload{}},
			wantErr:   true,
		},
		{
			name:      "missing payload",
			candidate: OpportunityCandidate{SourceType: SourceProperty, RawSourceID: "c"},
			wantErr:   true,
		},
		{
			name:      "unknown source",
			candidate: OpportunityCandidate{SourceType: "rumor", RawSourceID: "d", Payload: &EmailPayload{}},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.candidate.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOpportunityCandidate_PayloadAccessors(t *testing.T) {
	settlement := &OpportunityCandidate{
		SourceType: SourceCatalog,
		Payload:    &SettlementPayload{ClaimURL: "https://claims.example/meta", Eligibility: "US users"},
	}
	property := &OpportunityCandidate{
		SourceType: SourceProperty,
		Payload:    &PropertyPayload{PropertyID: "CA-1", ClaimURL: "https://ca.example?id=CA-1"},
	}
	email := &OpportunityCandidate{
		SourceType: SourceEmail,
		Payload:    &EmailPayload{ActionRequired: "Reply to support"},
	}

	assert.Equal(t, "https://claims.example/meta", settlement.ClaimURL())
	assert.Equal(t, "US users", settlement.Eligibility())
	assert.Equal(t, "https://ca.example?id=CA-1", property.ClaimURL())
	assert.Equal(t, "Property ID: CA-1", property.Eligibility())
	assert.Empty(t, email.ClaimURL())
	assert.Equal(t, "Reply to support", email.Eligibility())

	_, scored := email.Score()
	assert.False(t, scored)
	email.Match = &MatchResult{Score: 70}
	score, scored := email.Score()
	assert.True(t, scored)
	assert.Equal(t, 70, score)
}

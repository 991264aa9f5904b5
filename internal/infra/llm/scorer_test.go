package llm

import (
	"context"
	"net/http"
	"testing"

	"foundmoney/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCandidate() *entity.OpportunityCandidate {
	return &entity.OpportunityCandidate{
		SourceType:  entity.SourceCatalog,
		RawSourceID: "zoom-privacy-2024",
		Company:     "Zoom",
		Description: "Privacy settlement",
		Amount:      entity.ParseAmount("$15-$25"),
		Payload: &entity.SettlementPayload{
			SettlementID: "zoom-privacy-2024",
			Eligibility:  "Zoom users between March 2016 and July 2021",
		},
	}
}

func testProfile() *entity.UserProfile {
	return &entity.UserProfile{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Addresses: []*entity.Address{{City: "Austin", State: "tx", IsCurrent: true}, {State: "CA"}},
	}
}

func TestScorer_Score(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "in range", input: `{"score":72.4,"reasons":["uses zoom"],"likely_eligible":true}`, want: 72},
		{name: "above range is clamped", input: `{"score":140,"reasons":[],"likely_eligible":true}`, want: 100},
		{name: "below range is clamped", input: `{"score":-5,"reasons":[],"likely_eligible":false}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, api := newTestClient(t, map[string]fakeReply{"primary": {input: tt.input}})

			result, err := NewScorer(client).Score(context.Background(), testProfile(), testCandidate())
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Score)
			assert.False(t, result.Neutral)

			assert.Contains(t, api.firstPrompt(), "Austin, tx (current)")
			assert.Contains(t, api.firstPrompt(), "zoom-privacy-2024")
			assert.NotContains(t, api.firstPrompt(), "ada@example.com")
		})
	}
}

func TestScorer_ScoreError(t *testing.T) {
	client, _ := newTestClient(t, map[string]fakeReply{"primary": {status: http.StatusUnauthorized}})

	_, err := NewScorer(client).Score(context.Background(), testProfile(), testCandidate())
	assert.Error(t, err)
}

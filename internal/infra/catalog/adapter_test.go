package catalog

import (
	"context"
	"testing"
	"time"

	"foundmoney/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(value string) func() time.Time {
	return func() time.Time {
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			panic(err)
		}

		return t
	}
}

func TestAdapter_FiltersExpiredSettlements(t *testing.T) {
	settlements := []Settlement{
		{ID: "past", Company: "A", EstimatedPayout: "$5-$10", Deadline: "2026-10-15"},
		{ID: "today", Company: "B", EstimatedPayout: "$30-$200", Deadline: "2026-10-16"},
		{ID: "future", Company: "C", EstimatedPayout: "Unknown", Deadline: "2027-01-01"},
	}

	tests := []struct {
		name  string
		clock string
		want  []string
	}{
		{name: "start of day", clock: "2026-10-16T00:00:00Z", want: []string{"today", "future"}},
		{name: "end of day", clock: "2026-10-16T23:59:59Z", want: []string{"today", "future"}},
		{name: "offset clock is compared in UTC", clock: "2026-10-16T20:00:00-07:00", want: []string{"future"}},
		{name: "everything open", clock: "2026-01-01T12:00:00Z", want: []string{"past", "today", "future"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewAdapter(WithSettlements(settlements), WithClock(fixedClock(tt.clock)))

			candidates, err := adapter.Search(context.Background(), &entity.UserProfile{})
			require.NoError(t, err)

			ids := make([]string, 0, len(candidates))
			for _, candidate := range candidates {
				ids = append(ids, candidate.RawSourceID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestAdapter_CandidateMapping(t *testing.T) {
	adapter := NewAdapter(WithClock(fixedClock("2026-10-16T09:00:00Z")))

	candidates, err := adapter.Search(context.Background(), &entity.UserProfile{})
	require.NoError(t, err)
	require.NotEmpty(t, candidates)

	for _, candidate := range candidates {
		require.NoError(t, candidate.Validate())
		assert.Equal(t, entity.SourceCatalog, candidate.SourceType)
		assert.NotEmpty(t, candidate.ClaimURL())
		require.NotNil(t, candidate.Deadline)
		assert.False(t, candidate.Deadline.Before(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)))
	}
}

func TestAdapter_InvalidDeadline(t *testing.T) {
	adapter := NewAdapter(WithSettlements([]Settlement{{ID: "bad", Deadline: "soon"}}))

	_, err := adapter.Search(context.Background(), &entity.UserProfile{})
	assert.Error(t, err)
}

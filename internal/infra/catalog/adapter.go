// Package catalog serves the built-in class-action settlement catalog.
package catalog

import (
	"context"
	"slices"
	"time"

	"foundmoney/internal/domain/entity"
	"foundmoney/internal/errors"
)

const deadlineLayout = "2006-01-02"

// Adapter is the catalog source. It is safe for concurrent use.
type Adapter struct {
	settlements []Settlement
	now         func() time.Time
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithClock overrides the clock used for the deadline filter.
func WithClock(now func() time.Time) Option {
	return func(a *Adapter) {
		a.now = now
	}
}

// WithSettlements replaces the built-in catalog.
func WithSettlements(settlements []Settlement) Option {
	return func(a *Adapter) {
		a.settlements = settlements
	}
}

// NewAdapter creates the catalog source adapter.
func NewAdapter(opts ...Option) *Adapter {
	a := &Adapter{
		settlements: defaultSettlements,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Source implements service.SourceAdapter.
func (a *Adapter) Source() entity.SourceType {
	return entity.SourceCatalog
}

// Search returns every settlement still open today. The catalog does not
// depend on the profile; relevance is decided by the scorer.
func (a *Adapter) Search(ctx context.Context, _ *entity.UserProfile) ([]*entity.OpportunityCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	today := truncateToDate(a.now())

	candidates := make([]*entity.OpportunityCandidate, 0, len(a.settlements))
	for _, settlement := range a.settlements {
		deadline, err := time.Parse(deadlineLayout, settlement.Deadline)
		if err != nil {
			return nil, errors.Wrapf(err, "settlement %s has invalid deadline", settlement.ID)
		}
		if deadline.Before(today) {
			continue
		}
		candidates = append(candidates, toCandidate(settlement, deadline))
	}

	return candidates, nil
}

func toCandidate(settlement Settlement, deadline time.Time) *entity.OpportunityCandidate {
	return &entity.OpportunityCandidate{
		SourceType:  entity.SourceCatalog,
		RawSourceID: settlement.ID,
		Company:     settlement.Company,
		Description: settlement.Description,
		Amount:      entity.ParseAmount(settlement.EstimatedPayout),
		Deadline:    &deadline,
		Payload: &entity.SettlementPayload{
			SettlementID: settlement.ID,
			Title:        settlement.Title,
			ClaimURL:     settlement.ClaimURL,
			Eligibility:  settlement.Eligibility,
			Categories:   slices.Clone(settlement.Categories),
			Deadline:     deadline,
		},
	}
}

// truncateToDate returns midnight UTC of t's UTC calendar date.
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

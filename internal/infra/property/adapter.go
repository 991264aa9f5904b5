package property

import (
	"context"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"

	"golang.org/x/sync/errgroup"
)

// Adapter is the jurisdiction source: one registry lookup per state the
// user has lived in, run concurrently and failing open per state.
type Adapter struct {
	registry      service.PropertyRegistry
	defaultStates []string
	fanout        int
	logger        *slog.Logger
}

// NewAdapter creates the property source adapter. defaultStates is searched
// when the profile has no address; fanout caps concurrent lookups.
func NewAdapter(registry service.PropertyRegistry, defaultStates []string, fanout int, logger *slog.Logger) *Adapter {
	if fanout <= 0 {
		fanout = len(supportedJurisdictions)
	}

	return &Adapter{
		registry:      registry,
		defaultStates: defaultStates,
		fanout:        fanout,
		logger:        logger,
	}
}

// Source implements service.SourceAdapter.
func (a *Adapter) Source() entity.SourceType {
	return entity.SourceProperty
}

// SearchStates returns the states a search for profile covers.
func (a *Adapter) SearchStates(profile *entity.UserProfile) []string {
	if states := profile.States(); len(states) > 0 {
		return states
	}

	return slices.Clone(a.defaultStates)
}

// Jurisdictions implements service.PropertySource.
func (a *Adapter) Jurisdictions() []entity.Jurisdiction {
	return Jurisdictions()
}

// Search implements service.SourceAdapter. It fails only when the profile
// has no full name; a failing jurisdiction contributes nothing.
func (a *Adapter) Search(ctx context.Context, profile *entity.UserProfile) ([]*entity.OpportunityCandidate, error) {
	if !profile.HasName() {
		return nil, service.ErrProfileNameMissing
	}

	states := a.SearchStates(profile)
	owner := service.PropertyOwner{
		FirstName: strings.TrimSpace(profile.FirstName),
		LastName:  strings.TrimSpace(profile.LastName),
	}

	perState := make([][]*entity.OpportunityCandidate, len(states))

	var g errgroup.Group
	g.SetLimit(a.fanout)
	for i, state := range states {
		g.Go(func() error {
			candidates, err := a.searchJurisdiction(ctx, state, owner)
			if err != nil {
				a.logger.WarnContext(ctx, "jurisdiction lookup failed",
					slog.String("state", state),
					slog.Any("error", err),
				)

				return nil
			}
			perState[i] = candidates

			return nil
		})
	}
	_ = g.Wait()

	candidates := make([]*entity.OpportunityCandidate, 0)
	for _, found := range perState {
		candidates = append(candidates, found...)
	}

	return candidates, nil
}

func (a *Adapter) searchJurisdiction(ctx context.Context, state string, owner service.PropertyOwner) ([]*entity.OpportunityCandidate, error) {
	jurisdiction, ok := FindJurisdiction(state)
	if !ok {
		return nil, errors.Wrapf(service.ErrUnsupportedJurisdiction, "state %q", state)
	}

	records, err := a.registry.Lookup(ctx, jurisdiction, owner)
	if err != nil {
		return nil, err
	}

	candidates := make([]*entity.OpportunityCandidate, 0, len(records))
	for _, record := range records {
		candidates = append(candidates, toCandidate(jurisdiction, record))
	}

	return candidates, nil
}

func toCandidate(jurisdiction entity.Jurisdiction, record *service.PropertyRecord) *entity.OpportunityCandidate {
	return &entity.OpportunityCandidate{
		SourceType:  entity.SourceProperty,
		RawSourceID: record.PropertyID,
		Company:     record.ReportedBy,
		Description: record.PropertyType + " - " + record.Location,
		Amount:      entity.ParseAmount(record.Amount),
		Payload: &entity.PropertyPayload{
			Jurisdiction:    jurisdiction.Code,
			PropertyID:      record.PropertyID,
			OwnerName:       record.OwnerName,
			PropertyType:    record.PropertyType,
			ReportedBy:      record.ReportedBy,
			ReportedOn:      record.DateReported,
			Location:        record.Location,
			ClaimURL:        claimURL(jurisdiction.SearchURL, record.PropertyID),
			MatchConfidence: record.MatchConfidence,
		},
	}
}

// claimURL is the registry search page with the property ID preselected.
func claimURL(searchURL, propertyID string) string {
	u, err := url.Parse(searchURL)
	if err != nil {
		return searchURL
	}
	q := u.Query()
	q.Set("id", propertyID)
	u.RawQuery = q.Encode()

	return u.String()
}

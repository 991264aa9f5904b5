package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"foundmoney/config"
	deliverycontext "foundmoney/internal/delivery/context"
	domainerrors "foundmoney/internal/domain/errors"
	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/repository"
	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"
	"foundmoney/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// unknownAmountFloor is what an unparseable amount adds to the estimated
// value, per source.
var unknownAmountFloor = map[entity.SourceType]float64{
	entity.SourceCatalog:  0,
	entity.SourceProperty: 100,
	entity.SourceEmail:    50,
}

// sourceOutcome is one source's contribution to a search run.
type sourceOutcome struct {
	candidates []*entity.OpportunityCandidate
	errs       []usecase.PartialError
	searchErr  error // Raw adapter error, kept to derive the email status.
}

type searchService struct {
	profileRepo repository.ProfileRepository
	catalog     service.SourceAdapter
	property    service.PropertySource
	email       service.SourceAdapter
	scoring     *scoringPipeline
	writer      *recordWriter
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// SearchServiceParams holds the dependencies of the search use case.
type SearchServiceParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	ProfileRepo    repository.ProfileRepository
	MoneyFoundRepo repository.MoneyFoundRepository
	Catalog        service.SourceAdapter `name:"catalogSource"`
	Property       service.PropertySource
	Email          service.SourceAdapter `name:"emailSource"`
	Scorer         service.MatchScorer
	ScoreCache     service.ScoreCache `optional:"true"`
	Publisher      service.EventPublisher
}

// NewSearchService creates the aggregator.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		profileRepo: params.ProfileRepo,
		catalog:     params.Catalog,
		property:    params.Property,
		email:       params.Email,
		scoring:     newScoringPipeline(params.Scorer, params.ScoreCache, scoringPolicy(params.Config), params.Logger),
		writer:      newRecordWriter(params.MoneyFoundRepo, params.Logger),
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// scoringPolicy reads the thresholds, falling back to the documented defaults.
func scoringPolicy(cfg *config.Config) ScoringPolicy {
	policy := ScoringPolicy{Threshold: 30, Neutral: 50, CacheTTL: 24 * time.Hour}
	if cfg.Search != nil {
		if cfg.Search.ScoreThreshold > 0 {
			policy.Threshold = cfg.Search.ScoreThreshold
		}
		if cfg.Search.NeutralScore > 0 {
			policy.Neutral = cfg.Search.NeutralScore
		}
	}
	if cfg.ScoreCache != nil && cfg.ScoreCache.TTL > 0 {
		policy.CacheTTL = cfg.ScoreCache.TTL
	}

	return policy
}

// SearchAll runs every source concurrently. Each source searches, scores and
// persists on its own, so one source's failure only shows up in PartialErrors.
func (s *searchService) SearchAll(ctx context.Context, userID uuid.UUID) (*usecase.SearchResult, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	sources := []service.SourceAdapter{s.catalog, s.property, s.email}
	outcomes := make([]sourceOutcome, len(sources))

	var g errgroup.Group
	for i, source := range sources {
		g.Go(func() error {
			outcomes[i] = s.runSource(ctx, profile, source)

			return nil
		})
	}
	_ = g.Wait()

	result := &usecase.SearchResult{
		ClassActions:       outcomes[0].candidates,
		UnclaimedProperty:  outcomes[1].candidates,
		EmailOpportunities: outcomes[2].candidates,
		EmailStatus:        emailStatus(outcomes[2].searchErr),
		PartialErrors:      make([]usecase.PartialError, 0),
	}
	for i, outcome := range outcomes {
		result.TotalFound += len(outcome.candidates)
		result.EstimatedValue += estimateValue(sources[i].Source(), outcome.candidates)
		result.PartialErrors = append(result.PartialErrors, outcome.errs...)
	}
	result.Message = foundMessage(result.TotalFound, result.EstimatedValue, "opportunities")

	s.publishCompleted(ctx, userID, result.TotalFound, result.EstimatedValue)

	return result, nil
}

// SearchClassActions runs the catalog source alone.
func (s *searchService) SearchClassActions(ctx context.Context, userID uuid.UUID) (*usecase.ClassActionSearchResult, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	outcome := s.runSource(ctx, profile, s.catalog)
	value := estimateValue(entity.SourceCatalog, outcome.candidates)

	return &usecase.ClassActionSearchResult{
		Settlements:    outcome.candidates,
		TotalFound:     len(outcome.candidates),
		EstimatedValue: value,
		PartialErrors:  outcome.errs,
	}, nil
}

// SearchUnclaimedProperty runs the property source alone. A name override
// replaces the stored name for this search only.
func (s *searchService) SearchUnclaimedProperty(ctx context.Context, userID uuid.UUID, override *usecase.NameOverride) (*usecase.PropertySearchResult, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if override != nil {
		searched := *profile
		if name := strings.TrimSpace(override.FirstName); name != "" {
			searched.FirstName = name
		}
		if name := strings.TrimSpace(override.LastName); name != "" {
			searched.LastName = name
		}
		profile = &searched
	}
	if !profile.HasName() {
		return nil, domainerrors.ErrNameRequired
	}

	outcome := s.runSource(ctx, profile, s.property)
	stats := propertyStats(outcome.candidates)

	return &usecase.PropertySearchResult{
		Properties:     outcome.candidates,
		TotalFound:     len(outcome.candidates),
		EstimatedValue: estimateValue(entity.SourceProperty, outcome.candidates),
		Stats:          stats,
		SearchedStates: s.property.SearchStates(profile),
		PartialErrors:  outcome.errs,
		Message:        foundMessage(stats.TotalProperties, stats.EstimatedTotal, "unclaimed properties"),
	}, nil
}

// Jurisdictions lists the registries property searches can reach.
func (s *searchService) Jurisdictions(_ context.Context) []entity.Jurisdiction {
	return s.property.Jurisdictions()
}

func (s *searchService) loadProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load profile")
	}

	return profile, nil
}

// runSource is the per-source pipeline: search, score, filter, sort, persist.
// It never fails; problems become partial errors.
func (s *searchService) runSource(ctx context.Context, profile *entity.UserProfile, source service.SourceAdapter) sourceOutcome {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	sourceType := source.Source()
	outcome := sourceOutcome{candidates: make([]*entity.OpportunityCandidate, 0)}

	candidates, err := source.Search(ctx, profile)
	if err != nil {
		outcome.searchErr = err
		if errors.Is(err, service.ErrMailboxNotConnected) {
			return outcome
		}
		logger.WarnContext(ctx, "Source search failed",
			slog.String("source", string(sourceType)),
			slog.Any("error", err),
		)
		outcome.errs = append(outcome.errs, usecase.PartialError{
			Source:  sourceType,
			Stage:   usecase.StageSearch,
			Message: err.Error(),
		})

		return outcome
	}

	valid := make([]*entity.OpportunityCandidate, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			logger.WarnContext(ctx, "Dropping malformed candidate", slog.Any("error", err))

			continue
		}
		// One row per natural key: a batch upsert cannot touch the same row twice.
		if _, dup := seen[candidate.RawSourceID]; dup {
			logger.DebugContext(ctx, "Dropping duplicate candidate",
				slog.String("source", string(sourceType)),
				slog.String("raw_source_id", candidate.RawSourceID),
			)

			continue
		}
		seen[candidate.RawSourceID] = struct{}{}
		valid = append(valid, candidate)
	}

	if sourceType == entity.SourceEmail {
		outcome.candidates = s.filterPrescored(valid)
	} else {
		outcome.candidates = s.scoring.scoreAndFilter(ctx, profile, valid)
	}

	if err := s.writer.persist(ctx, profile.ID, sourceType, outcome.candidates); err != nil {
		outcome.errs = append(outcome.errs, usecase.PartialError{
			Source:  sourceType,
			Stage:   usecase.StagePersist,
			Message: err.Error(),
		})
	}

	return outcome
}

// filterPrescored applies the threshold to candidates the source already scored.
func (s *searchService) filterPrescored(candidates []*entity.OpportunityCandidate) []*entity.OpportunityCandidate {
	kept := make([]*entity.OpportunityCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Match == nil {
			candidate.Match = s.scoring.neutral()
		}
		if candidate.Match.Score > s.scoring.policy.Threshold {
			kept = append(kept, candidate)
		}
	}
	sortCandidates(kept)

	return kept
}

func (s *searchService) publishCompleted(ctx context.Context, userID uuid.UUID, totalFound int, value float64) {
	if totalFound == 0 {
		return
	}

	event := &service.SearchCompletedEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		UserID:         userID.String(),
		TotalFound:     totalFound,
		EstimatedValue: value,
		CompletedAt:    s.now(),
	}
	if err := s.publisher.PublishSearchCompleted(context.WithoutCancel(ctx), event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).WarnContext(ctx, "Failed to publish search completed event",
			slog.String("user_id", event.UserID),
			slog.Any("error", err),
		)
	}
}

// emailStatus separates "never connected" from "connected, nothing found".
func emailStatus(err error) usecase.EmailStatus {
	switch {
	case err == nil:
		return usecase.EmailConnected
	case errors.Is(err, service.ErrMailboxNotConnected):
		return usecase.EmailNotConnected
	case errors.Is(err, service.ErrMailboxAuthExpired):
		return usecase.EmailAuthExpired
	default:
		return usecase.EmailConnected
	}
}

// estimateValue sums the amount ceilings, substituting the source's floor
// for amounts that could not be parsed.
func estimateValue(source entity.SourceType, candidates []*entity.OpportunityCandidate) float64 {
	var total float64
	for _, candidate := range candidates {
		if candidate.Amount.Known() {
			total += candidate.Amount.UpperBound()
		} else {
			total += unknownAmountFloor[source]
		}
	}

	return total
}

// propertyStats counts "Over $X" toward the estimate but not the known total.
func propertyStats(candidates []*entity.OpportunityCandidate) usecase.PropertyStats {
	stats := usecase.PropertyStats{TotalProperties: len(candidates)}
	for _, candidate := range candidates {
		switch candidate.Amount.Kind {
		case entity.AmountExact, entity.AmountRange:
			stats.EstimatedTotal += candidate.Amount.UpperBound()
			stats.KnownTotal += candidate.Amount.UpperBound()
		case entity.AmountAtLeast:
			stats.EstimatedTotal += candidate.Amount.Min
			stats.UnknownCount++
		default:
			stats.UnknownCount++
		}
	}
	if stats.TotalProperties > 0 {
		stats.AverageAmount = stats.EstimatedTotal / float64(stats.TotalProperties)
	}

	return stats
}

func foundMessage(count int, value float64, noun string) string {
	return fmt.Sprintf("Found %d %s worth approximately $%.2f", count, noun, value)
}

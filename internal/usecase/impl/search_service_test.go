package impl

import (
	"context"
	"errors"
	"sync"
	"testing"

	"foundmoney/config"
	domainerrors "foundmoney/internal/domain/errors"
	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/repository"
	"foundmoney/internal/domain/service"
	mockRepo "foundmoney/internal/mocks/repository"
	mockSvc "foundmoney/internal/mocks/service"
	"foundmoney/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type searchServiceFixtures struct {
	profiles  *mockRepo.MockProfileRepository
	records   *mockRepo.MockMoneyFoundRepository
	catalog   *mockSvc.MockSourceAdapter
	property  *mockSvc.MockPropertySource
	email     *mockSvc.MockSourceAdapter
	scorer    *mockSvc.MockMatchScorer
	publisher *mockSvc.MockEventPublisher
	svc       usecase.SearchUsecase
}

func sourceAdapter(t *testing.T, source entity.SourceType) *mockSvc.MockSourceAdapter {
	adapter := mockSvc.NewMockSourceAdapter(t)
	adapter.EXPECT().Source().Return(source).Maybe()

	return adapter
}

func createTestSearchService(t *testing.T, cfg *config.Config, cache service.ScoreCache) *searchServiceFixtures {
	property := mockSvc.NewMockPropertySource(t)
	property.EXPECT().Source().Return(entity.SourceProperty).Maybe()
	property.EXPECT().SearchStates(mock.Anything).Return([]string{"TX", "CA"}).Maybe()

	f := &searchServiceFixtures{
		profiles:  mockRepo.NewMockProfileRepository(t),
		records:   mockRepo.NewMockMoneyFoundRepository(t),
		catalog:   sourceAdapter(t, entity.SourceCatalog),
		property:  property,
		email:     sourceAdapter(t, entity.SourceEmail),
		scorer:    mockSvc.NewMockMatchScorer(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	f.svc = NewSearchService(SearchServiceParams{
		Config:         cfg,
		Logger:         newDiscardLogger(),
		ProfileRepo:    f.profiles,
		MoneyFoundRepo: f.records,
		Catalog:        f.catalog,
		Property:       f.property,
		Email:          f.email,
		Scorer:         f.scorer,
		ScoreCache:     cache,
		Publisher:      f.publisher,
	})

	return f
}

func (f *searchServiceFixtures) scoreAs(id string, score int) {
	f.scorer.EXPECT().Score(mock.Anything, mock.Anything, mock.MatchedBy(func(c *entity.OpportunityCandidate) bool {
		return c.RawSourceID == id
	})).Return(&entity.MatchResult{Score: score, Reasons: []string{"matched " + id}}, nil)
}

func candidateIDs(candidates []*entity.OpportunityCandidate) []string {
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.RawSourceID)
	}

	return ids
}

func TestSearchService_SearchAll_MergesFiltersAndSorts(t *testing.T) {
	f := createTestSearchService(t, nil, nil)
	ctx := context.Background()
	profile := testProfile()

	f.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	f.catalog.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{
		catalogCandidate("low", "$500"),
		catalogCandidate("edge", "$75"),
		catalogCandidate("best", "$100"),
		catalogCandidate("tie", "$50 - $200"),
	}, nil)
	f.property.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{
		propertyCandidate("p1", "Unknown"),
	}, nil)
	f.email.EXPECT().Search(mock.Anything, profile).Return(nil, service.ErrMailboxNotConnected)

	f.scoreAs("low", 12)
	f.scoreAs("edge", 30)
	f.scoreAs("best", 90)
	f.scoreAs("tie", 90)
	f.scoreAs("p1", 70)
	f.records.EXPECT().UpsertBatch(mock.Anything, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishSearchCompleted(mock.Anything, mock.MatchedBy(func(e *service.SearchCompletedEvent) bool {
		return e.TotalFound == 3 && e.UserID == profile.ID.String()
	})).Return(nil)

	result, err := f.svc.SearchAll(ctx, profile.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"tie", "best"}, candidateIDs(result.ClassActions))
	assert.Equal(t, []string{"p1"}, candidateIDs(result.UnclaimedProperty))
	assert.Empty(t, result.EmailOpportunities)
	assert.NotNil(t, result.EmailOpportunities)
	assert.Equal(t, usecase.EmailNotConnected, result.EmailStatus)
	assert.Empty(t, result.PartialErrors)
	assert.Equal(t, 3, result.TotalFound)
	// 200 + 100 from the catalog, 100 floor for the unknown property amount.
	assert.InDelta(t, 400.0, result.EstimatedValue, 0.001)

	f.records.AssertNumberOfCalls(t, "UpsertBatch", 2)
}

func TestSearchService_SearchAll_SourceFailureIsPartial(t *testing.T) {
	f := createTestSearchService(t, nil, nil)
	ctx := context.Background()
	profile := testProfile()

	f.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	f.catalog.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{catalogCandidate("a", "$40")}, nil)
	f.property.EXPECT().Search(mock.Anything, profile).Return(nil, errors.New("registry down"))
	f.email.EXPECT().Search(mock.Anything, profile).Return(nil, service.ErrMailboxAuthExpired)
	f.scoreAs("a", 80)
	f.records.EXPECT().UpsertBatch(mock.Anything, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishSearchCompleted(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	result, err := f.svc.SearchAll(ctx, profile.ID)
	require.NoError(t, err)

	assert.Len(t, result.ClassActions, 1)
	assert.Equal(t, usecase.EmailAuthExpired, result.EmailStatus)
	require.Len(t, result.PartialErrors, 2)
	assert.Equal(t, entity.SourceProperty, result.PartialErrors[0].Source)
	assert.Equal(t, usecase.StageSearch, result.PartialErrors[0].Stage)
	assert.Equal(t, entity.SourceEmail, result.PartialErrors[1].Source)
}

func TestSearchService_SearchAll_ScorerFailureGivesNeutral(t *testing.T) {
	f := createTestSearchService(t, nil, nil)
	ctx := context.Background()
	profile := testProfile()

	f.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	f.catalog.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{catalogCandidate("a", "$40")}, nil)
	f.property.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{}, nil)
	f.email.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{}, nil)
	f.scorer.EXPECT().Score(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("llm unavailable"))
	f.records.EXPECT().UpsertBatch(mock.Anything, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishSearchCompleted(mock.Anything, mock.Anything).Return(nil)

	result, err := f.svc.SearchAll(ctx, profile.ID)
	require.NoError(t, err)

	require.Len(t, result.ClassActions, 1)
	match := result.ClassActions[0].Match
	assert.Equal(t, 50, match.Score)
	assert.True(t, match.Neutral)
	assert.Equal(t, usecase.EmailConnected, result.EmailStatus)
}

func TestSearchService_SearchAll_PersistFailureIsPartial(t *testing.T) {
	f := createTestSearchService(t, nil, nil)
	ctx := context.Background()
	profile := testProfile()

	f.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	f.catalog.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{catalogCandidate("a", "$40")}, nil)
	f.property.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{}, nil)
	f.email.EXPECT().Search(mock.Anything, profile).Return(nil, service.ErrMailboxNotConnected)
	f.scoreAs("a", 80)
	f.records.EXPECT().UpsertBatch(mock.Anything, mock.Anything).Return(errors.New("deadlock"))
	f.publisher.EXPECT().PublishSearchCompleted(mock.Anything, mock.Anything).Return(nil)

	result, err := f.svc.SearchAll(ctx, profile.ID)
	require.NoError(t, err)

	assert.Len(t, result.ClassActions, 1)
	require.Len(t, result.PartialErrors, 1)
	assert.Equal(t, usecase.StagePersist, result.PartialErrors[0].Stage)
}

func TestSearchService_SearchAll_NothingFoundSkipsPublish(t *testing.T) {
	f := createTestSearchService(t, nil, nil)
	ctx := context.Background()
	profile := testProfile()

	f.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	f.catalog.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{}, nil)
	f.property.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{}, nil)
	f.email.EXPECT().Search(mock.Anything, profile).Return(nil, service.ErrMailboxNotConnected)

	result, err := f.svc.SearchAll(ctx, profile.ID)
	require.NoError(t, err)

	assert.Zero(t, result.TotalFound)
	f.publisher.AssertNotCalled(t, "PublishSearchCompleted", mock.Anything, mock.Anything)
	f.records.AssertNotCalled(t, "UpsertBatch", mock.Anything, mock.Anything)
}

func TestSearchService_SearchAll_ProfileNotFound(t *testing.T) {
	f := createTestSearchService(t, nil, nil)
	ctx := context.Background()
	profile := testProfile()

	f.profiles.EXPECT().FindByID(ctx, profile.ID).Return(nil, repository.ErrProfileNotFound)

	_, err := f.svc.SearchAll(ctx, profile.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	f.catalog.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearchService_SearchAll_EmailKeepsPrescoredMatch(t *testing.T) {
	f := createTestSearchService(t, nil, nil)
	ctx := context.Background()
	profile := testProfile()

	email := &entity.OpportunityCandidate{
		SourceType:  entity.SourceEmail,
		RawSourceID: "msg-1:0",
		Company:     "Shop",
		Amount:      entity.ParseAmount("unknown"),
		Match:       &entity.MatchResult{Score: 50, Reasons: []string{"Found in an email from Shop"}},
		Payload:     &entity.EmailPayload{MessageID: "msg-1"},
	}
	f.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	f.catalog.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{}, nil)
	f.property.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{}, nil)
	f.email.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{email}, nil)
	f.records.EXPECT().UpsertBatch(mock.Anything, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishSearchCompleted(mock.Anything, mock.Anything).Return(nil)

	result, err := f.svc.SearchAll(ctx, profile.ID)
	require.NoError(t, err)

	assert.Len(t, result.EmailOpportunities, 1)
	assert.InDelta(t, 50.0, result.EstimatedValue, 0.001)
	f.scorer.AssertNotCalled(t, "Score", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchService_SearchUnclaimedProperty_NameOverride(t *testing.T) {
	f := createTestSearchService(t, nil, nil)
	ctx := context.Background()
	profile := testProfile()
	profile.FirstName = ""

	f.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	f.property.EXPECT().Search(mock.Anything, mock.MatchedBy(func(p *entity.UserProfile) bool {
		return p.FirstName == "Janet" && p.LastName == "Doe"
	})).Return([]*entity.OpportunityCandidate{
		propertyCandidate("p1", "$120.50"),
		propertyCandidate("p2", "Over $100"),
		propertyCandidate("p3", "Unknown"),
	}, nil)
	f.scorer.EXPECT().Score(mock.Anything, mock.Anything, mock.Anything).Return(&entity.MatchResult{Score: 80}, nil)
	f.records.EXPECT().UpsertBatch(mock.Anything, mock.Anything).Return(nil)

	result, err := f.svc.SearchUnclaimedProperty(ctx, profile.ID, &usecase.NameOverride{FirstName: " Janet "})
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalFound)
	assert.Equal(t, []string{"TX", "CA"}, result.SearchedStates)
	assert.Equal(t, 3, result.Stats.TotalProperties)
	assert.InDelta(t, 220.5, result.Stats.EstimatedTotal, 0.001)
	assert.InDelta(t, 120.5, result.Stats.KnownTotal, 0.001)
	assert.Equal(t, 2, result.Stats.UnknownCount)
	assert.InDelta(t, 73.5, result.Stats.AverageAmount, 0.001)
	assert.Empty(t, profile.FirstName, "stored profile must not change")
	f.publisher.AssertNotCalled(t, "PublishSearchCompleted", mock.Anything, mock.Anything)
}

func TestSearchService_SearchUnclaimedProperty_NameRequired(t *testing.T) {
	f := createTestSearchService(t, nil, nil)
	ctx := context.Background()
	profile := testProfile()
	profile.LastName = " "

	f.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)

	_, err := f.svc.SearchUnclaimedProperty(ctx, profile.ID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNameRequired)
	f.property.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearchService_SearchClassActions(t *testing.T) {
	f := createTestSearchService(t, &config.Config{Search: &config.SearchConfig{ScoreThreshold: 60}}, nil)
	ctx := context.Background()
	profile := testProfile()

	f.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	f.catalog.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{
		catalogCandidate("a", "$10"),
		catalogCandidate("b", "Varies"),
	}, nil)
	f.scoreAs("a", 55)
	f.scoreAs("b", 61)
	f.records.EXPECT().UpsertBatch(mock.Anything, mock.MatchedBy(func(records []*entity.MoneyFoundRecord) bool {
		return len(records) == 1 && records[0].ExternalID == "b" && records[0].Status == entity.StatusUnclaimed
	})).Return(nil)

	result, err := f.svc.SearchClassActions(ctx, profile.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"b"}, candidateIDs(result.Settlements))
	assert.Zero(t, result.EstimatedValue)
}

func TestSearchService_Jurisdictions(t *testing.T) {
	f := createTestSearchService(t, nil, nil)
	jurisdictions := []entity.Jurisdiction{{Code: "TX", Name: "Texas"}}
	f.property.EXPECT().Jurisdictions().Return(jurisdictions)

	assert.Equal(t, jurisdictions, f.svc.Jurisdictions(context.Background()))
}

func TestSearchService_SearchAll_DropsDuplicateCandidates(t *testing.T) {
	f := createTestSearchService(t, nil, nil)
	ctx := context.Background()
	profile := testProfile()

	f.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	f.catalog.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{}, nil)
	f.property.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{
		propertyCandidate("p1", "$10"),
		propertyCandidate("p1", "$10"),
		propertyCandidate("p2", "$5"),
	}, nil)
	f.email.EXPECT().Search(mock.Anything, profile).Return(nil, service.ErrMailboxNotConnected)
	f.scorer.EXPECT().Score(mock.Anything, mock.Anything, mock.Anything).Return(&entity.MatchResult{Score: 80}, nil)
	f.records.EXPECT().UpsertBatch(mock.Anything, mock.MatchedBy(func(records []*entity.MoneyFoundRecord) bool {
		return len(records) == 2 && records[0].ExternalID != records[1].ExternalID
	})).Return(nil)
	f.publisher.EXPECT().PublishSearchCompleted(mock.Anything, mock.Anything).Return(nil)

	result, err := f.svc.SearchAll(ctx, profile.ID)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"p1", "p2"}, candidateIDs(result.UnclaimedProperty))
	assert.Equal(t, 2, result.TotalFound)
	assert.InDelta(t, 15.0, result.EstimatedValue, 0.001)
	assert.Empty(t, result.PartialErrors)
	f.scorer.AssertNumberOfCalls(t, "Score", 2)
}

func TestSearchService_SearchAll_CatalogFailureIsPartial(t *testing.T) {
	f := createTestSearchService(t, nil, nil)
	ctx := context.Background()
	profile := testProfile()

	f.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	f.catalog.EXPECT().Search(mock.Anything, profile).Return(nil, errors.New("catalog unavailable"))
	f.property.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{propertyCandidate("p1", "$25")}, nil)
	f.email.EXPECT().Search(mock.Anything, profile).Return(nil, service.ErrMailboxNotConnected)
	f.scoreAs("p1", 70)
	f.records.EXPECT().UpsertBatch(mock.Anything, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishSearchCompleted(mock.Anything, mock.Anything).Return(nil)

	result, err := f.svc.SearchAll(ctx, profile.ID)
	require.NoError(t, err)

	assert.Empty(t, result.ClassActions)
	assert.NotNil(t, result.ClassActions)
	assert.Equal(t, []string{"p1"}, candidateIDs(result.UnclaimedProperty))
	require.Len(t, result.PartialErrors, 1)
	assert.Equal(t, entity.SourceCatalog, result.PartialErrors[0].Source)
	assert.Equal(t, usecase.StageSearch, result.PartialErrors[0].Stage)
	assert.Contains(t, result.PartialErrors[0].Message, "catalog unavailable")
}

func TestSearchService_SearchAll_RerunKeepsNaturalKeys(t *testing.T) {
	f := createTestSearchService(t, nil, nil)
	ctx := context.Background()
	profile := testProfile()

	f.profiles.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	f.catalog.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{
		catalogCandidate("s1", "$40"),
		catalogCandidate("s2", "$60"),
	}, nil)
	f.property.EXPECT().Search(mock.Anything, profile).Return([]*entity.OpportunityCandidate{propertyCandidate("p1", "$25")}, nil)
	f.email.EXPECT().Search(mock.Anything, profile).Return(nil, service.ErrMailboxNotConnected)
	f.scorer.EXPECT().Score(mock.Anything, mock.Anything, mock.Anything).Return(&entity.MatchResult{Score: 80}, nil)
	f.publisher.EXPECT().PublishSearchCompleted(mock.Anything, mock.Anything).Return(nil)

	var (
		mu   sync.Mutex
		keys []string
	)
	f.records.EXPECT().UpsertBatch(mock.Anything, mock.Anything).Return(nil).Run(func(_ context.Context, records []*entity.MoneyFoundRecord) {
		mu.Lock()
		defer mu.Unlock()
		for _, record := range records {
			keys = append(keys, record.UserID.String()+"/"+string(record.SourceType)+"/"+record.ExternalID)
		}
	})

	_, err := f.svc.SearchAll(ctx, profile.ID)
	require.NoError(t, err)
	first := append([]string(nil), keys...)
	keys = nil

	_, err = f.svc.SearchAll(ctx, profile.ID)
	require.NoError(t, err)

	require.Len(t, first, 3)
	assert.ElementsMatch(t, first, keys)
}

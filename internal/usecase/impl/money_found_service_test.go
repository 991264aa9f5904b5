package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "foundmoney/internal/domain/errors"
	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/repository"
	mockRepo "foundmoney/internal/mocks/repository"
	"foundmoney/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type moneyFoundServiceFixtures struct {
	service *moneyFoundService
	records *mockRepo.MockMoneyFoundRepository
}

func createTestMoneyFoundService(t *testing.T) moneyFoundServiceFixtures {
	records := mockRepo.NewMockMoneyFoundRepository(t)
	svc := NewMoneyFoundService(records, newDiscardLogger()).(*moneyFoundService)
	svc.now = func() time.Time { return fixedNow }

	return moneyFoundServiceFixtures{service: svc, records: records}
}

func TestMoneyFoundService_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name       string
		query      *usecase.MoneyFoundQuery
		wantFilter repository.MoneyFoundFilter
	}{
		{
			name:       "defaults",
			query:      nil,
			wantFilter: repository.MoneyFoundFilter{Limit: 50},
		},
		{
			name:       "filters and cap",
			query:      &usecase.MoneyFoundQuery{SourceType: entity.SourceEmail, Status: entity.StatusClaimed, Limit: 1000, Offset: 20},
			wantFilter: repository.MoneyFoundFilter{SourceType: entity.SourceEmail, Status: entity.StatusClaimed, Limit: 200, Offset: 20},
		},
		{
			name:       "negative offset",
			query:      &usecase.MoneyFoundQuery{Limit: 5, Offset: -3},
			wantFilter: repository.MoneyFoundFilter{Limit: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMoneyFoundService(t)
			records := []*entity.MoneyFoundRecord{testRecord(userID)}
			fx.records.EXPECT().
				ListByUser(ctx, userID, tt.wantFilter).
				Return(records, nil)

			got, err := fx.service.List(ctx, userID, tt.query)
			require.NoError(t, err)
			assert.Equal(t, records, got)
		})
	}
}

func TestMoneyFoundService_List_UnknownStatus(t *testing.T) {
	fx := createTestMoneyFoundService(t)

	_, err := fx.service.List(context.Background(), uuid.New(), &usecase.MoneyFoundQuery{Status: "lost"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMoneyFoundService_UpdateStatus_Received(t *testing.T) {
	ctx := context.Background()
	fx := createTestMoneyFoundService(t)
	userID := uuid.New()
	record := testRecord(userID)
	amount := 42.5

	fx.records.EXPECT().
		FindByID(ctx, userID, record.ID).
		Return(record, nil)
	fx.records.EXPECT().
		UpdateStatus(ctx, record, entity.StatusUnclaimed).
		Return(nil)

	got, err := fx.service.UpdateStatus(ctx, userID, record.ID, &usecase.StatusChange{
		Status:         entity.StatusReceived,
		ReceivedAmount: &amount,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusReceived, got.Status)
	require.NotNil(t, got.ReceivedAmount)
	assert.InDelta(t, 42.5, *got.ReceivedAmount, 0.001)
	require.NotNil(t, got.ReceivedAt)
	assert.True(t, got.ReceivedAt.Equal(fixedNow))
	require.NotNil(t, got.ClaimedAt)
}

func TestMoneyFoundService_UpdateStatus_Regression(t *testing.T) {
	ctx := context.Background()
	fx := createTestMoneyFoundService(t)
	userID := uuid.New()
	record := testRecord(userID)
	record.Status = entity.StatusReceived

	fx.records.EXPECT().
		FindByID(ctx, userID, record.ID).
		Return(record, nil)

	_, err := fx.service.UpdateStatus(ctx, userID, record.ID, &usecase.StatusChange{Status: entity.StatusClaimed})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	fx.records.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestMoneyFoundService_UpdateStatus_ConcurrentChange(t *testing.T) {
	ctx := context.Background()
	fx := createTestMoneyFoundService(t)
	userID := uuid.New()
	record := testRecord(userID)

	fx.records.EXPECT().
		FindByID(ctx, userID, record.ID).
		Return(record, nil)
	fx.records.EXPECT().
		UpdateStatus(ctx, record, entity.StatusUnclaimed).
		Return(repository.ErrMoneyFoundStatusConflict)

	_, err := fx.service.UpdateStatus(ctx, userID, record.ID, &usecase.StatusChange{Status: entity.StatusClaimed})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode())
}

func TestMoneyFoundService_UpdateStatus_NotFound(t *testing.T) {
	ctx := context.Background()
	fx := createTestMoneyFoundService(t)
	userID, recordID := uuid.New(), uuid.New()

	fx.records.EXPECT().
		FindByID(ctx, userID, recordID).
		Return(nil, repository.ErrMoneyFoundNotFound)

	_, err := fx.service.UpdateStatus(ctx, userID, recordID, &usecase.StatusChange{Status: entity.StatusClaimed})
	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}

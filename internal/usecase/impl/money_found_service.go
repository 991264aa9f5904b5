package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "foundmoney/internal/delivery/context"
	domainerrors "foundmoney/internal/domain/errors"
	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/repository"
	"foundmoney/internal/errors"
	"foundmoney/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type moneyFoundService struct {
	repo   repository.MoneyFoundRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewMoneyFoundService creates the money-found history use case.
func NewMoneyFoundService(repo repository.MoneyFoundRepository, logger *slog.Logger) usecase.MoneyFoundUsecase {
	return &moneyFoundService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *moneyFoundService) List(ctx context.Context, userID uuid.UUID, query *usecase.MoneyFoundQuery) ([]*entity.MoneyFoundRecord, error) {
	filter := repository.MoneyFoundFilter{Limit: defaultHistoryLimit}
	if query != nil {
		if query.Status != "" && !query.Status.Valid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(query.Status))
		}
		filter.SourceType = query.SourceType
		filter.Status = query.Status
		filter.Offset = max(query.Offset, 0)
		if query.Limit > 0 {
			filter.Limit = min(query.Limit, maxHistoryLimit)
		}
	}

	records, err := s.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list money-found records")
	}

	return records, nil
}

// UpdateStatus moves a record forward. Receiving stamps the received time
// and, when given, the amount actually paid out.
func (s *moneyFoundService) UpdateStatus(ctx context.Context, userID, recordID uuid.UUID, change *usecase.StatusChange) (*entity.MoneyFoundRecord, error) {
	record, err := s.repo.FindByID(ctx, userID, recordID)
	if err != nil {
		if errors.Is(err, repository.ErrMoneyFoundNotFound) {
			return nil, domainerrors.ErrRecordNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load money-found record")
	}

	from := record.Status
	if !from.CanTransitionTo(change.Status) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(string(from) + " -> " + string(change.Status))
	}

	now := s.now()
	record.Status = change.Status
	switch change.Status {
	case entity.StatusClaimed:
		record.ClaimedAt = &now
	case entity.StatusReceived:
		if record.ClaimedAt == nil {
			record.ClaimedAt = &now
		}
		record.ReceivedAt = &now
		record.ReceivedAmount = change.ReceivedAmount
	}

	if err := s.repo.UpdateStatus(ctx, record, from); err != nil {
		if errors.Is(err, repository.ErrMoneyFoundStatusConflict) {
			return nil, domainerrors.ErrInvalidStatusTransition.WithDetails("status changed concurrently")
		}
		if errors.Is(err, repository.ErrMoneyFoundNotFound) {
			return nil, domainerrors.ErrRecordNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update money-found status")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).InfoContext(ctx, "Money-found status updated",
		slog.String("record_id", record.ID.String()),
		slog.String("from", string(from)),
		slog.String("to", string(record.Status)),
	)

	return record, nil
}

package usecase

import (
	"context"

	"foundmoney/internal/domain/entity"

	"github.com/google/uuid"
)

// MoneyFoundQuery filters a user's history.
type MoneyFoundQuery struct {
	SourceType entity.SourceType   `query:"source_type"`
	Status     entity.RecordStatus `query:"status"`
	Limit      int                 `query:"limit"`
	Offset     int                 `query:"offset"`
}

// StatusChange moves a record forward in its claim lifecycle.
type StatusChange struct {
	Status         entity.RecordStatus `json:"status" validate:"required,oneof=claimed received"`
	ReceivedAmount *float64            `json:"received_amount,omitempty" validate:"omitempty,gte=0"`
}

// MoneyFoundUsecase exposes the persisted opportunities of a user.
type MoneyFoundUsecase interface {
	List(ctx context.Context, userID uuid.UUID, query *MoneyFoundQuery) ([]*entity.MoneyFoundRecord, error)
	UpdateStatus(ctx context.Context, userID, recordID uuid.UUID, change *StatusChange) (*entity.MoneyFoundRecord, error)
}

package repository

import (
	"context"

	"foundmoney/internal/domain/entity"
	"foundmoney/internal/errors"

	"github.com/google/uuid"
)

// ErrMoneyFoundNotFound is returned when a money-found record does not exist
// or does not belong to the requesting user.
var ErrMoneyFoundNotFound = errors.New("money-found record not found")

// ErrMoneyFoundStatusConflict is returned when a record's status changed
// between read and write.
var ErrMoneyFoundStatusConflict = errors.New("money-found status changed concurrently")

// MoneyFoundFilter narrows a listing of a user's records.
type MoneyFoundFilter struct {
	SourceType entity.SourceType   // Empty matches every source.
	Status     entity.RecordStatus // Empty matches every status.
	Limit      int                 // Zero means no limit.
	Offset     int
}

// MoneyFoundRepository persists scored opportunities.
type MoneyFoundRepository interface {
	// UpsertBatch inserts records or refreshes existing ones sharing the natural
	// key (user, source type, external ID). Claim progress on existing rows is
	// never reset. Record IDs are populated on return.
	UpsertBatch(ctx context.Context, records []*entity.MoneyFoundRecord) error

	// ListByUser returns a user's records, best score first.
	ListByUser(ctx context.Context, userID uuid.UUID, filter MoneyFoundFilter) ([]*entity.MoneyFoundRecord, error)

	// FindByID returns the record only if it belongs to userID.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.MoneyFoundRecord, error)

	// UpdateStatus persists Status, ClaimedAt, ReceivedAt and ReceivedAmount,
	// provided the stored status still equals from.
	UpdateStatus(ctx context.Context, record *entity.MoneyFoundRecord, from entity.RecordStatus) error
}

package repository

import (
	"context"

	"foundmoney/internal/domain/entity"
)

// EmailScanRepository records mailbox scan runs.
type EmailScanRepository interface {
	Create(ctx context.Context, scan *entity.EmailScan) error
}

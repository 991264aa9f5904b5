package repository

import (
	"context"

	"foundmoney/internal/domain/entity"
	"foundmoney/internal/errors"

	"github.com/google/uuid"
)

// ErrClaimFormNotFound is returned when a claim form does not exist.
var ErrClaimFormNotFound = errors.New("claim form not found")

// ClaimFormRepository persists filled claim forms.
type ClaimFormRepository interface {
	// Upsert creates or replaces the single form of (UserID, MoneyFoundID).
	// The form ID is populated on return.
	Upsert(ctx context.Context, form *entity.ClaimForm) error

	// FindByID returns the form only if it belongs to userID.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.ClaimForm, error)

	// FindByRecord returns the form attached to a money-found record.
	FindByRecord(ctx context.Context, userID, moneyFoundID uuid.UUID) (*entity.ClaimForm, error)
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"foundmoney/internal/domain/entity"
	"foundmoney/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile exists for a user ID.
var ErrProfileNotFound = errors.New("profile not found")

// SubscriptionUpdate carries the billing fields changed by a subscription webhook.
type SubscriptionUpdate struct {
	Status    entity.SubscriptionStatus // Empty leaves the status unchanged.
	Tier      entity.SubscriptionTier   // Empty leaves the tier unchanged.
	ExpiresAt *time.Time                // Nil leaves the expiry unchanged.
}

// ProfileRepository defines the operations on user profiles.
type ProfileRepository interface {
	// FindByID retrieves a profile together with all its addresses.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error)

	// SaveMailboxGrant stores OAuth tokens and marks the mailbox connected.
	SaveMailboxGrant(ctx context.Context, userID uuid.UUID, grant *entity.MailboxGrant) error

	// ClearMailboxGrant forgets stored tokens and marks the mailbox disconnected.
	ClearMailboxGrant(ctx context.Context, userID uuid.UUID) error

	// UpdateSubscription applies a billing change to the profile.
	UpdateSubscription(ctx context.Context, userID uuid.UUID, update SubscriptionUpdate) error
}

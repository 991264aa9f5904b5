// Package service declares the contracts of the external collaborators the
// use cases depend on. Implementations live under internal/infra.
package service

import (
	"context"

	"foundmoney/internal/domain/entity"
	"foundmoney/internal/errors"
)

// Source-level conditions callers are expected to tell apart.
var (
	// ErrMailboxNotConnected means the user never granted mailbox access.
	// It is not the same as a connected mailbox with nothing in it.
	ErrMailboxNotConnected = errors.New("mailbox not connected")
	// ErrMailboxAuthExpired means the stored grant was rejected and could not be refreshed.
	ErrMailboxAuthExpired = errors.New("mailbox authorization expired")
	// ErrProfileNameMissing means a lookup needs the first and last name.
	ErrProfileNameMissing = errors.New("profile first and last name are required")
	// ErrUnsupportedJurisdiction means no registry is known for a state code.
	ErrUnsupportedJurisdiction = errors.New("unsupported jurisdiction")
)

// SourceAdapter produces raw candidates from one discovery channel.
type SourceAdapter interface {
	// Source is the discriminant stamped on every candidate the adapter returns.
	Source() entity.SourceType

	// Search returns unscored candidates for the profile.
	Search(ctx context.Context, profile *entity.UserProfile) ([]*entity.OpportunityCandidate, error)
}

// PropertySource is the jurisdiction adapter together with its registry directory.
type PropertySource interface {
	SourceAdapter

	// SearchStates returns the jurisdiction codes a search for profile covers.
	SearchStates(profile *entity.UserProfile) []string

	// Jurisdictions lists every jurisdiction with a known registry.
	Jurisdictions() []entity.Jurisdiction
}

package usecase

import (
	"context"

	"foundmoney/internal/domain/entity"

	"github.com/google/uuid"
)

// EmailScanResult is the outcome of a manual mailbox scan.
type EmailScanResult struct {
	EmailsScanned      int                            `json:"emails_scanned"`
	OpportunitiesFound int                            `json:"opportunities_found"`
	Opportunities      []*entity.OpportunityCandidate `json:"opportunities"`
	PartialErrors      []PartialError                 `json:"partial_errors"`
}

// OAuthCallback carries the query parameters the provider redirects back with.
type OAuthCallback struct {
	Code      string
	State     string
	Error     string // Set by the provider when the user denied consent.
	UserAgent string
}

// EmailUsecase manages the mailbox connection and manual scans.
type EmailUsecase interface {
	// Connect returns the provider consent URL for the user.
	Connect(ctx context.Context, userID uuid.UUID) (string, error)

	// Callback completes the consent round trip and returns where the client
	// should be redirected. Failures are encoded in the redirect, never returned.
	Callback(ctx context.Context, callback *OAuthCallback) string

	// Scan analyzes recent messages and persists what it finds.
	Scan(ctx context.Context, userID uuid.UUID) (*EmailScanResult, error)
}

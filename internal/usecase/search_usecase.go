package usecase

import (
	"context"

	"foundmoney/internal/domain/entity"

	"github.com/google/uuid"
)

// Stages at which a source can fail without failing the whole search.
const (
	StageSearch  = "search"
	StagePersist = "persist"
)

// EmailStatus tells an unconnected mailbox apart from one with nothing in it.
type EmailStatus string

const (
	EmailConnected    EmailStatus = "connected"
	EmailNotConnected EmailStatus = "not_connected"
	EmailAuthExpired  EmailStatus = "auth_expired"
	EmailSkipped      EmailStatus = "skipped" // The email source was not part of the run.
)

// PartialError is a source-level failure that did not abort the search.
type PartialError struct {
	Source  entity.SourceType `json:"source"`
	Stage   string            `json:"stage"`
	Message string            `json:"message"`
}

// SearchResult is the merged output of one aggregation run. Every list is
// non-nil so it serializes as [] when empty.
type SearchResult struct {
	ClassActions       []*entity.OpportunityCandidate `json:"class_actions"`
	UnclaimedProperty  []*entity.OpportunityCandidate `json:"unclaimed_property"`
	EmailOpportunities []*entity.OpportunityCandidate `json:"email_opportunities"`
	TotalFound         int                            `json:"total_found"`
	EstimatedValue     float64                        `json:"estimated_value"`
	EmailStatus        EmailStatus                    `json:"email_status"`
	PartialErrors      []PartialError                 `json:"partial_errors"`
	Message            string                         `json:"message"`
}

// PropertyStats summarizes unclaimed-property results.
type PropertyStats struct {
	TotalProperties int     `json:"total_properties"`
	EstimatedTotal  float64 `json:"estimated_total"`
	KnownTotal      float64 `json:"known_total"`    // Sum of exact and ranged amounts only.
	UnknownCount    int     `json:"unknown_count"`  // Unknown and "at least" amounts.
	AverageAmount   float64 `json:"average_amount"` // EstimatedTotal over TotalProperties.
}

// PropertySearchResult is the single-source property search output.
type PropertySearchResult struct {
	Properties     []*entity.OpportunityCandidate `json:"properties"`
	TotalFound     int                            `json:"total_found"`
	EstimatedValue float64                        `json:"estimated_value"`
	Stats          PropertyStats                  `json:"stats"`
	SearchedStates []string                       `json:"searched_states"`
	PartialErrors  []PartialError                 `json:"partial_errors"`
	Message        string                         `json:"message"`
}

// ClassActionSearchResult is the single-source catalog search output.
type ClassActionSearchResult struct {
	Settlements    []*entity.OpportunityCandidate `json:"settlements"`
	TotalFound     int                            `json:"total_found"`
	EstimatedValue float64                        `json:"estimated_value"`
	PartialErrors  []PartialError                 `json:"partial_errors"`
}

// NameOverride replaces the profile name for one property search.
type NameOverride struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// SearchUsecase runs the discovery pipeline.
type SearchUsecase interface {
	// SearchAll fans out to every source, scores, filters, sorts and persists.
	// Only a missing profile fails the call; source failures are reported in
	// PartialErrors.
	SearchAll(ctx context.Context, userID uuid.UUID) (*SearchResult, error)

	// SearchClassActions runs the pipeline for the settlement catalog only.
	SearchClassActions(ctx context.Context, userID uuid.UUID) (*ClassActionSearchResult, error)

	// SearchUnclaimedProperty runs the pipeline for property registries only.
	SearchUnclaimedProperty(ctx context.Context, userID uuid.UUID, override *NameOverride) (*PropertySearchResult, error)

	// Jurisdictions lists the registries property searches can reach.
	Jurisdictions(ctx context.Context) []entity.Jurisdiction
}

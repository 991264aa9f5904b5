package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RecordStatus is the claim progress of a persisted opportunity.
type RecordStatus string

const (
	StatusUnclaimed RecordStatus = "unclaimed"
	StatusClaimed   RecordStatus = "claimed"
	StatusReceived  RecordStatus = "received"
)

func (s RecordStatus) rank() int {
	switch s {
	case StatusUnclaimed:
		return 0
	case StatusClaimed:
		return 1
	case StatusReceived:
		return 2
	default:
		return -1
	}
}

// Valid reports whether s is a known status.
func (s RecordStatus) Valid() bool {
	return s.rank() >= 0
}

// CanTransitionTo allows forward-only moves: unclaimed -> claimed -> received.
func (s RecordStatus) CanTransitionTo(next RecordStatus) bool {
	return next.Valid() && s.Valid() && next.rank() > s.rank()
}

// MoneyFoundRecord is the durable form of a scored candidate.
// (UserID, SourceType, ExternalID) is its natural key.
type MoneyFoundRecord struct {
	ID                      uuid.UUID       `json:"id"`
	UserID                  uuid.UUID       `json:"user_id"`
	SourceType              SourceType      `json:"source_type"`
	ExternalID              string          `json:"external_id"`
	Amount                  string          `json:"amount"`
	AmountNumeric           *float64        `json:"amount_numeric,omitempty"`
	CompanyName             string          `json:"company_name"`
	Description             string          `json:"description"`
	EligibilityRequirements string          `json:"eligibility_requirements"`
	ClaimURL                string          `json:"claim_url,omitempty"`
	ClaimDeadline           *time.Time      `json:"claim_deadline,omitempty"`
	Status                  RecordStatus    `json:"status"`
	ReceivedAmount          *float64        `json:"received_amount,omitempty"` // Set only once Status is received.
	MatchScore              int             `json:"match_score"`
	MatchReasons            []string        `json:"match_reasons"`
	Metadata                json.RawMessage `json:"metadata,omitempty"` // Raw source payload.
	ClaimedAt               *time.Time      `json:"claimed_at,omitempty"`
	ReceivedAt              *time.Time      `json:"received_at,omitempty"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

package entity

import (
	"time"

	"github.com/pkg/errors"
)

// SourceType discriminates the discovery channel a candidate came from.
type SourceType string

const (
	SourceCatalog  SourceType = "catalog_settlement"
	SourceProperty SourceType = "property_record"
	SourceEmail    SourceType = "email_derived"
)

// AllSources lists every discovery channel in reporting order.
var AllSources = []SourceType{SourceCatalog, SourceProperty, SourceEmail}

// Valid reports whether s is a known discovery channel.
func (s SourceType) Valid() bool {
	switch s {
	case SourceCatalog, SourceProperty, SourceEmail:
		return true
	default:
		return false
	}
}

// MatchResult is the scorer's verdict on one candidate.
type MatchResult struct {
	Score          int      `json:"score"`
	Reasons        []string `json:"reasons"`
	LikelyEligible bool     `json:"likely_eligible"`
	Neutral        bool     `json:"neutral,omitempty"` // Set when the scorer failed and a default was applied.
}

// CandidatePayload is the per-source variant carried by a candidate.
// The interface is sealed; only the payload types in this package implement it.
type CandidatePayload interface {
	payloadSource() SourceType
}

// SettlementPayload describes a class-action settlement from the catalog.
type SettlementPayload struct {
	SettlementID string    `json:"settlement_id"`
	Title        string    `json:"title"`
	ClaimURL     string    `json:"claim_url"`
	Eligibility  string    `json:"eligibility"`
	Categories   []string  `json:"categories"`
	Deadline     time.Time `json:"deadline"`
}

func (SettlementPayload) payloadSource() SourceType { return SourceCatalog }

// PropertyPayload describes an unclaimed-property registry record.
type PropertyPayload struct {
	Jurisdiction    string  `json:"jurisdiction"`
	PropertyID      string  `json:"property_id"`
	OwnerName       string  `json:"owner_name"`
	PropertyType    string  `json:"property_type"`
	ReportedBy      string  `json:"reported_by"`
	ReportedOn      string  `json:"reported_on"`
	Location        string  `json:"location"`
	ClaimURL        string  `json:"claim_url"`
	MatchConfidence float64 `json:"match_confidence"`
}

func (PropertyPayload) payloadSource() SourceType { return SourceProperty }

// EmailPayload describes an opportunity extracted from one mailbox message.
type EmailPayload struct {
	MessageID      string           `json:"message_id"`
	Subject        string           `json:"subject"`
	From           string           `json:"from"`
	ReceivedAt     time.Time        `json:"received_at"`
	Kind           EmailFindingKind `json:"kind"`
	ActionRequired string           `json:"action_required"`
	DeadlineText   string           `json:"deadline_text,omitempty"`
}

func (EmailPayload) payloadSource() SourceType { return SourceEmail }

// OpportunityCandidate is a potential money opportunity flowing through the
// pipeline. Match is nil until the candidate has been scored.
type OpportunityCandidate struct {
	SourceType  SourceType       `json:"source_type"`
	RawSourceID string           `json:"raw_source_id"`
	Company     string           `json:"company"`
	Description string           `json:"description"`
	Amount      Amount           `json:"amount"`
	Deadline    *time.Time       `json:"deadline,omitempty"`
	Match       *MatchResult     `json:"match,omitempty"`
	Payload     CandidatePayload `json:"payload"`
}

// Validate checks that the payload variant agrees with the discriminant.
func (c *OpportunityCandidate) Validate() error {
	if !c.SourceType.Valid() {
		return errors.Errorf("unknown source type %q", c.SourceType)
	}
	if c.Payload == nil {
		return errors.Errorf("candidate %s has no payload", c.RawSourceID)
	}
	if got := c.Payload.payloadSource(); got != c.SourceType {
		return errors.Errorf("candidate %s: payload is %s, discriminant is %s", c.RawSourceID, got, c.SourceType)
	}

	return nil
}

// Score returns the match score and whether the candidate has been scored.
func (c *OpportunityCandidate) Score() (int, bool) {
	if c.Match == nil {
		return 0, false
	}

	return c.Match.Score, true
}

// ClaimURL returns where the user files the claim, if the source knows it.
func (c *OpportunityCandidate) ClaimURL() string {
	switch p := c.Payload.(type) {
	case *SettlementPayload:
		return p.ClaimURL
	case *PropertyPayload:
		return p.ClaimURL
	case *EmailPayload:
		return ""
	default:
		return ""
	}
}

// Eligibility returns the human-readable eligibility or action text.
func (c *OpportunityCandidate) Eligibility() string {
	switch p := c.Payload.(type) {
	case *SettlementPayload:
		return p.Eligibility
	case *PropertyPayload:
		return "Property ID: " + p.PropertyID
	case *EmailPayload:
		return p.ActionRequired
	default:
		return ""
	}
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClaimFormStatus is the completion state of a claim form.
type ClaimFormStatus string

const (
	ClaimFormDraft     ClaimFormStatus = "draft"
	ClaimFormCompleted ClaimFormStatus = "completed"
)

// FormField describes one input of a claim form.
type FormField struct {
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
}

// ClaimForm maps a MoneyFoundRecord to filled field values and an optional
// generated document. One per (UserID, MoneyFoundID).
type ClaimForm struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	MoneyFoundID uuid.UUID       `json:"money_found_id"`
	FormData     map[string]any  `json:"form_data"`
	DocumentKey  string          `json:"document_key,omitempty"`
	DocumentURL  string          `json:"document_url,omitempty"`
	Status       ClaimFormStatus `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ClaimInfo is the claim summary printed on a generated document.
type ClaimInfo struct {
	ID       string `json:"id"`
	Company  string `json:"company"`
	Title    string `json:"title"`
	Amount   string `json:"amount"`
	ClaimURL string `json:"claim_url,omitempty"`
}

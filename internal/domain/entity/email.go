package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailFindingKind classifies an opportunity found in an email.
type EmailFindingKind string

const (
	FindingRefund       EmailFindingKind = "refund"
	FindingRebate       EmailFindingKind = "rebate"
	FindingSettlement   EmailFindingKind = "settlement"
	FindingPriceDrop    EmailFindingKind = "price_drop"
	FindingInsurance    EmailFindingKind = "insurance"
	FindingSubscription EmailFindingKind = "subscription"
	FindingOvercharge   EmailFindingKind = "overcharge"
	FindingOther        EmailFindingKind = "other"
)

// EmailFindingKinds lists every kind the analyzer may return.
var EmailFindingKinds = []EmailFindingKind{
	FindingRefund, FindingRebate, FindingSettlement, FindingPriceDrop,
	FindingInsurance, FindingSubscription, FindingOvercharge, FindingOther,
}

// EmailMessage is a mailbox message reduced to plain text.
type EmailMessage struct {
	ID         string
	ThreadID   string
	Subject    string
	From       string
	ReceivedAt time.Time
	Body       string
}

// EmailFinding is one opportunity the analyzer extracted from a message.
type EmailFinding struct {
	Kind           EmailFindingKind `json:"type"`
	Company        string           `json:"company"`
	Amount         string           `json:"amount"`
	Description    string           `json:"description"`
	ActionRequired string           `json:"action_required"`
	Deadline       string           `json:"deadline,omitempty"`
}

// EmailScanStatus is the outcome of a mailbox scan.
type EmailScanStatus string

const (
	ScanCompleted EmailScanStatus = "completed"
	ScanFailed    EmailScanStatus = "failed"
)

// EmailScan records one run of the email source for a user.
type EmailScan struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	EmailsScanned      int
	OpportunitiesFound int
	Status             EmailScanStatus
	ErrorMessage       string
	StartedAt          time.Time
	CompletedAt        time.Time
}

// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus is the billing state of a user's plan.
type SubscriptionStatus string

const (
	SubscriptionFree         SubscriptionStatus = "free"
	SubscriptionActive       SubscriptionStatus = "active"
	SubscriptionCancelled    SubscriptionStatus = "cancelled"
	SubscriptionExpired      SubscriptionStatus = "expired"
	SubscriptionBillingIssue SubscriptionStatus = "billing_issue"
)

// SubscriptionTier is the billing period of a paid plan.
type SubscriptionTier string

const (
	TierMonthly SubscriptionTier = "monthly"
	TierYearly  SubscriptionTier = "yearly"
)

// MailboxGrant holds the OAuth tokens of a connected mailbox.
type MailboxGrant struct {
	AccessToken  string    // Short-lived bearer token for the mailbox API.
	RefreshToken string    // Long-lived token used to mint new access tokens.
	Expiry       time.Time // Expiry of the access token, zero when unknown.
}

// UserProfile is the identity and demographic input to matching.
type UserProfile struct {
	ID        uuid.UUID  // Same as the identity provider's subject.
	FirstName string     // Given name, required for property lookups.
	LastName  string     // Family name, required for property lookups.
	Email     string     // Contact email.
	Phone     string     // Contact phone number.
	Addresses []*Address // Current and past addresses; may contain duplicates.

	MailboxConnected bool          // Whether a mailbox grant has been completed.
	Mailbox          *MailboxGrant // Nil until the OAuth callback stores tokens.

	SubscriptionStatus    SubscriptionStatus
	SubscriptionTier      SubscriptionTier
	SubscriptionExpiresAt *time.Time
	TrialEndsAt           *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins first and last name.
func (p *UserProfile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// HasName reports whether both name parts are present.
func (p *UserProfile) HasName() bool {
	return strings.TrimSpace(p.FirstName) != "" && strings.TrimSpace(p.LastName) != ""
}

// HasMailboxGrant reports whether the email source may be queried.
func (p *UserProfile) HasMailboxGrant() bool {
	return p.MailboxConnected && p.Mailbox != nil && p.Mailbox.AccessToken != ""
}

// States returns the deduplicated, upper-cased states of all addresses in
// first-seen order.
func (p *UserProfile) States() []string {
	states := make([]string, 0, len(p.Addresses))
	for _, addr := range p.Addresses {
		if addr == nil {
			continue
		}
		state := strings.ToUpper(strings.TrimSpace(addr.State))
		if state == "" || slices.Contains(states, state) {
			continue
		}
		states = append(states, state)
	}

	return states
}

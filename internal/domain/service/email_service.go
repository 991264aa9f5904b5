package service

import (
	"context"
	"time"

	"foundmoney/internal/domain/entity"
)

// MailboxQuery bounds a message listing.
type MailboxQuery struct {
	Keywords   []string // Matched as a disjunction.
	NewerThan  string   // Provider recency window, e.g. "1y".
	MaxResults int64    // Upper bound of message IDs listed.
	FetchLimit int      // Number of listed messages whose bodies are fetched.
	MaxChars   int      // Plain-text body is truncated to this many characters.
}

// Mailbox is an OAuth-protected email account.
type Mailbox interface {
	// AuthURL is the consent page the user is sent to; state is echoed back to the callback.
	AuthURL(state string) string

	// Exchange trades an authorization code for a grant.
	Exchange(ctx context.Context, code string) (*entity.MailboxGrant, error)

	// Refresh mints a new access token. Returns ErrMailboxAuthExpired when the
	// refresh token is no longer accepted.
	Refresh(ctx context.Context, grant *entity.MailboxGrant) (*entity.MailboxGrant, error)

	// ListMessages returns plain-text messages, newest first. Returns
	// ErrMailboxAuthExpired when the access token is rejected.
	ListMessages(ctx context.Context, grant *entity.MailboxGrant, query MailboxQuery) ([]*entity.EmailMessage, error)
}

// EmailAnalyzer extracts money opportunities from one message.
type EmailAnalyzer interface {
	Analyze(ctx context.Context, message *entity.EmailMessage) ([]*entity.EmailFinding, error)
}

// OAuthState is the payload carried through the provider's consent round trip.
type OAuthState struct {
	Provider  string `json:"provider"`
	UserID    string `json:"userId"`
	Timestamp int64  `json:"timestamp"` // Unix milliseconds.
}

// OAuthStateCodec signs the state handed to the provider and rejects any
// state it did not sign itself.
type OAuthStateCodec interface {
	Encode(state *OAuthState) (string, error)
	Decode(raw string) (*OAuthState, error)
}

// IssuedAt converts Timestamp back to a time.
func (s *OAuthState) IssuedAt() time.Time {
	return time.UnixMilli(s.Timestamp)
}

// Package gmail reads a user's Gmail inbox through OAuth2 grants.
package gmail

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"foundmoney/config"
	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	userID           = "me"
	fetchConcurrency = 5
)

var defaultScopes = []string{
	gmail.GmailReadonlyScope,
	"https://www.googleapis.com/auth/userinfo.email",
}

// ErrNotConfigured is returned when no OAuth client is configured.
var ErrNotConfigured = errors.New("gmail oauth client is not configured")

// Mailbox implements service.Mailbox for Gmail.
type Mailbox struct {
	oauth       *oauth2.Config
	apiEndpoint string
	logger      *slog.Logger
}

// Option configures a Mailbox.
type Option func(*Mailbox)

// WithOAuthEndpoint overrides Google's authorization and token URLs.
func WithOAuthEndpoint(endpoint oauth2.Endpoint) Option {
	return func(m *Mailbox) {
		m.oauth.Endpoint = endpoint
	}
}

// WithAPIEndpoint overrides the Gmail API base URL.
func WithAPIEndpoint(endpoint string) Option {
	return func(m *Mailbox) {
		m.apiEndpoint = endpoint
	}
}

// NewMailbox creates a Gmail mailbox from cfg.
func NewMailbox(cfg *config.GmailConfig, logger *slog.Logger, opts ...Option) *Mailbox {
	m := &Mailbox{
		oauth:  &oauth2.Config{Endpoint: google.Endpoint, Scopes: defaultScopes},
		logger: logger,
	}
	if cfg != nil {
		m.oauth.ClientID = cfg.ClientID
		m.oauth.ClientSecret = cfg.ClientSecret
		m.oauth.RedirectURL = cfg.RedirectURI
		if len(cfg.Scopes) > 0 {
			m.oauth.Scopes = cfg.Scopes
		}
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Configured reports whether an OAuth client is set.
func (m *Mailbox) Configured() bool {
	return m.oauth.ClientID != "" && m.oauth.ClientSecret != ""
}

// AuthURL implements service.Mailbox. It asks for offline access so a
// refresh token is issued.
func (m *Mailbox) AuthURL(state string) string {
	return m.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
}

// Exchange implements service.Mailbox.
func (m *Mailbox) Exchange(ctx context.Context, code string) (*entity.MailboxGrant, error) {
	if !m.Configured() {
		return nil, ErrNotConfigured
	}

	token, err := m.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "exchange authorization code")
	}

	return toGrant(token), nil
}

// Refresh implements service.Mailbox.
func (m *Mailbox) Refresh(ctx context.Context, grant *entity.MailboxGrant) (*entity.MailboxGrant, error) {
	if grant == nil || grant.RefreshToken == "" {
		return nil, service.ErrMailboxAuthExpired
	}
	if !m.Configured() {
		return nil, ErrNotConfigured
	}

	token, err := m.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: grant.RefreshToken}).Token()
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, errors.Wrap(service.ErrMailboxAuthExpired, retrieveErr.Error())
		}

		return nil, errors.Wrap(err, "refresh access token")
	}

	refreshed := toGrant(token)
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = grant.RefreshToken
	}

	return refreshed, nil
}

// ListMessages implements service.Mailbox. Messages that fail to load are
// skipped; a rejected access token fails the whole listing.
func (m *Mailbox) ListMessages(ctx context.Context, grant *entity.MailboxGrant, query service.MailboxQuery) ([]*entity.EmailMessage, error) {
	if grant == nil || grant.AccessToken == "" {
		return nil, service.ErrMailboxNotConnected
	}

	svc, err := m.newService(ctx, grant)
	if err != nil {
		return nil, err
	}

	listCall := svc.Users.Messages.List(userID).Q(buildQuery(query.Keywords, query.NewerThan)).Context(ctx)
	if query.MaxResults > 0 {
		listCall = listCall.MaxResults(query.MaxResults)
	}
	listed, err := listCall.Do()
	if err != nil {
		return nil, translateAPIError(err, "list messages")
	}

	refs := listed.Messages
	if query.FetchLimit > 0 && len(refs) > query.FetchLimit {
		refs = refs[:query.FetchLimit]
	}

	fetched := make([]*entity.EmailMessage, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, ref := range refs {
		g.Go(func() error {
			msg, err := svc.Users.Messages.Get(userID, ref.Id).Format("full").Context(gctx).Do()
			if err != nil {
				if isUnauthorized(err) {
					return translateAPIError(err, "get message")
				}
				m.logger.WarnContext(gctx, "skipping unreadable message",
					slog.String("message_id", ref.Id),
					slog.Any("error", err),
				)

				return nil
			}
			fetched[i] = toEmailMessage(msg, query.MaxChars)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	messages := make([]*entity.EmailMessage, 0, len(fetched))
	for _, msg := range fetched {
		if msg != nil {
			messages = append(messages, msg)
		}
	}

	return messages, nil
}

func (m *Mailbox) newService(ctx context.Context, grant *entity.MailboxGrant) (*gmail.Service, error) {
	token := &oauth2.Token{AccessToken: grant.AccessToken, TokenType: "Bearer"}
	opts := []option.ClientOption{
		option.WithHTTPClient(oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))),
	}
	if m.apiEndpoint != "" {
		opts = append(opts, option.WithEndpoint(m.apiEndpoint))
	}

	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create gmail service")
	}

	return svc, nil
}

// buildQuery ORs the quoted keywords and restricts to the recency window.
func buildQuery(keywords []string, newerThan string) string {
	quoted := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		quoted = append(quoted, strconv.Quote(keyword))
	}

	q := "(" + strings.Join(quoted, " OR ") + ")"
	if newerThan != "" {
		q += " newer_than:" + newerThan
	}

	return q
}

func toGrant(token *oauth2.Token) *entity.MailboxGrant {
	return &entity.MailboxGrant{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}
}

func isUnauthorized(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusUnauthorized
	}

	return false
}

func translateAPIError(err error, op string) error {
	if isUnauthorized(err) {
		return errors.Wrap(service.ErrMailboxAuthExpired, op)
	}

	return errors.Wrap(err, op)
}

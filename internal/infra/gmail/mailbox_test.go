package gmail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foundmoney/config"
	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func encode(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}

// fakeGoogle serves the token endpoint and the messages API.
func fakeGoogle(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Form.Get("grant_type") == "authorization_code" && r.Form.Get("code") == "good-code":
			_, _ = w.Write([]byte(`{"access_token":"good","refresh_token":"refresh-1","token_type":"Bearer","expires_in":3600}`))
		case r.Form.Get("grant_type") == "refresh_token" && r.Form.Get("refresh_token") == "refresh-1":
			_, _ = w.Write([]byte(`{"access_token":"good","token_type":"Bearer","expires_in":3600}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
		}
	})
	mux.HandleFunc("/gmail/v1/users/me/messages", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"code":401,"message":"Invalid Credentials"}}`))

			return
		}
		assert.Contains(t, r.URL.Query().Get("q"), `"refund" OR "rebate"`)
		assert.Equal(t, "50", r.URL.Query().Get("maxResults"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages":[{"id":"m1"},{"id":"m2"},{"id":"broken"},{"id":"m3"}]}`))
	})
	mux.HandleFunc("/gmail/v1/users/me/messages/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/gmail/v1/users/me/messages/")
		var msg map[string]any
		switch id {
		case "m1":
			msg = map[string]any{
				"id": "m1", "threadId": "t1", "internalDate": "1760000000000",
				"payload": map[string]any{
					"mimeType": "multipart/alternative",
					"headers":  []map[string]string{{"name": "Subject", "value": "Refund issued"}, {"name": "From", "value": "shop@acme.test"}},
					"parts": []map[string]any{
						{"mimeType": "text/plain", "body": map[string]string{"data": encode("Your refund of $12\n\nis on its way")}},
						{"mimeType": "text/html", "body": map[string]string{"data": encode("<p>ignored</p>")}},
					},
				},
			}
		case "m2":
			msg = map[string]any{
				"id": "m2",
				"payload": map[string]any{
					"mimeType": "text/html",
					"headers":  []map[string]string{{"name": "subject", "value": "Rebate"}},
					"body":     map[string]string{"data": encode("<html><head><style>p{}</style></head><body><p>Claim&nbsp;your <b>rebate</b></p><script>x()</script></body></html>")},
				},
			}
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"code":404,"message":"Not Found"}}`))

			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(msg)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func newTestMailbox(server *httptest.Server) *Mailbox {
	return NewMailbox(&config.GmailConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURI:  "http://localhost/email/callback",
	}, newDiscardLogger(),
		WithOAuthEndpoint(oauth2.Endpoint{AuthURL: server.URL + "/auth", TokenURL: server.URL + "/token"}),
		WithAPIEndpoint(server.URL+"/"),
	)
}

func testQuery() service.MailboxQuery {
	return service.MailboxQuery{
		Keywords:   []string{"refund", "rebate"},
		NewerThan:  "1y",
		MaxResults: 50,
		FetchLimit: 3,
		MaxChars:   5000,
	}
}

func TestMailbox_AuthURL(t *testing.T) {
	mailbox := NewMailbox(&config.GmailConfig{ClientID: "client", ClientSecret: "secret", RedirectURI: "http://localhost/cb"}, newDiscardLogger())

	authURL := mailbox.AuthURL("opaque-state")
	assert.Contains(t, authURL, "state=opaque-state")
	assert.Contains(t, authURL, "access_type=offline")
	assert.Contains(t, authURL, "prompt=consent")
	assert.Contains(t, authURL, "gmail.readonly")
}

func TestMailbox_Exchange(t *testing.T) {
	mailbox := newTestMailbox(fakeGoogle(t))

	grant, err := mailbox.Exchange(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "good", grant.AccessToken)
	assert.Equal(t, "refresh-1", grant.RefreshToken)
	assert.False(t, grant.Expiry.IsZero())

	_, err = mailbox.Exchange(context.Background(), "bad-code")
	assert.Error(t, err)
}

func TestMailbox_Refresh(t *testing.T) {
	mailbox := newTestMailbox(fakeGoogle(t))

	grant, err := mailbox.Refresh(context.Background(), &entity.MailboxGrant{AccessToken: "stale", RefreshToken: "refresh-1"})
	require.NoError(t, err)
	assert.Equal(t, "good", grant.AccessToken)
	assert.Equal(t, "refresh-1", grant.RefreshToken, "refresh token is kept when not rotated")

	_, err = mailbox.Refresh(context.Background(), &entity.MailboxGrant{RefreshToken: "revoked"})
	assert.ErrorIs(t, err, service.ErrMailboxAuthExpired)

	_, err = mailbox.Refresh(context.Background(), &entity.MailboxGrant{AccessToken: "stale"})
	assert.ErrorIs(t, err, service.ErrMailboxAuthExpired)
}

func TestMailbox_ListMessages(t *testing.T) {
	mailbox := newTestMailbox(fakeGoogle(t))

	messages, err := mailbox.ListMessages(context.Background(), &entity.MailboxGrant{AccessToken: "good"}, testQuery())
	require.NoError(t, err)

	require.Len(t, messages, 2, "fetch limit applies before unreadable messages are skipped")
	assert.Equal(t, "m1", messages[0].ID)
	assert.Equal(t, "Refund issued", messages[0].Subject)
	assert.Equal(t, "shop@acme.test", messages[0].From)
	assert.Equal(t, "Your refund of $12 is on its way", messages[0].Body)
	assert.Equal(t, int64(1760000000000), messages[0].ReceivedAt.UnixMilli())

	assert.Equal(t, "Rebate", messages[1].Subject)
	assert.Equal(t, "Claim your rebate", messages[1].Body)
}

func TestMailbox_ListMessagesAuthErrors(t *testing.T) {
	mailbox := newTestMailbox(fakeGoogle(t))

	_, err := mailbox.ListMessages(context.Background(), &entity.MailboxGrant{AccessToken: "expired"}, testQuery())
	assert.ErrorIs(t, err, service.ErrMailboxAuthExpired)

	_, err = mailbox.ListMessages(context.Background(), nil, testQuery())
	assert.ErrorIs(t, err, service.ErrMailboxNotConnected)
}

func TestBuildQuery(t *testing.T) {
	assert.Equal(t, `("refund" OR "class action") newer_than:1y`, buildQuery([]string{"refund", "class action"}, "1y"))
	assert.Equal(t, `("refund")`, buildQuery([]string{"refund"}, ""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "héll", truncate("héllo", 4))
	assert.Equal(t, "hello", truncate("hello", 0))
	assert.Equal(t, "hi", truncate("hi", 10))
}

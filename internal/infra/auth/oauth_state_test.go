package auth

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"foundmoney/config"
	"foundmoney/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOAuthStateCodec_Secret(t *testing.T) {
	_, err := NewOAuthStateCodec(newTestConfig(""))
	assert.Error(t, err)

	cfg := newTestConfig("")
	cfg.Gmail = &config.GmailConfig{StateSecret: "state-only-secret"}
	codec, err := NewOAuthStateCodec(cfg)
	require.NoError(t, err)
	assert.NotNil(t, codec)
}

func TestOAuthStateCodec_RoundTrip(t *testing.T) {
	codec, err := NewOAuthStateCodec(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	state := &service.OAuthState{Provider: "gmail", UserID: uuid.NewString(), Timestamp: time.Now().UnixMilli()}
	raw, err := codec.Encode(state)
	require.NoError(t, err)

	got, err := codec.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, state, got)
}

func TestOAuthStateCodec_RejectsUntrustedStates(t *testing.T) {
	const secret = "test_access_secret_key_very_long_for_testing"
	codec, err := NewOAuthStateCodec(newTestConfig(secret))
	require.NoError(t, err)

	victim := uuid.New()
	state := &service.OAuthState{Provider: "gmail", UserID: victim.String(), Timestamp: time.Now().UnixMilli()}

	unsigned, err := json.Marshal(state)
	require.NoError(t, err)

	otherCodec, err := NewOAuthStateCodec(newTestConfig("some_other_secret_key"))
	require.NoError(t, err)
	otherKey, err := otherCodec.Encode(state)
	require.NoError(t, err)

	jwtSvc, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)
	accessToken, err := jwtSvc.IssueToken(victim, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "bare base64 json", raw: base64.RawURLEncoding.EncodeToString(unsigned)},
		{name: "signed with another key", raw: otherKey},
		{name: "bearer token reused as state", raw: accessToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestOAuthStateCodec_StateIsNotABearerToken(t *testing.T) {
	const secret = "test_access_secret_key_very_long_for_testing"
	codec, err := NewOAuthStateCodec(newTestConfig(secret))
	require.NoError(t, err)
	jwtSvc, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)

	raw, err := codec.Encode(&service.OAuthState{Provider: "gmail", UserID: uuid.NewString(), Timestamp: time.Now().UnixMilli()})
	require.NoError(t, err)

	_, err = jwtSvc.ValidateToken(raw)
	assert.Error(t, err)
}

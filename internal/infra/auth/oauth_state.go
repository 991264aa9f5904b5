package auth

import (
	"foundmoney/config"
	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// oauthStateAudience keeps state tokens and bearer tokens from being
// accepted in each other's place.
const oauthStateAudience = "foundmoney-oauth-state"

type oauthStateClaims struct {
	Provider  string `json:"provider"`
	UserID    string `json:"userId"`
	Timestamp int64  `json:"timestamp"`
	jwt.RegisteredClaims
}

type oauthStateCodec struct {
	secret []byte
}

// NewOAuthStateCodec signs states with gmail.stateSecret, or with the access
// token secret when no dedicated key is set.
func NewOAuthStateCodec(cfg *config.Config) (service.OAuthStateCodec, error) {
	secret := cfg.SecretKey.Access
	if cfg.Gmail != nil && cfg.Gmail.StateSecret != "" {
		secret = cfg.Gmail.StateSecret
	}
	if secret == "" {
		return nil, errors.New("oauth state secret must be provided")
	}

	return &oauthStateCodec{secret: []byte(secret)}, nil
}

// Encode returns an HS256 JWT carrying the state. Expiry is left to the
// caller, which checks Timestamp against its own TTL.
func (c *oauthStateCodec) Encode(state *service.OAuthState) (string, error) {
	claims := &oauthStateClaims{
		Provider:  state.Provider,
		UserID:    state.UserID,
		Timestamp: state.Timestamp,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Audience: jwt.ClaimStrings{oauthStateAudience},
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign oauth state")
	}

	return signed, nil
}

// Decode verifies the signature and audience before trusting any field.
func (c *oauthStateCodec) Decode(raw string) (*service.OAuthState, error) {
	if raw == "" {
		return nil, errors.New("empty state")
	}

	claims := &oauthStateClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(oauthStateAudience),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid oauth state")
	}

	return &service.OAuthState{
		Provider:  claims.Provider,
		UserID:    claims.UserID,
		Timestamp: claims.Timestamp,
	}, nil
}

// Package auth issues and verifies the HS256 bearer tokens that identify
// API callers, and the short-lived state tokens that carry a user through
// the marketplace consent redirect.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	audienceAPI   = "flashlist-api"
	audienceState = "flashlist-oauth-state"

	defaultTTL      = 24 * time.Hour
	defaultStateTTL = 10 * time.Minute
)

var (
	// ErrMissingToken is returned when a request carries no bearer token.
	ErrMissingToken = errors.New("authorization required")

	// ErrInvalidToken is returned for tokens that fail signature, expiry,
	// issuer, or audience checks.
	ErrInvalidToken = errors.New("invalid token")
)

type contextKey string

const principalKey contextKey = "principal"

// Claims are the registered claims flashlist signs. Subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
}

// Authenticator mints and verifies tokens with a shared HMAC secret.
type Authenticator struct {
	secret   []byte
	issuer   string
	ttl      time.Duration
	stateTTL time.Duration
	nowFunc  func() time.Time
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithTTL sets the lifetime of minted API tokens.
func WithTTL(d time.Duration) Option {
	return func(a *Authenticator) {
		a.ttl = d
	}
}

// WithStateTTL sets the lifetime of OAuth state tokens.
func WithStateTTL(d time.Duration) Option {
	return func(a *Authenticator) {
		a.stateTTL = d
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(a *Authenticator) {
		a.nowFunc = f
	}
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(secret, issuer string, opts ...Option) *Authenticator {
	a := &Authenticator{
		secret:   []byte(secret),
		issuer:   issuer,
		ttl:      defaultTTL,
		stateTTL: defaultStateTTL,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Mint returns a signed API token for userID.
func (a *Authenticator) Mint(userID string) (string, error) {
	return a.sign(userID, audienceAPI, a.ttl)
}

// Verify parses an API token and returns its user id.
func (a *Authenticator) Verify(token string) (string, error) {
	return a.verify(token, audienceAPI)
}

// MintState returns a state token binding a consent redirect to userID.
func (a *Authenticator) MintState(userID string) (string, error) {
	return a.sign(userID, audienceState, a.stateTTL)
}

// VerifyState parses a state token and returns its user id. API tokens are
// rejected.
func (a *Authenticator) VerifyState(state string) (string, error) {
	return a.verify(state, audienceState)
}

func (a *Authenticator) sign(userID, audience string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", errors.New("user id is required")
	}
	now := a.nowFunc()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    a.issuer,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

func (a *Authenticator) verify(token, audience string) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	claims := &Claims{}
	if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	now := a.nowFunc()
	switch {
	case !claims.VerifyExpiresAt(now, true):
		return "", fmt.Errorf("%w: expired", ErrInvalidToken)
	case !claims.VerifyIssuer(a.issuer, true):
		return "", fmt.Errorf("%w: wrong issuer", ErrInvalidToken)
	case !claims.VerifyAudience(audience, true):
		return "", fmt.Errorf("%w: wrong audience", ErrInvalidToken)
	case claims.Subject == "":
		return "", fmt.Errorf("%w: no subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}

// WithUserID returns a context carrying the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, principalKey, userID)
}

// UserID returns the authenticated user id stored in ctx.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(principalKey).(string)
	return id, ok && id != ""
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

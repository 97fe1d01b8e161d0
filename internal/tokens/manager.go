// Package tokens keeps per-user marketplace OAuth credentials usable. It
// hands out valid access tokens, refreshing them when they are about to
// expire, and runs the connect and disconnect flows for seller accounts.
package tokens

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"github.com/donaldgifford/flashlist/internal/ebay"
	"github.com/donaldgifford/flashlist/internal/metrics"
	"github.com/donaldgifford/flashlist/internal/store"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

const (
	defaultSkew    = 60 * time.Second
	refreshTimeout = 30 * time.Second
)

// ErrNotAuthenticated is matched by every error that means the user must
// (re)connect their marketplace account before publishing.
var ErrNotAuthenticated = errors.New("marketplace account not authenticated")

var (
	// ErrNotConnected means no credential is stored for the user.
	ErrNotConnected = fmt.Errorf("%w: no credential stored", ErrNotAuthenticated)

	// ErrRefreshFailed means the stored refresh token could not be used.
	ErrRefreshFailed = fmt.Errorf("%w: token refresh failed", ErrNotAuthenticated)
)

// Status describes a user's connection to the marketplace.
type Status struct {
	Connected      bool      `json:"connected"`
	ExternalUserID string    `json:"external_user_id,omitempty"`
	ExpiresAt      time.Time `json:"expires_at,omitempty"`
	Refreshed      bool      `json:"refreshed"`
}

// Manager issues valid access tokens for one marketplace. Concurrent
// refreshes for the same user collapse into a single token request, and
// forced refreshes never overlap an automatic one.
type Manager struct {
	store       store.CredentialStore
	auth        ebay.UserAuthenticator
	marketplace domain.Marketplace
	skew        time.Duration
	group       singleflight.Group
	locks       sync.Map // flight key -> *sync.Mutex
	log         *slog.Logger
	nowFunc     func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		m.log = l
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(m *Manager) {
		m.nowFunc = f
	}
}

// WithSkew sets how long before expiry a token is treated as expired.
func WithSkew(d time.Duration) Option {
	return func(m *Manager) {
		m.skew = d
	}
}

// NewManager creates a token manager for eBay credentials.
func NewManager(s store.CredentialStore, auth ebay.UserAuthenticator, opts ...Option) *Manager {
	m := &Manager{
		store:       s,
		auth:        auth,
		marketplace: domain.MarketplaceEbay,
		skew:        defaultSkew,
		log:         slog.Default(),
		nowFunc:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ValidToken returns a usable access token for userID, refreshing the
// stored credential first when it has expired. Failures match
// ErrNotAuthenticated unless the credential store itself failed.
func (m *Manager) ValidToken(ctx context.Context, userID string) (string, error) {
	cred, err := m.load(ctx, userID)
	if err != nil {
		return "", err
	}
	if !cred.ExpiredAt(m.nowFunc(), m.skew) {
		return cred.AccessToken, nil
	}

	cred, err = m.refreshShared(ctx, userID, false)
	if err != nil {
		return "", err
	}
	return cred.AccessToken, nil
}

// Refresh forces a token refresh for userID regardless of expiry.
func (m *Manager) Refresh(ctx context.Context, userID string) (*Status, error) {
	cred, err := m.refreshShared(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	return m.status(cred, true), nil
}

// Status reports whether userID is connected, refreshing an expired token
// on the way so a connected account is also a usable one.
func (m *Manager) Status(ctx context.Context, userID string) (*Status, error) {
	cred, err := m.load(ctx, userID)
	if errors.Is(err, ErrNotConnected) {
		return &Status{}, nil
	}
	if err != nil {
		return nil, err
	}
	if !cred.ExpiredAt(m.nowFunc(), m.skew) {
		return m.status(cred, false), nil
	}

	cred, err = m.refreshShared(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	return m.status(cred, true), nil
}

// AuthURL returns the marketplace consent page URL carrying state.
func (m *Manager) AuthURL(state string) string {
	return m.auth.AuthCodeURL(state)
}

// Connect exchanges an authorization code, looks up the seller's account
// id, and stores the credential. Reconnecting replaces the tokens and keeps
// any previously discovered policy ids.
func (m *Manager) Connect(ctx context.Context, userID, code string) (*domain.Credential, error) {
	tok, err := m.auth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("connecting %s account: %w", m.marketplace, err)
	}

	cred := &domain.Credential{
		UserID:       userID,
		Marketplace:  m.marketplace,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.Expiry,
	}

	user, err := m.auth.GetUser(ctx, tok.AccessToken)
	if err != nil {
		// Deletion notifications for this account cannot be mapped back
		// until a later reconnect records the id.
		m.log.Warn("looking up marketplace user id", "user_id", userID, "error", err)
	} else {
		cred.ExternalUserID = user.UserID
	}

	if err := m.store.UpsertCredential(ctx, cred); err != nil {
		return nil, fmt.Errorf("storing credential: %w", err)
	}

	m.log.Info("marketplace account connected",
		"user_id", userID,
		"marketplace", m.marketplace,
		"external_user_id", cred.ExternalUserID,
	)
	return cred, nil
}

// Disconnect deletes the stored credential for userID.
func (m *Manager) Disconnect(ctx context.Context, userID string) error {
	if err := m.store.DeleteCredential(ctx, userID, m.marketplace); err != nil {
		return fmt.Errorf("disconnecting %s account: %w", m.marketplace, err)
	}
	return nil
}

func (m *Manager) load(ctx context.Context, userID string) (*domain.Credential, error) {
	cred, err := m.store.GetCredential(ctx, userID, m.marketplace)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotConnected
	}
	if err != nil {
		return nil, fmt.Errorf("loading credential: %w", err)
	}
	return cred, nil
}

// refreshShared refreshes userID's credential, sharing one refresh among
// concurrent callers. The credential is re-read under the per-user lock so
// a caller arriving after a completed refresh reuses the stored token;
// force skips that check. Forced and automatic calls fly separately but
// hold the same lock, so at most one refresh per user is in flight.
//
// The flight runs detached from the caller's cancellation so one
// abandoned request does not fail every waiter.
func (m *Manager) refreshShared(
	ctx context.Context,
	userID string,
	force bool,
) (*domain.Credential, error) {
	key := userID + "/" + string(m.marketplace)
	flight := key
	if force {
		flight += "/force"
	}

	ch := m.group.DoChan(flight, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		mu := m.lock(key)
		mu.Lock()
		defer mu.Unlock()

		cred, err := m.load(fctx, userID)
		if err != nil {
			return nil, err
		}
		if !force && !cred.ExpiredAt(m.nowFunc(), m.skew) {
			return cred, nil
		}
		return m.refresh(fctx, cred)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for token refresh: %w", ctx.Err())
	case res := <-ch:
		if res.Shared {
			metrics.TokenRefreshesTotal.WithLabelValues("shared").Inc()
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.Credential), nil
	}
}

func (m *Manager) lock(key string) *sync.Mutex {
	mu, _ := m.locks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (m *Manager) refresh(ctx context.Context, cred *domain.Credential) (*domain.Credential, error) {
	tok, err := m.auth.Refresh(ctx, cred.RefreshToken)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("failure").Inc()
		m.log.Warn("token refresh failed",
			"user_id", cred.UserID,
			"marketplace", cred.Marketplace,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	apply(cred, tok)
	if err := m.store.UpdateCredentialTokens(ctx, cred); err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("failure").Inc()
		return nil, fmt.Errorf("%w: persisting refreshed token: %w", ErrRefreshFailed, err)
	}

	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()
	m.log.Debug("token refreshed", "user_id", cred.UserID, "expires_at", cred.ExpiresAt)
	return cred, nil
}

func (m *Manager) status(cred *domain.Credential, refreshed bool) *Status {
	return &Status{
		Connected:      true,
		ExternalUserID: cred.ExternalUserID,
		ExpiresAt:      cred.ExpiresAt,
		Refreshed:      refreshed,
	}
}

// apply copies a refreshed token onto cred. The refresh token only changes
// when the marketplace rotated it.
func apply(cred *domain.Credential, tok *oauth2.Token) {
	cred.AccessToken = tok.AccessToken
	if tok.RefreshToken != "" {
		cred.RefreshToken = tok.RefreshToken
	}
	cred.ExpiresAt = tok.Expiry
}

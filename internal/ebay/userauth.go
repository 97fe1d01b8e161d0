package ebay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	defaultAuthURL     = "https://auth.ebay.com/oauth2/authorize"
	defaultIdentityURL = "https://apiz.ebay.com/commerce/identity/v1/user/"
)

// UserAuthConfig holds the application credentials and endpoints for the
// seller consent flow.
type UserAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string // eBay RuName
	Scopes       []string
	AuthURL      string
	TokenURL     string
	IdentityURL  string
}

// UserAuthClient implements UserAuthenticator with golang.org/x/oauth2.
// eBay authenticates the token endpoint with HTTP Basic credentials.
type UserAuthClient struct {
	oauth       *oauth2.Config
	identityURL string
	client      *http.Client
	nowFunc     func() time.Time
}

var _ UserAuthenticator = (*UserAuthClient)(nil)

// UserAuthOption configures the UserAuthClient.
type UserAuthOption func(*UserAuthClient)

// WithUserAuthHTTPClient overrides the HTTP client for token and identity calls.
func WithUserAuthHTTPClient(hc *http.Client) UserAuthOption {
	return func(c *UserAuthClient) {
		c.client = hc
	}
}

// WithUserAuthNowFunc overrides the time function for testing.
func WithUserAuthNowFunc(f func() time.Time) UserAuthOption {
	return func(c *UserAuthClient) {
		c.nowFunc = f
	}
}

// NewUserAuthClient creates a client for the seller authorization-code grant.
func NewUserAuthClient(cfg UserAuthConfig, opts ...UserAuthOption) *UserAuthClient {
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = defaultAuthURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}
	identityURL := cfg.IdentityURL
	if identityURL == "" {
		identityURL = defaultIdentityURL
	}

	c := &UserAuthClient{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		identityURL: identityURL,
		client:      &http.Client{Timeout: defaultTimeout},
		nowFunc:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AuthCodeURL returns the eBay consent page URL carrying state.
func (c *UserAuthClient) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for access and refresh tokens.
func (c *UserAuthClient) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := c.oauth.Exchange(c.httpContext(ctx), code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}
	return c.normalize(tok, ""), nil
}

// Refresh obtains a new access token from a refresh token. eBay does not
// rotate refresh tokens, so the returned token carries the old one when
// the response omits it.
func (c *UserAuthClient) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	if refreshToken == "" {
		return nil, errors.New("refreshing token: no refresh token stored")
	}
	src := c.oauth.TokenSource(c.httpContext(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("refreshing token: %w", err)
	}
	return c.normalize(tok, refreshToken), nil
}

// GetUser returns the eBay account that owns accessToken.
func (c *UserAuthClient) GetUser(ctx context.Context, accessToken string) (*IdentityUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.identityURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating identity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: executing identity request: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading identity response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var user IdentityUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("parsing identity response: %w", err)
	}
	return &user, nil
}

func (c *UserAuthClient) httpContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.client)
}

// normalize fills a zero expiry with eBay's default token lifetime and
// keeps the previous refresh token when none was returned.
func (c *UserAuthClient) normalize(tok *oauth2.Token, previousRefresh string) *oauth2.Token {
	if tok.Expiry.IsZero() {
		tok.Expiry = c.nowFunc().Add(defaultTokenLife)
	}
	if tok.RefreshToken == "" {
		tok.RefreshToken = previousRefresh
	}
	return tok
}

package ebay_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flashlist/internal/ebay"
)

func newUserAuth(t *testing.T, tokenHandler, identityHandler http.HandlerFunc, now time.Time) *ebay.UserAuthClient {
	t.Helper()

	mux := http.NewServeMux()
	if tokenHandler != nil {
		mux.HandleFunc("/identity/v1/oauth2/token", tokenHandler)
	}
	if identityHandler != nil {
		mux.HandleFunc("/commerce/identity/v1/user/", identityHandler)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return ebay.NewUserAuthClient(ebay.UserAuthConfig{
		ClientID:     "app-id",
		ClientSecret: "cert-id",
		RedirectURI:  "Flash_List-RuName",
		Scopes:       []string{"https://api.ebay.com/oauth/api_scope/sell.inventory"},
		AuthURL:      srv.URL + "/oauth2/authorize",
		TokenURL:     srv.URL + "/identity/v1/oauth2/token",
		IdentityURL:  srv.URL + "/commerce/identity/v1/user/",
	}, ebay.WithUserAuthNowFunc(func() time.Time { return now }))
}

func TestUserAuthClient_AuthCodeURL(t *testing.T) {
	t.Parallel()

	c := newUserAuth(t, nil, nil, time.Now())
	raw := c.AuthCodeURL("state-123")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "/oauth2/authorize", u.Path)
	assert.Equal(t, "app-id", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "Flash_List-RuName", q.Get("redirect_uri"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Contains(t, q.Get("scope"), "sell.inventory")
}

func TestUserAuthClient_Exchange(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		status     int
		wantErr    bool
		wantExpiry bool
	}{
		{
			name:   "tokens with expiry",
			body:   `{"access_token":"v^1.1#access","refresh_token":"v^1.1#refresh","expires_in":7200,"token_type":"User Access Token"}`,
			status: http.StatusOK,
		},
		{
			name:       "missing expires_in gets default lifetime",
			body:       `{"access_token":"v^1.1#access","refresh_token":"v^1.1#refresh","token_type":"User Access Token"}`,
			status:     http.StatusOK,
			wantExpiry: true,
		},
		{
			name:    "rejected code",
			body:    `{"error":"invalid_grant","error_description":"the provided authorization grant code is invalid"}`,
			status:  http.StatusBadRequest,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newUserAuth(t, func(w http.ResponseWriter, r *http.Request) {
				user, pass, ok := r.BasicAuth()
				assert.True(t, ok)
				assert.Equal(t, "app-id", user)
				assert.Equal(t, "cert-id", pass)

				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "authorization_code", r.FormValue("grant_type"))
				assert.Equal(t, "auth-code", r.FormValue("code"))
				assert.Equal(t, "Flash_List-RuName", r.FormValue("redirect_uri"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, nil, now)

			tok, err := c.Exchange(context.Background(), "auth-code")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "exchanging authorization code")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "v^1.1#access", tok.AccessToken)
			assert.Equal(t, "v^1.1#refresh", tok.RefreshToken)
			assert.False(t, tok.Expiry.IsZero())
			if tt.wantExpiry {
				assert.Equal(t, now.Add(7200*time.Second), tok.Expiry)
			}
		})
	}
}

func TestUserAuthClient_Refresh(t *testing.T) {
	t.Parallel()

	c := newUserAuth(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.FormValue("grant_type"))
		assert.Equal(t, "stored-refresh", r.FormValue("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"new-access","expires_in":7200,"token_type":"User Access Token"}`))
	}, nil, time.Now())

	tok, err := c.Refresh(context.Background(), "stored-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", tok.AccessToken)
	assert.Equal(t, "stored-refresh", tok.RefreshToken)
	assert.True(t, tok.Expiry.After(time.Now()))
}

func TestUserAuthClient_RefreshErrors(t *testing.T) {
	t.Parallel()

	c := newUserAuth(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}, nil, time.Now())

	_, err := c.Refresh(context.Background(), "revoked")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refreshing token")

	_, err = c.Refresh(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no refresh token")
}

func TestUserAuthClient_GetUser(t *testing.T) {
	t.Parallel()

	c := newUserAuth(t, nil, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"userId":"nY7Hn2x","username":"plant_lady"}`))
	}, time.Now())

	user, err := c.GetUser(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "nY7Hn2x", user.UserID)
	assert.Equal(t, "plant_lady", user.Username)

	_, err = c.GetUser(context.Background(), "bad")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, ebay.StatusCode(err))
}

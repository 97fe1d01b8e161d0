package handlers_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flashlist/internal/api/handlers"
	"github.com/donaldgifford/flashlist/internal/api/handlers/mocks"
	"github.com/donaldgifford/flashlist/internal/policy"
	"github.com/donaldgifford/flashlist/internal/store"
	"github.com/donaldgifford/flashlist/internal/tokens"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

func TestStartOAuth(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTokenService(t)
	var gotState string
	svc.EXPECT().AuthURL(mock.Anything).RunAndReturn(func(state string) string {
		gotState = state
		return "https://auth.sandbox.ebay.com/oauth2/authorize?state=" + url.QueryEscape(state)
	}).Once()

	api, a, authz := newSecuredAPI(t)
	handlers.RegisterEbayRoutes(api, handlers.NewEbayHandler(svc, a, mocks.NewMockPolicyBootstrapper(t)))

	resp := api.Get("/api/v1/ebay/oauth/start", authz)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "auth.sandbox.ebay.com")

	userID, err := a.VerifyState(gotState)
	require.NoError(t, err)
	assert.Equal(t, testUser, userID)
}

func TestOAuthCallback(t *testing.T) {
	t.Parallel()

	expires := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		code       string
		state      func(t *testing.T, mint func(string) (string, error)) string
		setupMock  func(*mocks.MockTokenService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "connects the user named by state",
			code: "auth-code",
			state: func(t *testing.T, mint func(string) (string, error)) string {
				s, err := mint(testUser)
				require.NoError(t, err)
				return s
			},
			setupMock: func(m *mocks.MockTokenService) {
				m.EXPECT().Connect(mock.Anything, testUser, "auth-code").Return(&domain.Credential{
					UserID:         testUser,
					ExternalUserID: "seller-1",
					ExpiresAt:      expires,
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "Successfully connected to eBay",
		},
		{
			name: "missing code",
			state: func(t *testing.T, mint func(string) (string, error)) string {
				s, err := mint(testUser)
				require.NoError(t, err)
				return s
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "authorization code is missing",
		},
		{
			name: "forged state",
			code: "auth-code",
			state: func(*testing.T, func(string) (string, error)) string {
				return "not-a-state"
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid oauth state",
		},
		{
			name: "exchange fails",
			code: "bad-code",
			state: func(t *testing.T, mint func(string) (string, error)) string {
				s, err := mint(testUser)
				require.NoError(t, err)
				return s
			},
			setupMock: func(m *mocks.MockTokenService) {
				m.EXPECT().Connect(mock.Anything, testUser, "bad-code").
					Return(nil, errors.New("invalid_grant")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "failed to get access token: invalid_grant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			api, a, _ := newSecuredAPI(t)
			handlers.RegisterEbayRoutes(api, handlers.NewEbayHandler(svc, a, mocks.NewMockPolicyBootstrapper(t)))

			q := url.Values{}
			q.Set("state", tt.state(t, a.MintState))
			if tt.code != "" {
				q.Set("code", tt.code)
			}

			resp := api.Get("/api/v1/ebay/oauth/callback?" + q.Encode())
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestGetStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     *tokens.Status
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "connected",
			status:     &tokens.Status{Connected: true, ExternalUserID: "seller-1"},
			wantStatus: http.StatusOK,
			wantBody:   `"connected":true`,
		},
		{
			name:       "refresh token revoked reads as disconnected",
			err:        tokens.ErrRefreshFailed,
			wantStatus: http.StatusOK,
			wantBody:   `"connected":false`,
		},
		{
			name:       "store error",
			err:        errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "checking connection",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockTokenService(t)
			svc.EXPECT().Status(mock.Anything, testUser).Return(tt.status, tt.err).Once()

			api, a, authz := newSecuredAPI(t)
			handlers.RegisterEbayRoutes(api, handlers.NewEbayHandler(svc, a, mocks.NewMockPolicyBootstrapper(t)))

			resp := api.Get("/api/v1/ebay/status", authz)
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestRefreshToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     *tokens.Status
		err        error
		wantStatus int
	}{
		{
			name:       "refreshed",
			status:     &tokens.Status{Connected: true, Refreshed: true},
			wantStatus: http.StatusOK,
		},
		{name: "never connected", err: tokens.ErrNotConnected, wantStatus: http.StatusNotFound},
		{name: "refresh rejected", err: tokens.ErrRefreshFailed, wantStatus: http.StatusBadRequest},
		{name: "store error", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockTokenService(t)
			svc.EXPECT().Refresh(mock.Anything, testUser).Return(tt.status, tt.err).Once()

			api, a, authz := newSecuredAPI(t)
			handlers.RegisterEbayRoutes(api, handlers.NewEbayHandler(svc, a, mocks.NewMockPolicyBootstrapper(t)))

			resp := api.Post("/api/v1/ebay/refresh", authz)
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestDisconnect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "removed", wantStatus: http.StatusNoContent},
		{name: "nothing stored", err: store.ErrNotFound, wantStatus: http.StatusNoContent},
		{name: "store error", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockTokenService(t)
			svc.EXPECT().Disconnect(mock.Anything, testUser).Return(tt.err).Once()

			api, a, authz := newSecuredAPI(t)
			handlers.RegisterEbayRoutes(api, handlers.NewEbayHandler(svc, a, mocks.NewMockPolicyBootstrapper(t)))

			resp := api.Delete("/api/v1/ebay/connection", authz)
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestBootstrapPolicies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		tokenErr   error
		setupMock  func(*mocks.MockPolicyBootstrapper)
		wantStatus int
		wantBody   string
	}{
		{
			name: "creates missing policies",
			setupMock: func(m *mocks.MockPolicyBootstrapper) {
				m.EXPECT().Bootstrap(mock.Anything, testUser, "access-token").Return(&policy.Resolved{
					FulfillmentPolicyID: "f-1",
					PaymentPolicyID:     "p-1",
					ReturnPolicyID:      "r-1",
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"fulfillment_policy_id":"f-1"`,
		},
		{
			name:       "not connected",
			tokenErr:   tokens.ErrNotConnected,
			wantStatus: http.StatusConflict,
			wantBody:   "eBay account not connected",
		},
		{
			name: "marketplace rejects",
			setupMock: func(m *mocks.MockPolicyBootstrapper) {
				m.EXPECT().Bootstrap(mock.Anything, testUser, "access-token").
					Return(nil, errors.New("program not opted in")).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   "program not opted in",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockTokenService(t)
			token := "access-token"
			if tt.tokenErr != nil {
				token = ""
			}
			svc.EXPECT().ValidToken(mock.Anything, testUser).Return(token, tt.tokenErr).Once()

			boot := mocks.NewMockPolicyBootstrapper(t)
			if tt.setupMock != nil {
				tt.setupMock(boot)
			}

			api, a, authz := newSecuredAPI(t)
			handlers.RegisterEbayRoutes(api, handlers.NewEbayHandler(svc, a, boot))

			resp := api.Post("/api/v1/ebay/policies/bootstrap", authz)
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

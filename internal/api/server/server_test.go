package server_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flashlist/internal/api/handlers/mocks"
	"github.com/donaldgifford/flashlist/internal/api/server"
	"github.com/donaldgifford/flashlist/internal/auth"
	"github.com/donaldgifford/flashlist/internal/ebay"
	storeMocks "github.com/donaldgifford/flashlist/internal/store/mocks"
	"github.com/donaldgifford/flashlist/pkg/logger"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newDeps(t *testing.T) (*server.Deps, *storeMocks.MockStore, *mocks.MockListingService) {
	t.Helper()

	st := storeMocks.NewMockStore(t)
	listings := mocks.NewMockListingService(t)
	return &server.Deps{
		Store:       st,
		Listings:    listings,
		Tokens:      mocks.NewMockTokenService(t),
		Policies:    mocks.NewMockPolicyBootstrapper(t),
		Categories:  mocks.NewMockCategoryCache(t),
		Prober:      mocks.NewMockCategoryProber(t),
		Deletions:   mocks.NewMockDeletionHandler(t),
		RateLimiter: ebay.NewRateLimiter(5, 10, 5000),
		Auth:        auth.NewAuthenticator(testSecret, "flashlist-test"),
	}, st, listings
}

func TestNew_Operational(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "healthz", path: "/healthz", wantStatus: http.StatusOK, wantBody: `"ok"`},
		{name: "readyz", path: "/readyz", wantStatus: http.StatusOK, wantBody: `"ready"`},
		{
			name:       "readyz without database",
			path:       "/readyz",
			pingErr:    errors.New("connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"unavailable"`,
		},
		{name: "metrics", path: "/metrics", wantStatus: http.StatusOK, wantBody: "flashlist_"},
		{name: "openapi", path: "/swagger/swagger.json", wantStatus: http.StatusOK, wantBody: "/api/v1/listings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			deps, st, _ := newDeps(t)
			if tt.path == "/readyz" {
				st.EXPECT().Ping(mock.Anything).Return(tt.pingErr).Once()
			}

			e, _ := server.New(deps, "test", logger.Discard())

			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestNew_SecuredRoutes(t *testing.T) {
	t.Parallel()

	deps, _, listings := newDeps(t)
	tok, err := deps.Auth.Mint("user-1")
	require.NoError(t, err)

	listings.EXPECT().
		GetListing(mock.Anything, "user-1", "6f1c2b9e-4d7a-4c3e-9a51-2e8b0d7f3c14").
		Return(&domain.Listing{ID: "6f1c2b9e-4d7a-4c3e-9a51-2e8b0d7f3c14", OwnerID: "user-1", Title: "Fern"}, nil).
		Once()

	e, _ := server.New(deps, "test", logger.Discard())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings/6f1c2b9e-4d7a-4c3e-9a51-2e8b0d7f3c14", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/listings/6f1c2b9e-4d7a-4c3e-9a51-2e8b0d7f3c14", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Fern"`)
}

func TestNewAPI_DeclaresBearerScheme(t *testing.T) {
	t.Parallel()

	deps, _, _ := newDeps(t)
	_, api := server.New(deps, "test", logger.Discard())

	schemes := api.OpenAPI().Components.SecuritySchemes
	require.Contains(t, schemes, auth.SchemeName)
	assert.Equal(t, "bearer", schemes[auth.SchemeName].Scheme)
}

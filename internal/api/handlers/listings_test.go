package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flashlist/internal/api/handlers"
	"github.com/donaldgifford/flashlist/internal/api/handlers/mocks"
	"github.com/donaldgifford/flashlist/internal/engine"
	"github.com/donaldgifford/flashlist/internal/store"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

const listingID = "3f6c2a7e-9b1d-4e8a-a5c2-7d0e1f4b9c36"

func TestCreateListing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		setupMock  func(*mocks.MockListingService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "creates and reports publish outcome",
			body: map[string]any{
				"title":        "Monstera deliciosa",
				"price":        25.0,
				"marketplaces": []string{"ebay"},
			},
			setupMock: func(m *mocks.MockListingService) {
				m.EXPECT().
					CreateListing(mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
						return l.OwnerID == testUser && l.Title == "Monstera deliciosa" &&
							len(l.Marketplaces) == 1 && l.Marketplaces[0] == domain.MarketplaceEbay
					})).
					RunAndReturn(func(_ context.Context, l *domain.Listing) ([]engine.Report, error) {
						l.ID = "listing-1"
						return []engine.Report{{
							Marketplace: domain.MarketplaceEbay,
							Status:      domain.StatusFailed,
							Error:       "marketplace account not connected",
						}}, nil
					}).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"listing-1"`,
		},
		{
			name: "unknown marketplace",
			body: map[string]any{
				"title":        "Pothos",
				"price":        5.0,
				"marketplaces": []string{"etsy"},
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "unknown marketplace: etsy",
		},
		{
			name: "validation error",
			body: map[string]any{
				"title":        "Pothos",
				"price":        5.0,
				"marketplaces": []string{"ebay"},
			},
			setupMock: func(m *mocks.MockListingService) {
				m.EXPECT().
					CreateListing(mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: owner is required", engine.ErrValidation)).
					Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "owner is required",
		},
		{
			name: "store error",
			body: map[string]any{
				"title":        "Pothos",
				"price":        5.0,
				"marketplaces": []string{"ebay"},
			},
			setupMock: func(m *mocks.MockListingService) {
				m.EXPECT().
					CreateListing(mock.Anything, mock.Anything).
					Return(nil, errors.New("db down")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "creating listing failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockListingService(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			api, _, authz := newSecuredAPI(t)
			handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(svc))

			resp := api.Post("/api/v1/listings", authz, tt.body)
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestCreateListing_RequiresToken(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockListingService(t)
	api, _, _ := newSecuredAPI(t)
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(svc))

	resp := api.Post("/api/v1/listings", map[string]any{
		"title":        "Pothos",
		"price":        5.0,
		"marketplaces": []string{"ebay"},
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestListListings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		setupMock  func(*mocks.MockListingService)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "scoped to caller with filters",
			query: "?marketplace=ebay&status=failed&limit=10&offset=20",
			setupMock: func(m *mocks.MockListingService) {
				m.EXPECT().
					ListListings(mock.Anything, mock.MatchedBy(func(q *store.ListingQuery) bool {
						return q.OwnerID == testUser &&
							q.Marketplace != nil && *q.Marketplace == "ebay" &&
							q.Status != nil && *q.Status == "failed" &&
							q.Limit == 10 && q.Offset == 20
					})).
					Return([]domain.Listing{{ID: "a", OwnerID: testUser, Title: "Fern"}}, 21, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":21`,
		},
		{
			name:  "empty result is an empty array",
			query: "",
			setupMock: func(m *mocks.MockListingService) {
				m.EXPECT().
					ListListings(mock.Anything, mock.Anything).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"listings":[]`,
		},
		{
			name:       "unknown marketplace filter",
			query:      "?marketplace=etsy",
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "unknown marketplace",
		},
		{
			name:  "store error",
			query: "",
			setupMock: func(m *mocks.MockListingService) {
				m.EXPECT().
					ListListings(mock.Anything, mock.Anything).
					Return(nil, 0, errors.New("db down")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "listing query failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockListingService(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			api, _, authz := newSecuredAPI(t)
			handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(svc))

			resp := api.Get("/api/v1/listings"+tt.query, authz)
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestGetListing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		getErr     error
		wantStatus int
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "not found", getErr: store.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "store error", getErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockListingService(t)
			var l *domain.Listing
			if tt.getErr == nil {
				l = &domain.Listing{ID: listingID, OwnerID: testUser, Title: "Calathea"}
			}
			svc.EXPECT().GetListing(mock.Anything, testUser, listingID).Return(l, tt.getErr).Once()

			api, _, authz := newSecuredAPI(t)
			handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(svc))

			resp := api.Get("/api/v1/listings/"+listingID, authz)
			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.getErr == nil {
				assert.Contains(t, resp.Body.String(), `"title":"Calathea"`)
			}
		})
	}
}

func TestDeleteListing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not found", deleteErr: store.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockListingService(t)
			svc.EXPECT().DeleteListing(mock.Anything, testUser, listingID).Return(tt.deleteErr).Once()

			api, _, authz := newSecuredAPI(t)
			handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(svc))

			resp := api.Delete("/api/v1/listings/"+listingID, authz)
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestRepublishListing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		marketplace string
		setupMock   func(*mocks.MockListingService)
		wantStatus  int
		wantBody    string
	}{
		{
			name:        "posted",
			marketplace: "ebay",
			setupMock: func(m *mocks.MockListingService) {
				m.EXPECT().
					RepublishListing(mock.Anything, testUser, listingID, domain.MarketplaceEbay).
					Return(&engine.Report{Marketplace: domain.MarketplaceEbay, Status: domain.StatusPosted}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"posted"`,
		},
		{
			name:        "already posted",
			marketplace: "ebay",
			setupMock: func(m *mocks.MockListingService) {
				m.EXPECT().
					RepublishListing(mock.Anything, testUser, listingID, domain.MarketplaceEbay).
					Return(nil, engine.ErrAlreadyPosted).
					Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   "already posted",
		},
		{
			name:        "not targeted",
			marketplace: "mercari",
			setupMock: func(m *mocks.MockListingService) {
				m.EXPECT().
					RepublishListing(mock.Anything, testUser, listingID, domain.MarketplaceMercari).
					Return(nil, engine.ErrNotTargeted).
					Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:        "no publisher",
			marketplace: "poshmark",
			setupMock: func(m *mocks.MockListingService) {
				m.EXPECT().
					RepublishListing(mock.Anything, testUser, listingID, domain.MarketplacePoshmark).
					Return(nil, engine.ErrNoPublisher).
					Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:        "unknown marketplace",
			marketplace: "etsy",
			wantStatus:  http.StatusUnprocessableEntity,
			wantBody:    "unknown marketplace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockListingService(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			api, _, authz := newSecuredAPI(t)
			handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(svc))

			resp := api.Post("/api/v1/listings/"+listingID+"/publish/"+tt.marketplace, authz)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestListingRoutes_MalformedIDIsNotFound(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockListingService(t)
	api, _, authz := newSecuredAPI(t)
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(svc))

	tests := []struct {
		name string
		do   func() int
	}{
		{name: "get", do: func() int { return api.Get("/api/v1/listings/not-a-uuid", authz).Code }},
		{name: "delete", do: func() int { return api.Delete("/api/v1/listings/not-a-uuid", authz).Code }},
		{name: "republish", do: func() int { return api.Post("/api/v1/listings/not-a-uuid/publish/ebay", authz).Code }},
		{name: "update", do: func() int {
			return api.Put("/api/v1/listings/not-a-uuid", authz, map[string]any{"title": "Fern"}).Code
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusNotFound, tt.do())
		})
	}
}

func TestUpdateListing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		setupMock  func(*mocks.MockListingService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "retargeted",
			body: map[string]any{"title": "Fern in hanging basket", "marketplaces": []string{"ebay", "mercari"}},
			setupMock: func(m *mocks.MockListingService) {
				m.EXPECT().
					UpdateListing(mock.Anything, testUser, listingID, mock.MatchedBy(func(u *engine.ListingUpdate) bool {
						return u.Title != nil && *u.Title == "Fern in hanging basket" &&
							u.Price == nil &&
							len(u.Marketplaces) == 2 && u.Marketplaces[1] == domain.MarketplaceMercari
					})).
					Return(
						&domain.Listing{ID: listingID, OwnerID: testUser, Title: "Fern in hanging basket"},
						[]engine.Report{{Marketplace: domain.MarketplaceMercari, Status: domain.StatusPending}},
						nil,
					).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"marketplace":"mercari"`,
		},
		{
			name: "dropping live marketplace",
			body: map[string]any{"marketplaces": []string{"mercari"}},
			setupMock: func(m *mocks.MockListingService) {
				m.EXPECT().UpdateListing(mock.Anything, testUser, listingID, mock.Anything).
					Return(nil, nil, fmt.Errorf("%w: ebay", engine.ErrTargetLive)).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   "live",
		},
		{
			name: "concurrent edit",
			body: map[string]any{"price": 9.5},
			setupMock: func(m *mocks.MockListingService) {
				m.EXPECT().UpdateListing(mock.Anything, testUser, listingID, mock.Anything).
					Return(nil, nil, store.ErrConflict).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown marketplace",
			body:       map[string]any{"marketplaces": []string{"etsy"}},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "unknown marketplace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockListingService(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			api, _, authz := newSecuredAPI(t)
			handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(svc))

			resp := api.Put("/api/v1/listings/"+listingID, authz, tt.body)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestGetListingStats(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockListingService(t)
	svc.EXPECT().ListingStats(mock.Anything, testUser).Return(&store.ListingStats{
		Total:         2,
		ByStatus:      map[domain.Status]int{domain.StatusPosted: 2},
		TopCategories: []store.CategoryCount{{Category: "165362", Count: 2}},
	}, nil).Once()

	api, _, authz := newSecuredAPI(t)
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(svc))

	resp := api.Get("/api/v1/stats", authz)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total":2`)
	assert.Contains(t, resp.Body.String(), `"category":"165362"`)
}

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/flashlist/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.EbayStatus(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail":"listing already posted"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Republish(context.Background(), "l1", "ebay")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 409)")
	assert.True(t, IsStatus(err, http.StatusConflict))
	assert.False(t, IsStatus(err, http.StatusNotFound))
}

func TestClient_SendsBearerToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ConnectionStatus{Connected: true, ExternalUserID: "seller-1"})
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok-1"))
	st, err := c.EbayStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, st.Connected)
	assert.Equal(t, "seller-1", st.ExternalUserID)
}

func TestClient_CreateListing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/listings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in NewListing
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, []string{"ebay"}, in.Marketplaces)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(CreatedListing{
			Listing: domain.Listing{ID: "l-created", Title: in.Title},
			Reports: []PublishReport{{Marketplace: domain.MarketplaceEbay, Status: domain.StatusPosted}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.CreateListing(context.Background(), &NewListing{
		Title:        "Monstera deliciosa",
		Price:        25,
		Marketplaces: []string{"ebay"},
	})
	require.NoError(t, err)
	assert.Equal(t, "l-created", result.Listing.ID)
	require.Len(t, result.Reports, 1)
	assert.Equal(t, domain.StatusPosted, result.Reports[0].Status)
}

func TestClient_DeleteListing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/listings/l1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.DeleteListing(context.Background(), "l1"))
}

func TestClient_UpdateListing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/listings/l1", r.URL.Path)

		var raw map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, map[string]any{"price": 18.0}, raw)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(CreatedListing{
			Listing: domain.Listing{ID: "l1", Price: 18},
			Reports: []PublishReport{},
		})
	}))
	defer srv.Close()

	price := 18.0
	result, err := New(srv.URL).UpdateListing(context.Background(), "l1", &ListingEdit{Price: &price})
	require.NoError(t, err)
	assert.InDelta(t, 18.0, result.Listing.Price, 0.001)
}

func TestClient_Stats(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/stats", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total":3,"by_status":{"posted":2,"failed":1},"top_categories":[{"category":"165362","count":2}]}`))
	}))
	defer srv.Close()

	st, err := New(srv.URL).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, st.Total)
	assert.Equal(t, 1, st.ByStatus[domain.StatusFailed])
	assert.Equal(t, []CategoryCount{{Category: "165362", Count: 2}}, st.TopCategories)
}

func TestClient_ListListings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/listings", r.URL.Path)
		assert.Equal(t, "ebay", r.URL.Query().Get("marketplace"))
		assert.Equal(t, "failed", r.URL.Query().Get("status"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ListingsResponse{
			Listings: []domain.Listing{{ID: "l1"}},
			Total:    1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ListListings(context.Background(), &ListListingsParams{
		Marketplace: "ebay",
		Status:      "failed",
		Limit:       10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Len(t, resp.Listings, 1)
}

func TestClient_ProbeCategories(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/categories/probe", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "plants", body["pin_label"])
		assert.NotContains(t, body, "candidates")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ProbeResponse{
			Results: []ProbeResult{{CategoryID: "159912", Verdict: "leaf"}},
			Pinned:  "159912",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ProbeCategories(context.Background(), nil, "plants")
	require.NoError(t, err)
	assert.Equal(t, "159912", resp.Pinned)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}

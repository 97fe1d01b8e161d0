package ebay_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flashlist/internal/ebay"
)

func TestBrowseClient_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		req           ebay.SearchRequest
		handler       http.HandlerFunc
		wantErr       bool
		errContain    string
		wantTransient bool
		wantItems     int
		wantMore      bool
	}{
		{
			name: "successful search with results",
			req:  ebay.SearchRequest{Query: "Succulent in pot", Limit: 10},
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
				assert.Equal(t, "EBAY_US", r.Header.Get("X-EBAY-C-MARKETPLACE-ID"))
				assert.Equal(t, "/buy/browse/v1/item_summary/search", r.URL.Path)
				assert.Equal(t, "Succulent in pot", r.URL.Query().Get("q"))
				assert.Equal(t, "10", r.URL.Query().Get("limit"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"itemSummaries": [
						{"itemId": "v1|1|0", "title": "Item 1", "price": {"value": "10.00", "currency": "USD"}, "leafCategoryIds": ["165362"]},
						{"itemId": "v1|2|0", "title": "Item 2", "price": {"value": "20.00", "currency": "USD"}, "categories": [{"categoryId": "20654"}]}
					],
					"total": 100,
					"offset": 0,
					"limit": 10,
					"next": "https://api.ebay.com/buy/browse/v1/item_summary/search?q=test&offset=10"
				}`))
			},
			wantItems: 2,
			wantMore:  true,
		},
		{
			name: "empty results",
			req:  ebay.SearchRequest{Query: "nonexistent item xyz"},
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"itemSummaries": [], "total": 0, "offset": 0, "limit": 50}`))
			},
		},
		{
			name: "401 unauthorized response",
			req:  ebay.SearchRequest{Query: "test"},
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"errors": [{"message": "Invalid access token"}]}`))
			},
			wantErr:    true,
			errContain: "status 401",
		},
		{
			name: "429 rate limited response",
			req:  ebay.SearchRequest{Query: "test"},
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantErr:       true,
			errContain:    "status 429",
			wantTransient: true,
		},
		{
			name: "500 server error response",
			req:  ebay.SearchRequest{Query: "test"},
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr:       true,
			errContain:    "status 500",
			wantTransient: true,
		},
		{
			name: "HTML instead of JSON",
			req:  ebay.SearchRequest{Query: "test"},
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				_, _ = w.Write([]byte(`<!DOCTYPE html><html><body>Service Unavailable</body></html>`))
			},
			wantErr:    true,
			errContain: "parsing response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := ebay.NewBrowseClient(ebay.WithBaseURL(srv.URL))
			resp, err := client.Search(context.Background(), "user-token", tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				assert.Equal(t, tt.wantTransient, ebay.IsTransient(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Len(t, resp.Items, tt.wantItems)
			assert.Equal(t, tt.wantMore, resp.HasMore)
		})
	}
}

func TestBrowseClient_Search_RateLimited(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"itemSummaries":[],"total":0,"offset":0,"limit":50}`))
	}))
	defer srv.Close()

	rl := ebay.NewRateLimiter(100, 10, 1)
	client := ebay.NewBrowseClient(ebay.WithBaseURL(srv.URL), ebay.WithRateLimiter(rl))

	_, err := client.Search(context.Background(), "t", ebay.SearchRequest{Query: "test"})
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "t", ebay.SearchRequest{Query: "test"})
	require.ErrorIs(t, err, ebay.ErrDailyLimitReached)
	assert.Contains(t, err.Error(), "rate limit:")
	assert.False(t, ebay.IsTransient(err))
}

func TestBrowseClient_Search_QueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       ebay.SearchRequest
		wantQuery map[string]string
	}{
		{
			name:      "basic query with defaults",
			req:       ebay.SearchRequest{Query: "mixing bowl"},
			wantQuery: map[string]string{"q": "mixing bowl", "limit": "50"},
		},
		{
			name: "with category, sort, and filter",
			req: ebay.SearchRequest{
				Query:      "teapot",
				CategoryID: "20657",
				Sort:       "newlyListed",
				Limit:      25,
				Filters:    map[string]string{"filter": "conditions:{NEW}"},
			},
			wantQuery: map[string]string{
				"q":            "teapot",
				"category_ids": "20657",
				"sort":         "newlyListed",
				"limit":        "25",
				"filter":       "conditions:{NEW}",
			},
		},
		{
			name:      "with offset",
			req:       ebay.SearchRequest{Query: "test", Limit: 10, Offset: 20},
			wantQuery: map[string]string{"q": "test", "limit": "10", "offset": "20"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.wantQuery {
					assert.Equalf(t, v, r.URL.Query().Get(k), "query param %q", k)
				}
				_, _ = w.Write([]byte(`{"itemSummaries":[],"total":0,"offset":0,"limit":50}`))
			}))
			defer srv.Close()

			client := ebay.NewBrowseClient(ebay.WithBaseURL(srv.URL))
			_, err := client.Search(context.Background(), "t", tt.req)
			require.NoError(t, err)
		})
	}
}

func TestItemSummary_LeafCategoryID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item ebay.ItemSummary
		want string
	}{
		{name: "leaf ids preferred", item: ebay.ItemSummary{
			LeafCategoryIDs: []string{"111"},
			Categories:      []ebay.ItemCategory{{CategoryID: "222"}},
		}, want: "111"},
		{name: "categories fallback", item: ebay.ItemSummary{
			Categories: []ebay.ItemCategory{{CategoryID: "222"}, {CategoryID: "333"}},
		}, want: "222"},
		{name: "none", item: ebay.ItemSummary{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.item.LeafCategoryID())
		})
	}
}

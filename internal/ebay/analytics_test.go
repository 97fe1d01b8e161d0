package ebay_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flashlist/internal/ebay"
	"github.com/donaldgifford/flashlist/internal/ebay/mocks"
)

const sellInventoryQuota = `{
	"rateLimits": [{
		"apiContext": "sell",
		"apiName": "Inventory",
		"apiVersion": "v1",
		"resources": [
			{
				"name": "sell.inventory",
				"rates": [{"count": 312, "limit": 2000000, "remaining": 1999688, "reset": "2026-10-20T07:00:00.000Z", "timeWindow": 86400}]
			},
			{
				"name": "sell.inventory.bulk",
				"rates": [{"count": 0, "limit": 100000, "remaining": 100000, "reset": "2026-10-20T07:00:00.000Z", "timeWindow": 86400}]
			}
		]
	}]
}`

func TestAnalyticsClient_GetQuota(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer app-token", r.Header.Get("Authorization"))
		assert.Equal(t, "sell", r.URL.Query().Get("api_context"))
		assert.Equal(t, "inventory", r.URL.Query().Get("api_name"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sellInventoryQuota))
	}))
	defer srv.Close()

	tokens := mocks.NewMockTokenProvider(t)
	tokens.EXPECT().Token(mock.Anything).Return("app-token", nil).Once()

	client := ebay.NewAnalyticsClient(tokens, ebay.WithAnalyticsURL(srv.URL))
	quota, err := client.GetQuota(context.Background(), "sell", "inventory", "sell.inventory")
	require.NoError(t, err)

	assert.Equal(t, int64(312), quota.Count)
	assert.Equal(t, int64(2000000), quota.Limit)
	assert.Equal(t, int64(1999688), quota.Remaining)
	assert.True(t, quota.ResetAt.Equal(time.Date(2026, 10, 20, 7, 0, 0, 0, time.UTC)))
	assert.Equal(t, 24*time.Hour, quota.TimeWindow)
}

func TestAnalyticsClient_GetQuotaErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		resource   string
		tokenErr   error
		errContain string
		wantStatus int
	}{
		{
			name:       "resource not found",
			status:     http.StatusOK,
			body:       sellInventoryQuota,
			resource:   "sell.fulfillment",
			errContain: `"sell.fulfillment" not found`,
		},
		{
			name:       "empty rate limits",
			status:     http.StatusOK,
			body:       `{"rateLimits": []}`,
			resource:   "sell.inventory",
			errContain: "not found",
		},
		{
			name:       "empty rates array",
			status:     http.StatusOK,
			body:       `{"rateLimits":[{"apiContext":"sell","resources":[{"name":"sell.inventory","rates":[]}]}]}`,
			resource:   "sell.inventory",
			errContain: "no rates found",
		},
		{
			name:       "malformed reset timestamp",
			status:     http.StatusOK,
			body:       `{"rateLimits":[{"resources":[{"name":"sell.inventory","rates":[{"count":1,"limit":2,"remaining":1,"reset":"soon","timeWindow":86400}]}]}]}`,
			resource:   "sell.inventory",
			errContain: "parsing reset time",
		},
		{
			name:       "invalid JSON",
			status:     http.StatusOK,
			body:       "<html>",
			resource:   "sell.inventory",
			errContain: "parsing analytics response",
		},
		{
			name:       "unauthorized",
			status:     http.StatusUnauthorized,
			body:       `{"errors":[{"message":"Invalid access token"}]}`,
			resource:   "sell.inventory",
			errContain: "status 401",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token provider error",
			tokenErr:   assert.AnError,
			resource:   "sell.inventory",
			errContain: "getting auth token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			tokens := mocks.NewMockTokenProvider(t)
			if tt.tokenErr != nil {
				tokens.EXPECT().Token(mock.Anything).Return("", tt.tokenErr)
			} else {
				tokens.EXPECT().Token(mock.Anything).Return("app-token", nil)
			}

			client := ebay.NewAnalyticsClient(tokens, ebay.WithAnalyticsURL(srv.URL))
			_, err := client.GetQuota(context.Background(), "sell", "inventory", tt.resource)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContain)
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, ebay.StatusCode(err))
			}
		})
	}
}

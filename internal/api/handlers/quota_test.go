package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flashlist/internal/api/handlers"
	"github.com/donaldgifford/flashlist/internal/ebay"
	ebayMocks "github.com/donaldgifford/flashlist/internal/ebay/mocks"
)

func TestGetQuota(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		rl           *ebay.RateLimiter
		preCalls     int
		wantStatus   int
		wantLimit    int64
		wantUsed     int64
		wantRemain   int64
		wantResetNil bool
	}{
		{
			name:         "nil rate limiter returns zeroes",
			rl:           nil,
			wantStatus:   http.StatusOK,
			wantLimit:    0,
			wantUsed:     0,
			wantRemain:   0,
			wantResetNil: true,
		},
		{
			name:       "fresh rate limiter",
			rl:         ebay.NewRateLimiter(100, 10, 5000),
			wantStatus: http.StatusOK,
			wantLimit:  5000,
			wantUsed:   0,
			wantRemain: 5000,
		},
		{
			name:       "rate limiter with usage",
			rl:         ebay.NewRateLimiter(100, 10, 100),
			preCalls:   3,
			wantStatus: http.StatusOK,
			wantLimit:  100,
			wantUsed:   3,
			wantRemain: 97,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Simulate some API calls.
			if tt.rl != nil {
				for range tt.preCalls {
					require.NoError(t, tt.rl.Wait(t.Context()))
				}
			}

			h := handlers.NewQuotaHandler(tt.rl, nil)

			api, _, authz := newSecuredAPI(t)
			handlers.RegisterQuotaRoutes(api, h)

			resp := api.Get("/api/v1/quota", authz)
			require.Equal(t, tt.wantStatus, resp.Code)

			body := resp.Body.String()
			assert.Contains(t, body, `"daily_limit"`)
			assert.Contains(t, body, `"daily_used"`)
			assert.Contains(t, body, `"remaining"`)
			assert.Contains(t, body, `"reset_at"`)
		})
	}
}

func TestGetQuota_ResetAtValue(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	rl := ebay.NewRateLimiter(
		5, 10, 5000,
		ebay.WithRateLimiterNowFunc(func() time.Time { return now }),
	)

	h := handlers.NewQuotaHandler(rl, nil)

	api, _, authz := newSecuredAPI(t)
	handlers.RegisterQuotaRoutes(api, h)

	resp := api.Get("/api/v1/quota", authz)
	require.Equal(t, http.StatusOK, resp.Code)

	// ResetAt should be 24 hours from now.
	body := resp.Body.String()
	assert.Contains(t, body, "2025-06-16T14:30:00Z")
}

func TestGetQuota_Remote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		state    *ebay.QuotaState
		err      error
		wantBody []string
	}{
		{
			name: "reports eBay's counters",
			state: &ebay.QuotaState{
				Count:     40,
				Limit:     2000000,
				Remaining: 1999960,
				ResetAt:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			},
			wantBody: []string{`"remote":{`, `"count":40`, `"remaining":1999960`},
		},
		{
			name:     "analytics failure is reported, not fatal",
			err:      errors.New("analytics unavailable"),
			wantBody: []string{`"remote_error":"analytics unavailable"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			remote := ebayMocks.NewMockQuotaReporter(t)
			remote.EXPECT().
				GetQuota(mock.Anything, "sell", "inventory", "sell.inventory").
				Return(tt.state, tt.err).
				Once()

			api, _, authz := newSecuredAPI(t)
			handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(ebay.NewRateLimiter(5, 10, 5000), remote))

			resp := api.Get("/api/v1/quota", authz)
			require.Equal(t, http.StatusOK, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}

func TestGetQuota_RequiresToken(t *testing.T) {
	t.Parallel()

	api, _, _ := newSecuredAPI(t)
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(ebay.NewRateLimiter(5, 10, 5000), nil))

	resp := api.Get("/api/v1/quota")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

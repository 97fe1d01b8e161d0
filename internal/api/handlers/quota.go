package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/flashlist/internal/auth"
	"github.com/donaldgifford/flashlist/internal/ebay"
)

// QuotaHandler provides the eBay API quota status endpoint.
type QuotaHandler struct {
	rl     *ebay.RateLimiter
	remote ebay.QuotaReporter
}

// NewQuotaHandler creates a new QuotaHandler. remote may be nil, in which
// case only the local counters are reported.
func NewQuotaHandler(rl *ebay.RateLimiter, remote ebay.QuotaReporter) *QuotaHandler {
	return &QuotaHandler{rl: rl, remote: remote}
}

// RemoteQuota is the Sell Inventory quota as eBay reports it.
type RemoteQuota struct {
	Count     int64     `json:"count"     doc:"Calls eBay has counted in its window"`
	Limit     int64     `json:"limit"     doc:"eBay's limit for the window"`
	Remaining int64     `json:"remaining" doc:"Calls left in eBay's window"`
	ResetAt   time.Time `json:"reset_at"  doc:"When eBay's window resets"`
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		DailyLimit  int64        `json:"daily_limit"            example:"5000"                 doc:"Configured daily API call limit"`
		DailyUsed   int64        `json:"daily_used"             example:"142"                  doc:"API calls used in the current 24-hour window"`
		Remaining   int64        `json:"remaining"              example:"4858"                 doc:"API calls remaining in the current window"`
		ResetAt     time.Time    `json:"reset_at"               example:"2025-06-16T14:30:00Z" doc:"When the current 24-hour window expires"`
		Remote      *RemoteQuota `json:"remote,omitempty"       doc:"Quota reported by the Analytics API"`
		RemoteError string       `json:"remote_error,omitempty" doc:"Why the Analytics API could not be read"`
	}
}

// GetQuota returns the current eBay API quota status.
func (h *QuotaHandler) GetQuota(ctx context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	if h.rl != nil {
		resp.Body.DailyLimit = h.rl.MaxDaily()
		resp.Body.DailyUsed = h.rl.DailyCount()
		resp.Body.Remaining = h.rl.Remaining()
		resp.Body.ResetAt = h.rl.ResetAt()
	}

	if h.remote != nil {
		q, err := h.remote.GetQuota(ctx, "sell", "inventory", "sell.inventory")
		if err != nil {
			resp.Body.RemoteError = err.Error()
		} else {
			resp.Body.Remote = &RemoteQuota{
				Count:     q.Count,
				Limit:     q.Limit,
				Remaining: q.Remaining,
				ResetAt:   q.ResetAt,
			}
		}
	}

	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get eBay API quota status",
		Description: "Returns the local daily call budget and, when available, eBay's own count for the Sell Inventory API.",
		Tags:        []string{"ebay"},
		Security:    auth.BearerSecurity,
		Errors:      []int{http.StatusUnauthorized},
	}, h.GetQuota)
}

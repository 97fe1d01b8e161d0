package ebay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultAnalyticsURL = "https://api.ebay.com/developer/analytics/v1_beta/rate_limit/"

// rateLimitResponse is the top-level Analytics API response.
type rateLimitResponse struct {
	RateLimits []rateLimitEntry `json:"rateLimits"`
}

// rateLimitEntry represents one API context in the Analytics response.
type rateLimitEntry struct {
	APIContext string     `json:"apiContext"`
	APIName    string     `json:"apiName"`
	APIVersion string     `json:"apiVersion"`
	Resources  []resource `json:"resources"`
}

// resource represents one API resource with its rate limits.
type resource struct {
	Name  string      `json:"name"`
	Rates []quotaRate `json:"rates"`
}

// quotaRate holds the quota state for a single resource.
type quotaRate struct {
	Count      int64  `json:"count"`
	Limit      int64  `json:"limit"`
	Remaining  int64  `json:"remaining"`
	Reset      string `json:"reset"`
	TimeWindow int64  `json:"timeWindow"`
}

// QuotaState holds the parsed rate limit state for a single eBay API resource.
type QuotaState struct {
	Count      int64
	Limit      int64
	Remaining  int64
	ResetAt    time.Time
	TimeWindow time.Duration
}

// AnalyticsClient queries the eBay Developer Analytics API for rate limit
// state. Its calls do not count against the local RateLimiter.
type AnalyticsClient struct {
	tokens       TokenProvider
	analyticsURL string
	client       *http.Client
}

// AnalyticsOption configures the AnalyticsClient.
type AnalyticsOption func(*AnalyticsClient)

// WithAnalyticsURL overrides the default Analytics API endpoint.
func WithAnalyticsURL(u string) AnalyticsOption {
	return func(c *AnalyticsClient) {
		c.analyticsURL = u
	}
}

// WithAnalyticsHTTPClient overrides the default HTTP client.
func WithAnalyticsHTTPClient(hc *http.Client) AnalyticsOption {
	return func(c *AnalyticsClient) {
		c.client = hc
	}
}

// NewAnalyticsClient creates a new eBay Analytics API client.
func NewAnalyticsClient(
	tokens TokenProvider,
	opts ...AnalyticsOption,
) *AnalyticsClient {
	c := &AnalyticsClient{
		tokens:       tokens,
		analyticsURL: defaultAnalyticsURL,
		client:       &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ QuotaReporter = (*AnalyticsClient)(nil)

// GetQuota returns the rate limit state for one resource of one API, for
// example ("sell", "inventory", "sell.inventory"). The Analytics response is
// filtered server-side by api_context and api_name.
func (c *AnalyticsClient) GetQuota(
	ctx context.Context,
	apiContext, apiName, resourceName string,
) (*QuotaState, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting auth token: %w", err)
	}

	u, err := url.Parse(c.analyticsURL)
	if err != nil {
		return nil, fmt.Errorf("parsing analytics URL: %w", err)
	}

	q := u.Query()
	q.Set("api_context", apiContext)
	q.Set("api_name", apiName)
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodGet, u.String(), http.NoBody,
	)
	if err != nil {
		return nil, fmt.Errorf("creating analytics request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: executing analytics request: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading analytics response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var apiResp rateLimitResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parsing analytics response: %w", err)
	}

	return extractQuota(apiResp, resourceName)
}

// extractQuota finds the named resource in the response and returns the
// state of its first rate window.
func extractQuota(resp rateLimitResponse, resourceName string) (*QuotaState, error) {
	for _, entry := range resp.RateLimits {
		for _, res := range entry.Resources {
			if res.Name != resourceName {
				continue
			}
			if len(res.Rates) == 0 {
				return nil, fmt.Errorf("no rates found for resource %q", resourceName)
			}

			r := res.Rates[0]

			resetAt, err := time.Parse(time.RFC3339, r.Reset)
			if err != nil {
				return nil, fmt.Errorf("parsing reset time %q: %w", r.Reset, err)
			}

			return &QuotaState{
				Count:      r.Count,
				Limit:      r.Limit,
				Remaining:  r.Remaining,
				ResetAt:    resetAt,
				TimeWindow: time.Duration(r.TimeWindow) * time.Second,
			}, nil
		}
	}

	return nil, fmt.Errorf("resource %q not found in analytics response", resourceName)
}

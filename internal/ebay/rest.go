package ebay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/donaldgifford/flashlist/internal/metrics"
)

const (
	defaultBaseURL     = "https://api.ebay.com"
	defaultMarketplace = "EBAY_US"
	defaultTimeout     = 30 * time.Second
	contentLanguage    = "en-US"
)

// restClient performs bearer-authenticated JSON calls against one eBay
// API host. Every call passes through the shared rate limiter when set.
type restClient struct {
	baseURL     string
	marketplace string
	client      *http.Client
	rateLimiter *RateLimiter
}

// ClientOption configures the Browse, Sell, Taxonomy, and Analytics clients.
type ClientOption func(*restClient)

// WithBaseURL overrides the default API host (https://api.ebay.com).
func WithBaseURL(u string) ClientOption {
	return func(c *restClient) {
		c.baseURL = u
	}
}

// WithMarketplace overrides the default marketplace (EBAY_US).
func WithMarketplace(m string) ClientOption {
	return func(c *restClient) {
		c.marketplace = m
	}
}

// WithAPIHTTPClient overrides the default HTTP client.
func WithAPIHTTPClient(hc *http.Client) ClientOption {
	return func(c *restClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// API call limits. When set, every call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) ClientOption {
	return func(c *restClient) {
		c.rateLimiter = r
	}
}

func newRESTClient(opts []ClientOption) restClient {
	c := restClient{
		baseURL:     defaultBaseURL,
		marketplace: defaultMarketplace,
		client:      &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

type requestOption func(*http.Request)

func withContentLanguage() requestOption {
	return func(r *http.Request) {
		r.Header.Set("Content-Language", contentLanguage)
	}
}

// do sends in (when non-nil) as JSON and decodes a non-empty 2xx body into
// out (when non-nil). An empty 2xx body is success. Non-2xx responses
// return *APIError; failures without a response wrap ErrTransport.
func (c *restClient) do(
	ctx context.Context,
	token, method, path string,
	in, out any,
	opts ...requestOption,
) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	var body io.Reader = http.NoBody
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-EBAY-C-MARKETPLACE-ID", c.marketplace)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(req)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("executing request: %w", ctx.Err())
		}
		metrics.EbayAPIErrorsTotal.WithLabelValues("transport").Inc()
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response body: %w", ErrTransport, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.EbayAPIErrorsTotal.WithLabelValues(statusClass(resp.StatusCode)).Inc()
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

func (c *restClient) wait(ctx context.Context) error {
	metrics.EbayAPICallsTotal.Inc()
	if c.rateLimiter == nil {
		return nil
	}
	if err := c.rateLimiter.Wait(ctx); err != nil {
		if errors.Is(err, ErrDailyLimitReached) {
			metrics.EbayDailyLimitHits.Inc()
		}
		return fmt.Errorf("rate limit: %w", err)
	}
	metrics.EbayDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	return nil
}

func statusClass(code int) string {
	switch {
	case code == http.StatusTooManyRequests:
		return "429"
	case code >= http.StatusInternalServerError:
		return "5xx"
	default:
		return "4xx"
	}
}

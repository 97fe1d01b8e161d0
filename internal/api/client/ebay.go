package client

import (
	"context"
	"time"
)

// ConnectionStatus describes the caller's eBay connection.
type ConnectionStatus struct {
	Connected      bool      `json:"connected"`
	ExternalUserID string    `json:"external_user_id,omitempty"`
	ExpiresAt      time.Time `json:"expires_at"`
	Refreshed      bool      `json:"refreshed"`
}

// Policies are the seller's business policy ids.
type Policies struct {
	FulfillmentPolicyID string `json:"fulfillment_policy_id"`
	PaymentPolicyID     string `json:"payment_policy_id"`
	ReturnPolicyID      string `json:"return_policy_id"`
}

// Quota is the local and remote eBay call budget.
type Quota struct {
	DailyLimit  int64     `json:"daily_limit"`
	DailyUsed   int64     `json:"daily_used"`
	Remaining   int64     `json:"remaining"`
	ResetAt     time.Time `json:"reset_at"`
	RemoteError string    `json:"remote_error,omitempty"`
	Remote      *struct {
		Count     int64     `json:"count"`
		Limit     int64     `json:"limit"`
		Remaining int64     `json:"remaining"`
		ResetAt   time.Time `json:"reset_at"`
	} `json:"remote,omitempty"`
}

// StartOAuth returns the eBay consent URL for the caller.
func (c *Client) StartOAuth(ctx context.Context) (string, error) {
	var resp struct {
		AuthURL string `json:"auth_url"`
	}
	if err := c.get(ctx, "/api/v1/ebay/oauth/start", &resp); err != nil {
		return "", err
	}
	return resp.AuthURL, nil
}

// EbayStatus reports the caller's eBay connection.
func (c *Client) EbayStatus(ctx context.Context) (*ConnectionStatus, error) {
	var s ConnectionStatus
	if err := c.get(ctx, "/api/v1/ebay/status", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// RefreshToken forces an eBay token refresh.
func (c *Client) RefreshToken(ctx context.Context) (*ConnectionStatus, error) {
	var s ConnectionStatus
	if err := c.post(ctx, "/api/v1/ebay/refresh", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Disconnect removes the caller's eBay credential.
func (c *Client) Disconnect(ctx context.Context) error {
	return c.del(ctx, "/api/v1/ebay/connection", nil)
}

// BootstrapPolicies creates any missing default business policy.
func (c *Client) BootstrapPolicies(ctx context.Context) (*Policies, error) {
	var p Policies
	if err := c.post(ctx, "/api/v1/ebay/policies/bootstrap", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetQuota returns the eBay call budget.
func (c *Client) GetQuota(ctx context.Context) (*Quota, error) {
	var q Quota
	if err := c.get(ctx, "/api/v1/quota", &q); err != nil {
		return nil, err
	}
	return &q, nil
}

package client

import (
	"context"
	"time"
)

// CategoryTable is the label to leaf-category table.
type CategoryTable struct {
	Source      string            `json:"source"`
	RefreshedAt time.Time         `json:"refreshed_at"`
	Entries     map[string]string `json:"entries"`
}

// ProbeResult is the verdict for one candidate category id.
type ProbeResult struct {
	CategoryID string `json:"category_id"`
	Verdict    string `json:"verdict"`
	Detail     string `json:"detail,omitempty"`
}

// ProbeResponse lists probe verdicts and the pinned leaf, if any.
type ProbeResponse struct {
	Results []ProbeResult `json:"results"`
	Pinned  string        `json:"pinned,omitempty"`
}

// Categories returns the category table.
func (c *Client) Categories(ctx context.Context) (*CategoryTable, error) {
	var t CategoryTable
	if err := c.get(ctx, "/api/v1/categories", &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// RefreshCategories rebuilds the category table.
func (c *Client) RefreshCategories(ctx context.Context) (*CategoryTable, error) {
	var t CategoryTable
	if err := c.post(ctx, "/api/v1/categories/refresh", nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ProbeCategories checks candidate ids and optionally pins the first leaf
// under pinLabel.
func (c *Client) ProbeCategories(ctx context.Context, candidates []string, pinLabel string) (*ProbeResponse, error) {
	body := map[string]any{}
	if len(candidates) > 0 {
		body["candidates"] = candidates
	}
	if pinLabel != "" {
		body["pin_label"] = pinLabel
	}

	var resp ProbeResponse
	if err := c.post(ctx, "/api/v1/categories/probe", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

package ebay

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const browseSearchPath = "/buy/browse/v1/item_summary/search"

// BrowseClient implements BrowseAPI using the eBay Browse API.
type BrowseClient struct {
	rest restClient
}

var _ BrowseAPI = (*BrowseClient)(nil)

// NewBrowseClient creates a new eBay Browse API client.
func NewBrowseClient(opts ...ClientOption) *BrowseClient {
	return &BrowseClient{rest: newRESTClient(opts)}
}

type browseAPIResponse struct {
	ItemSummaries []ItemSummary `json:"itemSummaries"`
	Total         int           `json:"total"`
	Offset        int           `json:"offset"`
	Limit         int           `json:"limit"`
	Next          string        `json:"next"`
}

// Search queries item_summary/search with the caller's access token.
func (c *BrowseClient) Search(
	ctx context.Context,
	token string,
	req SearchRequest,
) (*SearchResponse, error) {
	var apiResp browseAPIResponse
	if err := c.rest.do(ctx, token, http.MethodGet, buildSearchPath(req), nil, &apiResp); err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}

	return &SearchResponse{
		Items:   apiResp.ItemSummaries,
		Total:   apiResp.Total,
		Offset:  apiResp.Offset,
		Limit:   apiResp.Limit,
		HasMore: apiResp.Next != "",
	}, nil
}

func buildSearchPath(req SearchRequest) string {
	params := url.Values{}
	params.Set("q", req.Query)

	if req.CategoryID != "" {
		params.Set("category_ids", req.CategoryID)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	params.Set("limit", strconv.Itoa(limit))

	if req.Offset > 0 {
		params.Set("offset", strconv.Itoa(req.Offset))
	}

	if req.Sort != "" {
		params.Set("sort", req.Sort)
	}

	for k, v := range req.Filters {
		params.Set(k, v)
	}

	return browseSearchPath + "?" + params.Encode()
}

package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/flashlist/pkg/types"
)

// NewListing is the body of a create-listing request.
type NewListing struct {
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category,omitempty"`
	Brand        string          `json:"brand,omitempty"`
	Condition    string          `json:"condition,omitempty"`
	Tags         []string        `json:"tags,omitempty"`
	ImageURLs    []string        `json:"image_urls,omitempty"`
	Price        float64         `json:"price"`
	Marketplaces []string        `json:"marketplaces"`
	Address      *domain.Address `json:"address,omitempty"`
}

// PublishReport is the publish outcome for one marketplace.
type PublishReport struct {
	Marketplace domain.Marketplace `json:"marketplace"`
	Status      domain.Status      `json:"status"`
	Error       string             `json:"error,omitempty"`
}

// CreatedListing is the response to a create-listing request.
type CreatedListing struct {
	Listing domain.Listing  `json:"listing"`
	Reports []PublishReport `json:"reports"`
}

// ListingEdit is the body of an edit-listing request. Nil fields are left
// unchanged.
type ListingEdit struct {
	Title        *string         `json:"title,omitempty"`
	Description  *string         `json:"description,omitempty"`
	Category     *string         `json:"category,omitempty"`
	Brand        *string         `json:"brand,omitempty"`
	Condition    *string         `json:"condition,omitempty"`
	Tags         *[]string       `json:"tags,omitempty"`
	ImageURLs    *[]string       `json:"image_urls,omitempty"`
	Price        *float64        `json:"price,omitempty"`
	Marketplaces []string        `json:"marketplaces,omitempty"`
	Address      *domain.Address `json:"address,omitempty"`
}

// CategoryCount is how many listings use one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ListingStats summarizes the caller's listings.
type ListingStats struct {
	Total         int                   `json:"total"`
	ByStatus      map[domain.Status]int `json:"by_status"`
	TopCategories []CategoryCount       `json:"top_categories"`
}

// ListingsResponse wraps a paginated listings response.
type ListingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// ListListingsParams defines query parameters for listing queries.
type ListListingsParams struct {
	Marketplace string
	Status      string
	Limit       int
	Offset      int
	OrderBy     string
}

// CreateListing saves a listing and publishes it to its marketplaces.
func (c *Client) CreateListing(ctx context.Context, l *NewListing) (*CreatedListing, error) {
	var resp CreatedListing
	if err := c.post(ctx, "/api/v1/listings", l, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListListings returns the caller's listings matching the given parameters.
func (c *Client) ListListings(
	ctx context.Context,
	params *ListListingsParams,
) (*ListingsResponse, error) {
	q := url.Values{}
	if params.Marketplace != "" {
		q.Set("marketplace", params.Marketplace)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ListingsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetListing returns a single listing by ID.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, "/api/v1/listings/"+url.PathEscape(id), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// DeleteListing deletes a listing locally.
func (c *Client) DeleteListing(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/listings/"+url.PathEscape(id), nil)
}

// Republish retries publishing a listing to one marketplace.
func (c *Client) Republish(ctx context.Context, id, marketplace string) (*PublishReport, error) {
	var r PublishReport
	path := "/api/v1/listings/" + url.PathEscape(id) + "/publish/" + url.PathEscape(marketplace)
	if err := c.post(ctx, path, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateListing edits a listing. Reports cover newly added marketplaces.
func (c *Client) UpdateListing(ctx context.Context, id string, e *ListingEdit) (*CreatedListing, error) {
	var resp CreatedListing
	if err := c.put(ctx, "/api/v1/listings/"+url.PathEscape(id), e, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stats returns a summary of the caller's listings.
func (c *Client) Stats(ctx context.Context) (*ListingStats, error) {
	var st ListingStats
	if err := c.get(ctx, "/api/v1/stats", &st); err != nil {
		return nil, err
	}
	return &st, nil
}

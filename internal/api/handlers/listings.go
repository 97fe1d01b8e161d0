package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/donaldgifford/flashlist/internal/auth"
	"github.com/donaldgifford/flashlist/internal/engine"
	"github.com/donaldgifford/flashlist/internal/store"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

// ListingService is the listing lifecycle the API drives.
type ListingService interface {
	CreateListing(ctx context.Context, l *domain.Listing) ([]engine.Report, error)
	GetListing(ctx context.Context, ownerID, id string) (*domain.Listing, error)
	ListListings(ctx context.Context, q *store.ListingQuery) ([]domain.Listing, int, error)
	UpdateListing(ctx context.Context, ownerID, id string, u *engine.ListingUpdate) (*domain.Listing, []engine.Report, error)
	RepublishListing(ctx context.Context, ownerID, id string, m domain.Marketplace) (*engine.Report, error)
	DeleteListing(ctx context.Context, ownerID, id string) error
	ListingStats(ctx context.Context, ownerID string) (*store.ListingStats, error)
}

// ListingsHandler handles listing endpoints.
type ListingsHandler struct {
	listings ListingService
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(s ListingService) *ListingsHandler {
	return &ListingsHandler{listings: s}
}

// --- Input/Output types ---

// CreateListingBody is the listing submitted by the client.
type CreateListingBody struct {
	Title        string          `json:"title"                 doc:"Listing title"                     minLength:"1" maxLength:"80"`
	Description  string          `json:"description,omitempty" doc:"Listing description"`
	Category     string          `json:"category,omitempty"    doc:"Free-form category label"`
	Brand        string          `json:"brand,omitempty"       doc:"Brand"`
	Condition    string          `json:"condition,omitempty"   doc:"Condition label, e.g. New or Used"`
	Tags         []string        `json:"tags,omitempty"        doc:"Ordered tags"`
	ImageURLs    []string        `json:"image_urls,omitempty"  doc:"Public image URLs"`
	Price        float64         `json:"price"                 doc:"Asking price in USD"               minimum:"0"`
	Marketplaces []string        `json:"marketplaces"          doc:"Marketplaces to publish to"        minItems:"1"  example:"[\"ebay\"]"`
	Address      *domain.Address `json:"address,omitempty"     doc:"Ship-from address"`
}

// CreateListingInput is the input for creating a listing.
type CreateListingInput struct {
	Body CreateListingBody
}

// CreateListingOutput is the created listing and its publish reports.
type CreateListingOutput struct {
	Body struct {
		Listing domain.Listing  `json:"listing"`
		Reports []engine.Report `json:"reports"`
	}
}

// ListListingsInput is the input for listing the caller's listings.
type ListListingsInput struct {
	Marketplace string `query:"marketplace" doc:"Only listings targeting this marketplace"`
	Status      string `query:"status"      doc:"Only listings in this status"            enum:"pending,posted,failed,deleted,"`
	Limit       int    `query:"limit"       doc:"Number of results (default 50)"          minimum:"0"                          maximum:"500"`
	Offset      int    `query:"offset"      doc:"Pagination offset"                       minimum:"0"`
	OrderBy     string `query:"order_by"    doc:"Sort field"                              enum:"created_at,price,title,"`
}

// ListListingsOutput is the response for listing listings.
type ListListingsOutput struct {
	Body struct {
		Listings []domain.Listing `json:"listings"`
		Total    int              `json:"total"`
		Limit    int              `json:"limit"`
		Offset   int              `json:"offset"`
	}
}

// ListingIDInput identifies one of the caller's listings.
type ListingIDInput struct {
	ID string `path:"id" doc:"Listing UUID"`
}

// GetListingOutput is the response for getting a single listing.
type GetListingOutput struct {
	Body domain.Listing
}

// UpdateListingBody holds the fields to change. Omitted fields keep their
// value; a present marketplaces list replaces the targets.
type UpdateListingBody struct {
	Title        *string         `json:"title,omitempty"        doc:"Listing title"                 minLength:"1" maxLength:"80"`
	Description  *string         `json:"description,omitempty"  doc:"Listing description"`
	Category     *string         `json:"category,omitempty"     doc:"Free-form category label"`
	Brand        *string         `json:"brand,omitempty"        doc:"Brand"`
	Condition    *string         `json:"condition,omitempty"    doc:"Condition label"`
	Tags         *[]string       `json:"tags,omitempty"         doc:"Ordered tags"`
	ImageURLs    *[]string       `json:"image_urls,omitempty"   doc:"Public image URLs"`
	Price        *float64        `json:"price,omitempty"        doc:"Asking price in USD"           minimum:"0"`
	Marketplaces []string        `json:"marketplaces,omitempty" doc:"Replacement target marketplaces" minItems:"1"`
	Address      *domain.Address `json:"address,omitempty"      doc:"Ship-from address; empty clears it"`
}

// UpdateListingInput is the input for editing a listing.
type UpdateListingInput struct {
	ID   string `path:"id" doc:"Listing UUID"`
	Body UpdateListingBody
}

// UpdateListingOutput is the edited listing and the publish reports for
// any newly added marketplace.
type UpdateListingOutput struct {
	Body struct {
		Listing domain.Listing  `json:"listing"`
		Reports []engine.Report `json:"reports"`
	}
}

// ListingStatsOutput summarizes the caller's listings.
type ListingStatsOutput struct {
	Body store.ListingStats
}

// RepublishInput identifies a listing and the marketplace to retry.
type RepublishInput struct {
	ID          string `path:"id"          doc:"Listing UUID"`
	Marketplace string `path:"marketplace" doc:"Marketplace to publish to" example:"ebay"`
}

// RepublishOutput is the outcome of the new publish attempt.
type RepublishOutput struct {
	Body engine.Report
}

// --- Handlers ---

// CreateListing saves a listing and publishes it to its marketplaces.
// Publish failures are reported per marketplace; the listing is created
// regardless.
func (h *ListingsHandler) CreateListing(
	ctx context.Context,
	input *CreateListingInput,
) (*CreateListingOutput, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	b := input.Body
	l := &domain.Listing{
		OwnerID:     userID,
		Title:       b.Title,
		Description: b.Description,
		Category:    b.Category,
		Brand:       b.Brand,
		Condition:   b.Condition,
		Tags:        b.Tags,
		ImageURLs:   b.ImageURLs,
		Price:       b.Price,
		Address:     b.Address,
	}
	for _, s := range b.Marketplaces {
		m, ok := domain.ParseMarketplace(s)
		if !ok {
			return nil, huma.Error422UnprocessableEntity("unknown marketplace: " + s)
		}
		l.Marketplaces = append(l.Marketplaces, m)
	}

	reports, err := h.listings.CreateListing(ctx, l)
	if err != nil {
		if errors.Is(err, engine.ErrValidation) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, huma.Error500InternalServerError("creating listing failed: " + err.Error())
	}

	resp := &CreateListingOutput{}
	resp.Body.Listing = *l
	resp.Body.Reports = reports
	return resp, nil
}

// ListListings returns the caller's listings with optional filters.
func (h *ListingsHandler) ListListings(
	ctx context.Context,
	input *ListListingsInput,
) (*ListListingsOutput, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	q := &store.ListingQuery{
		OwnerID: userID,
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}
	if input.Marketplace != "" {
		m, ok := domain.ParseMarketplace(input.Marketplace)
		if !ok {
			return nil, huma.Error422UnprocessableEntity("unknown marketplace: " + input.Marketplace)
		}
		market := string(m)
		q.Marketplace = &market
	}
	if input.Status != "" {
		q.Status = &input.Status
	}

	listings, total, err := h.listings.ListListings(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing query failed: " + err.Error())
	}

	resp := &ListListingsOutput{}
	resp.Body.Listings = listings
	if resp.Body.Listings == nil {
		resp.Body.Listings = []domain.Listing{}
	}
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// GetListing returns one of the caller's listings.
func (h *ListingsHandler) GetListing(
	ctx context.Context,
	input *ListingIDInput,
) (*GetListingOutput, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	if err := checkListingID(input.ID); err != nil {
		return nil, err
	}

	l, err := h.listings.GetListing(ctx, userID, input.ID)
	if err != nil {
		return nil, listingError(err)
	}
	return &GetListingOutput{Body: *l}, nil
}

// DeleteListing removes one of the caller's listings locally.
func (h *ListingsHandler) DeleteListing(
	ctx context.Context,
	input *ListingIDInput,
) (*struct{}, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	if err := checkListingID(input.ID); err != nil {
		return nil, err
	}

	if err := h.listings.DeleteListing(ctx, userID, input.ID); err != nil {
		return nil, listingError(err)
	}
	return nil, nil
}

// UpdateListing edits one of the caller's listings.
func (h *ListingsHandler) UpdateListing(
	ctx context.Context,
	input *UpdateListingInput,
) (*UpdateListingOutput, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkListingID(input.ID); err != nil {
		return nil, err
	}

	b := input.Body
	u := &engine.ListingUpdate{
		Title:       b.Title,
		Description: b.Description,
		Category:    b.Category,
		Brand:       b.Brand,
		Condition:   b.Condition,
		Tags:        b.Tags,
		ImageURLs:   b.ImageURLs,
		Price:       b.Price,
		Address:     b.Address,
	}
	for _, s := range b.Marketplaces {
		m, ok := domain.ParseMarketplace(s)
		if !ok {
			return nil, huma.Error422UnprocessableEntity("unknown marketplace: " + s)
		}
		u.Marketplaces = append(u.Marketplaces, m)
	}

	l, reports, err := h.listings.UpdateListing(ctx, userID, input.ID, u)
	if err != nil {
		return nil, listingError(err)
	}

	resp := &UpdateListingOutput{}
	resp.Body.Listing = *l
	resp.Body.Reports = reports
	return resp, nil
}

// GetListingStats summarizes the caller's listings.
func (h *ListingsHandler) GetListingStats(ctx context.Context, _ *struct{}) (*ListingStatsOutput, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	st, err := h.listings.ListingStats(ctx, userID)
	if err != nil {
		return nil, huma.Error500InternalServerError("loading stats: " + err.Error())
	}
	return &ListingStatsOutput{Body: *st}, nil
}

// RepublishListing starts a new publish attempt for a marketplace that
// failed or whose pending attempt was abandoned.
func (h *ListingsHandler) RepublishListing(
	ctx context.Context,
	input *RepublishInput,
) (*RepublishOutput, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	if err := checkListingID(input.ID); err != nil {
		return nil, err
	}

	m, ok := domain.ParseMarketplace(input.Marketplace)
	if !ok {
		return nil, huma.Error422UnprocessableEntity("unknown marketplace: " + input.Marketplace)
	}

	report, err := h.listings.RepublishListing(ctx, userID, input.ID, m)
	if err != nil {
		return nil, listingError(err)
	}
	return &RepublishOutput{Body: *report}, nil
}

// checkListingID rejects ids that cannot name a listing.
func checkListingID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return huma.Error404NotFound("listing not found")
	}
	return nil
}

func listingError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound("listing not found")
	case errors.Is(err, engine.ErrAlreadyPosted),
		errors.Is(err, engine.ErrNotTargeted),
		errors.Is(err, engine.ErrPublishInProgress),
		errors.Is(err, engine.ErrTargetLive),
		errors.Is(err, store.ErrConflict):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, engine.ErrValidation):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, engine.ErrNoPublisher):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError(err.Error())
	}
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-listing",
		Method:        http.MethodPost,
		Path:          "/api/v1/listings",
		Summary:       "Create a listing",
		Description:   "Saves a listing with every marketplace pending, then publishes it. Publish failures are recorded in marketplace_status and the reports; they never fail the request.",
		Tags:          []string{"listings"},
		DefaultStatus: http.StatusCreated,
		Security:      auth.BearerSecurity,
		Errors:        []int{http.StatusUnauthorized, http.StatusUnprocessableEntity},
	}, h.CreateListing)

	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List my listings",
		Description: "Returns the caller's listings with optional marketplace and status filters.",
		Tags:        []string{"listings"},
		Security:    auth.BearerSecurity,
		Errors:      []int{http.StatusUnauthorized},
	}, h.ListListings)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Get a listing by ID",
		Tags:        []string{"listings"},
		Security:    auth.BearerSecurity,
		Errors:      []int{http.StatusUnauthorized, http.StatusNotFound},
	}, h.GetListing)

	huma.Register(api, huma.Operation{
		OperationID: "update-listing",
		Method:      http.MethodPut,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Edit a listing",
		Description: "Changes listing fields and, optionally, its target marketplaces. Added marketplaces are published; a marketplace the listing is posted on cannot be dropped.",
		Tags:        []string{"listings"},
		Security:    auth.BearerSecurity,
		Errors: []int{
			http.StatusUnauthorized,
			http.StatusNotFound,
			http.StatusConflict,
			http.StatusUnprocessableEntity,
		},
	}, h.UpdateListing)

	huma.Register(api, huma.Operation{
		OperationID: "listing-stats",
		Method:      http.MethodGet,
		Path:        "/api/v1/stats",
		Summary:     "Summarize my listings",
		Description: "Returns the caller's listing count, marketplace status counts, and most used categories.",
		Tags:        []string{"listings"},
		Security:    auth.BearerSecurity,
		Errors:      []int{http.StatusUnauthorized},
	}, h.GetListingStats)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-listing",
		Method:        http.MethodDelete,
		Path:          "/api/v1/listings/{id}",
		Summary:       "Delete a listing",
		Description:   "Deletes the listing locally. Live marketplace listings are not withdrawn.",
		Tags:          []string{"listings"},
		DefaultStatus: http.StatusNoContent,
		Security:      auth.BearerSecurity,
		Errors:        []int{http.StatusUnauthorized, http.StatusNotFound},
	}, h.DeleteListing)

	huma.Register(api, huma.Operation{
		OperationID: "republish-listing",
		Method:      http.MethodPost,
		Path:        "/api/v1/listings/{id}/publish/{marketplace}",
		Summary:     "Retry publishing a listing",
		Description: "Runs a new publish attempt for a marketplace whose status is failed, or pending from an abandoned attempt. Concurrent requests publish at most once; the rest get 409.",
		Tags:        []string{"listings"},
		Security:    auth.BearerSecurity,
		Errors: []int{
			http.StatusUnauthorized,
			http.StatusNotFound,
			http.StatusConflict,
			http.StatusUnprocessableEntity,
		},
	}, h.RepublishListing)
}

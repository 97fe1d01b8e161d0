package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/flashlist/internal/auth"
	"github.com/donaldgifford/flashlist/internal/category"
	"github.com/donaldgifford/flashlist/internal/tokens"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

// CategoryCache is the persisted label to leaf-category table.
type CategoryCache interface {
	Entries(ctx context.Context) (*category.Snapshot, error)
	Refresh(ctx context.Context) (*category.Snapshot, error)
	Pin(ctx context.Context, label, id string) error
}

// CategoryProber checks candidate ids with trial offers.
type CategoryProber interface {
	Probe(ctx context.Context, token string, candidates []string) ([]category.ProbeResult, error)
}

// TokenSource returns a usable marketplace token for a user.
type TokenSource interface {
	ValidToken(ctx context.Context, userID string) (string, error)
}

// CategoriesHandler exposes the category cache and leaf prober.
type CategoriesHandler struct {
	cache  CategoryCache
	prober CategoryProber
	tokens TokenSource
}

// NewCategoriesHandler creates a new CategoriesHandler.
func NewCategoriesHandler(c CategoryCache, p CategoryProber, t TokenSource) *CategoriesHandler {
	return &CategoriesHandler{cache: c, prober: p, tokens: t}
}

// --- Input/Output types ---

// CategoryTableOutput is the current category table.
type CategoryTableOutput struct {
	Body struct {
		Source      domain.CategorySource `json:"source"       example:"remote"`
		RefreshedAt time.Time             `json:"refreshed_at"`
		Entries     map[string]string     `json:"entries"`
	}
}

// ProbeInput lists the category ids to check.
type ProbeInput struct {
	Body struct {
		Candidates []string `json:"candidates,omitempty" doc:"Category ids to probe; defaults to the plant candidates" maxItems:"25"`
		PinLabel   string   `json:"pin_label,omitempty"  doc:"Pin the first leaf found under this label"`
	} `required:"false"`
}

// ProbeOutput reports each candidate's verdict.
type ProbeOutput struct {
	Body struct {
		Results []category.ProbeResult `json:"results"`
		Pinned  string                 `json:"pinned,omitempty" doc:"Leaf id pinned under pin_label"`
	}
}

// --- Handlers ---

// GetCategories returns the cached category table, loading or refreshing it
// as needed.
func (h *CategoriesHandler) GetCategories(ctx context.Context, _ *struct{}) (*CategoryTableOutput, error) {
	snap, err := h.cache.Entries(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("loading categories: " + err.Error())
	}
	return tableOutput(snap), nil
}

// RefreshCategories rebuilds the table from the marketplace category tree.
func (h *CategoriesHandler) RefreshCategories(ctx context.Context, _ *struct{}) (*CategoryTableOutput, error) {
	snap, err := h.cache.Refresh(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("refreshing categories: " + err.Error())
	}
	return tableOutput(snap), nil
}

// ProbeCategories creates and removes a trial offer per candidate with the
// caller's token to learn which ids are leaves.
func (h *CategoriesHandler) ProbeCategories(ctx context.Context, input *ProbeInput) (*ProbeOutput, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	token, err := h.tokens.ValidToken(ctx, userID)
	if errors.Is(err, tokens.ErrNotAuthenticated) {
		return nil, huma.Error409Conflict("eBay account not connected")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("loading token: " + err.Error())
	}

	candidates := input.Body.Candidates
	if len(candidates) == 0 {
		candidates = category.PlantCandidates
	}

	results, err := h.prober.Probe(ctx, token, candidates)
	if err != nil {
		return nil, huma.Error500InternalServerError("probing categories: " + err.Error())
	}

	resp := &ProbeOutput{}
	resp.Body.Results = results

	if input.Body.PinLabel != "" {
		if id, ok := category.FirstLeaf(results); ok {
			if err := h.cache.Pin(ctx, input.Body.PinLabel, id); err != nil {
				return nil, huma.Error500InternalServerError("pinning category: " + err.Error())
			}
			resp.Body.Pinned = id
		}
	}
	return resp, nil
}

func tableOutput(snap *category.Snapshot) *CategoryTableOutput {
	resp := &CategoryTableOutput{}
	resp.Body.Source = snap.Source
	resp.Body.RefreshedAt = snap.RefreshedAt
	resp.Body.Entries = snap.Entries
	return resp
}

// RegisterCategoryRoutes registers the category endpoints with the Huma API.
func RegisterCategoryRoutes(api huma.API, h *CategoriesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-categories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "Get the category table",
		Description: "Returns the label to leaf-category table and whether it came from the marketplace or the built-in fallback.",
		Tags:        []string{"categories"},
		Security:    auth.BearerSecurity,
		Errors:      []int{http.StatusUnauthorized},
	}, h.GetCategories)

	huma.Register(api, huma.Operation{
		OperationID: "refresh-categories",
		Method:      http.MethodPost,
		Path:        "/api/v1/categories/refresh",
		Summary:     "Refresh the category table",
		Tags:        []string{"categories"},
		Security:    auth.BearerSecurity,
		Errors:      []int{http.StatusUnauthorized},
	}, h.RefreshCategories)

	huma.Register(api, huma.Operation{
		OperationID: "probe-categories",
		Method:      http.MethodPost,
		Path:        "/api/v1/categories/probe",
		Summary:     "Probe candidate leaf categories",
		Description: "Creates and deletes a trial offer per candidate using the caller's eBay account. Rate limited.",
		Tags:        []string{"categories"},
		Security:    auth.BearerSecurity,
		Errors:      []int{http.StatusUnauthorized, http.StatusConflict},
	}, h.ProbeCategories)
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/flashlist/internal/auth"
	"github.com/donaldgifford/flashlist/internal/policy"
	"github.com/donaldgifford/flashlist/internal/store"
	"github.com/donaldgifford/flashlist/internal/tokens"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

// TokenService manages a user's marketplace connection.
type TokenService interface {
	AuthURL(state string) string
	Connect(ctx context.Context, userID, code string) (*domain.Credential, error)
	Status(ctx context.Context, userID string) (*tokens.Status, error)
	Refresh(ctx context.Context, userID string) (*tokens.Status, error)
	Disconnect(ctx context.Context, userID string) error
	ValidToken(ctx context.Context, userID string) (string, error)
}

// PolicyBootstrapper creates a seller's default business policies.
type PolicyBootstrapper interface {
	Bootstrap(ctx context.Context, userID, token string) (*policy.Resolved, error)
}

// EbayHandler handles the eBay account connection endpoints.
type EbayHandler struct {
	tokens   TokenService
	states   *auth.Authenticator
	policies PolicyBootstrapper
}

// NewEbayHandler creates a new EbayHandler. States are minted and verified
// by a.
func NewEbayHandler(t TokenService, a *auth.Authenticator, p PolicyBootstrapper) *EbayHandler {
	return &EbayHandler{tokens: t, states: a, policies: p}
}

// --- Input/Output types ---

// OAuthStartOutput carries the consent URL the client should open.
type OAuthStartOutput struct {
	Body struct {
		AuthURL string `json:"auth_url" doc:"eBay consent page URL"`
	}
}

// OAuthCallbackInput is the redirect eBay sends after consent.
type OAuthCallbackInput struct {
	Code  string `query:"code"  doc:"Authorization code"`
	State string `query:"state" doc:"State issued by the start endpoint" required:"true"`
}

// OAuthCallbackOutput confirms the connection.
type OAuthCallbackOutput struct {
	Body struct {
		Message        string    `json:"message"                    example:"Successfully connected to eBay"`
		ExternalUserID string    `json:"external_user_id,omitempty"`
		ExpiresAt      time.Time `json:"expires_at"`
	}
}

// ConnectionStatusOutput describes the caller's eBay connection.
type ConnectionStatusOutput struct {
	Body tokens.Status
}

// PolicyBootstrapOutput lists the seller's business policy ids.
type PolicyBootstrapOutput struct {
	Body struct {
		FulfillmentPolicyID string `json:"fulfillment_policy_id"`
		PaymentPolicyID     string `json:"payment_policy_id"`
		ReturnPolicyID      string `json:"return_policy_id"`
	}
}

// --- Handlers ---

// StartOAuth returns the consent URL with a state bound to the caller.
func (h *EbayHandler) StartOAuth(ctx context.Context, _ *struct{}) (*OAuthStartOutput, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	state, err := h.states.MintState(userID)
	if err != nil {
		return nil, huma.Error500InternalServerError("issuing oauth state: " + err.Error())
	}

	resp := &OAuthStartOutput{}
	resp.Body.AuthURL = h.tokens.AuthURL(state)
	return resp, nil
}

// OAuthCallback exchanges the authorization code and stores the
// credential for the user named by state.
func (h *EbayHandler) OAuthCallback(
	ctx context.Context,
	input *OAuthCallbackInput,
) (*OAuthCallbackOutput, error) {
	if input.Code == "" {
		return nil, huma.Error400BadRequest("authorization code is missing")
	}

	userID, err := h.states.VerifyState(input.State)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid oauth state")
	}

	cred, err := h.tokens.Connect(ctx, userID, input.Code)
	if err != nil {
		return nil, huma.Error400BadRequest("failed to get access token: " + err.Error())
	}

	resp := &OAuthCallbackOutput{}
	resp.Body.Message = "Successfully connected to eBay"
	resp.Body.ExternalUserID = cred.ExternalUserID
	resp.Body.ExpiresAt = cred.ExpiresAt
	return resp, nil
}

// GetStatus reports whether the caller has a usable eBay connection.
func (h *EbayHandler) GetStatus(ctx context.Context, _ *struct{}) (*ConnectionStatusOutput, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	st, err := h.tokens.Status(ctx, userID)
	if errors.Is(err, tokens.ErrNotAuthenticated) {
		// the stored refresh token no longer works
		return &ConnectionStatusOutput{Body: tokens.Status{}}, nil
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("checking connection: " + err.Error())
	}
	return &ConnectionStatusOutput{Body: *st}, nil
}

// RefreshToken forces a token refresh.
func (h *EbayHandler) RefreshToken(ctx context.Context, _ *struct{}) (*ConnectionStatusOutput, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	st, err := h.tokens.Refresh(ctx, userID)
	switch {
	case errors.Is(err, tokens.ErrNotConnected):
		return nil, huma.Error404NotFound("no eBay tokens found for user")
	case errors.Is(err, tokens.ErrRefreshFailed):
		return nil, huma.Error400BadRequest("failed to refresh token: " + err.Error())
	case err != nil:
		return nil, huma.Error500InternalServerError("refreshing token: " + err.Error())
	}
	return &ConnectionStatusOutput{Body: *st}, nil
}

// Disconnect deletes the caller's stored credential.
func (h *EbayHandler) Disconnect(ctx context.Context, _ *struct{}) (*struct{}, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.tokens.Disconnect(ctx, userID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error500InternalServerError("disconnecting: " + err.Error())
	}
	return nil, nil
}

// BootstrapPolicies creates any missing default business policy for the
// caller.
func (h *EbayHandler) BootstrapPolicies(ctx context.Context, _ *struct{}) (*PolicyBootstrapOutput, error) {
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

	res, err := h.policies.Bootstrap(ctx, userID, token)
	if err != nil {
		return nil, huma.Error502BadGateway("creating policies: " + err.Error())
	}

	resp := &PolicyBootstrapOutput{}
	resp.Body.FulfillmentPolicyID = res.FulfillmentPolicyID
	resp.Body.PaymentPolicyID = res.PaymentPolicyID
	resp.Body.ReturnPolicyID = res.ReturnPolicyID
	return resp, nil
}

// RegisterEbayRoutes registers the eBay connection endpoints with the Huma API.
func RegisterEbayRoutes(api huma.API, h *EbayHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "ebay-oauth-start",
		Method:      http.MethodGet,
		Path:        "/api/v1/ebay/oauth/start",
		Summary:     "Start eBay consent",
		Description: "Returns the eBay consent URL. The state parameter identifies the caller on the callback.",
		Tags:        []string{"ebay"},
		Security:    auth.BearerSecurity,
		Errors:      []int{http.StatusUnauthorized},
	}, h.StartOAuth)

	huma.Register(api, huma.Operation{
		OperationID: "ebay-oauth-callback",
		Method:      http.MethodGet,
		Path:        "/api/v1/ebay/oauth/callback",
		Summary:     "Complete eBay consent",
		Description: "Exchanges the authorization code and stores the seller's tokens.",
		Tags:        []string{"ebay"},
		Errors:      []int{http.StatusBadRequest},
	}, h.OAuthCallback)

	huma.Register(api, huma.Operation{
		OperationID: "ebay-status",
		Method:      http.MethodGet,
		Path:        "/api/v1/ebay/status",
		Summary:     "Get eBay connection status",
		Tags:        []string{"ebay"},
		Security:    auth.BearerSecurity,
		Errors:      []int{http.StatusUnauthorized},
	}, h.GetStatus)

	huma.Register(api, huma.Operation{
		OperationID: "ebay-refresh",
		Method:      http.MethodPost,
		Path:        "/api/v1/ebay/refresh",
		Summary:     "Refresh eBay token",
		Tags:        []string{"ebay"},
		Security:    auth.BearerSecurity,
		Errors:      []int{http.StatusUnauthorized, http.StatusNotFound, http.StatusBadRequest},
	}, h.RefreshToken)

	huma.Register(api, huma.Operation{
		OperationID:   "ebay-disconnect",
		Method:        http.MethodDelete,
		Path:          "/api/v1/ebay/connection",
		Summary:       "Disconnect eBay",
		Tags:          []string{"ebay"},
		DefaultStatus: http.StatusNoContent,
		Security:      auth.BearerSecurity,
		Errors:        []int{http.StatusUnauthorized},
	}, h.Disconnect)

	huma.Register(api, huma.Operation{
		OperationID: "ebay-bootstrap-policies",
		Method:      http.MethodPost,
		Path:        "/api/v1/ebay/policies/bootstrap",
		Summary:     "Create default business policies",
		Description: "Creates flat-rate shipping, managed payment, and 30-day return policies where the seller has none.",
		Tags:        []string{"ebay"},
		Security:    auth.BearerSecurity,
		Errors:      []int{http.StatusUnauthorized, http.StatusConflict, http.StatusBadGateway},
	}, h.BootstrapPolicies)
}

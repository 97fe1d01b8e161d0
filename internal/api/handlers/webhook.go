package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/flashlist/internal/notification"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

// DeletionHandler applies marketplace deletion notifications.
type DeletionHandler interface {
	Handle(ctx context.Context, m domain.Marketplace, n *notification.Notification) (*notification.Outcome, error)
}

// WebhookHandler receives marketplace deletion notifications.
type WebhookHandler struct {
	deletions         DeletionHandler
	verificationToken string
	endpointURL       string
}

// NewWebhookHandler creates a new WebhookHandler. The verification token
// both signs notifications and answers the endpoint challenge; endpointURL
// must be the exact URL registered with the marketplace.
func NewWebhookHandler(d DeletionHandler, verificationToken, endpointURL string) *WebhookHandler {
	return &WebhookHandler{
		deletions:         d,
		verificationToken: verificationToken,
		endpointURL:       endpointURL,
	}
}

// --- Input/Output types ---

// DeletionNotificationInput is a signed notification push.
type DeletionNotificationInput struct {
	Signature string `header:"X-Ebay-Signature" doc:"Hex HMAC-SHA256 of the body"`
	RawBody   []byte
}

// ChallengeInput is the endpoint verification handshake.
type ChallengeInput struct {
	ChallengeCode string `query:"challenge_code" required:"true" doc:"Challenge issued by the marketplace"`
}

// ChallengeOutput answers the handshake.
type ChallengeOutput struct {
	Body struct {
		ChallengeResponse string `json:"challengeResponse"`
	}
}

// --- Handlers ---

// ReceiveDeletion verifies and applies a deletion notification.
// Re-delivered notifications succeed without further changes.
func (h *WebhookHandler) ReceiveDeletion(
	ctx context.Context,
	input *DeletionNotificationInput,
) (*struct{}, error) {
	if !notification.VerifySignature(h.verificationToken, input.RawBody, input.Signature) {
		return nil, huma.Error401Unauthorized("invalid signature")
	}

	n, err := notification.Parse(input.RawBody)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	if _, err := h.deletions.Handle(ctx, domain.MarketplaceEbay, n); err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}
	return nil, nil
}

// Challenge answers the endpoint verification handshake.
func (h *WebhookHandler) Challenge(_ context.Context, input *ChallengeInput) (*ChallengeOutput, error) {
	if h.verificationToken == "" || h.endpointURL == "" {
		return nil, huma.Error503ServiceUnavailable("deletion webhook is not configured")
	}

	resp := &ChallengeOutput{}
	resp.Body.ChallengeResponse = notification.ChallengeResponse(
		input.ChallengeCode, h.verificationToken, h.endpointURL,
	)
	return resp, nil
}

// RegisterWebhookRoutes registers the deletion webhook with the Huma API.
func RegisterWebhookRoutes(api huma.API, h *WebhookHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "ebay-deletion-notification",
		Method:        http.MethodPost,
		Path:          "/webhooks/ebay/deletion",
		Summary:       "Receive an eBay deletion notification",
		Description:   "Applies an item or account deletion. Safe to re-deliver.",
		Tags:          []string{"webhooks"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusInternalServerError},
	}, h.ReceiveDeletion)

	huma.Register(api, huma.Operation{
		OperationID: "ebay-deletion-challenge",
		Method:      http.MethodGet,
		Path:        "/webhooks/ebay/deletion",
		Summary:     "Answer the eBay endpoint challenge",
		Tags:        []string{"webhooks"},
		Errors:      []int{http.StatusServiceUnavailable},
	}, h.Challenge)
}

var _ DeletionHandler = (*notification.Handler)(nil)


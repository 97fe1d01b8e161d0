package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/donaldgifford/flashlist/internal/api/handlers"
	"github.com/donaldgifford/flashlist/internal/api/handlers/mocks"
	"github.com/donaldgifford/flashlist/internal/notification"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

const (
	verificationToken = "verification-token-0123456789abcdef"
	endpointURL       = "https://flashlist.example.com/webhooks/ebay/deletion"
)

func TestReceiveDeletion(t *testing.T) {
	t.Parallel()

	itemBody := []byte(`{"notification": {"data": {"itemId": "110553846121"}}}`)

	tests := []struct {
		name       string
		body       []byte
		signature  string
		setupMock  func(*mocks.MockDeletionHandler)
		wantStatus int
		wantBody   string
	}{
		{
			name:      "applies signed notification",
			body:      itemBody,
			signature: notification.Sign(verificationToken, itemBody),
			setupMock: func(m *mocks.MockDeletionHandler) {
				m.EXPECT().
					Handle(mock.Anything, domain.MarketplaceEbay, mock.MatchedBy(func(n *notification.Notification) bool {
						return n.ExternalID() == "110553846121"
					})).
					Return(&notification.Outcome{Kind: notification.KindItem, ExternalID: "110553846121"}, nil).
					Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "bad signature",
			body:       itemBody,
			signature:  notification.Sign("another-secret", itemBody),
			wantStatus: http.StatusUnauthorized,
			wantBody:   "invalid signature",
		},
		{
			name:       "missing signature",
			body:       itemBody,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed payload",
			body:       []byte(`{"notification": {"data": {}}}`),
			signature:  notification.Sign(verificationToken, []byte(`{"notification": {"data": {}}}`)),
			wantStatus: http.StatusBadRequest,
			wantBody:   "neither itemId nor userId",
		},
		{
			name:      "store failure asks for redelivery",
			body:      itemBody,
			signature: notification.Sign(verificationToken, itemBody),
			setupMock: func(m *mocks.MockDeletionHandler) {
				m.EXPECT().
					Handle(mock.Anything, domain.MarketplaceEbay, mock.Anything).
					Return(nil, errors.New("db down")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := mocks.NewMockDeletionHandler(t)
			if tt.setupMock != nil {
				tt.setupMock(d)
			}

			_, api := humatest.New(t)
			handlers.RegisterWebhookRoutes(api, handlers.NewWebhookHandler(d, verificationToken, endpointURL))

			args := []any{"Content-Type: application/json"}
			if tt.signature != "" {
				args = append(args, notification.SignatureHeader+": "+tt.signature)
			}
			args = append(args, bytes.NewReader(tt.body))

			resp := api.Post("/webhooks/ebay/deletion", args...)
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestChallenge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		token      string
		endpoint   string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "answers handshake",
			token:      verificationToken,
			endpoint:   endpointURL,
			wantStatus: http.StatusOK,
			wantBody:   notification.ChallengeResponse("abc123", verificationToken, endpointURL),
		},
		{
			name:       "unconfigured token",
			endpoint:   endpointURL,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unconfigured endpoint",
			token:      verificationToken,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterWebhookRoutes(api, handlers.NewWebhookHandler(
				mocks.NewMockDeletionHandler(t), tt.token, tt.endpoint,
			))

			resp := api.Get("/webhooks/ebay/deletion?challenge_code=abc123")
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

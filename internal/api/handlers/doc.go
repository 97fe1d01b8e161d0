package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/flashlist/internal/auth"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// principal returns the authenticated user id, or a 401 when the
// operation ran without the auth middleware.
func principal(ctx context.Context) (string, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return "", huma.Error401Unauthorized("authorization required")
	}
	return userID, nil
}

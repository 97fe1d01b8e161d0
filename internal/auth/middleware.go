package auth

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// SchemeName is the OpenAPI security scheme operations reference to
// require a bearer token.
const SchemeName = "bearer"

// BearerSecurity is the Security value for authenticated operations.
var BearerSecurity = []map[string][]string{{SchemeName: {}}}

// SecuritySchemes returns the OpenAPI component entry for bearer auth.
func SecuritySchemes() map[string]*huma.SecurityScheme {
	return map[string]*huma.SecurityScheme{
		SchemeName: {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
}

// Middleware verifies the bearer token of every operation that declares
// the bearer security scheme and stores the user id in the request
// context. Other operations pass through untouched.
func Middleware(api huma.API, a *Authenticator) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !requiresBearer(ctx.Operation()) {
			next(ctx)
			return
		}

		userID, err := a.Verify(BearerToken(ctx.Header("Authorization")))
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, err.Error())
			return
		}

		next(huma.WithValue(ctx, principalKey, userID))
	}
}

func requiresBearer(op *huma.Operation) bool {
	if op == nil {
		return false
	}
	for _, req := range op.Security {
		if _, ok := req[SchemeName]; ok {
			return true
		}
	}
	return false
}

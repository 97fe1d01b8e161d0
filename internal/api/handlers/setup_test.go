package handlers_test

import (
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flashlist/internal/auth"
)

const (
	testUser   = "user-1"
	testSecret = "0123456789abcdef0123456789abcdef"
)

// newSecuredAPI returns a test API behind the bearer middleware and an
// Authorization header for testUser.
func newSecuredAPI(t *testing.T) (humatest.TestAPI, *auth.Authenticator, string) {
	t.Helper()

	a := auth.NewAuthenticator(testSecret, "flashlist-test")
	tok, err := a.Mint(testUser)
	require.NoError(t, err)

	_, api := humatest.New(t)
	api.UseMiddleware(auth.Middleware(api, a))
	return api, a, "Authorization: Bearer " + tok
}

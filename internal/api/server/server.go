// Package server assembles the Echo router and the Huma API from the
// flashlist handlers.
package server

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/flashlist/api/openapi"
	"github.com/donaldgifford/flashlist/internal/api/handlers"
	mw "github.com/donaldgifford/flashlist/internal/api/middleware"
	"github.com/donaldgifford/flashlist/internal/auth"
	"github.com/donaldgifford/flashlist/internal/config"
	"github.com/donaldgifford/flashlist/internal/ebay"
)

// Deps are the services behind the API. Nil services are allowed when only
// the OpenAPI document is needed.
type Deps struct {
	Store       handlers.Pinger
	Listings    handlers.ListingService
	Tokens      handlers.TokenService
	Policies    handlers.PolicyBootstrapper
	Categories  handlers.CategoryCache
	Prober      handlers.CategoryProber
	Deletions   handlers.DeletionHandler
	RateLimiter *ebay.RateLimiter
	Quota       ebay.QuotaReporter
	Auth        *auth.Authenticator
	Webhook     config.WebhookConfig
}

// New builds the Echo instance with middleware, operational endpoints, and
// every API operation registered.
func New(deps *Deps, version string, log *slog.Logger) (*echo.Echo, huma.API) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(mw.Recovery(log))
	e.Use(mw.Tracing("flashlist"))
	e.Use(mw.RequestLog(log))
	e.Use(mw.Metrics())

	health := handlers.NewHealthHandler(deps.Store)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := NewAPI(e, version)
	if deps.Auth != nil {
		api.UseMiddleware(auth.Middleware(api, deps.Auth))
	}
	Register(api, deps)

	openapi.RegisterRoutes(e, api)
	return e, api
}

// NewAPI creates the Huma API on e with the bearer security scheme declared.
func NewAPI(e *echo.Echo, version string) huma.API {
	cfg := huma.DefaultConfig("FlashList API", version)
	cfg.Info.Description = "Create listings once and publish them to eBay, " +
		"with seller token, business policy, and category handling."
	cfg.Components.SecuritySchemes = auth.SecuritySchemes()
	cfg.DocsPath = ""
	return humaecho.New(e, cfg)
}

// Register adds every API operation to api.
func Register(api huma.API, deps *Deps) {
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(deps.Listings))
	handlers.RegisterEbayRoutes(api, handlers.NewEbayHandler(deps.Tokens, deps.Auth, deps.Policies))
	handlers.RegisterCategoryRoutes(api, handlers.NewCategoriesHandler(deps.Categories, deps.Prober, deps.Tokens))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(deps.RateLimiter, deps.Quota))
	handlers.RegisterWebhookRoutes(api, handlers.NewWebhookHandler(
		deps.Deletions, deps.Webhook.VerificationToken, deps.Webhook.EndpointURL,
	))
}

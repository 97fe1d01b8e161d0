package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/donaldgifford/flashlist/internal/api/server"
	"github.com/donaldgifford/flashlist/internal/auth"
	"github.com/donaldgifford/flashlist/internal/category"
	"github.com/donaldgifford/flashlist/internal/config"
	"github.com/donaldgifford/flashlist/internal/ebay"
	"github.com/donaldgifford/flashlist/internal/engine"
	"github.com/donaldgifford/flashlist/internal/notification"
	"github.com/donaldgifford/flashlist/internal/notify"
	"github.com/donaldgifford/flashlist/internal/observability"
	"github.com/donaldgifford/flashlist/internal/policy"
	"github.com/donaldgifford/flashlist/internal/store"
	"github.com/donaldgifford/flashlist/internal/tokens"
)

// app holds the wired services shared by serve and the maintenance
// commands.
type app struct {
	store       *store.PostgresStore
	rateLimiter *ebay.RateLimiter
	sell        *ebay.SellClient
	analytics   *ebay.AnalyticsClient
	tokens      *tokens.Manager
	policies    *policy.Resolver
	categories  *category.Cache
	prober      *category.Prober
	engine      *engine.Engine
	deletions   *notification.Handler
	auth        *auth.Authenticator
}

func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	var storeOpts []store.PostgresOption
	key, err := cfg.Encryption.TokenKeyBytes()
	if err != nil {
		return nil, err
	}
	if key != nil {
		sealer, err := store.NewTokenSealer(key)
		if err != nil {
			return nil, fmt.Errorf("creating token sealer: %w", err)
		}
		storeOpts = append(storeOpts, store.WithTokenSealer(sealer))
	} else {
		log.Warn("encryption.token_key not set; seller tokens are stored unencrypted")
	}

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), storeOpts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	ec := cfg.Ebay
	hc := &http.Client{
		Timeout:   ec.Timeout,
		Transport: observability.HTTPTransport(http.DefaultTransport),
	}

	rl := ebay.NewRateLimiter(ec.RateLimit.PerSecond, ec.RateLimit.Burst, ec.RateLimit.DailyLimit)
	apiOpts := []ebay.ClientOption{
		ebay.WithBaseURL(ec.APIBaseURL),
		ebay.WithMarketplace(ec.Marketplace),
		ebay.WithAPIHTTPClient(hc),
		ebay.WithRateLimiter(rl),
	}

	appTokens := ebay.NewOAuthTokenProvider(
		ec.ClientID, ec.ClientSecret,
		ebay.WithTokenURL(ec.TokenURL),
		ebay.WithHTTPClient(hc),
	)
	sell := ebay.NewSellClient(apiOpts...)
	browse := ebay.NewBrowseClient(apiOpts...)
	taxonomy := ebay.NewTaxonomyClient(appTokens, apiOpts...)
	analytics := ebay.NewAnalyticsClient(appTokens,
		ebay.WithAnalyticsURL(ec.AnalyticsURL),
		ebay.WithAnalyticsHTTPClient(hc),
	)
	userAuth := ebay.NewUserAuthClient(ebay.UserAuthConfig{
		ClientID:     ec.ClientID,
		ClientSecret: ec.ClientSecret,
		RedirectURI:  ec.RedirectURI,
		Scopes:       ec.Scopes,
		AuthURL:      ec.AuthURL,
		TokenURL:     ec.TokenURL,
		IdentityURL:  ec.IdentityURL,
	}, ebay.WithUserAuthHTTPClient(hc))

	tokenMgr := tokens.NewManager(st, userAuth, tokens.WithLogger(log))

	loc := ec.DefaultLocation
	policies := policy.NewResolver(sell, st,
		policy.WithAutoCreate(ec.Policies.AutoCreate),
		policy.WithMarketplaceID(ec.Marketplace),
		policy.WithDefaultLocation(policy.Location{
			Key:        loc.Key,
			City:       loc.City,
			State:      loc.State,
			PostalCode: loc.PostalCode,
			Country:    loc.Country,
		}),
		policy.WithLogger(log),
	)

	cc := cfg.Categories
	cache := category.NewCache(st, taxonomy,
		category.WithRefreshInterval(cc.RefreshInterval),
		category.WithCacheMarketplace(ec.Marketplace),
		category.WithCacheLogger(log),
	)
	resolver := category.NewResolver(browse, cache,
		category.WithDefaultID(cc.DefaultID),
		category.WithPlantID(cc.PlantID),
		category.WithLogger(log),
	)
	prober := category.NewProber(sell, ec.Marketplace,
		category.WithProbeRate(cc.ProbeRate),
		category.WithProberLogger(log),
	)

	var notifier notify.Notifier = notify.NewNoOpNotifier(log)
	if cfg.Notifications.Discord.Enabled {
		notifier = notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL,
			notify.WithHTTPClient(&http.Client{
				Timeout:   ec.Timeout,
				Transport: observability.HTTPTransport(http.DefaultTransport),
			}),
		)
	}

	publisher := engine.NewEbayPublisher(tokenMgr, policies, resolver, sell,
		engine.WithRetry(ec.Retry.MaxAttempts, ec.Retry.BaseDelay),
		engine.WithMarketplaceID(ec.Marketplace),
		engine.WithPublisherLogger(log),
	)
	eng := engine.NewEngine(st,
		engine.WithPublisher(publisher),
		engine.WithNotifier(notifier),
		engine.WithLogger(log),
	)

	deletions := notification.NewHandler(st, st,
		notification.WithNotifier(notifier),
		notification.WithLogger(log),
	)

	authn := auth.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer, auth.WithTTL(cfg.Auth.TokenTTL))

	return &app{
		store:       st,
		rateLimiter: rl,
		sell:        sell,
		analytics:   analytics,
		tokens:      tokenMgr,
		policies:    policies,
		categories:  cache,
		prober:      prober,
		engine:      eng,
		deletions:   deletions,
		auth:        authn,
	}, nil
}

func (a *app) serverDeps(cfg *config.Config) *server.Deps {
	return &server.Deps{
		Store:       a.store,
		Listings:    a.engine,
		Tokens:      a.tokens,
		Policies:    a.policies,
		Categories:  a.categories,
		Prober:      a.prober,
		Deletions:   a.deletions,
		RateLimiter: a.rateLimiter,
		Quota:       a.analytics,
		Auth:        a.auth,
		Webhook:     cfg.Webhook,
	}
}

func (a *app) Close() {
	a.store.Close()
}

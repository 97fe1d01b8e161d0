package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/flashlist/internal/category"
	"github.com/donaldgifford/flashlist/internal/ebay"
	"github.com/donaldgifford/flashlist/internal/metrics"
	"github.com/donaldgifford/flashlist/internal/policy"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

const tracerName = "github.com/donaldgifford/flashlist/internal/engine"

// Publish steps, used in errors, spans, and metrics.
const (
	StepInventoryItem = "inventory_item"
	StepOffer         = "offer"
	StepPublish       = "publish"
)

// Result is what a successful publish produced on the marketplace.
type Result struct {
	ItemID         string
	SKU            string
	OfferID        string
	CategoryID     string
	CategorySource category.Source
}

// Publisher pushes one listing to one marketplace.
type Publisher interface {
	Marketplace() domain.Marketplace
	Publish(ctx context.Context, l *domain.Listing) (*Result, error)
}

// TokenSource yields a usable seller access token.
type TokenSource interface {
	ValidToken(ctx context.Context, userID string) (string, error)
}

// PolicyEnsurer yields the seller's policy ids and ship-from location.
type PolicyEnsurer interface {
	Ensure(ctx context.Context, userID, token string, addr *domain.Address) (*policy.Resolved, error)
}

// CategoryResolver picks a leaf category. It never fails.
type CategoryResolver interface {
	Resolve(ctx context.Context, title, description, token string) category.Resolution
}

// EbayPublisher runs the inventory item, offer, and publish workflow
// against the Sell Inventory API.
type EbayPublisher struct {
	tokens        TokenSource
	policies      PolicyEnsurer
	categories    CategoryResolver
	api           ebay.ListingAPI
	marketplaceID string
	maxAttempts   int
	baseDelay     time.Duration
	timer         backoff.Timer
	newSKU        func() string
	tracer        trace.Tracer
	log           *slog.Logger
}

var _ Publisher = (*EbayPublisher)(nil)

// PublisherOption configures an EbayPublisher.
type PublisherOption func(*EbayPublisher)

// WithRetry sets the attempts per retryable step and the first retry delay.
// Each later delay doubles.
func WithRetry(maxAttempts int, baseDelay time.Duration) PublisherOption {
	return func(p *EbayPublisher) {
		p.maxAttempts = maxAttempts
		p.baseDelay = baseDelay
	}
}

// WithMarketplaceID sets the eBay marketplace offers are created on.
func WithMarketplaceID(id string) PublisherOption {
	return func(p *EbayPublisher) {
		p.marketplaceID = id
	}
}

// WithPublisherLogger sets the logger.
func WithPublisherLogger(l *slog.Logger) PublisherOption {
	return func(p *EbayPublisher) {
		p.log = l
	}
}

// NewEbayPublisher creates an eBay publisher.
func NewEbayPublisher(
	tokens TokenSource,
	policies PolicyEnsurer,
	categories CategoryResolver,
	api ebay.ListingAPI,
	opts ...PublisherOption,
) *EbayPublisher {
	p := &EbayPublisher{
		tokens:        tokens,
		policies:      policies,
		categories:    categories,
		api:           api,
		marketplaceID: "EBAY_US",
		maxAttempts:   3,
		baseDelay:     time.Second,
		newSKU:        func() string { return "fl-" + uuid.NewString() },
		tracer:        otel.Tracer(tracerName),
		log:           slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.maxAttempts < 1 {
		p.maxAttempts = 1
	}
	return p
}

// Marketplace implements Publisher.
func (p *EbayPublisher) Marketplace() domain.Marketplace {
	return domain.MarketplaceEbay
}

// Publish validates the listing and creates a live fixed-price listing for
// it. Validation failures make no remote call.
func (p *EbayPublisher) Publish(ctx context.Context, l *domain.Listing) (*Result, error) {
	ctx, span := p.tracer.Start(ctx, "ebay.publish", trace.WithAttributes(
		attribute.String("listing.id", l.ID),
		attribute.String("listing.owner_id", l.OwnerID),
	))
	defer span.End()

	start := time.Now()
	res, err := p.publish(ctx, l)
	metrics.PublishDuration.Observe(time.Since(start).Seconds())
	metrics.PublishAttemptsTotal.WithLabelValues(string(domain.MarketplaceEbay), outcome(err)).Inc()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome(err))
		return nil, err
	}
	span.SetAttributes(attribute.String("ebay.item_id", res.ItemID))
	return res, nil
}

func (p *EbayPublisher) publish(ctx context.Context, l *domain.Listing) (*Result, error) {
	if err := Validate(l); err != nil {
		return nil, err
	}

	token, err := p.tokens.ValidToken(ctx, l.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}

	resolved, err := p.policies.Ensure(ctx, l.OwnerID, token, l.Address)
	if err != nil {
		if errors.Is(err, policy.ErrPolicyIncomplete) {
			return nil, fmt.Errorf("%w: %w", ErrPolicyIncomplete, err)
		}
		return nil, fmt.Errorf("%w: resolving policies: %w", ErrInternal, err)
	}

	res := &Result{SKU: p.newSKU()}
	item := ebay.InventoryItemFromListing(l)
	err = p.step(ctx, StepInventoryItem, true, func(ctx context.Context) error {
		return p.api.CreateOrReplaceInventoryItem(ctx, token, res.SKU, item)
	})
	if err != nil {
		return nil, err
	}

	cat := p.categories.Resolve(ctx, l.Title, l.Description, token)
	res.CategoryID = cat.CategoryID
	res.CategorySource = cat.Source

	offer := ebay.OfferFromListing(l, res.SKU, p.marketplaceID, cat.CategoryID,
		resolved.LocationKey, resolved.ListingPolicies())
	err = p.step(ctx, StepOffer, true, func(ctx context.Context) error {
		id, err := p.api.CreateOffer(ctx, token, offer)
		res.OfferID = id
		return err
	})
	if err != nil {
		return nil, err
	}

	// Publishing is not idempotent; a repeat could list the item twice.
	err = p.step(ctx, StepPublish, false, func(ctx context.Context) error {
		id, err := p.api.PublishOffer(ctx, token, res.OfferID)
		res.ItemID = id
		return err
	})
	if err != nil {
		return nil, err
	}

	p.log.Info("listing published",
		"listing_id", l.ID,
		"item_id", res.ItemID,
		"sku", res.SKU,
		"category_id", res.CategoryID,
		"category_source", res.CategorySource,
	)
	return res, nil
}

// step runs one remote call in its own span. Retryable steps repeat on
// transient failures with exponential backoff.
func (p *EbayPublisher) step(ctx context.Context, name string, retryable bool, op func(context.Context) error) error {
	ctx, span := p.tracer.Start(ctx, "ebay."+name)
	defer span.End()

	attempts := 1
	if retryable {
		attempts = p.maxAttempts
	}

	var attempt int
	err := backoff.RetryNotifyWithTimer(
		func() error {
			attempt++
			err := op(ctx)
			if err != nil && !ebay.IsTransient(err) {
				return backoff.Permanent(err)
			}
			return err
		},
		p.backoff(ctx, attempts),
		func(err error, next time.Duration) {
			metrics.PublishStepRetriesTotal.WithLabelValues(name).Inc()
			p.log.Warn("transient marketplace error, retrying",
				"step", name,
				"attempt", attempt,
				"next_delay", next,
				"error", err,
			)
		},
		p.timer,
	)
	span.SetAttributes(attribute.Int("attempts", attempt))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, name+" failed")
		return &RemoteError{Step: name, Err: err}
	}
	return nil
}

func (p *EbayPublisher) backoff(ctx context.Context, attempts int) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.baseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = p.baseDelay << attempts
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(attempts-1)), ctx) //nolint:gosec // attempts >= 1
}

// Validate checks the fields every marketplace requires. It makes no
// remote call.
func Validate(l *domain.Listing) error {
	var problems []string
	if strings.TrimSpace(l.Title) == "" {
		problems = append(problems, "title is required")
	}
	if strings.TrimSpace(l.Description) == "" {
		problems = append(problems, "description is required")
	}
	if !hasImage(l.ImageURLs) {
		problems = append(problems, "at least one image is required")
	}
	if !(l.Price > 0) {
		problems = append(problems, "price must be greater than zero")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func hasImage(urls []string) bool {
	for _, u := range urls {
		if strings.TrimSpace(u) != "" {
			return true
		}
	}
	return false
}

// Package engine saves listings locally and synchronizes them to the
// marketplaces they target.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/flashlist/internal/metrics"
	"github.com/donaldgifford/flashlist/internal/notify"
	"github.com/donaldgifford/flashlist/internal/store"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

// defaultClaimTTL is how long a pending attempt is assumed to still be
// running. Older pending entries may be claimed by a republish.
const defaultClaimTTL = 10 * time.Minute

// statsTopCategories is how many categories ListingStats ranks.
const statsTopCategories = 5

// Report is the publish outcome for one marketplace.
type Report struct {
	Marketplace domain.Marketplace `json:"marketplace"`
	Status      domain.Status      `json:"status"`
	Error       string             `json:"error,omitempty"`
}

// Engine owns the listing lifecycle: local creation, per-marketplace
// publishing, and the status map that records both.
type Engine struct {
	store      store.ListingStore
	publishers map[domain.Marketplace]Publisher
	notifier   notify.Notifier
	claimTTL   time.Duration
	log        *slog.Logger
	nowFunc    func() time.Time
}

// Option configures the Engine.
type Option func(*Engine)

// WithPublisher registers the publisher for its marketplace. Targets
// without a publisher stay pending.
func WithPublisher(p Publisher) Option {
	return func(e *Engine) {
		e.publishers[p.Marketplace()] = p
	}
}

// WithNotifier sets where publish failures are reported.
func WithNotifier(n notify.Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

// WithClaimTTL sets how long a pending publish attempt blocks a republish.
func WithClaimTTL(d time.Duration) Option {
	return func(e *Engine) {
		e.claimTTL = d
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(e *Engine) {
		e.nowFunc = f
	}
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.ListingStore, opts ...Option) *Engine {
	e := &Engine{
		store:      s,
		publishers: make(map[domain.Marketplace]Publisher),
		claimTTL:   defaultClaimTTL,
		log:        slog.Default(),
		nowFunc:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.notifier == nil {
		e.notifier = notify.NewNoOpNotifier(e.log)
	}
	return e
}

// CreateListing saves l with every target pending, then publishes it to
// each target that has a publisher. Publish failures are recorded in the
// status map and the reports; they never fail the call. Publishing runs on
// a context detached from ctx's cancellation.
func (e *Engine) CreateListing(ctx context.Context, l *domain.Listing) ([]Report, error) {
	if strings.TrimSpace(l.OwnerID) == "" {
		return nil, errors.New("listing owner is required")
	}
	if strings.TrimSpace(l.Title) == "" {
		return nil, &ValidationError{Problems: []string{"title is required"}}
	}

	now := e.nowFunc()
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt = now
	l.UpdatedAt = now
	l.InitStatuses()

	if err := e.store.CreateListing(ctx, l); err != nil {
		return nil, fmt.Errorf("saving listing: %w", err)
	}
	metrics.ListingsCreatedTotal.Inc()
	e.log.Info("listing created", "listing_id", l.ID, "owner_id", l.OwnerID, "marketplaces", l.Marketplaces)

	ctx = context.WithoutCancel(ctx)
	reports := make([]Report, 0, len(l.Marketplaces))
	for _, m := range l.Marketplaces {
		p, ok := e.publishers[m]
		if !ok {
			reports = append(reports, Report{Marketplace: m, Status: domain.StatusPending})
			continue
		}
		reports = append(reports, e.publish(ctx, l, m, p))
	}
	return reports, nil
}

// RepublishListing makes a new publish attempt on one marketplace of a
// listing that failed there, or whose pending attempt was abandoned. The
// marketplace is claimed in the store first, so concurrent calls publish at
// most once; losers get ErrPublishInProgress.
func (e *Engine) RepublishListing(ctx context.Context, ownerID, id string, m domain.Marketplace) (*Report, error) {
	l, err := e.GetListing(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if !l.Targets(m) {
		return nil, fmt.Errorf("%w: %s", ErrNotTargeted, m)
	}
	if l.MarketplaceStatus[m] == domain.StatusPosted {
		return nil, fmt.Errorf("%w on %s", ErrAlreadyPosted, m)
	}
	p, ok := e.publishers[m]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoPublisher, m)
	}

	err = e.store.ClaimPublish(ctx, id, m, e.nowFunc().Add(-e.claimTTL))
	if errors.Is(err, store.ErrConflict) {
		return nil, fmt.Errorf("%w on %s", ErrPublishInProgress, m)
	}
	if err != nil {
		return nil, fmt.Errorf("claiming %s publish: %w", m, err)
	}

	l.SetStatus(m, domain.StatusPending)
	r := e.publish(context.WithoutCancel(ctx), l, m, p)
	return &r, nil
}

// ListingUpdate holds the fields an edit changes. Nil fields are left
// alone. A non-nil Marketplaces replaces the target set.
type ListingUpdate struct {
	Title        *string
	Description  *string
	Category     *string
	Brand        *string
	Condition    *string
	Tags         *[]string
	ImageURLs    *[]string
	Price        *float64
	Address      *domain.Address
	Marketplaces []domain.Marketplace
}

// UpdateListing edits the owner's listing. New targets start pending and
// are published like a new listing; dropped targets lose their status
// entry, and posted targets keep theirs. Dropping a posted target returns
// ErrTargetLive. Edits lose to a concurrent write with store.ErrConflict and
// are refused with ErrPublishInProgress while an attempt is running.
func (e *Engine) UpdateListing(
	ctx context.Context,
	ownerID, id string,
	u *ListingUpdate,
) (*domain.Listing, []Report, error) {
	l, err := e.GetListing(ctx, ownerID, id)
	if err != nil {
		return nil, nil, err
	}

	staleBefore := e.nowFunc().Add(-e.claimTTL)
	for _, m := range l.Marketplaces {
		_, hasPublisher := e.publishers[m]
		if hasPublisher && l.MarketplaceStatus[m] == domain.StatusPending && l.UpdatedAt.After(staleBefore) {
			return nil, nil, fmt.Errorf("%w on %s", ErrPublishInProgress, m)
		}
	}

	applyUpdate(l, u)
	if strings.TrimSpace(l.Title) == "" {
		return nil, nil, &ValidationError{Problems: []string{"title is required"}}
	}

	var added []domain.Marketplace
	if u.Marketplaces != nil {
		for m, s := range l.MarketplaceStatus {
			if s == domain.StatusPosted && !slices.Contains(u.Marketplaces, m) {
				return nil, nil, fmt.Errorf("%w: %s", ErrTargetLive, m)
			}
		}
		for _, m := range u.Marketplaces {
			if !l.Targets(m) && !slices.Contains(added, m) {
				added = append(added, m)
			}
		}
		l.Retarget(u.Marketplaces)
	}

	if err := e.store.UpdateListing(ctx, l); err != nil {
		return nil, nil, fmt.Errorf("updating listing %s: %w", id, err)
	}
	e.log.Info("listing updated", "listing_id", l.ID, "owner_id", ownerID, "added", added)

	ctx = context.WithoutCancel(ctx)
	reports := make([]Report, 0, len(added))
	for _, m := range added {
		p, ok := e.publishers[m]
		if !ok {
			reports = append(reports, Report{Marketplace: m, Status: domain.StatusPending})
			continue
		}
		reports = append(reports, e.publish(ctx, l, m, p))
	}
	return l, reports, nil
}

func applyUpdate(l *domain.Listing, u *ListingUpdate) {
	if u.Title != nil {
		l.Title = *u.Title
	}
	if u.Description != nil {
		l.Description = *u.Description
	}
	if u.Category != nil {
		l.Category = *u.Category
	}
	if u.Brand != nil {
		l.Brand = *u.Brand
	}
	if u.Condition != nil {
		l.Condition = *u.Condition
	}
	if u.Tags != nil {
		l.Tags = *u.Tags
	}
	if u.ImageURLs != nil {
		l.ImageURLs = *u.ImageURLs
	}
	if u.Price != nil {
		l.Price = *u.Price
	}
	if u.Address != nil {
		if u.Address.IsZero() {
			l.Address = nil
		} else {
			addr := *u.Address
			l.Address = &addr
		}
	}
}

// ListingStats summarizes the owner's listings.
func (e *Engine) ListingStats(ctx context.Context, ownerID string) (*store.ListingStats, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, errors.New("listing owner is required")
	}
	st, err := e.store.ListingStats(ctx, ownerID, statsTopCategories)
	if err != nil {
		return nil, fmt.Errorf("loading listing stats: %w", err)
	}
	return st, nil
}

// GetListing returns the owner's listing. Listings of other owners are
// reported as not found.
func (e *Engine) GetListing(ctx context.Context, ownerID, id string) (*domain.Listing, error) {
	l, err := e.store.GetListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting listing %s: %w", id, err)
	}
	if l.OwnerID != ownerID {
		return nil, fmt.Errorf("getting listing %s: %w", id, store.ErrNotFound)
	}
	return l, nil
}

// ListListings returns listings matching q. The query must name an owner.
func (e *Engine) ListListings(ctx context.Context, q *store.ListingQuery) ([]domain.Listing, int, error) {
	if strings.TrimSpace(q.OwnerID) == "" {
		return nil, 0, errors.New("listing owner is required")
	}
	listings, total, err := e.store.ListListings(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listing listings: %w", err)
	}
	return listings, total, nil
}

// DeleteListing removes the owner's listing locally. Live marketplace
// listings are left in place.
func (e *Engine) DeleteListing(ctx context.Context, ownerID, id string) error {
	if _, err := e.GetListing(ctx, ownerID, id); err != nil {
		return err
	}
	if err := e.store.DeleteListing(ctx, id); err != nil {
		return fmt.Errorf("deleting listing %s: %w", id, err)
	}
	e.log.Info("listing deleted", "listing_id", id, "owner_id", ownerID)
	return nil
}

// publish runs p and writes the outcome back to the listing and store.
func (e *Engine) publish(ctx context.Context, l *domain.Listing, m domain.Marketplace, p Publisher) Report {
	res, err := p.Publish(ctx, l)

	report := Report{Marketplace: m, Status: domain.StatusPosted}
	if err != nil {
		report.Status = domain.StatusFailed
		report.Error = err.Error()
		e.log.Warn("publish failed",
			"listing_id", l.ID,
			"marketplace", m,
			"outcome", outcome(err),
			"error", err,
		)
	} else if m == domain.MarketplaceEbay {
		l.EbayItemID = res.ItemID
		l.EbaySKU = res.SKU
		l.EbayOfferID = res.OfferID
	}

	l.SetStatus(m, report.Status)
	l.UpdatedAt = e.nowFunc()
	if serr := e.store.UpdatePublishState(ctx, l); serr != nil {
		e.log.Error("recording publish state", "listing_id", l.ID, "marketplace", m, "error", serr)
	}

	if err != nil {
		if nerr := e.notifier.SendPublishFailure(ctx, &notify.PublishFailure{
			ListingID:   l.ID,
			Title:       l.Title,
			Marketplace: string(m),
			Reason:      outcome(err),
			Detail:      err.Error(),
		}); nerr != nil {
			e.log.Error("sending publish failure notification", "listing_id", l.ID, "error", nerr)
		}
	}
	return report
}

package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/flashlist/internal/metrics"
	"github.com/donaldgifford/flashlist/internal/notify"
	"github.com/donaldgifford/flashlist/internal/store"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

const pageSize = 200

// Outcome summarizes what a notification changed locally. A re-delivered
// notification yields an empty Outcome.
type Outcome struct {
	Kind       Kind     `json:"kind"`
	ExternalID string   `json:"external_id"`
	Deleted    []string `json:"deleted,omitempty"`   // listings removed entirely
	Withdrawn  []string `json:"withdrawn,omitempty"` // listings that lost the marketplace
	Credential bool     `json:"credential_removed"`
}

// Changed reports whether anything was modified.
func (o *Outcome) Changed() bool {
	return len(o.Deleted) > 0 || len(o.Withdrawn) > 0 || o.Credential
}

// ListingIDs returns every listing touched, deleted first.
func (o *Outcome) ListingIDs() []string {
	ids := make([]string, 0, len(o.Deleted)+len(o.Withdrawn))
	ids = append(ids, o.Deleted...)
	return append(ids, o.Withdrawn...)
}

// Handler reconciles local state with marketplace deletions.
type Handler struct {
	listings    store.ListingStore
	credentials store.CredentialStore
	notifier    notify.Notifier
	log         *slog.Logger
}

// Option configures the Handler.
type Option func(*Handler)

// WithNotifier sets where applied deletions are reported.
func WithNotifier(n notify.Notifier) Option {
	return func(h *Handler) {
		h.notifier = n
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		h.log = l
	}
}

// NewHandler creates a Handler over the listing and credential stores.
func NewHandler(listings store.ListingStore, credentials store.CredentialStore, opts ...Option) *Handler {
	h := &Handler{
		listings:    listings,
		credentials: credentials,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.notifier == nil {
		h.notifier = notify.NewNoOpNotifier(h.log)
	}
	return h
}

// Handle applies n as reported by marketplace m. Unknown items and users
// are not errors, so re-delivery is always safe.
func (h *Handler) Handle(ctx context.Context, m domain.Marketplace, n *Notification) (*Outcome, error) {
	out := &Outcome{Kind: n.Kind(), ExternalID: n.ExternalID()}

	var err error
	switch out.Kind {
	case KindItem:
		err = h.handleItem(ctx, m, out)
	case KindAccount:
		err = h.handleAccount(ctx, m, out)
	}

	result := "applied"
	switch {
	case err != nil:
		result = "error"
	case !out.Changed():
		result = "noop"
	}
	metrics.DeletionNotificationsTotal.WithLabelValues(string(out.Kind), result).Inc()

	if err != nil {
		return out, err
	}

	h.log.Info("deletion notification handled",
		"marketplace", m,
		"kind", out.Kind,
		"external_id", out.ExternalID,
		"deleted", len(out.Deleted),
		"withdrawn", len(out.Withdrawn),
		"credential_removed", out.Credential,
	)

	if out.Changed() {
		if nerr := h.notifier.SendDeletion(ctx, &notify.Deletion{
			Marketplace: string(m),
			Kind:        string(out.Kind),
			ExternalID:  out.ExternalID,
			ListingIDs:  out.ListingIDs(),
		}); nerr != nil {
			h.log.Warn("sending deletion notification failed", "error", nerr)
		}
	}

	return out, nil
}

func (h *Handler) handleItem(ctx context.Context, m domain.Marketplace, out *Outcome) error {
	l, err := h.listings.GetListingByEbayItemID(ctx, out.ExternalID)
	if errors.Is(err, store.ErrNotFound) {
		h.log.Debug("deleted item has no local listing", "item_id", out.ExternalID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("looking up listing for item %s: %w", out.ExternalID, err)
	}
	return h.reconcile(ctx, l, m, out)
}

func (h *Handler) handleAccount(ctx context.Context, m domain.Marketplace, out *Outcome) error {
	cred, err := h.credentials.GetCredentialByExternalUser(ctx, m, out.ExternalID)
	if errors.Is(err, store.ErrNotFound) {
		h.log.Debug("deleted account has no local credential", "user_id", out.ExternalID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("looking up credential for user %s: %w", out.ExternalID, err)
	}

	listings, err := h.listingsFor(ctx, cred.UserID, m)
	if err != nil {
		return err
	}
	for i := range listings {
		if err := h.reconcile(ctx, &listings[i], m, out); err != nil {
			return err
		}
	}

	err = h.credentials.DeleteCredential(ctx, cred.UserID, m)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return fmt.Errorf("deleting credential: %w", err)
	default:
		out.Credential = true
	}
	return nil
}

// listingsFor collects every listing of owner targeting m before any is
// modified, since reconciling removes rows from the filtered set.
func (h *Handler) listingsFor(ctx context.Context, owner string, m domain.Marketplace) ([]domain.Listing, error) {
	market := string(m)
	var all []domain.Listing
	for {
		page, total, err := h.listings.ListListings(ctx, &store.ListingQuery{
			OwnerID:     owner,
			Marketplace: &market,
			Limit:       pageSize,
			Offset:      len(all),
		})
		if err != nil {
			return nil, fmt.Errorf("listing %s listings for %s: %w", m, owner, err)
		}
		all = append(all, page...)
		if len(page) == 0 || len(all) >= total {
			return all, nil
		}
	}
}

// reconcile removes m from l. A listing left with no marketplace is
// deleted; otherwise m stays in the status map as deleted.
func (h *Handler) reconcile(ctx context.Context, l *domain.Listing, m domain.Marketplace, out *Outcome) error {
	if !l.Targets(m) {
		return nil
	}

	if l.Withdraw(m) {
		err := h.listings.DeleteListing(ctx, l.ID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("deleting listing %s: %w", l.ID, err)
		}
		out.Deleted = append(out.Deleted, l.ID)
		return nil
	}

	if err := h.listings.UpdatePublishState(ctx, l); err != nil {
		return fmt.Errorf("withdrawing listing %s from %s: %w", l.ID, m, err)
	}
	out.Withdrawn = append(out.Withdrawn, l.ID)
	return nil
}

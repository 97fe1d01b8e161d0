// Package policy makes sure a seller has the fulfillment, payment, and
// return policies and the merchant location an offer must reference.
package policy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/flashlist/internal/ebay"
	"github.com/donaldgifford/flashlist/internal/store"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

// Resolved holds everything an offer needs from the seller's account.
type Resolved struct {
	FulfillmentPolicyID string
	PaymentPolicyID     string
	ReturnPolicyID      string
	LocationKey         string
}

// ListingPolicies returns the policy ids in offer form.
func (r *Resolved) ListingPolicies() ebay.ListingPolicies {
	return ebay.ListingPolicies{
		FulfillmentPolicyID: r.FulfillmentPolicyID,
		PaymentPolicyID:     r.PaymentPolicyID,
		ReturnPolicyID:      r.ReturnPolicyID,
	}
}

// Location is the fallback merchant location created for sellers who have
// none and did not submit an address.
type Location struct {
	Key        string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Resolver looks up seller policies on every publish and keeps the
// credential's copy of the policy ids current.
type Resolver struct {
	api             ebay.PolicyAPI
	creds           store.CredentialStore
	marketplaceID   string
	autoCreate      bool
	defaultLocation Location
	log             *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithAutoCreate creates missing policies inline instead of failing.
func WithAutoCreate(enabled bool) Option {
	return func(r *Resolver) {
		r.autoCreate = enabled
	}
}

// WithDefaultLocation sets the location created when a seller has none.
// A location without a key or postal code leaves the built-in default.
func WithDefaultLocation(l Location) Option {
	return func(r *Resolver) {
		if l.Key == "" || l.PostalCode == "" {
			return
		}
		r.defaultLocation = l
	}
}

// WithMarketplaceID sets the marketplace new policies are created for.
func WithMarketplaceID(id string) Option {
	return func(r *Resolver) {
		r.marketplaceID = id
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.log = l
	}
}

// NewResolver creates a policy resolver.
func NewResolver(api ebay.PolicyAPI, creds store.CredentialStore, opts ...Option) *Resolver {
	r := &Resolver{
		api:             api,
		creds:           creds,
		marketplaceID:   "EBAY_US",
		defaultLocation: builtinLocation,
		log:             slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Ensure returns the seller's policy ids and a merchant location key. addr
// is the listing's ship-from address and may be nil. When anything is
// missing the error is an *IncompleteError naming every missing item.
func (r *Resolver) Ensure(
	ctx context.Context,
	userID, token string,
	addr *domain.Address,
) (*Resolved, error) {
	cred, err := r.creds.GetCredential(ctx, userID, domain.MarketplaceEbay)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("loading credential: %w", err)
	}

	res := &Resolved{}
	var missing []string
	var causes []error

	stored := storedIDs(cred)
	for _, kind := range []string{KindFulfillment, KindPayment, KindReturn} {
		id, err := r.fetch(ctx, token, kind)
		if err != nil {
			causes = append(causes, err)
			if id = stored[kind]; id != "" {
				r.log.Warn("policy lookup failed, using stored id",
					"user_id", userID, "kind", kind, "error", err)
			}
		}
		if id == "" && r.autoCreate {
			id, err = r.create(ctx, token, kind)
			if err != nil {
				causes = append(causes, err)
			}
		}
		if id == "" {
			missing = append(missing, kind)
			continue
		}
		res.set(kind, id)
	}

	key, err := r.location(ctx, token, addr)
	if err != nil {
		missing = append(missing, KindLocation)
		causes = append(causes, err)
	}
	res.LocationKey = key

	if len(missing) > 0 {
		return nil, &IncompleteError{Missing: missing, Cause: errors.Join(causes...)}
	}

	if cred != nil {
		r.writeBack(ctx, cred, res)
	}
	return res, nil
}

// Bootstrap creates one policy of each missing kind with fixed defaults and
// stores the ids on the seller's credential. Existing policies are kept.
func (r *Resolver) Bootstrap(ctx context.Context, userID, token string) (*Resolved, error) {
	cred, err := r.creds.GetCredential(ctx, userID, domain.MarketplaceEbay)
	if err != nil {
		return nil, fmt.Errorf("loading credential: %w", err)
	}

	res := &Resolved{}
	for _, kind := range []string{KindFulfillment, KindPayment, KindReturn} {
		id, err := r.fetch(ctx, token, kind)
		if err != nil {
			return nil, err
		}
		if id == "" {
			if id, err = r.create(ctx, token, kind); err != nil {
				return nil, err
			}
			r.log.Info("created default policy", "user_id", userID, "kind", kind, "id", id)
		}
		res.set(kind, id)
	}

	r.writeBack(ctx, cred, res)
	return res, nil
}

// fetch returns the id of the first policy of kind, or "" when the seller
// has none.
func (r *Resolver) fetch(ctx context.Context, token, kind string) (string, error) {
	switch kind {
	case KindFulfillment:
		ps, err := r.api.ListFulfillmentPolicies(ctx, token)
		if err != nil || len(ps) == 0 {
			return "", err
		}
		return ps[0].FulfillmentPolicyID, nil
	case KindPayment:
		ps, err := r.api.ListPaymentPolicies(ctx, token)
		if err != nil || len(ps) == 0 {
			return "", err
		}
		return ps[0].PaymentPolicyID, nil
	case KindReturn:
		ps, err := r.api.ListReturnPolicies(ctx, token)
		if err != nil || len(ps) == 0 {
			return "", err
		}
		return ps[0].ReturnPolicyID, nil
	}
	return "", fmt.Errorf("unknown policy kind %q", kind)
}

func (r *Resolver) create(ctx context.Context, token, kind string) (string, error) {
	switch kind {
	case KindFulfillment:
		p, err := r.api.CreateFulfillmentPolicy(ctx, token, defaultFulfillmentPolicy(r.marketplaceID))
		if err != nil {
			return "", fmt.Errorf("creating fulfillment policy: %w", err)
		}
		return p.FulfillmentPolicyID, nil
	case KindPayment:
		p, err := r.api.CreatePaymentPolicy(ctx, token, defaultPaymentPolicy(r.marketplaceID))
		if err != nil {
			return "", fmt.Errorf("creating payment policy: %w", err)
		}
		return p.PaymentPolicyID, nil
	case KindReturn:
		p, err := r.api.CreateReturnPolicy(ctx, token, defaultReturnPolicy(r.marketplaceID))
		if err != nil {
			return "", fmt.Errorf("creating return policy: %w", err)
		}
		return p.ReturnPolicyID, nil
	}
	return "", fmt.Errorf("unknown policy kind %q", kind)
}

// writeBack stores changed policy ids on the credential. A failed write is
// logged only, since the ids are fetched again on the next publish.
func (r *Resolver) writeBack(ctx context.Context, cred *domain.Credential, res *Resolved) {
	if cred.FulfillmentPolicyID == res.FulfillmentPolicyID &&
		cred.PaymentPolicyID == res.PaymentPolicyID &&
		cred.ReturnPolicyID == res.ReturnPolicyID {
		return
	}

	cred.FulfillmentPolicyID = res.FulfillmentPolicyID
	cred.PaymentPolicyID = res.PaymentPolicyID
	cred.ReturnPolicyID = res.ReturnPolicyID
	if err := r.creds.UpdateCredentialPolicies(ctx, cred); err != nil {
		r.log.Warn("storing policy ids", "user_id", cred.UserID, "error", err)
	}
}

func (r *Resolved) set(kind, id string) {
	switch kind {
	case KindFulfillment:
		r.FulfillmentPolicyID = id
	case KindPayment:
		r.PaymentPolicyID = id
	case KindReturn:
		r.ReturnPolicyID = id
	}
}

func storedIDs(cred *domain.Credential) map[string]string {
	if cred == nil {
		return nil
	}
	return map[string]string{
		KindFulfillment: cred.FulfillmentPolicyID,
		KindPayment:     cred.PaymentPolicyID,
		KindReturn:      cred.ReturnPolicyID,
	}
}

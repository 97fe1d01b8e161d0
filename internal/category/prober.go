package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/donaldgifford/flashlist/internal/ebay"
)

const notLeafSignal = "not a leaf category"

// Verdict is what a probe learned about a category id.
type Verdict string

// Probe verdicts.
const (
	VerdictLeaf    Verdict = "leaf"
	VerdictNotLeaf Verdict = "not_leaf"
	VerdictUnknown Verdict = "unknown"
)

// ProbeResult is the verdict for one candidate id.
type ProbeResult struct {
	CategoryID string  `json:"category_id"`
	Verdict    Verdict `json:"verdict"`
	Detail     string  `json:"detail,omitempty"`
}

// Prober checks whether category ids accept listings by creating a trial
// unpublished offer and removing it again. It writes to a live seller
// account, so it is run as a maintenance command and never while
// publishing.
type Prober struct {
	api           ebay.ListingAPI
	limiter       *rate.Limiter
	marketplaceID string
	log           *slog.Logger
}

// ProberOption configures a Prober.
type ProberOption func(*Prober)

// WithProbeRate limits probes to perSecond, one at a time.
func WithProbeRate(perSecond float64) ProberOption {
	return func(p *Prober) {
		p.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithProberLogger sets the logger.
func WithProberLogger(l *slog.Logger) ProberOption {
	return func(p *Prober) {
		p.log = l
	}
}

// NewProber creates a prober. The default rate is one probe every two
// seconds.
func NewProber(api ebay.ListingAPI, marketplaceID string, opts ...ProberOption) *Prober {
	p := &Prober{
		api:           api,
		limiter:       rate.NewLimiter(rate.Limit(0.5), 1),
		marketplaceID: marketplaceID,
		log:           slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe tests each candidate in order. It stops early only when ctx ends.
func (p *Prober) Probe(ctx context.Context, token string, candidates []string) ([]ProbeResult, error) {
	results := make([]ProbeResult, 0, len(candidates))
	for _, id := range candidates {
		if err := p.limiter.Wait(ctx); err != nil {
			return results, fmt.Errorf("waiting to probe %s: %w", id, err)
		}
		res := p.probeOne(ctx, token, id)
		p.log.Info("category probed", "category_id", id, "verdict", res.Verdict, "detail", res.Detail)
		results = append(results, res)
	}
	return results, nil
}

// FirstLeaf returns the first candidate verified as a leaf.
func FirstLeaf(results []ProbeResult) (string, bool) {
	for _, r := range results {
		if r.Verdict == VerdictLeaf {
			return r.CategoryID, true
		}
	}
	return "", false
}

func (p *Prober) probeOne(ctx context.Context, token, categoryID string) ProbeResult {
	res := ProbeResult{CategoryID: categoryID, Verdict: VerdictUnknown}
	sku := "probe-" + uuid.NewString()

	err := p.api.CreateOrReplaceInventoryItem(ctx, token, sku, ebay.InventoryItem{
		Product:   ebay.Product{Title: "Category probe", Description: "Category probe"},
		Condition: "NEW",
		Availability: ebay.Availability{
			ShipToLocationAvailability: ebay.ShipToLocation{Quantity: 1},
		},
	})
	if err != nil {
		res.Detail = "creating probe item: " + err.Error()
		return res
	}
	defer p.cleanup(ctx, token, sku, "")

	offerID, err := p.api.CreateOffer(ctx, token, ebay.Offer{
		SKU:                sku,
		MarketplaceID:      p.marketplaceID,
		Format:             "FIXED_PRICE",
		AvailableQuantity:  1,
		CategoryID:         categoryID,
		ListingDescription: "Category probe",
		PricingSummary:     ebay.PricingSummary{Price: ebay.Amount{Value: "1.00", Currency: "USD"}},
	})
	switch {
	case err == nil:
		res.Verdict = VerdictLeaf
		p.cleanup(ctx, token, "", offerID)
	case strings.Contains(strings.ToLower(err.Error()), notLeafSignal):
		res.Verdict = VerdictNotLeaf
	default:
		res.Detail = err.Error()
	}
	return res
}

// cleanup deletes the probe offer or inventory item. Failures are logged;
// a leftover unpublished probe is harmless.
func (p *Prober) cleanup(ctx context.Context, token, sku, offerID string) {
	if offerID != "" {
		if err := p.api.DeleteOffer(ctx, token, offerID); err != nil {
			p.log.Warn("deleting probe offer", "offer_id", offerID, "error", err)
		}
	}
	if sku != "" {
		if err := p.api.DeleteInventoryItem(ctx, token, sku); err != nil {
			p.log.Warn("deleting probe item", "sku", sku, "error", err)
		}
	}
}

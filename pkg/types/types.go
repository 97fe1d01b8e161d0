// Package domain defines the core business types for flashlist.
package domain

import (
	"slices"
	"strings"
	"time"
)

// Marketplace names a selling venue a listing can be published to.
type Marketplace string

// Marketplace constants.
const (
	MarketplaceEbay     Marketplace = "ebay"
	MarketplaceMercari  Marketplace = "mercari"
	MarketplaceOfferUp  Marketplace = "offerup"
	MarketplaceFacebook Marketplace = "facebook"
	MarketplacePoshmark Marketplace = "poshmark"
)

// KnownMarketplaces lists every marketplace a listing may target.
var KnownMarketplaces = []Marketplace{
	MarketplaceEbay,
	MarketplaceMercari,
	MarketplaceOfferUp,
	MarketplaceFacebook,
	MarketplacePoshmark,
}

// ParseMarketplace normalizes a user supplied marketplace name ("eBay",
// "OfferUp", " poshmark ") and reports whether it is known.
func ParseMarketplace(s string) (Marketplace, bool) {
	m := Marketplace(strings.ToLower(strings.TrimSpace(s)))
	return m, slices.Contains(KnownMarketplaces, m)
}

// Status is the publish state of a listing on one marketplace.
type Status string

// Status constants.
const (
	StatusPending Status = "pending"
	StatusPosted  Status = "posted"
	StatusFailed  Status = "failed"
	StatusDeleted Status = "deleted"
)

// MarketplaceStatus maps a marketplace to the listing's state on it.
type MarketplaceStatus map[Marketplace]Status

// Address is an optional ship-from address submitted with a listing.
type Address struct {
	City       string `json:"city,omitempty"        db:"city"`
	PostalCode string `json:"postal_code,omitempty" db:"postal_code"`
	State      string `json:"state,omitempty"       db:"state"`
}

// IsZero reports whether no address field was supplied.
func (a Address) IsZero() bool {
	return a.City == "" && a.PostalCode == "" && a.State == ""
}

// Listing is a locally owned item for sale and its per-marketplace state.
type Listing struct {
	ID          string   `json:"id"                    db:"id"`
	OwnerID     string   `json:"owner_id"              db:"owner_id"`
	Title       string   `json:"title"                 db:"title"`
	Description string   `json:"description"           db:"description"`
	Category    string   `json:"category,omitempty"    db:"category"`
	Brand       string   `json:"brand,omitempty"       db:"brand"`
	Condition   string   `json:"condition,omitempty"   db:"condition"`
	Tags        []string `json:"tags"                  db:"tags"`
	ImageURLs   []string `json:"image_urls"            db:"image_urls"`
	Price       float64  `json:"price"                 db:"price"`
	Address     *Address `json:"address,omitempty"     db:"-"`

	// Publish state
	Marketplaces      []Marketplace     `json:"marketplaces"       db:"marketplaces"`
	MarketplaceStatus MarketplaceStatus `json:"marketplace_status" db:"marketplace_status"`

	// eBay references, set once an offer is published
	EbayItemID  string `json:"ebay_item_id,omitempty"  db:"ebay_item_id"`
	EbaySKU     string `json:"ebay_sku,omitempty"      db:"ebay_sku"`
	EbayOfferID string `json:"ebay_offer_id,omitempty" db:"ebay_offer_id"`

	// Timestamps
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// InitStatuses sets every target marketplace to pending, dropping any
// previous entries. Duplicate targets are collapsed.
func (l *Listing) InitStatuses() {
	seen := make(map[Marketplace]struct{}, len(l.Marketplaces))
	targets := l.Marketplaces[:0]
	for _, m := range l.Marketplaces {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		targets = append(targets, m)
	}
	l.Marketplaces = targets

	l.MarketplaceStatus = make(MarketplaceStatus, len(targets))
	for _, m := range targets {
		l.MarketplaceStatus[m] = StatusPending
	}
}

// Targets reports whether the listing is still targeted at m.
func (l *Listing) Targets(m Marketplace) bool {
	return slices.Contains(l.Marketplaces, m)
}

// SetStatus records the state for a targeted marketplace. Untargeted
// marketplaces are ignored so the status map never gains stray keys.
func (l *Listing) SetStatus(m Marketplace, s Status) bool {
	if !l.Targets(m) {
		return false
	}
	if l.MarketplaceStatus == nil {
		l.MarketplaceStatus = make(MarketplaceStatus)
	}
	l.MarketplaceStatus[m] = s
	return true
}

// Withdraw records that m removed the listing. The marketplace leaves the
// target set and its status entry stays behind as a deleted tombstone.
// It returns true when no targets remain.
func (l *Listing) Withdraw(m Marketplace) bool {
	if l.MarketplaceStatus == nil {
		l.MarketplaceStatus = make(MarketplaceStatus)
	}
	l.MarketplaceStatus[m] = StatusDeleted
	l.Marketplaces = slices.DeleteFunc(l.Marketplaces, func(x Marketplace) bool {
		return x == m
	})
	return len(l.Marketplaces) == 0
}

// Retarget replaces the target set. New targets start pending, kept
// targets keep their status, and dropped targets lose their entry. Deleted
// tombstones of untargeted marketplaces are kept. Duplicates collapse.
func (l *Listing) Retarget(targets []Marketplace) {
	next := make([]Marketplace, 0, len(targets))
	for _, m := range targets {
		if !slices.Contains(next, m) {
			next = append(next, m)
		}
	}

	status := make(MarketplaceStatus, len(next))
	for m, s := range l.MarketplaceStatus {
		if s == StatusDeleted && !slices.Contains(next, m) {
			status[m] = s
		}
	}
	for _, m := range next {
		s, ok := l.MarketplaceStatus[m]
		if !ok || s == StatusDeleted {
			s = StatusPending
		}
		status[m] = s
	}

	l.Marketplaces = next
	l.MarketplaceStatus = status
}

// StatusConsistent reports whether every target has exactly one status
// entry and every extra entry is a deleted tombstone.
func (l *Listing) StatusConsistent() bool {
	for _, m := range l.Marketplaces {
		if _, ok := l.MarketplaceStatus[m]; !ok {
			return false
		}
	}
	for m, s := range l.MarketplaceStatus {
		if !l.Targets(m) && s != StatusDeleted {
			return false
		}
	}
	return true
}

// Credential is one user's OAuth grant for one marketplace, plus the seller
// policy ids discovered for it.
type Credential struct {
	ID             string      `json:"id"                         db:"id"`
	UserID         string      `json:"user_id"                    db:"user_id"`
	Marketplace    Marketplace `json:"marketplace"                db:"marketplace"`
	ExternalUserID string      `json:"external_user_id,omitempty" db:"external_user_id"`
	AccessToken    string      `json:"-"                          db:"access_token"`
	RefreshToken   string      `json:"-"                          db:"refresh_token"`
	ExpiresAt      time.Time   `json:"expires_at"                 db:"expires_at"`

	// Seller policies
	FulfillmentPolicyID string `json:"fulfillment_policy_id,omitempty" db:"fulfillment_policy_id"`
	PaymentPolicyID     string `json:"payment_policy_id,omitempty"     db:"payment_policy_id"`
	ReturnPolicyID      string `json:"return_policy_id,omitempty"      db:"return_policy_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ExpiredAt reports whether the access token must be refreshed at now,
// treating tokens within skew of expiry as already expired.
func (c *Credential) ExpiredAt(now time.Time, skew time.Duration) bool {
	return !now.Before(c.ExpiresAt.Add(-skew))
}

// CategorySource records where a category table came from.
type CategorySource string

// Category source constants.
const (
	CategorySourceRemote   CategorySource = "remote"
	CategorySourceFallback CategorySource = "fallback"
)

// CategoryCache is the persisted label to leaf-category table.
type CategoryCache struct {
	Key         string            `json:"key"          db:"key"`
	Entries     map[string]string `json:"entries"      db:"entries"`
	Source      CategorySource    `json:"source"       db:"source"`
	RefreshedAt time.Time         `json:"refreshed_at" db:"refreshed_at"`
}

// Stale reports whether the cache is older than interval at now.
func (c *CategoryCache) Stale(now time.Time, interval time.Duration) bool {
	return c.RefreshedAt.IsZero() || now.Sub(c.RefreshedAt) >= interval
}

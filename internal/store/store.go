// Package store defines the datastore abstraction for flashlist.
// Business logic depends on the narrow interfaces below, never on the
// concrete Postgres implementation, so components can be tested with mocks.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/flashlist/pkg/types"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")

	// ErrCorrupt is returned when a stored document cannot be decoded.
	ErrCorrupt = errors.New("stored data corrupt")

	// ErrConflict is returned when a conditional write lost to a
	// concurrent change.
	ErrConflict = errors.New("concurrent modification")
)

// ListingQuery defines optional filters for listing queries.
type ListingQuery struct {
	OwnerID     string
	Marketplace *string
	Status      *string // status on Marketplace, or on any marketplace when Marketplace is nil
	Limit       int     // default 50
	Offset      int
	OrderBy     string // "created_at", "price", "title"
}

// CategoryCount is how many listings use one category id.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ListingStats summarizes one owner's listings.
type ListingStats struct {
	Total         int                   `json:"total"`
	ByStatus      map[domain.Status]int `json:"by_status"`
	TopCategories []CategoryCount       `json:"top_categories"`
}

// CredentialStore persists one OAuth credential per (user, marketplace).
type CredentialStore interface {
	GetCredential(ctx context.Context, userID string, m domain.Marketplace) (*domain.Credential, error)
	GetCredentialByExternalUser(
		ctx context.Context,
		m domain.Marketplace,
		externalUserID string,
	) (*domain.Credential, error)
	UpsertCredential(ctx context.Context, c *domain.Credential) error
	UpdateCredentialTokens(ctx context.Context, c *domain.Credential) error
	UpdateCredentialPolicies(ctx context.Context, c *domain.Credential) error
	DeleteCredential(ctx context.Context, userID string, m domain.Marketplace) error
}

// ListingStore persists listings and their per-marketplace publish state.
type ListingStore interface {
	CreateListing(ctx context.Context, l *domain.Listing) error
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	GetListingByEbayItemID(ctx context.Context, itemID string) (*domain.Listing, error)
	ListListings(ctx context.Context, q *ListingQuery) ([]domain.Listing, int, error)
	UpdatePublishState(ctx context.Context, l *domain.Listing) error
	UpdateListing(ctx context.Context, l *domain.Listing) error
	ClaimPublish(ctx context.Context, id string, m domain.Marketplace, staleBefore time.Time) error
	DeleteListing(ctx context.Context, id string) error
	ListingStats(ctx context.Context, ownerID string, topN int) (*ListingStats, error)
}

// CategoryCacheStore persists the label to leaf-category table.
type CategoryCacheStore interface {
	GetCategoryCache(ctx context.Context, key string) (*domain.CategoryCache, error)
	SaveCategoryCache(ctx context.Context, c *domain.CategoryCache) error
}

// Store is the full data access surface of flashlist.
type Store interface {
	CredentialStore
	ListingStore
	CategoryCacheStore

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}

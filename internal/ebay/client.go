// Package ebay provides eBay REST API clients (Browse, Sell Account and
// Inventory, Taxonomy, Identity, Analytics, OAuth) abstracted behind
// interfaces for testability.
package ebay

import (
	"context"

	"golang.org/x/oauth2"
)

// SearchRequest defines the parameters for an eBay item search.
type SearchRequest struct {
	Query      string
	CategoryID string
	Limit      int
	Offset     int
	Sort       string
	Filters    map[string]string
}

// SearchResponse holds the results of an eBay item search.
type SearchResponse struct {
	Items   []ItemSummary
	Total   int
	Offset  int
	Limit   int
	HasMore bool
}

// TokenProvider yields application (client-credentials) access tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// BrowseAPI searches live marketplace items on behalf of a user.
type BrowseAPI interface {
	Search(ctx context.Context, token string, req SearchRequest) (*SearchResponse, error)
}

// TaxonomyAPI reads the marketplace category tree.
type TaxonomyAPI interface {
	GetDefaultCategoryTreeID(ctx context.Context, marketplaceID string) (string, error)
	GetCategoryTree(ctx context.Context, treeID string) (*CategoryTree, error)
}

// PolicyAPI manages the seller's business policies and inventory locations.
type PolicyAPI interface {
	ListFulfillmentPolicies(ctx context.Context, token string) ([]FulfillmentPolicy, error)
	ListPaymentPolicies(ctx context.Context, token string) ([]PaymentPolicy, error)
	ListReturnPolicies(ctx context.Context, token string) ([]ReturnPolicy, error)
	CreateFulfillmentPolicy(ctx context.Context, token string, p FulfillmentPolicy) (*FulfillmentPolicy, error)
	CreatePaymentPolicy(ctx context.Context, token string, p PaymentPolicy) (*PaymentPolicy, error)
	CreateReturnPolicy(ctx context.Context, token string, p ReturnPolicy) (*ReturnPolicy, error)
	ListLocations(ctx context.Context, token string) ([]InventoryLocation, error)
	CreateLocation(ctx context.Context, token, key string, loc InventoryLocation) error
}

// ListingAPI drives the inventory item, offer, and publish workflow.
type ListingAPI interface {
	CreateOrReplaceInventoryItem(ctx context.Context, token, sku string, item InventoryItem) error
	DeleteInventoryItem(ctx context.Context, token, sku string) error
	CreateOffer(ctx context.Context, token string, offer Offer) (string, error)
	DeleteOffer(ctx context.Context, token, offerID string) error
	PublishOffer(ctx context.Context, token, offerID string) (string, error)
}

// UserAuthenticator runs the authorization-code grant for seller accounts.
type UserAuthenticator interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
	GetUser(ctx context.Context, accessToken string) (*IdentityUser, error)
}

// QuotaReporter reports the application's remote rate-limit state.
type QuotaReporter interface {
	GetQuota(ctx context.Context, apiContext, apiName, resourceName string) (*QuotaState, error)
}

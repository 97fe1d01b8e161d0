package ebay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

const (
	accountPath   = "/sell/account/v1"
	inventoryPath = "/sell/inventory/v1"
)

// SellClient implements PolicyAPI and ListingAPI against the Sell Account
// and Sell Inventory APIs. Every call uses the seller's user access token.
type SellClient struct {
	rest restClient
}

var (
	_ PolicyAPI  = (*SellClient)(nil)
	_ ListingAPI = (*SellClient)(nil)
)

// NewSellClient creates a new Sell API client.
func NewSellClient(opts ...ClientOption) *SellClient {
	return &SellClient{rest: newRESTClient(opts)}
}

// Marketplace returns the marketplace id sent on every request.
func (c *SellClient) Marketplace() string {
	return c.rest.marketplace
}

func (c *SellClient) policyPath(kind string) string {
	return accountPath + "/" + kind + "?marketplace_id=" + url.QueryEscape(c.rest.marketplace)
}

// ListFulfillmentPolicies returns the seller's fulfillment policies.
func (c *SellClient) ListFulfillmentPolicies(
	ctx context.Context,
	token string,
) ([]FulfillmentPolicy, error) {
	var resp struct {
		FulfillmentPolicies []FulfillmentPolicy `json:"fulfillmentPolicies"`
	}
	if err := c.rest.do(ctx, token, http.MethodGet, c.policyPath("fulfillment_policy"), nil, &resp); err != nil {
		return nil, fmt.Errorf("listing fulfillment policies: %w", err)
	}
	return resp.FulfillmentPolicies, nil
}

// ListPaymentPolicies returns the seller's payment policies.
func (c *SellClient) ListPaymentPolicies(ctx context.Context, token string) ([]PaymentPolicy, error) {
	var resp struct {
		PaymentPolicies []PaymentPolicy `json:"paymentPolicies"`
	}
	if err := c.rest.do(ctx, token, http.MethodGet, c.policyPath("payment_policy"), nil, &resp); err != nil {
		return nil, fmt.Errorf("listing payment policies: %w", err)
	}
	return resp.PaymentPolicies, nil
}

// ListReturnPolicies returns the seller's return policies.
func (c *SellClient) ListReturnPolicies(ctx context.Context, token string) ([]ReturnPolicy, error) {
	var resp struct {
		ReturnPolicies []ReturnPolicy `json:"returnPolicies"`
	}
	if err := c.rest.do(ctx, token, http.MethodGet, c.policyPath("return_policy"), nil, &resp); err != nil {
		return nil, fmt.Errorf("listing return policies: %w", err)
	}
	return resp.ReturnPolicies, nil
}

// CreateFulfillmentPolicy creates a fulfillment policy and returns it with its id.
func (c *SellClient) CreateFulfillmentPolicy(
	ctx context.Context,
	token string,
	p FulfillmentPolicy,
) (*FulfillmentPolicy, error) {
	p.MarketplaceID = c.rest.marketplace
	var out FulfillmentPolicy
	if err := c.rest.do(ctx, token, http.MethodPost, accountPath+"/fulfillment_policy", p, &out); err != nil {
		return nil, fmt.Errorf("creating fulfillment policy: %w", err)
	}
	return &out, nil
}

// CreatePaymentPolicy creates a payment policy and returns it with its id.
func (c *SellClient) CreatePaymentPolicy(
	ctx context.Context,
	token string,
	p PaymentPolicy,
) (*PaymentPolicy, error) {
	p.MarketplaceID = c.rest.marketplace
	var out PaymentPolicy
	if err := c.rest.do(ctx, token, http.MethodPost, accountPath+"/payment_policy", p, &out); err != nil {
		return nil, fmt.Errorf("creating payment policy: %w", err)
	}
	return &out, nil
}

// CreateReturnPolicy creates a return policy and returns it with its id.
func (c *SellClient) CreateReturnPolicy(
	ctx context.Context,
	token string,
	p ReturnPolicy,
) (*ReturnPolicy, error) {
	p.MarketplaceID = c.rest.marketplace
	var out ReturnPolicy
	if err := c.rest.do(ctx, token, http.MethodPost, accountPath+"/return_policy", p, &out); err != nil {
		return nil, fmt.Errorf("creating return policy: %w", err)
	}
	return &out, nil
}

// ListLocations returns the seller's inventory locations.
func (c *SellClient) ListLocations(ctx context.Context, token string) ([]InventoryLocation, error) {
	var resp struct {
		Locations []InventoryLocation `json:"locations"`
	}
	if err := c.rest.do(ctx, token, http.MethodGet, inventoryPath+"/location?limit=100", nil, &resp); err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	return resp.Locations, nil
}

// CreateLocation registers a merchant location under key. eBay answers
// 204 with no body on success.
func (c *SellClient) CreateLocation(
	ctx context.Context,
	token, key string,
	loc InventoryLocation,
) error {
	loc.MerchantLocationKey = ""
	path := inventoryPath + "/location/" + url.PathEscape(key)
	if err := c.rest.do(ctx, token, http.MethodPost, path, loc, nil); err != nil {
		return fmt.Errorf("creating location %q: %w", key, err)
	}
	return nil
}

// CreateOrReplaceInventoryItem upserts the inventory item keyed by sku.
func (c *SellClient) CreateOrReplaceInventoryItem(
	ctx context.Context,
	token, sku string,
	item InventoryItem,
) error {
	path := inventoryPath + "/inventory_item/" + url.PathEscape(sku)
	if err := c.rest.do(ctx, token, http.MethodPut, path, item, nil, withContentLanguage()); err != nil {
		return fmt.Errorf("upserting inventory item %q: %w", sku, err)
	}
	return nil
}

// DeleteInventoryItem removes the inventory item keyed by sku.
func (c *SellClient) DeleteInventoryItem(ctx context.Context, token, sku string) error {
	path := inventoryPath + "/inventory_item/" + url.PathEscape(sku)
	if err := c.rest.do(ctx, token, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("deleting inventory item %q: %w", sku, err)
	}
	return nil
}

// CreateOffer creates an unpublished offer and returns its id.
func (c *SellClient) CreateOffer(ctx context.Context, token string, offer Offer) (string, error) {
	if offer.MarketplaceID == "" {
		offer.MarketplaceID = c.rest.marketplace
	}
	var resp struct {
		OfferID string `json:"offerId"`
	}
	if err := c.rest.do(ctx, token, http.MethodPost, inventoryPath+"/offer", offer, &resp, withContentLanguage()); err != nil {
		return "", fmt.Errorf("creating offer: %w", err)
	}
	if resp.OfferID == "" {
		return "", errors.New("creating offer: response missing offerId")
	}
	return resp.OfferID, nil
}

// DeleteOffer removes an offer.
func (c *SellClient) DeleteOffer(ctx context.Context, token, offerID string) error {
	path := inventoryPath + "/offer/" + url.PathEscape(offerID)
	if err := c.rest.do(ctx, token, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("deleting offer %q: %w", offerID, err)
	}
	return nil
}

// PublishOffer publishes an offer and returns the resulting listing id.
func (c *SellClient) PublishOffer(ctx context.Context, token, offerID string) (string, error) {
	var resp struct {
		ListingID string `json:"listingId"`
	}
	path := inventoryPath + "/offer/" + url.PathEscape(offerID) + "/publish"
	if err := c.rest.do(ctx, token, http.MethodPost, path, nil, &resp); err != nil {
		return "", fmt.Errorf("publishing offer %q: %w", offerID, err)
	}
	if resp.ListingID == "" {
		return "", fmt.Errorf("publishing offer %q: response missing listingId", offerID)
	}
	return resp.ListingID, nil
}

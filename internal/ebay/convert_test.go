package ebay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/flashlist/internal/ebay"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

func TestConditionEnum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "NEW"},
		{in: "New", want: "NEW"},
		{in: "Brand New", want: "NEW"},
		{in: "like-new", want: "LIKE_NEW"},
		{in: "Very Good", want: "USED_VERY_GOOD"},
		{in: "used", want: "USED_GOOD"},
		{in: "USED_ACCEPTABLE", want: "USED_ACCEPTABLE"},
		{in: "for parts", want: "FOR_PARTS_OR_NOT_WORKING"},
		{in: "pristine-ish", want: "NEW"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ebay.ConditionEnum(tt.in))
		})
	}
}

func TestInventoryItemFromListing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		listing     domain.Listing
		wantBrand   string
		wantAspects map[string][]string
	}{
		{
			name: "with brand",
			listing: domain.Listing{
				Title:       "Monstera Deliciosa in 6in pot",
				Description: "Healthy indoor plant",
				ImageURLs:   []string{"https://img.example.com/1.jpg", "https://img.example.com/2.jpg"},
				Brand:       "Costa Farms",
				Condition:   "new",
			},
			wantBrand:   "Costa Farms",
			wantAspects: map[string][]string{"Brand": {"Costa Farms"}},
		},
		{
			name: "without brand",
			listing: domain.Listing{
				Title:       "Vintage board game",
				Description: "All pieces included",
				ImageURLs:   []string{"https://img.example.com/game.jpg"},
				Condition:   "good",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item := ebay.InventoryItemFromListing(&tt.listing)
			assert.Equal(t, tt.listing.Title, item.Product.Title)
			assert.Equal(t, tt.listing.Description, item.Product.Description)
			assert.Equal(t, tt.listing.ImageURLs, item.Product.ImageURLs)
			assert.Equal(t, tt.wantBrand, item.Product.Brand)
			assert.Equal(t, tt.wantAspects, item.Product.Aspects)
			assert.Equal(t, ebay.ConditionEnum(tt.listing.Condition), item.Condition)
			assert.Equal(t, 1, item.Availability.ShipToLocationAvailability.Quantity)
		})
	}
}

func TestOfferFromListing(t *testing.T) {
	t.Parallel()

	l := &domain.Listing{Title: "Jade plant", Description: "Succulent cutting", Price: 12.5}
	policies := ebay.ListingPolicies{
		FulfillmentPolicyID: "f-1",
		PaymentPolicyID:     "p-1",
		ReturnPolicyID:      "r-1",
	}

	offer := ebay.OfferFromListing(l, "sku-1", "EBAY_US", "165362", "loc-austin-78701", policies)

	assert.Equal(t, ebay.Offer{
		SKU:                 "sku-1",
		MarketplaceID:       "EBAY_US",
		Format:              "FIXED_PRICE",
		AvailableQuantity:   1,
		CategoryID:          "165362",
		ListingDescription:  "Succulent cutting",
		ListingPolicies:     policies,
		PricingSummary:      ebay.PricingSummary{Price: ebay.Amount{Value: "12.50", Currency: "USD"}},
		MerchantLocationKey: "loc-austin-78701",
	}, offer)
}

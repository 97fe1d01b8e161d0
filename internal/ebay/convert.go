package ebay

import (
	"fmt"
	"strings"

	domain "github.com/donaldgifford/flashlist/pkg/types"
)

const (
	offerFormat   = "FIXED_PRICE"
	offerCurrency = "USD"
	conditionNew  = "NEW"
)

// conditionEnums maps the free-form conditions users pick to Sell Inventory
// ConditionEnum values. Keys are lower-cased with spaces and dashes removed.
var conditionEnums = map[string]string{
	"new":                  conditionNew,
	"brandnew":             conditionNew,
	"likenew":              "LIKE_NEW",
	"openbox":              "LIKE_NEW",
	"excellent":            "USED_EXCELLENT",
	"usedexcellent":        "USED_EXCELLENT",
	"verygood":             "USED_VERY_GOOD",
	"usedverygood":         "USED_VERY_GOOD",
	"good":                 "USED_GOOD",
	"used":                 "USED_GOOD",
	"usedgood":             "USED_GOOD",
	"fair":                 "USED_ACCEPTABLE",
	"acceptable":           "USED_ACCEPTABLE",
	"usedacceptable":       "USED_ACCEPTABLE",
	"forparts":             "FOR_PARTS_OR_NOT_WORKING",
	"forpartsornotworking": "FOR_PARTS_OR_NOT_WORKING",
	"broken":               "FOR_PARTS_OR_NOT_WORKING",
}

// ConditionEnum maps a listing condition to an eBay ConditionEnum. Empty or
// unrecognized values map to NEW.
func ConditionEnum(condition string) string {
	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(condition))
	if enum, ok := conditionEnums[key]; ok {
		return enum
	}
	return conditionNew
}

// InventoryItemFromListing builds the inventory item payload for a listing.
// Every listing is a single unit.
func InventoryItemFromListing(l *domain.Listing) InventoryItem {
	item := InventoryItem{
		Product: Product{
			Title:       l.Title,
			Description: l.Description,
			ImageURLs:   l.ImageURLs,
		},
		Condition: ConditionEnum(l.Condition),
		Availability: Availability{
			ShipToLocationAvailability: ShipToLocation{Quantity: 1},
		},
	}
	if l.Brand != "" {
		item.Product.Brand = l.Brand
		item.Product.Aspects = map[string][]string{"Brand": {l.Brand}}
	}
	return item
}

// OfferFromListing builds the fixed-price offer payload for a listing.
func OfferFromListing(
	l *domain.Listing,
	sku, marketplaceID, categoryID, locationKey string,
	policies ListingPolicies,
) Offer {
	return Offer{
		SKU:                 sku,
		MarketplaceID:       marketplaceID,
		Format:              offerFormat,
		AvailableQuantity:   1,
		CategoryID:          categoryID,
		ListingDescription:  l.Description,
		ListingPolicies:     policies,
		PricingSummary:      PricingSummary{Price: Amount{Value: fmt.Sprintf("%.2f", l.Price), Currency: offerCurrency}},
		MerchantLocationKey: locationKey,
	}
}

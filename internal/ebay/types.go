package ebay

// --- Browse ---

// ItemSummary represents a single item from the Browse API search response.
type ItemSummary struct {
	ItemID          string         `json:"itemId"`
	Title           string         `json:"title"`
	Price           Amount         `json:"price"`
	ItemWebURL      string         `json:"itemWebUrl"`
	Condition       string         `json:"condition"`
	Categories      []ItemCategory `json:"categories,omitempty"`
	LeafCategoryIDs []string       `json:"leafCategoryIds,omitempty"`
}

// ItemCategory holds eBay category information.
type ItemCategory struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName,omitempty"`
}

// LeafCategoryID returns the item's leaf category, preferring the explicit
// leafCategoryIds field over the first categories entry.
func (i *ItemSummary) LeafCategoryID() string {
	if len(i.LeafCategoryIDs) > 0 && i.LeafCategoryIDs[0] != "" {
		return i.LeafCategoryIDs[0]
	}
	if len(i.Categories) > 0 {
		return i.Categories[0].CategoryID
	}
	return ""
}

// Amount holds monetary values.
type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// --- Sell Account: business policies ---

// CategoryType scopes a policy to listing categories.
type CategoryType struct {
	Name    string `json:"name"`
	Default bool   `json:"default,omitempty"`
}

// FulfillmentPolicy is a shipping policy.
type FulfillmentPolicy struct {
	FulfillmentPolicyID string           `json:"fulfillmentPolicyId,omitempty"`
	Name                string           `json:"name"`
	MarketplaceID       string           `json:"marketplaceId"`
	CategoryTypes       []CategoryType   `json:"categoryTypes,omitempty"`
	HandlingTime        *TimeDuration    `json:"handlingTime,omitempty"`
	ShippingOptions     []ShippingOption `json:"shippingOptions,omitempty"`
}

// ShippingOption holds shipping option details.
type ShippingOption struct {
	OptionType       string            `json:"optionType"` // DOMESTIC or INTERNATIONAL
	CostType         string            `json:"costType"`   // FLAT_RATE or CALCULATED
	ShippingServices []ShippingService `json:"shippingServices,omitempty"`
}

// ShippingService holds service details.
type ShippingService struct {
	SortOrder           int     `json:"sortOrder,omitempty"`
	ShippingCarrierCode string  `json:"shippingCarrierCode,omitempty"`
	ShippingServiceCode string  `json:"shippingServiceCode,omitempty"`
	ShippingCost        *Amount `json:"shippingCost,omitempty"`
	FreeShipping        bool    `json:"freeShipping,omitempty"`
}

// PaymentPolicy is a payment policy.
type PaymentPolicy struct {
	PaymentPolicyID string         `json:"paymentPolicyId,omitempty"`
	Name            string         `json:"name"`
	MarketplaceID   string         `json:"marketplaceId"`
	CategoryTypes   []CategoryType `json:"categoryTypes,omitempty"`
	ImmediatePay    bool           `json:"immediatePay,omitempty"`
}

// ReturnPolicy is a return policy.
type ReturnPolicy struct {
	ReturnPolicyID          string         `json:"returnPolicyId,omitempty"`
	Name                    string         `json:"name"`
	MarketplaceID           string         `json:"marketplaceId"`
	CategoryTypes           []CategoryType `json:"categoryTypes,omitempty"`
	ReturnsAccepted         bool           `json:"returnsAccepted"`
	ReturnPeriod            *TimeDuration  `json:"returnPeriod,omitempty"`
	ReturnShippingCostPayer string         `json:"returnShippingCostPayer,omitempty"`
}

// TimeDuration represents a time duration.
type TimeDuration struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"` // "DAY", "BUSINESS_DAY"
}

// --- Sell Inventory: locations ---

// InventoryLocation is a merchant location (ship-from origin).
type InventoryLocation struct {
	MerchantLocationKey    string       `json:"merchantLocationKey,omitempty"`
	Name                   string       `json:"name,omitempty"`
	Location               LocationInfo `json:"location"`
	LocationTypes          []string     `json:"locationTypes,omitempty"`
	MerchantLocationStatus string       `json:"merchantLocationStatus,omitempty"`
}

// LocationInfo wraps the location's postal address.
type LocationInfo struct {
	Address LocationAddress `json:"address"`
}

// LocationAddress is a postal address on an inventory location.
type LocationAddress struct {
	AddressLine1    string `json:"addressLine1,omitempty"`
	City            string `json:"city,omitempty"`
	StateOrProvince string `json:"stateOrProvince,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	Country         string `json:"country,omitempty"`
}

// --- Sell Inventory: items and offers ---

// InventoryItem represents an eBay inventory item.
type InventoryItem struct {
	Product      Product      `json:"product"`
	Condition    string       `json:"condition,omitempty"`
	Availability Availability `json:"availability"`
}

// Product holds product details.
type Product struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	ImageURLs   []string            `json:"imageUrls,omitempty"`
	Brand       string              `json:"brand,omitempty"`
	Aspects     map[string][]string `json:"aspects,omitempty"`
}

// Availability holds inventory availability.
type Availability struct {
	ShipToLocationAvailability ShipToLocation `json:"shipToLocationAvailability"`
}

// ShipToLocation holds quantity info.
type ShipToLocation struct {
	Quantity int `json:"quantity"`
}

// Offer represents an eBay listing offer.
type Offer struct {
	SKU                 string          `json:"sku"`
	MarketplaceID       string          `json:"marketplaceId"`
	Format              string          `json:"format"`
	AvailableQuantity   int             `json:"availableQuantity"`
	CategoryID          string          `json:"categoryId"`
	ListingDescription  string          `json:"listingDescription,omitempty"`
	ListingPolicies     ListingPolicies `json:"listingPolicies"`
	PricingSummary      PricingSummary  `json:"pricingSummary"`
	MerchantLocationKey string          `json:"merchantLocationKey"`
}

// PricingSummary holds pricing info.
type PricingSummary struct {
	Price Amount `json:"price"`
}

// ListingPolicies holds policy references.
type ListingPolicies struct {
	FulfillmentPolicyID string `json:"fulfillmentPolicyId"`
	PaymentPolicyID     string `json:"paymentPolicyId"`
	ReturnPolicyID      string `json:"returnPolicyId"`
}

// --- Taxonomy ---

// CategoryTree is a marketplace category hierarchy.
type CategoryTree struct {
	CategoryTreeID      string           `json:"categoryTreeId"`
	CategoryTreeVersion string           `json:"categoryTreeVersion"`
	RootCategoryNode    CategoryTreeNode `json:"rootCategoryNode"`
}

// CategoryTreeNode is one node of the category hierarchy.
type CategoryTreeNode struct {
	Category               TaxonomyCategory   `json:"category"`
	ChildCategoryTreeNodes []CategoryTreeNode `json:"childCategoryTreeNodes,omitempty"`
	LeafCategoryTreeNode   bool               `json:"leafCategoryTreeNode,omitempty"`
	CategoryTreeNodeLevel  int                `json:"categoryTreeNodeLevel"`
}

// TaxonomyCategory names a category.
type TaxonomyCategory struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// Leaves returns every leaf node's category, depth first.
func (t *CategoryTree) Leaves() []TaxonomyCategory {
	var out []TaxonomyCategory
	stack := []*CategoryTreeNode{&t.RootCategoryNode}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.LeafCategoryTreeNode {
			out = append(out, n.Category)
			continue
		}
		for i := len(n.ChildCategoryTreeNodes) - 1; i >= 0; i-- {
			stack = append(stack, &n.ChildCategoryTreeNodes[i])
		}
	}
	return out
}

// --- Identity ---

// IdentityUser is the eBay account behind a user access token.
type IdentityUser struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

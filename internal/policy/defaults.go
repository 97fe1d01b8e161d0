package policy

import "github.com/donaldgifford/flashlist/internal/ebay"

const allCategories = "ALL_EXCLUDING_MOTORS_VEHICLES"

// builtinLocation is created for sellers with no usable location when no
// other default is configured.
var builtinLocation = Location{
	Key:        "default-location",
	City:       "San Jose",
	State:      "CA",
	PostalCode: "95125",
	Country:    defaultCountry,
}

func defaultFulfillmentPolicy(marketplaceID string) ebay.FulfillmentPolicy {
	return ebay.FulfillmentPolicy{
		Name:          "FlashList Standard Shipping",
		MarketplaceID: marketplaceID,
		CategoryTypes: []ebay.CategoryType{{Name: allCategories}},
		HandlingTime:  &ebay.TimeDuration{Value: 1, Unit: "DAY"},
		ShippingOptions: []ebay.ShippingOption{{
			OptionType: "DOMESTIC",
			CostType:   "FLAT_RATE",
			ShippingServices: []ebay.ShippingService{{
				SortOrder:           1,
				ShippingCarrierCode: "USPS",
				ShippingServiceCode: "USPSPriority",
				ShippingCost:        &ebay.Amount{Value: "5.99", Currency: "USD"},
			}},
		}},
	}
}

func defaultPaymentPolicy(marketplaceID string) ebay.PaymentPolicy {
	return ebay.PaymentPolicy{
		Name:          "FlashList Managed Payments",
		MarketplaceID: marketplaceID,
		CategoryTypes: []ebay.CategoryType{{Name: allCategories}},
		ImmediatePay:  true,
	}
}

func defaultReturnPolicy(marketplaceID string) ebay.ReturnPolicy {
	return ebay.ReturnPolicy{
		Name:                    "FlashList 30 Day Returns",
		MarketplaceID:           marketplaceID,
		CategoryTypes:           []ebay.CategoryType{{Name: allCategories}},
		ReturnsAccepted:         true,
		ReturnPeriod:            &ebay.TimeDuration{Value: 30, Unit: "DAY"},
		ReturnShippingCostPayer: "BUYER",
	}
}

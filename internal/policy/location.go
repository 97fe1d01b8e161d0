package policy

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/donaldgifford/flashlist/internal/ebay"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

const defaultCountry = "US"

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// LocationKey derives the merchant location key for an address, for
// example "loc-san-jose-95112".
func LocationKey(addr domain.Address) string {
	city := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(addr.City), "-"), "-")
	postal := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(addr.PostalCode), "-"), "-")
	return "loc-" + city + "-" + postal
}

// location returns a merchant location key usable for an offer. Every
// returned location carries a postal code.
func (r *Resolver) location(ctx context.Context, token string, addr *domain.Address) (string, error) {
	if addr != nil && !addr.IsZero() {
		return r.addressLocation(ctx, token, *addr)
	}

	locs, err := r.api.ListLocations(ctx, token)
	if err != nil {
		r.log.Warn("listing merchant locations", "error", err)
	}
	for i := range locs {
		if locs[i].Location.Address.PostalCode != "" {
			return locs[i].MerchantLocationKey, nil
		}
	}

	def := r.defaultLocation
	err = r.createLocation(ctx, token, def.Key, domain.Address{
		City:       def.City,
		State:      def.State,
		PostalCode: def.PostalCode,
	}, def.Country)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoLocationAvailable, err)
	}
	return def.Key, nil
}

// addressLocation reuses a location matching addr exactly, ignoring case,
// or creates one under a key derived from the address.
func (r *Resolver) addressLocation(ctx context.Context, token string, addr domain.Address) (string, error) {
	if addr.PostalCode == "" {
		return "", fmt.Errorf("%w: address has no postal code", ErrNoLocationAvailable)
	}

	locs, err := r.api.ListLocations(ctx, token)
	if err != nil {
		r.log.Warn("listing merchant locations", "error", err)
	}
	for i := range locs {
		if matches(locs[i].Location.Address, addr) {
			return locs[i].MerchantLocationKey, nil
		}
	}

	key := LocationKey(addr)
	if err := r.createLocation(ctx, token, key, addr, defaultCountry); err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoLocationAvailable, err)
	}
	return key, nil
}

// createLocation registers a warehouse location. A conflict means a
// location with this key already exists, which is as good as creating it.
func (r *Resolver) createLocation(
	ctx context.Context,
	token, key string,
	addr domain.Address,
	country string,
) error {
	if country == "" {
		country = defaultCountry
	}
	loc := ebay.InventoryLocation{
		Name: key,
		Location: ebay.LocationInfo{Address: ebay.LocationAddress{
			City:            addr.City,
			StateOrProvince: addr.State,
			PostalCode:      addr.PostalCode,
			Country:         country,
		}},
		LocationTypes:          []string{"WAREHOUSE"},
		MerchantLocationStatus: "ENABLED",
	}

	err := r.api.CreateLocation(ctx, token, key, loc)
	if ebay.StatusCode(err) == http.StatusConflict {
		return nil
	}
	if err != nil {
		return fmt.Errorf("creating location %s: %w", key, err)
	}
	r.log.Info("created merchant location", "key", key, "postal_code", addr.PostalCode)
	return nil
}

func matches(have ebay.LocationAddress, want domain.Address) bool {
	return strings.EqualFold(strings.TrimSpace(have.City), strings.TrimSpace(want.City)) &&
		strings.EqualFold(strings.TrimSpace(have.PostalCode), strings.TrimSpace(want.PostalCode)) &&
		strings.EqualFold(strings.TrimSpace(have.StateOrProvince), strings.TrimSpace(want.State))
}

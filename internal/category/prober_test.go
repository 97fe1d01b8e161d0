package category_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flashlist/internal/category"
	"github.com/donaldgifford/flashlist/internal/ebay"
	ebayMocks "github.com/donaldgifford/flashlist/internal/ebay/mocks"
)

func probeSKU() any {
	return mock.MatchedBy(func(sku string) bool { return strings.HasPrefix(sku, "probe-") })
}

func newProber(api ebay.ListingAPI) *category.Prober {
	return category.NewProber(api, "EBAY_US",
		category.WithProbeRate(1000),
		category.WithProberLogger(quietLogger()),
	)
}

func TestProber_Probe(t *testing.T) {
	t.Parallel()

	api := ebayMocks.NewMockListingAPI(t)

	// 159912 is a parent category.
	api.EXPECT().CreateOrReplaceInventoryItem(mock.Anything, "tok", probeSKU(), mock.Anything).Return(nil).Twice()
	api.EXPECT().CreateOffer(mock.Anything, "tok", mock.MatchedBy(func(o ebay.Offer) bool {
		return o.CategoryID == "159912"
	})).Return("", &ebay.APIError{StatusCode: 400, Body: "The category is not a Leaf Category."}).Once()

	// 159913 accepts the offer, which is then removed.
	api.EXPECT().CreateOffer(mock.Anything, "tok", mock.MatchedBy(func(o ebay.Offer) bool {
		return o.CategoryID == "159913" && o.MarketplaceID == "EBAY_US"
	})).Return("offer-1", nil).Once()
	api.EXPECT().DeleteOffer(mock.Anything, "tok", "offer-1").Return(nil).Once()

	api.EXPECT().DeleteInventoryItem(mock.Anything, "tok", probeSKU()).Return(nil).Twice()

	results, err := newProber(api).Probe(context.Background(), "tok", []string{"159912", "159913"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, category.VerdictNotLeaf, results[0].Verdict)
	assert.Equal(t, category.VerdictLeaf, results[1].Verdict)

	id, ok := category.FirstLeaf(results)
	assert.True(t, ok)
	assert.Equal(t, "159913", id)
}

func TestProber_Unknown(t *testing.T) {
	t.Parallel()

	t.Run("offer error", func(t *testing.T) {
		t.Parallel()

		api := ebayMocks.NewMockListingAPI(t)
		api.EXPECT().CreateOrReplaceInventoryItem(mock.Anything, "tok", probeSKU(), mock.Anything).Return(nil).Once()
		api.EXPECT().CreateOffer(mock.Anything, "tok", mock.Anything).
			Return("", errors.New("status 500: system error")).Once()
		api.EXPECT().DeleteInventoryItem(mock.Anything, "tok", probeSKU()).Return(nil).Once()

		results, err := newProber(api).Probe(context.Background(), "tok", []string{"159914"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, category.VerdictUnknown, results[0].Verdict)
		assert.Contains(t, results[0].Detail, "system error")

		_, ok := category.FirstLeaf(results)
		assert.False(t, ok)
	})

	t.Run("item error skips cleanup", func(t *testing.T) {
		t.Parallel()

		api := ebayMocks.NewMockListingAPI(t)
		api.EXPECT().CreateOrReplaceInventoryItem(mock.Anything, "tok", probeSKU(), mock.Anything).
			Return(errors.New("status 401")).Once()

		results, err := newProber(api).Probe(context.Background(), "tok", []string{"159914"})
		require.NoError(t, err)
		assert.Equal(t, category.VerdictUnknown, results[0].Verdict)
	})

	t.Run("cleanup failure does not change verdict", func(t *testing.T) {
		t.Parallel()

		api := ebayMocks.NewMockListingAPI(t)
		api.EXPECT().CreateOrReplaceInventoryItem(mock.Anything, "tok", probeSKU(), mock.Anything).Return(nil).Once()
		api.EXPECT().CreateOffer(mock.Anything, "tok", mock.Anything).Return("offer-2", nil).Once()
		api.EXPECT().DeleteOffer(mock.Anything, "tok", "offer-2").Return(errors.New("gone")).Once()
		api.EXPECT().DeleteInventoryItem(mock.Anything, "tok", probeSKU()).Return(errors.New("gone")).Once()

		results, err := newProber(api).Probe(context.Background(), "tok", []string{"159915"})
		require.NoError(t, err)
		assert.Equal(t, category.VerdictLeaf, results[0].Verdict)
	})
}

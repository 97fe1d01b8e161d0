package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flashlist/internal/category"
	"github.com/donaldgifford/flashlist/internal/ebay"
	ebayMocks "github.com/donaldgifford/flashlist/internal/ebay/mocks"
	engineMocks "github.com/donaldgifford/flashlist/internal/engine/mocks"
	"github.com/donaldgifford/flashlist/internal/policy"
	"github.com/donaldgifford/flashlist/internal/tokens"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

const baseDelay = 10 * time.Millisecond

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// instantTimer fires immediately and records every requested delay.
type instantTimer struct {
	delays []time.Duration
	c      chan time.Time
}

func (t *instantTimer) Start(d time.Duration) {
	t.delays = append(t.delays, d)
	t.c = make(chan time.Time, 1)
	t.c <- time.Now()
}

func (t *instantTimer) Stop() {}

func (t *instantTimer) C() <-chan time.Time {
	return t.c
}

type publisherDeps struct {
	tokens     *engineMocks.MockTokenSource
	policies   *engineMocks.MockPolicyEnsurer
	categories *engineMocks.MockCategoryResolver
	api        *ebayMocks.MockListingAPI
	timer      *instantTimer
}

func newTestPublisher(t *testing.T) (*EbayPublisher, *publisherDeps) {
	t.Helper()
	d := &publisherDeps{
		tokens:     engineMocks.NewMockTokenSource(t),
		policies:   engineMocks.NewMockPolicyEnsurer(t),
		categories: engineMocks.NewMockCategoryResolver(t),
		api:        ebayMocks.NewMockListingAPI(t),
		timer:      &instantTimer{},
	}
	p := NewEbayPublisher(d.tokens, d.policies, d.categories, d.api,
		WithRetry(3, baseDelay),
		WithPublisherLogger(quietLogger()),
	)
	p.timer = d.timer
	p.newSKU = func() string { return "fl-test" }
	return p, d
}

func validListing() *domain.Listing {
	return &domain.Listing{
		ID:           "listing-1",
		OwnerID:      "user-1",
		Title:        "Succulent in pot",
		Description:  "Hardy echeveria in a four inch terracotta pot",
		Condition:    "new",
		ImageURLs:    []string{"https://img.example.com/1.jpg"},
		Price:        12.5,
		Marketplaces: []domain.Marketplace{domain.MarketplaceEbay},
	}
}

func resolved() *policy.Resolved {
	return &policy.Resolved{
		FulfillmentPolicyID: "f-1",
		PaymentPolicyID:     "p-1",
		ReturnPolicyID:      "r-1",
		LocationKey:         "loc-1",
	}
}

// expectThroughPolicies sets up a valid token and complete policies.
func expectThroughPolicies(d *publisherDeps) {
	d.tokens.EXPECT().ValidToken(mock.Anything, "user-1").Return("tok", nil).Once()
	d.policies.EXPECT().Ensure(mock.Anything, "user-1", "tok", (*domain.Address)(nil)).Return(resolved(), nil).Once()
}

func expectCategory(d *publisherDeps) {
	d.categories.EXPECT().Resolve(mock.Anything, "Succulent in pot", mock.Anything, "tok").
		Return(category.Resolution{CategoryID: "165362", Source: category.SourcePlant}).Once()
}

func serverError() error {
	return &ebay.APIError{StatusCode: http.StatusInternalServerError, Body: "system error"}
}

func TestPublish_Success(t *testing.T) {
	t.Parallel()

	p, d := newTestPublisher(t)
	expectThroughPolicies(d)
	expectCategory(d)

	d.api.EXPECT().CreateOrReplaceInventoryItem(mock.Anything, "tok", "fl-test", mock.MatchedBy(func(it ebay.InventoryItem) bool {
		return it.Product.Title == "Succulent in pot" && it.Condition == "NEW"
	})).Return(nil).Once()
	d.api.EXPECT().CreateOffer(mock.Anything, "tok", mock.MatchedBy(func(o ebay.Offer) bool {
		return o.SKU == "fl-test" &&
			o.CategoryID == "165362" &&
			o.MerchantLocationKey == "loc-1" &&
			o.ListingPolicies == ebay.ListingPolicies{
				FulfillmentPolicyID: "f-1",
				PaymentPolicyID:     "p-1",
				ReturnPolicyID:      "r-1",
			} &&
			o.PricingSummary.Price.Value == "12.50"
	})).Return("offer-1", nil).Once()
	d.api.EXPECT().PublishOffer(mock.Anything, "tok", "offer-1").Return("item-1", nil).Once()

	res, err := p.Publish(context.Background(), validListing())
	require.NoError(t, err)

	assert.Equal(t, &Result{
		ItemID:         "item-1",
		SKU:            "fl-test",
		OfferID:        "offer-1",
		CategoryID:     "165362",
		CategorySource: category.SourcePlant,
	}, res)
	assert.Empty(t, d.timer.delays)
}

func TestPublish_ValidationMakesNoRemoteCalls(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*domain.Listing)
		problem string
	}{
		{name: "no images", mutate: func(l *domain.Listing) { l.ImageURLs = nil }, problem: "image"},
		{name: "blank image", mutate: func(l *domain.Listing) { l.ImageURLs = []string{" "} }, problem: "image"},
		{name: "zero price", mutate: func(l *domain.Listing) { l.Price = 0 }, problem: "price"},
		{name: "negative price", mutate: func(l *domain.Listing) { l.Price = -3 }, problem: "price"},
		{name: "blank title", mutate: func(l *domain.Listing) { l.Title = "  " }, problem: "title"},
		{name: "no description", mutate: func(l *domain.Listing) { l.Description = "" }, problem: "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// No expectations: any token, policy, category or API call fails the test.
			p, _ := newTestPublisher(t)

			l := validListing()
			tt.mutate(l)

			_, err := p.Publish(context.Background(), l)
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Problems, 1)
			assert.Contains(t, verr.Problems[0], tt.problem)
		})
	}
}

func TestPublish_NotAuthenticated(t *testing.T) {
	t.Parallel()

	p, d := newTestPublisher(t)
	d.tokens.EXPECT().ValidToken(mock.Anything, "user-1").Return("", tokens.ErrNotConnected).Once()

	_, err := p.Publish(context.Background(), validListing())
	require.ErrorIs(t, err, ErrNotAuthenticated)
	require.ErrorIs(t, err, tokens.ErrNotAuthenticated)
	assert.NotErrorIs(t, err, ErrRemoteRejected)
}

func TestPublish_PolicyIncomplete(t *testing.T) {
	t.Parallel()

	p, d := newTestPublisher(t)
	d.tokens.EXPECT().ValidToken(mock.Anything, "user-1").Return("tok", nil).Once()
	d.policies.EXPECT().Ensure(mock.Anything, "user-1", "tok", (*domain.Address)(nil)).
		Return(nil, &policy.IncompleteError{Missing: []string{policy.KindPayment, policy.KindLocation}}).Once()

	_, err := p.Publish(context.Background(), validListing())
	require.ErrorIs(t, err, ErrPolicyIncomplete)

	var inc *policy.IncompleteError
	require.ErrorAs(t, err, &inc)
	assert.Equal(t, []string{policy.KindPayment, policy.KindLocation}, inc.Missing)
}

func TestPublish_PolicyStoreFailure(t *testing.T) {
	t.Parallel()

	p, d := newTestPublisher(t)
	d.tokens.EXPECT().ValidToken(mock.Anything, "user-1").Return("tok", nil).Once()
	d.policies.EXPECT().Ensure(mock.Anything, "user-1", "tok", (*domain.Address)(nil)).
		Return(nil, errors.New("loading credential: connection refused")).Once()

	_, err := p.Publish(context.Background(), validListing())
	require.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrPolicyIncomplete)
	assert.NotErrorIs(t, err, ErrRemoteRejected)
	assert.Equal(t, "internal", outcome(err))
}

func TestPublish_InventoryTransientExhaustsThreeAttempts(t *testing.T) {
	t.Parallel()

	p, d := newTestPublisher(t)
	expectThroughPolicies(d)
	d.api.EXPECT().CreateOrReplaceInventoryItem(mock.Anything, "tok", "fl-test", mock.Anything).
		Return(serverError()).Times(3)

	_, err := p.Publish(context.Background(), validListing())
	require.ErrorIs(t, err, ErrRemoteRejected)

	var rerr *RemoteError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, StepInventoryItem, rerr.Step)
	assert.Equal(t, http.StatusInternalServerError, ebay.StatusCode(err))

	require.Len(t, d.timer.delays, 2, "three attempts sleep twice")
	assert.Equal(t, []time.Duration{baseDelay, 2 * baseDelay}, d.timer.delays)
	assert.Greater(t, d.timer.delays[1], d.timer.delays[0])
}

func TestPublish_InventoryRecoversAfterTransient(t *testing.T) {
	t.Parallel()

	p, d := newTestPublisher(t)
	expectThroughPolicies(d)
	expectCategory(d)

	d.api.EXPECT().CreateOrReplaceInventoryItem(mock.Anything, "tok", "fl-test", mock.Anything).
		Return(fmt.Errorf("%w: connection reset by peer", ebay.ErrTransport)).Once()
	d.api.EXPECT().CreateOrReplaceInventoryItem(mock.Anything, "tok", "fl-test", mock.Anything).
		Return(nil).Once()
	d.api.EXPECT().CreateOffer(mock.Anything, "tok", mock.Anything).Return("offer-1", nil).Once()
	d.api.EXPECT().PublishOffer(mock.Anything, "tok", "offer-1").Return("item-1", nil).Once()

	res, err := p.Publish(context.Background(), validListing())
	require.NoError(t, err)
	assert.Equal(t, "item-1", res.ItemID)
	assert.Equal(t, []time.Duration{baseDelay}, d.timer.delays)
}

func TestPublish_ClientErrorNotRetried(t *testing.T) {
	t.Parallel()

	p, d := newTestPublisher(t)
	expectThroughPolicies(d)
	d.api.EXPECT().CreateOrReplaceInventoryItem(mock.Anything, "tok", "fl-test", mock.Anything).
		Return(&ebay.APIError{StatusCode: http.StatusBadRequest, Body: "invalid condition"}).Once()

	_, err := p.Publish(context.Background(), validListing())
	require.ErrorIs(t, err, ErrRemoteRejected)
	assert.Equal(t, http.StatusBadRequest, ebay.StatusCode(err))
	assert.Empty(t, d.timer.delays)
}

func TestPublish_OfferRetried(t *testing.T) {
	t.Parallel()

	p, d := newTestPublisher(t)
	expectThroughPolicies(d)
	expectCategory(d)
	d.api.EXPECT().CreateOrReplaceInventoryItem(mock.Anything, "tok", "fl-test", mock.Anything).Return(nil).Once()
	d.api.EXPECT().CreateOffer(mock.Anything, "tok", mock.Anything).Return("", serverError()).Times(3)

	_, err := p.Publish(context.Background(), validListing())

	var rerr *RemoteError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, StepOffer, rerr.Step)
	assert.Equal(t, []time.Duration{baseDelay, 2 * baseDelay}, d.timer.delays)
}

func TestPublish_PublishNotRetried(t *testing.T) {
	t.Parallel()

	p, d := newTestPublisher(t)
	expectThroughPolicies(d)
	expectCategory(d)
	d.api.EXPECT().CreateOrReplaceInventoryItem(mock.Anything, "tok", "fl-test", mock.Anything).Return(nil).Once()
	d.api.EXPECT().CreateOffer(mock.Anything, "tok", mock.Anything).Return("offer-1", nil).Once()
	d.api.EXPECT().PublishOffer(mock.Anything, "tok", "offer-1").Return("", serverError()).Once()

	_, err := p.Publish(context.Background(), validListing())

	var rerr *RemoteError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, StepPublish, rerr.Step)
	assert.Empty(t, d.timer.delays)
}

func TestPublish_AddressPassedToPolicies(t *testing.T) {
	t.Parallel()

	p, d := newTestPublisher(t)
	l := validListing()
	l.Address = &domain.Address{City: "Austin", PostalCode: "78701", State: "TX"}

	d.tokens.EXPECT().ValidToken(mock.Anything, "user-1").Return("tok", nil).Once()
	d.policies.EXPECT().Ensure(mock.Anything, "user-1", "tok", l.Address).
		Return(nil, &policy.IncompleteError{Missing: []string{policy.KindLocation}}).Once()

	_, err := p.Publish(context.Background(), l)
	require.ErrorIs(t, err, ErrPolicyIncomplete)
}

func TestBackoffDelaysDouble(t *testing.T) {
	t.Parallel()

	p, d := newTestPublisher(t)
	p.maxAttempts = 4

	attempts := 0
	err := p.step(context.Background(), StepInventoryItem, true, func(context.Context) error {
		attempts++
		return serverError()
	})
	require.ErrorIs(t, err, ErrRemoteRejected)
	assert.Equal(t, 4, attempts)
	assert.Equal(t, []time.Duration{baseDelay, 2 * baseDelay, 4 * baseDelay}, d.timer.delays)
}

func TestBackoffStopsOnCancel(t *testing.T) {
	t.Parallel()

	p, _ := newTestPublisher(t)
	p.timer = nil

	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	err := p.step(ctx, StepOffer, true, func(context.Context) error {
		attempts++
		cancel()
		return serverError()
	})
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: "posted"},
		{err: &ValidationError{Problems: []string{"x"}}, want: "validation"},
		{err: fmt.Errorf("%w: %w", ErrNotAuthenticated, tokens.ErrRefreshFailed), want: "not_authenticated"},
		{err: fmt.Errorf("%w: x", ErrPolicyIncomplete), want: "policy_incomplete"},
		{err: &RemoteError{Step: StepOffer, Err: serverError()}, want: "remote_rejected"},
		{err: fmt.Errorf("%w: boom", ErrInternal), want: "internal"},
		{err: errors.New("boom"), want: "error"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, outcome(tt.err))
	}
}

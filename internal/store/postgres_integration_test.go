//go:build integration

package store_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/flashlist/internal/store"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

func setupPostgres(t *testing.T, opts ...store.PostgresOption) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("flashlist_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr, opts...)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testListing(owner string) *domain.Listing {
	l := &domain.Listing{
		OwnerID:      owner,
		Title:        "Vintage Pyrex mixing bowl set",
		Description:  "Four nesting bowls, no chips.",
		Category:     "Kitchen",
		Brand:        "Pyrex",
		Condition:    "used",
		Tags:         []string{"kitchen", "vintage"},
		ImageURLs:    []string{"https://img.example.com/a.jpg"},
		Price:        42.5,
		Address:      &domain.Address{City: "Portland", PostalCode: "97201", State: "OR"},
		Marketplaces: []domain.Marketplace{domain.MarketplaceEbay, domain.MarketplaceMercari},
	}
	l.InitStatuses()
	return l
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrateIdempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore_ListingLifecycle(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	l := testListing("user-1")
	require.NoError(t, s.CreateListing(ctx, l))
	require.NotEmpty(t, l.ID)
	assert.False(t, l.CreatedAt.IsZero())

	got, err := s.GetListing(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.Title, got.Title)
	assert.Equal(t, l.Tags, got.Tags)
	assert.Equal(t, l.Marketplaces, got.Marketplaces)
	assert.Equal(t, domain.StatusPending, got.MarketplaceStatus[domain.MarketplaceEbay])
	require.NotNil(t, got.Address)
	assert.Equal(t, "97201", got.Address.PostalCode)
	assert.InDelta(t, 42.5, got.Price, 0.001)

	got.SetStatus(domain.MarketplaceEbay, domain.StatusPosted)
	got.EbayItemID = "110551234567"
	got.EbaySKU = "FL-" + got.ID
	got.EbayOfferID = "offer-1"
	got.Category = "Kitchen > Bowls"
	require.NoError(t, s.UpdatePublishState(ctx, got))

	byItem, err := s.GetListingByEbayItemID(ctx, "110551234567")
	require.NoError(t, err)
	assert.Equal(t, l.ID, byItem.ID)
	assert.Equal(t, domain.StatusPosted, byItem.MarketplaceStatus[domain.MarketplaceEbay])
	assert.Equal(t, "offer-1", byItem.EbayOfferID)
	assert.Equal(t, "Kitchen > Bowls", byItem.Category)

	require.NoError(t, s.DeleteListing(ctx, l.ID))
	_, err = s.GetListing(ctx, l.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, s.DeleteListing(ctx, l.ID), store.ErrNotFound)
}

func TestPostgresStore_ListingWithoutAddress(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	l := testListing("user-1")
	l.Address = nil
	l.Tags = nil
	require.NoError(t, s.CreateListing(ctx, l))

	got, err := s.GetListing(ctx, l.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Address)
	assert.Empty(t, got.Tags)
	assert.Empty(t, got.EbayItemID)
}

func TestPostgresStore_ListListings(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	a := testListing("user-1")
	a.Price = 10
	b := testListing("user-1")
	b.Price = 30
	b.Marketplaces = []domain.Marketplace{domain.MarketplaceMercari}
	b.InitStatuses()
	c := testListing("user-2")
	for _, l := range []*domain.Listing{a, b, c} {
		require.NoError(t, s.CreateListing(ctx, l))
	}

	a.SetStatus(domain.MarketplaceEbay, domain.StatusFailed)
	require.NoError(t, s.UpdatePublishState(ctx, a))

	ebay := string(domain.MarketplaceEbay)
	failed := string(domain.StatusFailed)

	tests := []struct {
		name      string
		query     store.ListingQuery
		wantTotal int
		wantFirst string
	}{
		{name: "owner only", query: store.ListingQuery{OwnerID: "user-1", OrderBy: "price"}, wantTotal: 2, wantFirst: a.ID},
		{name: "by marketplace", query: store.ListingQuery{OwnerID: "user-1", Marketplace: &ebay}, wantTotal: 1, wantFirst: a.ID},
		{name: "by status anywhere", query: store.ListingQuery{OwnerID: "user-1", Status: &failed}, wantTotal: 1, wantFirst: a.ID},
		{name: "status on marketplace", query: store.ListingQuery{Marketplace: &ebay, Status: &failed}, wantTotal: 1, wantFirst: a.ID},
		{name: "other owner", query: store.ListingQuery{OwnerID: "user-2"}, wantTotal: 1, wantFirst: c.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listings, total, err := s.ListListings(ctx, &tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)
			require.NotEmpty(t, listings)
			assert.Equal(t, tt.wantFirst, listings[0].ID)
		})
	}
}

func TestPostgresStore_ClaimPublish(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	l := testListing("user-1")
	require.NoError(t, s.CreateListing(ctx, l))

	recent := time.Now().Add(-time.Hour)
	require.ErrorIs(t, s.ClaimPublish(ctx, l.ID, domain.MarketplaceEbay, recent), store.ErrConflict,
		"fresh pending attempt is still running")

	l.SetStatus(domain.MarketplaceEbay, domain.StatusFailed)
	require.NoError(t, s.UpdatePublishState(ctx, l))

	const callers = 8
	var wins, conflicts atomic.Int32
	var wg sync.WaitGroup
	wg.Add(callers)
	for range callers {
		go func() {
			defer wg.Done()
			err := s.ClaimPublish(ctx, l.ID, domain.MarketplaceEbay, recent)
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, store.ErrConflict):
				conflicts.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(callers-1), conflicts.Load())

	got, err := s.GetListing(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.MarketplaceStatus[domain.MarketplaceEbay])
	assert.Equal(t, domain.StatusPending, got.MarketplaceStatus[domain.MarketplaceMercari])

	// A pending attempt older than the cutoff counts as abandoned.
	require.NoError(t, s.ClaimPublish(ctx, l.ID, domain.MarketplaceEbay, time.Now().Add(time.Hour)))

	require.ErrorIs(t, s.ClaimPublish(ctx, l.ID, domain.MarketplacePoshmark, time.Now().Add(time.Hour)),
		store.ErrConflict, "untargeted marketplace")
}

func TestPostgresStore_UpdateListing(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	l := testListing("user-1")
	require.NoError(t, s.CreateListing(ctx, l))

	stale := *l

	l.Title = "Pyrex bowls, set of four"
	l.Price = 55
	l.Retarget([]domain.Marketplace{domain.MarketplaceEbay, domain.MarketplacePoshmark})
	require.NoError(t, s.UpdateListing(ctx, l))

	got, err := s.GetListing(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pyrex bowls, set of four", got.Title)
	assert.InDelta(t, 55, got.Price, 0.001)
	assert.Equal(t, []domain.Marketplace{domain.MarketplaceEbay, domain.MarketplacePoshmark}, got.Marketplaces)
	assert.NotContains(t, got.MarketplaceStatus, domain.MarketplaceMercari)
	assert.True(t, got.StatusConsistent())

	stale.Title = "lost update"
	require.ErrorIs(t, s.UpdateListing(ctx, &stale), store.ErrConflict)
}

func TestPostgresStore_ListingStats(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	for i, cat := range []string{"165362", "165362", "220", ""} {
		l := testListing("user-1")
		l.Category = cat
		require.NoError(t, s.CreateListing(ctx, l))
		if i == 0 {
			l.SetStatus(domain.MarketplaceEbay, domain.StatusPosted)
			require.NoError(t, s.UpdatePublishState(ctx, l))
		}
	}
	require.NoError(t, s.CreateListing(ctx, testListing("user-2")))

	st, err := s.ListingStats(ctx, "user-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 4, st.Total)
	assert.Equal(t, 1, st.ByStatus[domain.StatusPosted])
	assert.Equal(t, 7, st.ByStatus[domain.StatusPending])
	assert.Equal(t, []store.CategoryCount{{Category: "165362", Count: 2}}, st.TopCategories)
}

func TestPostgresStore_CredentialLifecycle(t *testing.T) {
	key := bytes.Repeat([]byte{9}, 32)
	sealer, err := store.NewTokenSealer(key)
	require.NoError(t, err)

	s := setupPostgres(t, store.WithTokenSealer(sealer))
	ctx := context.Background()

	_, err = s.GetCredential(ctx, "user-1", domain.MarketplaceEbay)
	require.ErrorIs(t, err, store.ErrNotFound)

	expires := time.Now().Add(2 * time.Hour).Truncate(time.Microsecond)
	c := &domain.Credential{
		UserID:         "user-1",
		Marketplace:    domain.MarketplaceEbay,
		ExternalUserID: "ebay-user-abc",
		AccessToken:    "access-1",
		RefreshToken:   "refresh-1",
		ExpiresAt:      expires,
	}
	require.NoError(t, s.UpsertCredential(ctx, c))
	require.NotEmpty(t, c.ID)

	got, err := s.GetCredential(ctx, "user-1", domain.MarketplaceEbay)
	require.NoError(t, err)
	assert.Equal(t, "access-1", got.AccessToken)
	assert.Equal(t, "refresh-1", got.RefreshToken)
	assert.True(t, expires.Equal(got.ExpiresAt))

	got.FulfillmentPolicyID = "f-1"
	got.PaymentPolicyID = "p-1"
	got.ReturnPolicyID = "r-1"
	require.NoError(t, s.UpdateCredentialPolicies(ctx, got))

	got.AccessToken = "access-2"
	got.ExpiresAt = expires.Add(time.Hour)
	require.NoError(t, s.UpdateCredentialTokens(ctx, got))

	// Reconnecting replaces tokens but keeps the policy ids.
	c.AccessToken = "access-3"
	c.RefreshToken = "refresh-3"
	c.ExternalUserID = ""
	require.NoError(t, s.UpsertCredential(ctx, c))

	byExt, err := s.GetCredentialByExternalUser(ctx, domain.MarketplaceEbay, "ebay-user-abc")
	require.NoError(t, err)
	assert.Equal(t, "user-1", byExt.UserID)
	assert.Equal(t, "access-3", byExt.AccessToken)
	assert.Equal(t, "f-1", byExt.FulfillmentPolicyID)
	assert.Equal(t, "r-1", byExt.ReturnPolicyID)

	require.NoError(t, s.DeleteCredential(ctx, "user-1", domain.MarketplaceEbay))
	require.NoError(t, s.DeleteCredential(ctx, "user-1", domain.MarketplaceEbay))
	_, err = s.GetCredential(ctx, "user-1", domain.MarketplaceEbay)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresStore_UpdateMissingCredential(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	c := &domain.Credential{UserID: "ghost", Marketplace: domain.MarketplaceEbay}
	require.ErrorIs(t, s.UpdateCredentialTokens(ctx, c), store.ErrNotFound)
	require.ErrorIs(t, s.UpdateCredentialPolicies(ctx, c), store.ErrNotFound)
}

func TestPostgresStore_CategoryCache(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	_, err := s.GetCategoryCache(ctx, "ebay:EBAY_US")
	require.ErrorIs(t, err, store.ErrNotFound)

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := &domain.CategoryCache{
		Key:         "ebay:EBAY_US",
		Entries:     map[string]string{"mixing bowls": "20654"},
		Source:      domain.CategorySourceRemote,
		RefreshedAt: now,
	}
	require.NoError(t, s.SaveCategoryCache(ctx, c))

	c.Entries["teapots"] = "20657"
	c.Source = domain.CategorySourceFallback
	require.NoError(t, s.SaveCategoryCache(ctx, c))

	got, err := s.GetCategoryCache(ctx, "ebay:EBAY_US")
	require.NoError(t, err)
	assert.Equal(t, "20657", got.Entries["teapots"])
	assert.Equal(t, domain.CategorySourceFallback, got.Source)
	assert.True(t, now.Equal(got.RefreshedAt))
}

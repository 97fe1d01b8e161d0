package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flashlist/internal/notify"
	notifyMocks "github.com/donaldgifford/flashlist/internal/notify/mocks"
	"github.com/donaldgifford/flashlist/internal/store"
	storeMocks "github.com/donaldgifford/flashlist/internal/store/mocks"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

var fixedNow = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

// stubPublisher returns a canned result and records whether the context it
// saw was still live.
type stubPublisher struct {
	m         domain.Marketplace
	res       *Result
	err       error
	calls     atomic.Int32
	ctxLive   atomic.Bool
	statusObs domain.Status
}

func (s *stubPublisher) Marketplace() domain.Marketplace { return s.m }

func (s *stubPublisher) Publish(ctx context.Context, l *domain.Listing) (*Result, error) {
	s.calls.Add(1)
	s.ctxLive.Store(ctx.Err() == nil)
	s.statusObs = l.MarketplaceStatus[s.m]
	return s.res, s.err
}

func posted() *stubPublisher {
	return &stubPublisher{
		m:   domain.MarketplaceEbay,
		res: &Result{ItemID: "item-1", SKU: "fl-1", OfferID: "offer-1"},
	}
}

func newTestEngine(s store.ListingStore, n notify.Notifier, pubs ...Publisher) *Engine {
	opts := []Option{
		WithLogger(quietLogger()),
		WithNowFunc(func() time.Time { return fixedNow }),
	}
	if n != nil {
		opts = append(opts, WithNotifier(n))
	}
	for _, p := range pubs {
		opts = append(opts, WithPublisher(p))
	}
	return NewEngine(s, opts...)
}

func newListing(targets ...domain.Marketplace) *domain.Listing {
	l := validListing()
	l.ID = ""
	l.Marketplaces = targets
	return l
}

func TestNewEngine_Defaults(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockListingStore(t)
	eng := NewEngine(ms)

	assert.NotNil(t, eng.log)
	assert.NotNil(t, eng.notifier)
	assert.Empty(t, eng.publishers)
}

func TestCreateListing_Posted(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockListingStore(t)
	pub := posted()

	ms.EXPECT().CreateListing(mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
		return l.ID != "" &&
			l.CreatedAt.Equal(fixedNow) &&
			l.StatusConsistent() &&
			l.MarketplaceStatus[domain.MarketplaceEbay] == domain.StatusPending &&
			l.MarketplaceStatus[domain.MarketplaceMercari] == domain.StatusPending
	})).Return(nil).Once()
	ms.EXPECT().UpdatePublishState(mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
		return l.StatusConsistent() &&
			l.MarketplaceStatus[domain.MarketplaceEbay] == domain.StatusPosted &&
			l.MarketplaceStatus[domain.MarketplaceMercari] == domain.StatusPending &&
			l.EbayItemID == "item-1" && l.EbaySKU == "fl-1" && l.EbayOfferID == "offer-1"
	})).Return(nil).Once()

	eng := newTestEngine(ms, nil, pub)
	l := newListing(domain.MarketplaceEbay, domain.MarketplaceMercari)

	reports, err := eng.CreateListing(context.Background(), l)
	require.NoError(t, err)

	assert.Equal(t, []Report{
		{Marketplace: domain.MarketplaceEbay, Status: domain.StatusPosted},
		{Marketplace: domain.MarketplaceMercari, Status: domain.StatusPending},
	}, reports)
	assert.Equal(t, int32(1), pub.calls.Load())
	assert.Equal(t, domain.StatusPending, pub.statusObs, "publisher runs after the pending save")
	assert.True(t, l.StatusConsistent())
}

func TestCreateListing_PublishFailureIsRecorded(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockListingStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	pub := &stubPublisher{
		m:   domain.MarketplaceEbay,
		err: &RemoteError{Step: StepOffer, Err: errors.New("status 500")},
	}

	ms.EXPECT().CreateListing(mock.Anything, mock.Anything).Return(nil).Once()
	ms.EXPECT().UpdatePublishState(mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
		return l.MarketplaceStatus[domain.MarketplaceEbay] == domain.StatusFailed && l.EbayItemID == ""
	})).Return(nil).Once()
	mn.EXPECT().SendPublishFailure(mock.Anything, mock.MatchedBy(func(f *notify.PublishFailure) bool {
		return f.Marketplace == "ebay" && f.Reason == "remote_rejected" && f.Title == "Succulent in pot"
	})).Return(nil).Once()

	eng := newTestEngine(ms, mn, pub)
	reports, err := eng.CreateListing(context.Background(), newListing(domain.MarketplaceEbay))
	require.NoError(t, err, "publish failure never fails creation")

	require.Len(t, reports, 1)
	assert.Equal(t, domain.StatusFailed, reports[0].Status)
	assert.Contains(t, reports[0].Error, "marketplace rejected offer")
}

func TestCreateListing_NotifierFailureIgnored(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockListingStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	pub := &stubPublisher{m: domain.MarketplaceEbay, err: ErrNotAuthenticated}

	ms.EXPECT().CreateListing(mock.Anything, mock.Anything).Return(nil).Once()
	ms.EXPECT().UpdatePublishState(mock.Anything, mock.Anything).Return(nil).Once()
	mn.EXPECT().SendPublishFailure(mock.Anything, mock.Anything).Return(errors.New("discord down")).Once()

	reports, err := newTestEngine(ms, mn, pub).CreateListing(context.Background(), newListing(domain.MarketplaceEbay))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, reports[0].Status)
}

func TestCreateListing_StateWriteFailureLogged(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockListingStore(t)
	ms.EXPECT().CreateListing(mock.Anything, mock.Anything).Return(nil).Once()
	ms.EXPECT().UpdatePublishState(mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	reports, err := newTestEngine(ms, nil, posted()).CreateListing(context.Background(), newListing(domain.MarketplaceEbay))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPosted, reports[0].Status)
}

func TestCreateListing_SaveFails(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockListingStore(t)
	pub := posted()
	ms.EXPECT().CreateListing(mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

	_, err := newTestEngine(ms, nil, pub).CreateListing(context.Background(), newListing(domain.MarketplaceEbay))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving listing")
	assert.Zero(t, pub.calls.Load())
}

func TestCreateListing_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*domain.Listing)
		wantErr error
	}{
		{name: "no title", mutate: func(l *domain.Listing) { l.Title = "" }, wantErr: ErrValidation},
		{name: "no owner", mutate: func(l *domain.Listing) { l.OwnerID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockListingStore(t)
			l := newListing(domain.MarketplaceEbay)
			tt.mutate(l)

			_, err := newTestEngine(ms, nil, posted()).CreateListing(context.Background(), l)
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCreateListing_PublishesAfterCancel(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockListingStore(t)
	pub := posted()
	ms.EXPECT().CreateListing(mock.Anything, mock.Anything).Return(nil).Once()
	ms.EXPECT().UpdatePublishState(mock.Anything, mock.Anything).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestEngine(ms, nil, pub).CreateListing(ctx, newListing(domain.MarketplaceEbay))
	require.NoError(t, err)
	assert.True(t, pub.ctxLive.Load(), "client disconnect must not abort an in-flight publish")
}

func storedListing(status domain.Status) *domain.Listing {
	l := validListing()
	l.Marketplaces = []domain.Marketplace{domain.MarketplaceEbay, domain.MarketplaceOfferUp}
	l.MarketplaceStatus = domain.MarketplaceStatus{
		domain.MarketplaceEbay:    status,
		domain.MarketplaceOfferUp: domain.StatusPending,
	}
	return l
}

func TestRepublishListing(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockListingStore(t)
	pub := posted()
	ms.EXPECT().GetListing(mock.Anything, "listing-1").Return(storedListing(domain.StatusFailed), nil).Once()
	ms.EXPECT().ClaimPublish(mock.Anything, "listing-1", domain.MarketplaceEbay, fixedNow.Add(-defaultClaimTTL)).
		Return(nil).Once()
	ms.EXPECT().UpdatePublishState(mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
		return l.MarketplaceStatus[domain.MarketplaceEbay] == domain.StatusPosted && l.EbayItemID == "item-1"
	})).Return(nil).Once()

	r, err := newTestEngine(ms, nil, pub).
		RepublishListing(context.Background(), "user-1", "listing-1", domain.MarketplaceEbay)
	require.NoError(t, err)
	assert.Equal(t, &Report{Marketplace: domain.MarketplaceEbay, Status: domain.StatusPosted}, r)
	assert.Equal(t, domain.StatusPending, pub.statusObs)
}

func TestRepublishListing_Refused(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stored   *domain.Listing
		owner    string
		target   domain.Marketplace
		claimErr error
		wantErr  error
	}{
		{
			name:    "already posted",
			stored:  storedListing(domain.StatusPosted),
			owner:   "user-1",
			target:  domain.MarketplaceEbay,
			wantErr: ErrAlreadyPosted,
		},
		{
			name:    "not targeted",
			stored:  storedListing(domain.StatusFailed),
			owner:   "user-1",
			target:  domain.MarketplacePoshmark,
			wantErr: ErrNotTargeted,
		},
		{
			name:    "no publisher",
			stored:  storedListing(domain.StatusFailed),
			owner:   "user-1",
			target:  domain.MarketplaceOfferUp,
			wantErr: ErrNoPublisher,
		},
		{
			name:    "other owner",
			stored:  storedListing(domain.StatusFailed),
			owner:   "user-2",
			target:  domain.MarketplaceEbay,
			wantErr: store.ErrNotFound,
		},
		{
			name:     "pending attempt still running",
			stored:   storedListing(domain.StatusPending),
			owner:    "user-1",
			target:   domain.MarketplaceEbay,
			claimErr: store.ErrConflict,
			wantErr:  ErrPublishInProgress,
		},
		{
			name:     "claim store failure",
			stored:   storedListing(domain.StatusFailed),
			owner:    "user-1",
			target:   domain.MarketplaceEbay,
			claimErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockListingStore(t)
			pub := posted()
			ms.EXPECT().GetListing(mock.Anything, "listing-1").Return(tt.stored, nil).Once()
			if tt.claimErr != nil {
				ms.EXPECT().ClaimPublish(mock.Anything, "listing-1", tt.target, mock.Anything).
					Return(tt.claimErr).Once()
			}

			_, err := newTestEngine(ms, nil, pub).
				RepublishListing(context.Background(), tt.owner, "listing-1", tt.target)
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			assert.Zero(t, pub.calls.Load())
		})
	}
}

func TestRepublishListing_ConcurrentCallsPublishOnce(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockListingStore(t)
	pub := posted()

	ms.EXPECT().GetListing(mock.Anything, "listing-1").
		RunAndReturn(func(context.Context, string) (*domain.Listing, error) {
			return storedListing(domain.StatusFailed), nil
		})

	// The store grants the failed marketplace to exactly one caller.
	var claimed atomic.Bool
	ms.EXPECT().ClaimPublish(mock.Anything, "listing-1", domain.MarketplaceEbay, mock.Anything).
		RunAndReturn(func(context.Context, string, domain.Marketplace, time.Time) error {
			if claimed.CompareAndSwap(false, true) {
				return nil
			}
			return store.ErrConflict
		})
	ms.EXPECT().UpdatePublishState(mock.Anything, mock.Anything).Return(nil).Once()

	e := newTestEngine(ms, nil, pub)

	const callers = 5
	errs := make(chan error, callers)
	var wg sync.WaitGroup
	wg.Add(callers)
	for range callers {
		go func() {
			defer wg.Done()
			_, err := e.RepublishListing(context.Background(), "user-1", "listing-1", domain.MarketplaceEbay)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, refused int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrPublishInProgress):
			refused++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, callers-1, refused)
	assert.Equal(t, int32(1), pub.calls.Load())
}

func TestUpdateListing(t *testing.T) {
	t.Parallel()

	title := "Succulent in glazed pot"
	price := 15.0

	tests := []struct {
		name        string
		stored      func() *domain.Listing
		update      *ListingUpdate
		wantStatus  domain.MarketplaceStatus
		wantReports []Report
		wantPublish int32
	}{
		{
			name: "fields only",
			stored: func() *domain.Listing {
				return storedListing(domain.StatusPosted)
			},
			update: &ListingUpdate{Title: &title, Price: &price},
			wantStatus: domain.MarketplaceStatus{
				domain.MarketplaceEbay:    domain.StatusPosted,
				domain.MarketplaceOfferUp: domain.StatusPending,
			},
			wantReports: []Report{},
		},
		{
			name: "added target published and dropped one removed",
			stored: func() *domain.Listing {
				l := validListing()
				l.Marketplaces = []domain.Marketplace{domain.MarketplaceMercari}
				l.MarketplaceStatus = domain.MarketplaceStatus{domain.MarketplaceMercari: domain.StatusFailed}
				return l
			},
			update: &ListingUpdate{Marketplaces: []domain.Marketplace{domain.MarketplaceEbay}},
			wantStatus: domain.MarketplaceStatus{
				domain.MarketplaceEbay: domain.StatusPosted,
			},
			wantReports: []Report{{Marketplace: domain.MarketplaceEbay, Status: domain.StatusPosted}},
			wantPublish: 1,
		},
		{
			name: "added target without publisher stays pending",
			stored: func() *domain.Listing {
				return storedListing(domain.StatusPosted)
			},
			update: &ListingUpdate{Marketplaces: []domain.Marketplace{
				domain.MarketplaceEbay, domain.MarketplaceOfferUp, domain.MarketplacePoshmark,
			}},
			wantStatus: domain.MarketplaceStatus{
				domain.MarketplaceEbay:     domain.StatusPosted,
				domain.MarketplaceOfferUp:  domain.StatusPending,
				domain.MarketplacePoshmark: domain.StatusPending,
			},
			wantReports: []Report{{Marketplace: domain.MarketplacePoshmark, Status: domain.StatusPending}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockListingStore(t)
			pub := posted()
			ms.EXPECT().GetListing(mock.Anything, "listing-1").Return(tt.stored(), nil).Once()
			ms.EXPECT().UpdateListing(mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
				return l.StatusConsistent()
			})).Return(nil).Once()
			if tt.wantPublish > 0 {
				ms.EXPECT().UpdatePublishState(mock.Anything, mock.Anything).Return(nil).Once()
			}

			l, reports, err := newTestEngine(ms, nil, pub).
				UpdateListing(context.Background(), "user-1", "listing-1", tt.update)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, l.MarketplaceStatus)
			assert.True(t, l.StatusConsistent())
			assert.Equal(t, tt.wantReports, reports)
			assert.Equal(t, tt.wantPublish, pub.calls.Load())
		})
	}
}

func TestUpdateListing_Refused(t *testing.T) {
	t.Parallel()

	empty := ""

	tests := []struct {
		name      string
		stored    func() *domain.Listing
		update    *ListingUpdate
		owner     string
		saveErr   error
		wantErr   error
		wantSaved bool
	}{
		{
			name:    "dropping a live marketplace",
			stored:  func() *domain.Listing { return storedListing(domain.StatusPosted) },
			update:  &ListingUpdate{Marketplaces: []domain.Marketplace{domain.MarketplaceOfferUp}},
			owner:   "user-1",
			wantErr: ErrTargetLive,
		},
		{
			name: "publish running",
			stored: func() *domain.Listing {
				l := storedListing(domain.StatusPending)
				l.UpdatedAt = fixedNow.Add(-time.Minute)
				return l
			},
			update:  &ListingUpdate{Title: &empty},
			owner:   "user-1",
			wantErr: ErrPublishInProgress,
		},
		{
			name:    "empty title",
			stored:  func() *domain.Listing { return storedListing(domain.StatusFailed) },
			update:  &ListingUpdate{Title: &empty},
			owner:   "user-1",
			wantErr: ErrValidation,
		},
		{
			name:    "other owner",
			stored:  func() *domain.Listing { return storedListing(domain.StatusFailed) },
			update:  &ListingUpdate{},
			owner:   "user-2",
			wantErr: store.ErrNotFound,
		},
		{
			name:      "lost to a concurrent edit",
			stored:    func() *domain.Listing { return storedListing(domain.StatusFailed) },
			update:    &ListingUpdate{},
			owner:     "user-1",
			saveErr:   store.ErrConflict,
			wantErr:   store.ErrConflict,
			wantSaved: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockListingStore(t)
			ms.EXPECT().GetListing(mock.Anything, "listing-1").Return(tt.stored(), nil).Once()
			if tt.wantSaved {
				ms.EXPECT().UpdateListing(mock.Anything, mock.Anything).Return(tt.saveErr).Once()
			}

			_, _, err := newTestEngine(ms, nil, posted()).
				UpdateListing(context.Background(), tt.owner, "listing-1", tt.update)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListingStats(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockListingStore(t)
	want := &store.ListingStats{
		Total:         3,
		ByStatus:      map[domain.Status]int{domain.StatusPosted: 2, domain.StatusFailed: 1},
		TopCategories: []store.CategoryCount{{Category: "165362", Count: 2}},
	}
	ms.EXPECT().ListingStats(mock.Anything, "user-1", statsTopCategories).Return(want, nil).Once()

	got, err := newTestEngine(ms, nil).ListingStats(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = newTestEngine(storeMocks.NewMockListingStore(t), nil).ListingStats(context.Background(), " ")
	require.Error(t, err)
}

func TestDeleteListing(t *testing.T) {
	t.Parallel()

	t.Run("owner deletes", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockListingStore(t)
		ms.EXPECT().GetListing(mock.Anything, "listing-1").Return(storedListing(domain.StatusPosted), nil).Once()
		ms.EXPECT().DeleteListing(mock.Anything, "listing-1").Return(nil).Once()

		require.NoError(t, newTestEngine(ms, nil).DeleteListing(context.Background(), "user-1", "listing-1"))
	})

	t.Run("other owner", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockListingStore(t)
		ms.EXPECT().GetListing(mock.Anything, "listing-1").Return(storedListing(domain.StatusPosted), nil).Once()

		err := newTestEngine(ms, nil).DeleteListing(context.Background(), "user-2", "listing-1")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockListingStore(t)
		ms.EXPECT().GetListing(mock.Anything, "listing-9").Return(nil, store.ErrNotFound).Once()

		err := newTestEngine(ms, nil).DeleteListing(context.Background(), "user-1", "listing-9")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestListListings(t *testing.T) {
	t.Parallel()

	t.Run("scoped to owner", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockListingStore(t)
		ms.EXPECT().ListListings(mock.Anything, mock.MatchedBy(func(q *store.ListingQuery) bool {
			return q.OwnerID == "user-1" && q.Limit == 10
		})).Return([]domain.Listing{*storedListing(domain.StatusPosted)}, 1, nil).Once()

		got, total, err := newTestEngine(ms, nil).ListListings(
			context.Background(), &store.ListingQuery{OwnerID: "user-1", Limit: 10},
		)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, got, 1)
	})

	t.Run("owner required", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockListingStore(t)
		_, _, err := newTestEngine(ms, nil).ListListings(context.Background(), &store.ListingQuery{})
		require.Error(t, err)
	})

	t.Run("store error wrapped", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockListingStore(t)
		ms.EXPECT().ListListings(mock.Anything, mock.Anything).Return(nil, 0, errors.New("timeout")).Once()

		_, _, err := newTestEngine(ms, nil).ListListings(
			context.Background(), &store.ListingQuery{OwnerID: "user-1"},
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing listings")
	})
}

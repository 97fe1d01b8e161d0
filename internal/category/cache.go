package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/donaldgifford/flashlist/internal/ebay"
	"github.com/donaldgifford/flashlist/internal/metrics"
	"github.com/donaldgifford/flashlist/internal/store"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

// DefaultRefreshInterval is how long a cached table stays fresh.
const DefaultRefreshInterval = 7 * 24 * time.Hour

// ErrMalformedCache means the persisted table exists but cannot be read.
// It is distinct from an absent table, which simply triggers a refresh.
var ErrMalformedCache = errors.New("category cache malformed")

// Snapshot is an immutable view of the label to leaf id table.
type Snapshot struct {
	Entries     map[string]string
	Source      domain.CategorySource
	RefreshedAt time.Time
}

// Lookup returns the leaf id cached for label.
func (s *Snapshot) Lookup(label string) (string, bool) {
	id, ok := s.Entries[label]
	return id, ok && id != ""
}

func fallbackSnapshot(now time.Time) *Snapshot {
	return &Snapshot{
		Entries:     FallbackEntries(),
		Source:      domain.CategorySourceFallback,
		RefreshedAt: now,
	}
}

// Cache is the persisted category table for one marketplace. The table is
// rebuilt from the Taxonomy API when it is absent or older than the refresh
// interval, and from the offline fallback table when that fails.
type Cache struct {
	store         store.CategoryCacheStore
	taxonomy      ebay.TaxonomyAPI
	marketplaceID string
	interval      time.Duration
	log           *slog.Logger
	nowFunc       func() time.Time

	mu      sync.RWMutex
	current *Snapshot
	group   singleflight.Group
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithRefreshInterval overrides the seven day refresh interval.
func WithRefreshInterval(d time.Duration) CacheOption {
	return func(c *Cache) {
		c.interval = d
	}
}

// WithCacheMarketplace sets the marketplace whose tree is cached.
func WithCacheMarketplace(id string) CacheOption {
	return func(c *Cache) {
		c.marketplaceID = id
	}
}

// WithCacheLogger sets the logger.
func WithCacheLogger(l *slog.Logger) CacheOption {
	return func(c *Cache) {
		c.log = l
	}
}

// WithCacheNowFunc overrides the time function for testing.
func WithCacheNowFunc(f func() time.Time) CacheOption {
	return func(c *Cache) {
		c.nowFunc = f
	}
}

// NewCache creates a category cache. taxonomy may be nil, in which case
// every refresh loads the fallback table.
func NewCache(s store.CategoryCacheStore, taxonomy ebay.TaxonomyAPI, opts ...CacheOption) *Cache {
	c := &Cache{
		store:         s,
		taxonomy:      taxonomy,
		marketplaceID: "EBAY_US",
		interval:      DefaultRefreshInterval,
		log:           slog.Default(),
		nowFunc:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) key() string {
	return "ebay:" + c.marketplaceID
}

func (c *Cache) pinnedKey() string {
	return c.key() + ":pinned"
}

// Entries returns the current table, loading or refreshing it as needed.
func (c *Cache) Entries(ctx context.Context) (*Snapshot, error) {
	c.mu.RLock()
	cur := c.current
	c.mu.RUnlock()
	if cur != nil && !c.stale(cur) {
		return cur, nil
	}

	v, err, _ := c.group.Do("entries", func() (any, error) {
		return c.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// Stale reports whether the table needs a refresh, without loading it.
func (c *Cache) Stale(ctx context.Context) (bool, error) {
	rec, err := c.store.GetCategoryCache(ctx, c.key())
	if errors.Is(err, store.ErrNotFound) {
		return true, nil
	}
	if errors.Is(err, store.ErrCorrupt) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading category cache: %w", err)
	}
	return rec.Stale(c.nowFunc(), c.interval), nil
}

func (c *Cache) load(ctx context.Context) (*Snapshot, error) {
	rec, err := c.store.GetCategoryCache(ctx, c.key())
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Refresh(ctx)
	case errors.Is(err, store.ErrCorrupt):
		return nil, fmt.Errorf("%w: %w", ErrMalformedCache, err)
	case err != nil:
		return nil, fmt.Errorf("loading category cache: %w", err)
	}

	if len(rec.Entries) == 0 || rec.Stale(c.nowFunc(), c.interval) {
		return c.Refresh(ctx)
	}

	snap := &Snapshot{Entries: rec.Entries, Source: rec.Source, RefreshedAt: rec.RefreshedAt}
	c.set(snap)
	return snap, nil
}

// Refresh rebuilds the table now. A remote failure loads the fallback
// table and is reported through the snapshot's Source, not as an error.
func (c *Cache) Refresh(ctx context.Context) (*Snapshot, error) {
	now := c.nowFunc()

	entries, err := c.fetchRemote(ctx)
	snap := &Snapshot{Entries: entries, Source: domain.CategorySourceRemote, RefreshedAt: now}
	if err != nil {
		c.log.Warn("category tree unavailable, using fallback table", "error", err)
		snap = fallbackSnapshot(now)
	}

	pinned, err := c.pinned(ctx)
	if err != nil {
		c.log.Warn("loading pinned categories", "error", err)
	}
	maps.Copy(snap.Entries, pinned)

	if err := c.save(ctx, c.key(), snap); err != nil {
		c.log.Warn("persisting category cache", "error", err)
	}

	metrics.CategoryCacheRefreshesTotal.WithLabelValues(string(snap.Source)).Inc()
	c.log.Info("category cache refreshed", "source", snap.Source, "entries", len(snap.Entries))

	c.set(snap)
	return snap, nil
}

// Pin records a verified leaf id for label. Pins survive later refreshes.
func (c *Cache) Pin(ctx context.Context, label, id string) error {
	pinned, err := c.pinned(ctx)
	if err != nil {
		return err
	}
	pinned[label] = id

	now := c.nowFunc()
	if err := c.save(ctx, c.pinnedKey(), &Snapshot{
		Entries:     pinned,
		Source:      domain.CategorySourceRemote,
		RefreshedAt: now,
	}); err != nil {
		return fmt.Errorf("pinning category %s: %w", label, err)
	}

	cur, err := c.Entries(ctx)
	if err != nil {
		return err
	}
	next := &Snapshot{Entries: maps.Clone(cur.Entries), Source: cur.Source, RefreshedAt: cur.RefreshedAt}
	next.Entries[label] = id
	if err := c.save(ctx, c.key(), next); err != nil {
		return fmt.Errorf("pinning category %s: %w", label, err)
	}
	c.set(next)
	return nil
}

// fetchRemote keeps every curated label whose id is a leaf of the current
// category tree. A label whose curated id is gone is matched by leaf name.
func (c *Cache) fetchRemote(ctx context.Context) (map[string]string, error) {
	if c.taxonomy == nil {
		return nil, errors.New("no taxonomy client configured")
	}

	treeID, err := c.taxonomy.GetDefaultCategoryTreeID(ctx, c.marketplaceID)
	if err != nil {
		return nil, err
	}
	tree, err := c.taxonomy.GetCategoryTree(ctx, treeID)
	if err != nil {
		return nil, err
	}

	leaves := tree.Leaves()
	ids := make(map[string]struct{}, len(leaves))
	byName := make(map[string]string, len(leaves))
	for _, l := range leaves {
		ids[l.CategoryID] = struct{}{}
		byName[strings.ToLower(l.CategoryName)] = l.CategoryID
	}

	entries := make(map[string]string, len(fallbackEntries))
	for label, id := range fallbackEntries {
		if _, ok := ids[id]; ok {
			entries[label] = id
			continue
		}
		if id, ok := byName[strings.ToLower(label)]; ok {
			entries[label] = id
		}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("category tree %s has none of the curated leaf categories", treeID)
	}
	return entries, nil
}

func (c *Cache) pinned(ctx context.Context) (map[string]string, error) {
	rec, err := c.store.GetCategoryCache(ctx, c.pinnedKey())
	if errors.Is(err, store.ErrNotFound) {
		return map[string]string{}, nil
	}
	if err != nil {
		return map[string]string{}, fmt.Errorf("loading pinned categories: %w", err)
	}
	if rec.Entries == nil {
		rec.Entries = map[string]string{}
	}
	return rec.Entries, nil
}

func (c *Cache) save(ctx context.Context, key string, snap *Snapshot) error {
	return c.store.SaveCategoryCache(ctx, &domain.CategoryCache{
		Key:         key,
		Entries:     snap.Entries,
		Source:      snap.Source,
		RefreshedAt: snap.RefreshedAt,
	})
}

func (c *Cache) set(snap *Snapshot) {
	c.mu.Lock()
	c.current = snap
	c.mu.Unlock()
}

func (c *Cache) stale(snap *Snapshot) bool {
	return c.nowFunc().Sub(snap.RefreshedAt) >= c.interval
}

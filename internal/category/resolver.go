// Package category maps listings to marketplace leaf categories. Resolution
// never fails: it degrades from a live similarity search through keyword
// rules to a fixed default.
package category

import (
	"context"
	"log/slog"
	"time"

	"github.com/donaldgifford/flashlist/internal/ebay"
	"github.com/donaldgifford/flashlist/internal/metrics"
)

const (
	maxQueryLen     = 100
	searchLimit     = 10
	conditionFilter = "conditions:{NEW|USED_EXCELLENT|USED_VERY_GOOD|USED_GOOD|USED_ACCEPTABLE}"

	defaultCategoryID = "220"
)

// Source names the resolution path that produced a category id.
type Source string

// Resolution sources.
const (
	SourceBrowse  Source = "browse"
	SourcePlant   Source = "plant"
	SourceKeyword Source = "keyword"
	SourceDefault Source = "default"
)

// Resolution is the outcome of resolving a listing's category.
type Resolution struct {
	CategoryID string
	Source     Source
	Label      string // set for plant, keyword, and default resolutions
}

// Table supplies the label to leaf id table.
type Table interface {
	Entries(ctx context.Context) (*Snapshot, error)
}

// Resolver picks a leaf category for a listing.
type Resolver struct {
	browse    ebay.BrowseAPI
	table     Table
	defaultID string
	plantID   string
	log       *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithDefaultID sets the id used when the table has no default label.
func WithDefaultID(id string) Option {
	return func(r *Resolver) {
		r.defaultID = id
	}
}

// WithPlantID sets the id used when the table has no plant label.
func WithPlantID(id string) Option {
	return func(r *Resolver) {
		r.plantID = id
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.log = l
	}
}

// NewResolver creates a category resolver. browse may be nil to disable
// the similarity search.
func NewResolver(browse ebay.BrowseAPI, table Table, opts ...Option) *Resolver {
	r := &Resolver{
		browse:    browse,
		table:     table,
		defaultID: defaultCategoryID,
		plantID:   plantLeafID,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns a leaf category id for the listing text. token is the
// seller's access token; when empty the similarity search is skipped.
func (r *Resolver) Resolve(ctx context.Context, title, description, token string) Resolution {
	res := r.resolve(ctx, title, description, token)
	metrics.CategoryResolutionsTotal.WithLabelValues(string(res.Source)).Inc()
	r.log.Debug("category resolved",
		"category_id", res.CategoryID,
		"source", res.Source,
		"label", res.Label,
	)
	return res
}

func (r *Resolver) resolve(ctx context.Context, title, description, token string) Resolution {
	if token != "" && r.browse != nil {
		if id := r.searchSimilar(ctx, title, description, token); id != "" {
			return Resolution{CategoryID: id, Source: SourceBrowse}
		}
	}

	snap := r.snapshot(ctx)
	text := normalize(title + " " + description)

	if matchesAny(text, plantKeywords) {
		id, ok := snap.Lookup(LabelPlants)
		if !ok {
			id = r.plantID
		}
		return Resolution{CategoryID: id, Source: SourcePlant, Label: LabelPlants}
	}

	for _, rule := range keywordRules {
		if !matchesAny(text, rule.keywords) {
			continue
		}
		if id, ok := snap.Lookup(rule.label); ok {
			return Resolution{CategoryID: id, Source: SourceKeyword, Label: rule.label}
		}
		r.log.Debug("matched label has no verified id", "label", rule.label)
	}

	id, ok := snap.Lookup(LabelToys)
	if !ok {
		id = r.defaultID
	}
	return Resolution{CategoryID: id, Source: SourceDefault, Label: LabelToys}
}

// searchSimilar returns the most frequent leaf category among live items
// similar to the listing, or "" when the search yields nothing usable.
// Ties go to the id seen first.
func (r *Resolver) searchSimilar(ctx context.Context, title, description, token string) string {
	resp, err := r.browse.Search(ctx, token, ebay.SearchRequest{
		Query:   searchQuery(title, description),
		Limit:   searchLimit,
		Filters: map[string]string{"filter": conditionFilter},
	})
	if err != nil {
		r.log.Warn("similar item search failed", "error", err)
		return ""
	}

	counts := make(map[string]int)
	var order []string
	for i := range resp.Items {
		id := resp.Items[i].LeafCategoryID()
		if id == "" {
			continue
		}
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}

	best := ""
	for _, id := range order {
		if counts[id] > counts[best] {
			best = id
		}
	}
	return best
}

func (r *Resolver) snapshot(ctx context.Context) *Snapshot {
	if r.table == nil {
		return fallbackSnapshot(time.Time{})
	}
	snap, err := r.table.Entries(ctx)
	if err != nil {
		r.log.Error("category table unavailable, using fallback table", "error", err)
		return fallbackSnapshot(time.Time{})
	}
	return snap
}

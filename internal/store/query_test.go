package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestListingQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         ListingQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string
		wantDataNotIn []string
	}{
		{
			name:  "empty query uses defaults",
			query: ListingQuery{},
			wantDataHas: []string{
				"FROM listings",
				"ORDER BY created_at DESC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM listings",
			wantArgs:      nil,
		},
		{
			name:         "owner filter",
			query:        ListingQuery{OwnerID: "user-1"},
			wantDataHas:  []string{"WHERE owner_id = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE owner_id = $1",
			wantArgs:     []any{"user-1"},
		},
		{
			name:         "marketplace filter",
			query:        ListingQuery{OwnerID: "user-1", Marketplace: ptr("ebay")},
			wantDataHas:  []string{"WHERE owner_id = $1 AND $2::text = ANY(marketplaces)"},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE owner_id = $1 AND $2::text = ANY(marketplaces)",
			wantArgs:     []any{"user-1", "ebay"},
		},
		{
			name:         "marketplace and status filter",
			query:        ListingQuery{Marketplace: ptr("ebay"), Status: ptr("failed")},
			wantDataHas:  []string{"WHERE marketplace_status ->> $1::text = $2"},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE marketplace_status ->> $1::text = $2",
			wantArgs:     []any{"ebay", "failed"},
		},
		{
			name:        "status on any marketplace",
			query:       ListingQuery{OwnerID: "u", Status: ptr("pending")},
			wantDataHas: []string{"owner_id = $1 AND EXISTS (SELECT 1 FROM jsonb_each_text(marketplace_status) s WHERE s.value = $2)"},
			wantArgs:    []any{"u", "pending"},
		},
		{
			name:        "order by price",
			query:       ListingQuery{OrderBy: "price"},
			wantDataHas: []string{"ORDER BY price ASC"},
		},
		{
			name:        "unknown order falls back to default",
			query:       ListingQuery{OrderBy: "price; DROP TABLE listings"},
			wantDataHas: []string{"ORDER BY created_at DESC"},
		},
		{
			name:        "limit is capped",
			query:       ListingQuery{Limit: 10_000, Offset: -5},
			wantDataHas: []string{"LIMIT 500", "OFFSET 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s)
			}
			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s)
			}
			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated = "created_at"
	orderByPrice   = "price"
	orderByTitle   = "title"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreated: "created_at DESC",
	orderByPrice:   "price ASC",
	orderByTitle:   "title ASC",
}

const defaultOrderBy = "created_at DESC"

const countListingsSelect = "SELECT COUNT(*) FROM listings"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a listing query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *ListingQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.OwnerID != "" {
		conditions = append(conditions, fmt.Sprintf("owner_id = $%d", paramIdx))
		args = append(args, q.OwnerID)
		paramIdx++
	}

	switch {
	case q.Marketplace != nil && q.Status != nil:
		conditions = append(conditions, fmt.Sprintf(
			"marketplace_status ->> $%d::text = $%d", paramIdx, paramIdx+1,
		))
		args = append(args, *q.Marketplace, *q.Status)
		paramIdx += 2
	case q.Marketplace != nil:
		conditions = append(conditions, fmt.Sprintf("$%d::text = ANY(marketplaces)", paramIdx))
		args = append(args, *q.Marketplace)
		paramIdx++
	case q.Status != nil:
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM jsonb_each_text(marketplace_status) s WHERE s.value = $%d)",
			paramIdx,
		))
		args = append(args, *q.Status)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		listingColumnsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countListingsSelect + whereClause

	return dataSQL, countSQL, args
}

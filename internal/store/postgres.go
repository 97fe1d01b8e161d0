package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/flashlist/pkg/types"
)

const defaultPoolSize = 10

var _ Store = (*PostgresStore)(nil)

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool   *pgxpool.Pool
	sealer *TokenSealer
}

// PostgresOption configures the PostgresStore.
type PostgresOption func(*PostgresStore)

// WithTokenSealer encrypts credential tokens before they are written.
func WithTokenSealer(s *TokenSealer) PostgresOption {
	return func(p *PostgresStore) {
		p.sealer = s
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(
	ctx context.Context,
	connString string,
	opts ...PostgresOption,
) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if cfg.MaxConns == 0 {
		cfg.MaxConns = defaultPoolSize
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s := &PostgresStore{pool: pool}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// --- Credentials ---

// GetCredential returns the credential for (userID, m) or ErrNotFound.
func (s *PostgresStore) GetCredential(
	ctx context.Context,
	userID string,
	m domain.Marketplace,
) (*domain.Credential, error) {
	return s.getCredential(ctx, queryGetCredential, userID, string(m))
}

// GetCredentialByExternalUser maps a marketplace-side user id back to the
// local credential.
func (s *PostgresStore) GetCredentialByExternalUser(
	ctx context.Context,
	m domain.Marketplace,
	externalUserID string,
) (*domain.Credential, error) {
	return s.getCredential(ctx, queryGetCredentialByExternalUser, string(m), externalUserID)
}

func (s *PostgresStore) getCredential(
	ctx context.Context,
	query string,
	args ...any,
) (*domain.Credential, error) {
	c := &domain.Credential{}
	var marketplace, access, refresh string
	err := s.pool.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.UserID, &marketplace, &c.ExternalUserID,
		&access, &refresh, &c.ExpiresAt,
		&c.FulfillmentPolicyID, &c.PaymentPolicyID, &c.ReturnPolicyID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying credential: %w", err)
	}

	c.Marketplace = domain.Marketplace(marketplace)
	if c.AccessToken, err = s.sealer.Open(access); err != nil {
		return nil, fmt.Errorf("opening access token: %w", err)
	}
	if c.RefreshToken, err = s.sealer.Open(refresh); err != nil {
		return nil, fmt.Errorf("opening refresh token: %w", err)
	}

	return c, nil
}

// UpsertCredential inserts or replaces the tokens for (UserID, Marketplace).
// Existing policy ids are preserved.
func (s *PostgresStore) UpsertCredential(ctx context.Context, c *domain.Credential) error {
	args, err := s.tokenArgs(c)
	if err != nil {
		return err
	}
	args["external_user_id"] = c.ExternalUserID

	if err := s.pool.QueryRow(ctx, queryUpsertCredential, args).Scan(
		&c.ID, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upserting credential: %w", err)
	}
	return nil
}

// UpdateCredentialTokens writes refreshed tokens and expiry.
func (s *PostgresStore) UpdateCredentialTokens(ctx context.Context, c *domain.Credential) error {
	args, err := s.tokenArgs(c)
	if err != nil {
		return err
	}

	err = s.pool.QueryRow(ctx, queryUpdateCredentialTokens, args).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("updating credential tokens: %w", err)
	}
	return nil
}

// UpdateCredentialPolicies writes the seller policy ids.
func (s *PostgresStore) UpdateCredentialPolicies(ctx context.Context, c *domain.Credential) error {
	args := pgx.NamedArgs{
		"user_id":               c.UserID,
		"marketplace":           string(c.Marketplace),
		"fulfillment_policy_id": c.FulfillmentPolicyID,
		"payment_policy_id":     c.PaymentPolicyID,
		"return_policy_id":      c.ReturnPolicyID,
	}

	err := s.pool.QueryRow(ctx, queryUpdateCredentialPolicies, args).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("updating credential policies: %w", err)
	}
	return nil
}

// DeleteCredential removes the credential for (userID, m). Deleting a
// missing credential is not an error.
func (s *PostgresStore) DeleteCredential(
	ctx context.Context,
	userID string,
	m domain.Marketplace,
) error {
	if _, err := s.pool.Exec(ctx, queryDeleteCredential, userID, string(m)); err != nil {
		return fmt.Errorf("deleting credential: %w", err)
	}
	return nil
}

func (s *PostgresStore) tokenArgs(c *domain.Credential) (pgx.NamedArgs, error) {
	access, err := s.sealer.Seal(c.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("sealing access token: %w", err)
	}
	refresh, err := s.sealer.Seal(c.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("sealing refresh token: %w", err)
	}

	return pgx.NamedArgs{
		"user_id":       c.UserID,
		"marketplace":   string(c.Marketplace),
		"access_token":  access,
		"refresh_token": refresh,
		"expires_at":    c.ExpiresAt,
	}, nil
}

// --- Listings ---

// CreateListing inserts a new listing and fills in its id and timestamps.
func (s *PostgresStore) CreateListing(ctx context.Context, l *domain.Listing) error {
	status, err := json.Marshal(l.MarketplaceStatus)
	if err != nil {
		return fmt.Errorf("encoding marketplace status: %w", err)
	}

	addr := domain.Address{}
	if l.Address != nil {
		addr = *l.Address
	}

	args := pgx.NamedArgs{
		"owner_id":           l.OwnerID,
		"title":              l.Title,
		"description":        l.Description,
		"category":           l.Category,
		"brand":              l.Brand,
		"condition":          l.Condition,
		"tags":               nonNil(l.Tags),
		"image_urls":         nonNil(l.ImageURLs),
		"price":              l.Price,
		"ship_city":          addr.City,
		"ship_postal_code":   addr.PostalCode,
		"ship_state":         addr.State,
		"marketplaces":       marketplaceStrings(l.Marketplaces),
		"marketplace_status": status,
	}

	if err := s.pool.QueryRow(ctx, queryInsertListing, args).Scan(
		&l.ID, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return fmt.Errorf("inserting listing: %w", err)
	}
	return nil
}

// GetListing retrieves a listing by its internal UUID.
func (s *PostgresStore) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	return s.getListing(ctx, queryGetListingByID, id)
}

// GetListingByEbayItemID retrieves a listing by the eBay item id it was
// published as.
func (s *PostgresStore) GetListingByEbayItemID(
	ctx context.Context,
	itemID string,
) (*domain.Listing, error) {
	return s.getListing(ctx, queryGetListingByEbayItemID, itemID)
}

func (s *PostgresStore) getListing(ctx context.Context, query, arg string) (*domain.Listing, error) {
	l := &domain.Listing{}
	err := scanListing(s.pool.QueryRow(ctx, query, arg), l)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying listing: %w", err)
	}
	return l, nil
}

// ListListings queries listings with optional filters, returning results and total count.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	q *ListingQuery,
) ([]domain.Listing, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listings: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, 0, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating listings: %w", err)
	}

	return listings, total, nil
}

// UpdatePublishState writes the target marketplaces, status map, resolved
// category, and marketplace references of a listing.
func (s *PostgresStore) UpdatePublishState(ctx context.Context, l *domain.Listing) error {
	status, err := json.Marshal(l.MarketplaceStatus)
	if err != nil {
		return fmt.Errorf("encoding marketplace status: %w", err)
	}

	args := pgx.NamedArgs{
		"id":                 l.ID,
		"marketplaces":       marketplaceStrings(l.Marketplaces),
		"marketplace_status": status,
		"category":           l.Category,
		"ebay_item_id":       l.EbayItemID,
		"ebay_sku":           l.EbaySKU,
		"ebay_offer_id":      l.EbayOfferID,
	}

	err = s.pool.QueryRow(ctx, queryUpdatePublishState, args).Scan(&l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("updating publish state: %w", err)
	}
	return nil
}

// UpdateListing writes the editable fields and target set of l. The write
// only applies when the row still carries l.UpdatedAt; otherwise it returns
// ErrConflict.
func (s *PostgresStore) UpdateListing(ctx context.Context, l *domain.Listing) error {
	status, err := json.Marshal(l.MarketplaceStatus)
	if err != nil {
		return fmt.Errorf("encoding marketplace status: %w", err)
	}

	addr := domain.Address{}
	if l.Address != nil {
		addr = *l.Address
	}

	args := pgx.NamedArgs{
		"id":                 l.ID,
		"updated_at":         l.UpdatedAt,
		"title":              l.Title,
		"description":        l.Description,
		"category":           l.Category,
		"brand":              l.Brand,
		"condition":          l.Condition,
		"tags":               nonNil(l.Tags),
		"image_urls":         nonNil(l.ImageURLs),
		"price":              l.Price,
		"ship_city":          addr.City,
		"ship_postal_code":   addr.PostalCode,
		"ship_state":         addr.State,
		"marketplaces":       marketplaceStrings(l.Marketplaces),
		"marketplace_status": status,
	}

	err = s.pool.QueryRow(ctx, queryUpdateListing, args).Scan(&l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("updating listing: %w", err)
	}
	return nil
}

// ClaimPublish atomically marks m pending on listing id when m failed or
// has been pending since before staleBefore. A listing that is missing or
// not claimable returns ErrConflict, so two callers never both win.
func (s *PostgresStore) ClaimPublish(
	ctx context.Context,
	id string,
	m domain.Marketplace,
	staleBefore time.Time,
) error {
	tag, err := s.pool.Exec(ctx, queryClaimPublish, pgx.NamedArgs{
		"id":           id,
		"marketplace":  string(m),
		"stale_before": staleBefore,
	})
	if err != nil {
		return fmt.Errorf("claiming publish: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrConflict
	}
	return nil
}

// DeleteListing removes a listing row. It returns ErrNotFound if no row
// matched.
func (s *PostgresStore) DeleteListing(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteListing, id)
	if err != nil {
		return fmt.Errorf("deleting listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListingStats counts ownerID's listings, their marketplace statuses, and
// the topN most used categories.
func (s *PostgresStore) ListingStats(
	ctx context.Context,
	ownerID string,
	topN int,
) (*ListingStats, error) {
	st := &ListingStats{ByStatus: make(map[domain.Status]int)}

	if err := s.pool.QueryRow(ctx, queryCountListings, ownerID).Scan(&st.Total); err != nil {
		return nil, fmt.Errorf("counting listings: %w", err)
	}

	rows, err := s.pool.Query(ctx, queryListingStatusCounts, ownerID)
	if err != nil {
		return nil, fmt.Errorf("counting statuses: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scanning status count: %w", err)
		}
		st.ByStatus[domain.Status(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating status counts: %w", err)
	}

	rows, err = s.pool.Query(ctx, queryTopCategories, ownerID, topN)
	if err != nil {
		return nil, fmt.Errorf("querying top categories: %w", err)
	}
	defer rows.Close()
	st.TopCategories = []CategoryCount{}
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning category count: %w", err)
		}
		st.TopCategories = append(st.TopCategories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category counts: %w", err)
	}

	return st, nil
}

// --- Category cache ---

// GetCategoryCache returns the cache row for key or ErrNotFound.
func (s *PostgresStore) GetCategoryCache(
	ctx context.Context,
	key string,
) (*domain.CategoryCache, error) {
	c := &domain.CategoryCache{}
	var entries []byte
	var source string
	err := s.pool.QueryRow(ctx, queryGetCategoryCache, key).Scan(
		&c.Key, &entries, &source, &c.RefreshedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying category cache: %w", err)
	}

	if err := json.Unmarshal(entries, &c.Entries); err != nil {
		return nil, fmt.Errorf("%w: decoding category cache entries: %w", ErrCorrupt, err)
	}
	c.Source = domain.CategorySource(source)

	return c, nil
}

// SaveCategoryCache upserts the cache row.
func (s *PostgresStore) SaveCategoryCache(ctx context.Context, c *domain.CategoryCache) error {
	entries, err := json.Marshal(c.Entries)
	if err != nil {
		return fmt.Errorf("encoding category cache entries: %w", err)
	}

	args := pgx.NamedArgs{
		"key":          c.Key,
		"entries":      entries,
		"source":       string(c.Source),
		"refreshed_at": c.RefreshedAt,
	}

	if _, err := s.pool.Exec(ctx, queryUpsertCategoryCache, args); err != nil {
		return fmt.Errorf("saving category cache: %w", err)
	}
	return nil
}

// --- scanning helpers ---

type scannable interface {
	Scan(dest ...any) error
}

func scanListing(row scannable, l *domain.Listing) error {
	var (
		marketplaces []string
		status       []byte
		addr         domain.Address
	)

	if err := row.Scan(
		&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.Category, &l.Brand, &l.Condition,
		&l.Tags, &l.ImageURLs, &l.Price, &addr.City, &addr.PostalCode, &addr.State,
		&marketplaces, &status,
		&l.EbayItemID, &l.EbaySKU, &l.EbayOfferID,
		&l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return err
	}

	l.Marketplaces = make([]domain.Marketplace, len(marketplaces))
	for i, m := range marketplaces {
		l.Marketplaces[i] = domain.Marketplace(m)
	}

	if err := json.Unmarshal(status, &l.MarketplaceStatus); err != nil {
		return fmt.Errorf("decoding marketplace status: %w", err)
	}

	if !addr.IsZero() {
		l.Address = &addr
	}

	return nil
}

func marketplaceStrings(ms []domain.Marketplace) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = string(m)
	}
	return out
}

// nonNil keeps NOT NULL array columns from receiving SQL NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

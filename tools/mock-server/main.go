// Package main implements a mock eBay API server for local development.
// It simulates the OAuth, identity, taxonomy, Browse, Sell Account, Sell
// Inventory, and Analytics endpoints flashlist calls, keeping seller state
// in memory so the full connect, bootstrap, and publish flow runs without
// real eBay credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/donaldgifford/flashlist/internal/ebay"
)

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "", "path to a Browse search response fixture (default built-in items)")
	callback := flag.String("callback", "http://localhost:8080/api/v1/ebay/oauth/callback",
		"URL the consent page redirects to")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture := defaultSearchFixture()
	if *fixtureFile != "" {
		f, err := loadFixture(*fixtureFile)
		if err != nil {
			logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
			os.Exit(1)
		}
		fixture = f
	}
	logger.Info("loaded search fixture", "items", len(fixture.ItemSummaries))

	m := newMockEbay(logger, fixture, *callback)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock eBay server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, m.routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

type browseAPIResponse struct {
	ItemSummaries []ebay.ItemSummary `json:"itemSummaries"`
	Total         int                `json:"total"`
	Offset        int                `json:"offset"`
	Limit         int                `json:"limit"`
	Next          string             `json:"next"`
}

// mockEbay holds one in-memory seller account shared by every token.
type mockEbay struct {
	log      *slog.Logger
	fixture  *browseAPIResponse
	callback string
	tree     ebay.CategoryTree
	leaves   map[string]bool

	mu           sync.Mutex
	seq          int
	fulfillment  []ebay.FulfillmentPolicy
	payment      []ebay.PaymentPolicy
	returns      []ebay.ReturnPolicy
	locations    map[string]ebay.InventoryLocation
	items        map[string]ebay.InventoryItem
	offers       map[string]ebay.Offer
	published    map[string]string // offer id -> listing id
	apiCallCount int64
}

func newMockEbay(logger *slog.Logger, fixture *browseAPIResponse, callback string) *mockEbay {
	m := &mockEbay{
		log:       logger,
		fixture:   fixture,
		callback:  callback,
		tree:      defaultCategoryTree(),
		leaves:    make(map[string]bool),
		locations: make(map[string]ebay.InventoryLocation),
		items:     make(map[string]ebay.InventoryItem),
		offers:    make(map[string]ebay.Offer),
		published: make(map[string]string),
	}
	for _, l := range m.tree.Leaves() {
		m.leaves[l.CategoryID] = true
	}
	return m
}

func (m *mockEbay) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /oauth2/authorize", m.authorizeHandler)
	mux.HandleFunc("POST /identity/v1/oauth2/token", m.tokenHandler)
	mux.HandleFunc("GET /commerce/identity/v1/user/", bearer(m.identityHandler))

	mux.HandleFunc("GET /commerce/taxonomy/v1/get_default_category_tree_id", bearer(m.treeIDHandler))
	mux.HandleFunc("GET /commerce/taxonomy/v1/category_tree/{id}", bearer(m.treeHandler))
	mux.HandleFunc("GET /buy/browse/v1/item_summary/search", bearer(m.searchHandler))

	mux.HandleFunc("GET /sell/account/v1/{kind}", bearer(m.listPoliciesHandler))
	mux.HandleFunc("POST /sell/account/v1/{kind}", bearer(m.createPolicyHandler))

	mux.HandleFunc("GET /sell/inventory/v1/location", bearer(m.listLocationsHandler))
	mux.HandleFunc("POST /sell/inventory/v1/location/{key}", bearer(m.createLocationHandler))
	mux.HandleFunc("PUT /sell/inventory/v1/inventory_item/{sku}", bearer(m.putItemHandler))
	mux.HandleFunc("DELETE /sell/inventory/v1/inventory_item/{sku}", bearer(m.deleteItemHandler))
	mux.HandleFunc("POST /sell/inventory/v1/offer", bearer(m.createOfferHandler))
	mux.HandleFunc("DELETE /sell/inventory/v1/offer/{id}", bearer(m.deleteOfferHandler))
	mux.HandleFunc("POST /sell/inventory/v1/offer/{id}/publish", bearer(m.publishOfferHandler))

	mux.HandleFunc("GET /developer/analytics/v1_beta/rate_limit/", bearer(m.rateLimitHandler))
	return mux
}

func loadFixture(path string) (*browseAPIResponse, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var resp browseAPIResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &resp, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// bearer rejects requests without an Authorization bearer token.
func bearer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			writeEbayError(w, http.StatusUnauthorized, 1001, "Invalid access token")
			return
		}
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func writeEbayError(w http.ResponseWriter, status, id int, msg string) {
	writeJSON(w, status, map[string]any{
		"errors": []map[string]any{{
			"errorId":  id,
			"domain":   "API_INVENTORY",
			"category": "REQUEST",
			"message":  msg,
		}},
	})
}

func (m *mockEbay) nextID() string {
	m.seq++
	return strconv.Itoa(100000 + m.seq)
}

func (m *mockEbay) countCall() {
	m.mu.Lock()
	m.apiCallCount++
	m.mu.Unlock()
}

// --- OAuth and identity ---

func (m *mockEbay) authorizeHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("client_id") == "" || q.Get("state") == "" {
		http.Error(w, "client_id and state are required", http.StatusBadRequest)
		return
	}
	target, err := url.Parse(m.callback)
	if err != nil {
		http.Error(w, "bad callback URL", http.StatusInternalServerError)
		return
	}
	v := url.Values{}
	v.Set("code", "mock-code-"+strconv.FormatInt(time.Now().UnixNano(), 36))
	v.Set("state", q.Get("state"))
	target.RawQuery = v.Encode()
	http.Redirect(w, r, target.String(), http.StatusFound)
}

func (m *mockEbay) tokenHandler(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := r.BasicAuth(); !ok {
		m.log.Warn("token request missing Basic Auth header")
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":             "invalid_client",
			"error_description": "client authentication failed",
		})
		return
	}
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
		return
	}

	stamp := strconv.FormatInt(time.Now().UnixNano(), 36)
	switch grant := r.PostForm.Get("grant_type"); grant {
	case "client_credentials":
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": "mock-app-token-" + stamp,
			"expires_in":   7200,
			"token_type":   "Application Access Token",
		})
	case "authorization_code":
		if r.PostForm.Get("code") == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":             "invalid_grant",
				"error_description": "the provided authorization grant code is invalid",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token":             "mock-user-token-" + stamp,
			"expires_in":               7200,
			"refresh_token":            "mock-refresh-" + stamp,
			"refresh_token_expires_in": 47304000,
			"token_type":               "User Access Token",
		})
	case "refresh_token":
		if !strings.HasPrefix(r.PostForm.Get("refresh_token"), "mock-refresh-") {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":             "invalid_grant",
				"error_description": "the provided authorization refresh token is invalid or was issued to another client",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": "mock-user-token-" + stamp,
			"expires_in":   7200,
			"token_type":   "User Access Token",
		})
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":             "unsupported_grant_type",
			"error_description": "grant type " + grant + " is not supported",
		})
		return
	}
	m.log.Info("issued mock token", "grant_type", r.PostForm.Get("grant_type"))
}

func (*mockEbay) identityHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ebay.IdentityUser{UserID: "mock-seller-1", Username: "mock_seller"})
}

// --- Taxonomy and Browse ---

func (*mockEbay) treeIDHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("marketplace_id") == "" {
		writeEbayError(w, http.StatusBadRequest, 62004, "marketplace_id is required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"categoryTreeId": "0", "categoryTreeVersion": "130"})
}

func (m *mockEbay) treeHandler(w http.ResponseWriter, r *http.Request) {
	if r.PathValue("id") != m.tree.CategoryTreeID {
		writeEbayError(w, http.StatusNotFound, 62005, "category tree not found")
		return
	}
	writeJSON(w, http.StatusOK, m.tree)
}

func (m *mockEbay) searchHandler(w http.ResponseWriter, r *http.Request) {
	m.countCall()
	q := strings.ToLower(r.URL.Query().Get("q"))

	limit := 50
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		offset = v
	}

	// An item matches when any query word appears in its title.
	words := strings.Fields(q)
	matched := []ebay.ItemSummary{}
	for _, item := range m.fixture.ItemSummaries {
		title := strings.ToLower(item.Title)
		if len(words) == 0 {
			matched = append(matched, item)
			continue
		}
		for _, w := range words {
			if strings.Contains(title, w) {
				matched = append(matched, item)
				break
			}
		}
	}

	total := len(matched)
	if offset >= len(matched) {
		matched = []ebay.ItemSummary{}
	} else {
		matched = matched[offset:min(offset+limit, len(matched))]
	}

	writeJSON(w, http.StatusOK, browseAPIResponse{
		ItemSummaries: matched,
		Total:         total,
		Offset:        offset,
		Limit:         limit,
	})
	m.log.Info("search", "query", q, "matched", total, "returned", len(matched))
}

// --- Sell Account ---

func (m *mockEbay) listPoliciesHandler(w http.ResponseWriter, r *http.Request) {
	m.countCall()
	m.mu.Lock()
	defer m.mu.Unlock()

	switch r.PathValue("kind") {
	case "fulfillment_policy":
		writeJSON(w, http.StatusOK, map[string]any{"fulfillmentPolicies": m.fulfillment, "total": len(m.fulfillment)})
	case "payment_policy":
		writeJSON(w, http.StatusOK, map[string]any{"paymentPolicies": m.payment, "total": len(m.payment)})
	case "return_policy":
		writeJSON(w, http.StatusOK, map[string]any{"returnPolicies": m.returns, "total": len(m.returns)})
	default:
		http.NotFound(w, r)
	}
}

func (m *mockEbay) createPolicyHandler(w http.ResponseWriter, r *http.Request) {
	m.countCall()
	m.mu.Lock()
	defer m.mu.Unlock()

	dec := json.NewDecoder(r.Body)
	switch r.PathValue("kind") {
	case "fulfillment_policy":
		var p ebay.FulfillmentPolicy
		if err := dec.Decode(&p); err != nil || p.Name == "" {
			writeEbayError(w, http.StatusBadRequest, 20400, "invalid fulfillment policy")
			return
		}
		p.FulfillmentPolicyID = m.nextID()
		m.fulfillment = append(m.fulfillment, p)
		writeJSON(w, http.StatusCreated, p)
	case "payment_policy":
		var p ebay.PaymentPolicy
		if err := dec.Decode(&p); err != nil || p.Name == "" {
			writeEbayError(w, http.StatusBadRequest, 20400, "invalid payment policy")
			return
		}
		p.PaymentPolicyID = m.nextID()
		m.payment = append(m.payment, p)
		writeJSON(w, http.StatusCreated, p)
	case "return_policy":
		var p ebay.ReturnPolicy
		if err := dec.Decode(&p); err != nil || p.Name == "" {
			writeEbayError(w, http.StatusBadRequest, 20400, "invalid return policy")
			return
		}
		p.ReturnPolicyID = m.nextID()
		m.returns = append(m.returns, p)
		writeJSON(w, http.StatusCreated, p)
	default:
		http.NotFound(w, r)
	}
}

// --- Sell Inventory ---

func (m *mockEbay) listLocationsHandler(w http.ResponseWriter, _ *http.Request) {
	m.countCall()
	m.mu.Lock()
	defer m.mu.Unlock()

	locs := make([]ebay.InventoryLocation, 0, len(m.locations))
	for _, l := range m.locations {
		locs = append(locs, l)
	}
	writeJSON(w, http.StatusOK, map[string]any{"locations": locs, "total": len(locs)})
}

func (m *mockEbay) createLocationHandler(w http.ResponseWriter, r *http.Request) {
	m.countCall()
	key := r.PathValue("key")

	var loc ebay.InventoryLocation
	if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
		writeEbayError(w, http.StatusBadRequest, 25800, "invalid location payload")
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.locations[key]; ok {
		writeEbayError(w, http.StatusConflict, 25803, "Location "+key+" already exists")
		return
	}
	loc.MerchantLocationKey = key
	loc.MerchantLocationStatus = "ENABLED"
	m.locations[key] = loc
	w.WriteHeader(http.StatusNoContent)
}

func (m *mockEbay) putItemHandler(w http.ResponseWriter, r *http.Request) {
	m.countCall()
	if r.Header.Get("Content-Language") == "" {
		writeEbayError(w, http.StatusBadRequest, 25709, "Invalid value for header Content-Language")
		return
	}

	var item ebay.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil || item.Product.Title == "" {
		writeEbayError(w, http.StatusBadRequest, 25702, "product title is required")
		return
	}

	m.mu.Lock()
	m.items[r.PathValue("sku")] = item
	m.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (m *mockEbay) deleteItemHandler(w http.ResponseWriter, r *http.Request) {
	m.countCall()
	m.mu.Lock()
	defer m.mu.Unlock()

	sku := r.PathValue("sku")
	if _, ok := m.items[sku]; !ok {
		writeEbayError(w, http.StatusNotFound, 25710, "inventory item "+sku+" not found")
		return
	}
	delete(m.items, sku)
	w.WriteHeader(http.StatusNoContent)
}

func (m *mockEbay) createOfferHandler(w http.ResponseWriter, r *http.Request) {
	m.countCall()

	var offer ebay.Offer
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		writeEbayError(w, http.StatusBadRequest, 25002, "invalid offer payload")
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[offer.SKU]; !ok {
		writeEbayError(w, http.StatusBadRequest, 25702, "No inventory item found for SKU "+offer.SKU)
		return
	}
	if !m.leaves[offer.CategoryID] {
		writeEbayError(w, http.StatusBadRequest, 25005,
			"The category ID you entered is not a leaf category.")
		return
	}

	id := m.nextID()
	m.offers[id] = offer
	writeJSON(w, http.StatusCreated, map[string]string{"offerId": id})
}

func (m *mockEbay) deleteOfferHandler(w http.ResponseWriter, r *http.Request) {
	m.countCall()
	m.mu.Lock()
	defer m.mu.Unlock()

	id := r.PathValue("id")
	if _, ok := m.offers[id]; !ok {
		writeEbayError(w, http.StatusNotFound, 25713, "offer "+id+" not found")
		return
	}
	delete(m.offers, id)
	delete(m.published, id)
	w.WriteHeader(http.StatusNoContent)
}

func (m *mockEbay) publishOfferHandler(w http.ResponseWriter, r *http.Request) {
	m.countCall()
	m.mu.Lock()
	defer m.mu.Unlock()

	id := r.PathValue("id")
	offer, ok := m.offers[id]
	if !ok {
		writeEbayError(w, http.StatusNotFound, 25713, "offer "+id+" not found")
		return
	}
	p := offer.ListingPolicies
	if p.FulfillmentPolicyID == "" || p.PaymentPolicyID == "" || p.ReturnPolicyID == "" {
		writeEbayError(w, http.StatusBadRequest, 25007, "listing policies are missing")
		return
	}
	if listingID, ok := m.published[id]; ok {
		writeJSON(w, http.StatusOK, map[string]string{"listingId": listingID})
		return
	}

	listingID := "11" + m.nextID()
	m.published[id] = listingID
	writeJSON(w, http.StatusOK, map[string]string{"listingId": listingID})
	m.log.Info("published offer", "offer_id", id, "listing_id", listingID, "sku", offer.SKU)
}

// --- Analytics ---

func (m *mockEbay) rateLimitHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	count := m.apiCallCount
	m.mu.Unlock()

	const limit = 2000000
	reset := time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
	writeJSON(w, http.StatusOK, map[string]any{
		"rateLimits": []map[string]any{{
			"apiContext": r.URL.Query().Get("api_context"),
			"apiName":    r.URL.Query().Get("api_name"),
			"apiVersion": "v1",
			"resources": []map[string]any{{
				"name": "sell.inventory",
				"rates": []map[string]any{{
					"count":      count,
					"limit":      limit,
					"remaining":  limit - count,
					"reset":      reset.Format(time.RFC3339),
					"timeWindow": 86400,
				}},
			}},
		}},
	})
}

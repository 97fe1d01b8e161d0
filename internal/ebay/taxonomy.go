package ebay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

const taxonomyPath = "/commerce/taxonomy/v1"

// TaxonomyClient implements TaxonomyAPI using application tokens.
type TaxonomyClient struct {
	rest   restClient
	tokens TokenProvider
}

var _ TaxonomyAPI = (*TaxonomyClient)(nil)

// NewTaxonomyClient creates a new Taxonomy API client.
func NewTaxonomyClient(tokens TokenProvider, opts ...ClientOption) *TaxonomyClient {
	return &TaxonomyClient{rest: newRESTClient(opts), tokens: tokens}
}

// GetDefaultCategoryTreeID returns the category tree id for a marketplace.
func (c *TaxonomyClient) GetDefaultCategoryTreeID(
	ctx context.Context,
	marketplaceID string,
) (string, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("getting auth token: %w", err)
	}

	var resp struct {
		CategoryTreeID string `json:"categoryTreeId"`
	}
	path := taxonomyPath + "/get_default_category_tree_id?marketplace_id=" + url.QueryEscape(marketplaceID)
	if err := c.rest.do(ctx, token, http.MethodGet, path, nil, &resp); err != nil {
		return "", fmt.Errorf("getting default category tree id: %w", err)
	}
	if resp.CategoryTreeID == "" {
		return "", errors.New("getting default category tree id: empty categoryTreeId")
	}
	return resp.CategoryTreeID, nil
}

// GetCategoryTree downloads the full category tree.
func (c *TaxonomyClient) GetCategoryTree(ctx context.Context, treeID string) (*CategoryTree, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting auth token: %w", err)
	}

	var tree CategoryTree
	path := taxonomyPath + "/category_tree/" + url.PathEscape(treeID)
	if err := c.rest.do(ctx, token, http.MethodGet, path, nil, &tree); err != nil {
		return nil, fmt.Errorf("getting category tree %s: %w", treeID, err)
	}
	if tree.RootCategoryNode.Category.CategoryID == "" {
		return nil, fmt.Errorf("getting category tree %s: missing root node", treeID)
	}
	return &tree, nil
}

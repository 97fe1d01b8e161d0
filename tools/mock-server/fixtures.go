package main

import "github.com/donaldgifford/flashlist/internal/ebay"

// defaultCategoryTree is a small slice of the EBAY_US tree. Non-leaf nodes
// reject offers so the category prober has something to find.
func defaultCategoryTree() ebay.CategoryTree {
	leaf := func(id, name string, level int) ebay.CategoryTreeNode {
		return ebay.CategoryTreeNode{
			Category:              ebay.TaxonomyCategory{CategoryID: id, CategoryName: name},
			LeafCategoryTreeNode:  true,
			CategoryTreeNodeLevel: level,
		}
	}
	branch := func(id, name string, level int, children ...ebay.CategoryTreeNode) ebay.CategoryTreeNode {
		return ebay.CategoryTreeNode{
			Category:               ebay.TaxonomyCategory{CategoryID: id, CategoryName: name},
			ChildCategoryTreeNodes: children,
			CategoryTreeNodeLevel:  level,
		}
	}

	return ebay.CategoryTree{
		CategoryTreeID:      "0",
		CategoryTreeVersion: "130",
		RootCategoryNode: branch("0", "Root", 0,
			branch("11700", "Home & Garden", 1,
				branch("159912", "Plants, Seeds & Bulbs", 2,
					leaf("165362", "Plants & Seedlings", 3),
					leaf("159914", "Succulents", 3),
				),
			),
			leaf("220", "Toys & Hobbies", 1),
			leaf("267", "Books & Magazines", 1),
			leaf("281", "Jewelry & Watches", 1),
			leaf("888", "Sporting Goods", 1),
		),
	}
}

// defaultSearchFixture backs the Browse search when no fixture file is given.
func defaultSearchFixture() *browseAPIResponse {
	item := func(id, title, categoryID, price string) ebay.ItemSummary {
		return ebay.ItemSummary{
			ItemID:          "v1|" + id + "|0",
			Title:           title,
			Price:           ebay.Amount{Value: price, Currency: "USD"},
			ItemWebURL:      "https://www.ebay.com/itm/" + id,
			Condition:       "New",
			LeafCategoryIDs: []string{categoryID},
		}
	}

	items := []ebay.ItemSummary{
		item("110000000001", "Live Monstera Deliciosa Plant 4in Pot", "165362", "24.99"),
		item("110000000002", "Echeveria Succulent Rosette Live Plant", "159914", "8.50"),
		item("110000000003", "Wooden Train Set Toy 40 Pieces", "220", "32.00"),
		item("110000000004", "Vintage Paperback Mystery Book Lot", "267", "15.00"),
		item("110000000005", "Sterling Silver Chain Necklace 18in", "281", "45.00"),
		item("110000000006", "Adjustable Dumbbell Fitness Set", "888", "89.99"),
	}
	return &browseAPIResponse{ItemSummaries: items, Total: len(items), Limit: 50}
}

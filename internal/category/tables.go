package category

// Category labels used by the keyword rules and stored in the cache.
const (
	LabelPlants      = "Plants & Seedlings"
	LabelToys        = "Toys & Hobbies"
	LabelBooks       = "Books & Magazines"
	LabelJewelry     = "Jewelry & Watches"
	LabelElectronics = "Electronics & Accessories"
	LabelHealth      = "Health & Beauty"
	LabelSporting    = "Sporting Goods"
	LabelAutomotive  = "Automotive Parts & Accessories"
	LabelArt         = "Art"
	LabelMusic       = "Musical Instruments & Gear"
)

const plantLeafID = "165362"

// fallbackEntries is the curated table used only when the category tree
// cannot be fetched. The plant id is a leaf. The others are top-level
// category ids and may be refused at publish time. A remote refresh keeps
// only ids that are leaves in the fetched tree.
var fallbackEntries = map[string]string{
	LabelPlants:      plantLeafID,
	"Garden Plants":  plantLeafID,
	"Indoor Plants":  plantLeafID,
	"Outdoor Plants": plantLeafID,
	"Flowers":        plantLeafID,
	"Succulents":     plantLeafID,
	"Herbs":          plantLeafID,
	LabelToys:        "220",
	LabelBooks:       "267",
	LabelJewelry:     "281",
	LabelElectronics: "293",
	LabelHealth:      "180959",
	LabelSporting:    "888",
	LabelAutomotive:  "6000",
	LabelArt:         "550",
	LabelMusic:       "176985",
}

// FallbackEntries returns a copy of the offline label to category id table.
func FallbackEntries() map[string]string {
	out := make(map[string]string, len(fallbackEntries))
	for k, v := range fallbackEntries {
		out[k] = v
	}
	return out
}

// plantKeywords route a listing to the plant category ahead of the generic
// keyword rules.
var plantKeywords = []string{
	"plant", "seedling", "perennial", "annual", "garden", "outdoor",
	"landscape", "indoor", "houseplant", "potted", "flower", "bloom",
	"petal", "succulent", "cactus", "ice plant", "herb", "culinary",
	"medicinal",
}

type keywordRule struct {
	label    string
	keywords []string
}

// keywordRules are tried in order; the first rule with a matching keyword
// decides the label.
var keywordRules = []keywordRule{
	{label: LabelToys, keywords: []string{"toy", "game", "hobby"}},
	{label: LabelBooks, keywords: []string{"book", "magazine", "reading"}},
	{label: LabelJewelry, keywords: []string{"jewelry", "watch", "necklace", "ring"}},
	{label: LabelElectronics, keywords: []string{"electronic", "device", "gadget"}},
	{label: LabelHealth, keywords: []string{"health", "beauty", "cosmetic"}},
	{label: LabelSporting, keywords: []string{"sport", "fitness", "exercise"}},
	{label: LabelAutomotive, keywords: []string{"car", "auto", "vehicle"}},
	{label: LabelArt, keywords: []string{"art", "painting", "sculpture"}},
	{label: LabelMusic, keywords: []string{"music", "instrument", "guitar"}},
}

// PlantCandidates are the plant category ids worth probing when the
// curated plant id stops being accepted.
var PlantCandidates = []string{
	"159912", "159913", "159914", "159915", "159916", "159917",
	"159918", "159919", "159920", "159921", "159922",
}

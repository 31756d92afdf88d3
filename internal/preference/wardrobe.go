package preference

import "strings"

// Categories buckets wardrobe items by garment type.
type Categories struct {
	Tops        []string
	Bottoms     []string
	Dresses     []string
	Outerwear   []string
	Shoes       []string
	Accessories []string
}

var categoryKeywords = map[string][]string{
	"tops":        {"shirt", "t-shirt", "tee", "top", "blouse", "polo", "sweater", "hoodie", "sweatshirt", "tank"},
	"bottoms":     {"jeans", "pants", "trousers", "chinos", "shorts", "skirt", "joggers", "leggings", "slacks"},
	"dresses":     {"dress", "gown", "jumpsuit"},
	"outerwear":   {"jacket", "coat", "blazer", "cardigan", "parka", "windbreaker"},
	"shoes":       {"sneakers", "shoes", "boots", "heels", "loafers", "sandals", "trainers"},
	"accessories": {"watch", "belt", "scarf", "hat", "cap", "bag", "backpack", "tie", "necklace", "bracelet", "sunglasses"},
}

// Categorize buckets wardrobe items by keyword. An item can land in at
// most one bucket; unmatched items are dropped.
func Categorize(items []string) Categories {
	var c Categories
	for _, item := range items {
		switch {
		case containsAny(item, categoryKeywords["outerwear"]):
			c.Outerwear = append(c.Outerwear, item)
		case containsAny(item, categoryKeywords["tops"]):
			c.Tops = append(c.Tops, item)
		case containsAny(item, categoryKeywords["dresses"]):
			c.Dresses = append(c.Dresses, item)
		case containsAny(item, categoryKeywords["bottoms"]):
			c.Bottoms = append(c.Bottoms, item)
		case containsAny(item, categoryKeywords["shoes"]):
			c.Shoes = append(c.Shoes, item)
		case containsAny(item, categoryKeywords["accessories"]):
			c.Accessories = append(c.Accessories, item)
		}
	}
	return c
}

// DetectColors returns the closed color labels mentioned in the wardrobe
// text, in the fixed Colors order. This is keyword matching, not vision.
func DetectColors(items []string) []string {
	present := map[string]bool{}
	for _, item := range items {
		for _, color := range Colors {
			if strings.Contains(item, color) {
				present[color] = true
			}
		}
	}

	out := make([]string, 0, len(present))
	for _, color := range Colors {
		if present[color] {
			out = append(out, color)
		}
	}
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

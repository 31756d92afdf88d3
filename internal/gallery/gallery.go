package gallery

import "fmt"

// Outfit is one entry in the fixed 8-image gallery. IDs are 1-based and
// stable: suggestions reference them by ImageRef.
type Outfit struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

var outfits = [8]Outfit{
	{1, "Downtown Casual", "Tee, light jacket and dark jeans for an easy night out.", "/static/outfits/outfit1.jpg"},
	{2, "Campus Layers", "Hoodie over a plain tee with relaxed jeans.", "/static/outfits/outfit2.jpg"},
	{3, "Smart Office", "Button-down with chinos, clean and unfussy.", "/static/outfits/outfit3.jpg"},
	{4, "Garden Party", "Polo with pressed trousers for dressed-up casual.", "/static/outfits/outfit4.jpg"},
	{5, "Boardroom Sharp", "Tailored shirt with charcoal slacks.", "/static/outfits/outfit5.jpg"},
	{6, "Evening Formal", "Dress shirt, slim blazer, suit-ready.", "/static/outfits/outfit6.jpg"},
	{7, "Athleisure Office", "Performance polo with tapered joggers.", "/static/outfits/outfit7.jpg"},
	{8, "Track Night", "Fitted track jacket with athletic-cut pants.", "/static/outfits/outfit8.jpg"},
}

// All returns the gallery in ID order.
func All() []Outfit {
	out := make([]Outfit, len(outfits))
	copy(out, outfits[:])
	return out
}

// ByRef returns the outfit for a 1-based image reference.
func ByRef(n int) (Outfit, error) {
	if n < 1 || n > len(outfits) {
		return Outfit{}, fmt.Errorf("outfit ref %d out of range [1,%d]", n, len(outfits))
	}
	return outfits[n-1], nil
}

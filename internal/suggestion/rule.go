package suggestion

import (
	"context"
	"fmt"
	"strings"

	"github.com/StyleMate-25-26J/stylemate-backend/internal/preference"
)

// tableEntry is one curated outfit line. Text carries a single %s slot for
// the preferred color.
type tableEntry struct {
	Text     string
	ImageRef int
}

// baseTable covers every (style, occasion) pair; the color is interpolated
// into the garment text. Styles always dispatch to their own bucket.
var baseTable = map[string]map[string]tableEntry{
	"casual": {
		"work":    {"Try a %s button-down with chinos.", 3},
		"party":   {"Go with a %s tee under a light jacket and dark jeans.", 1},
		"college": {"A %s hoodie over a plain tee with relaxed jeans works well.", 2},
		"wedding": {"Dress it up slightly: a %s polo with pressed trousers.", 4},
	},
	"formal": {
		"work":    {"A tailored %s shirt with charcoal slacks keeps it sharp.", 5},
		"party":   {"A %s dress shirt under a slim blazer, no tie.", 6},
		"college": {"Smart-casual: a %s oxford shirt with dark chinos.", 5},
		"wedding": {"A %s tie over a crisp white shirt and a two-piece suit.", 6},
	},
	"sporty": {
		"work":    {"A %s performance polo with tapered joggers reads office-friendly.", 7},
		"party":   {"A fitted %s track jacket over black athletic-cut pants.", 8},
		"college": {"A %s crewneck sweatshirt with clean running shoes is the easy pick.", 7},
		"wedding": {"Tone it down: a %s knit polo with slacks instead of joggers.", 8},
	},
}

// overrides are curated full-triple entries that beat the base table.
var overrides = map[string]tableEntry{
	"casual|party|black":   {"All black works: black tee, black jeans, white sneakers to break it up.", 1},
	"formal|wedding|black": {"Classic black tie: black suit, white shirt, black bow tie.", 6},
	"formal|work|white":    {"A white spread-collar shirt with a navy suit never misses.", 5},
	"sporty|party|red":     {"A red retro track jacket with black tapered pants and white trainers.", 8},
}

// accessoryHints are deterministic per-occasion closers.
var accessoryHints = map[string]string{
	"work":    "Add a leather-strap watch.",
	"party":   "Finish with a minimal chain or bracelet.",
	"college": "A canvas backpack ties it together.",
	"wedding": "A pocket square never hurts.",
}

// RuleStrategy is the deterministic decision table. It is a pure function
// of the request: identical input yields byte-identical output.
type RuleStrategy struct{}

func NewRuleStrategy() *RuleStrategy {
	return &RuleStrategy{}
}

func (s *RuleStrategy) Name() string { return "rules" }

func (s *RuleStrategy) Suggest(_ context.Context, req preference.Request) (Suggestion, error) {
	entry, ok := overrides[req.Style+"|"+req.Occasion+"|"+req.Color]
	if !ok {
		entry = lookupBase(req.Style, req.Occasion)
		entry.Text = fmt.Sprintf(entry.Text, req.Color)
	}

	parts := []string{entry.Text}
	if hint, ok := accessoryHints[req.Occasion]; ok {
		parts = append(parts, hint)
	}
	parts = append(parts, wardrobeNotes(req.Wardrobe)...)

	return Suggestion{
		Text:     strings.Join(parts, " "),
		ImageRef: entry.ImageRef,
		Source:   SourceRules,
	}, nil
}

// lookupBase never misses for normalized input; the defaults keep the
// table total even if the collector's enums grow ahead of it.
func lookupBase(style, occasion string) tableEntry {
	bucket, ok := baseTable[style]
	if !ok {
		bucket = baseTable["casual"]
	}
	if entry, ok := bucket[occasion]; ok {
		return entry
	}
	return bucket["work"]
}

// wardrobeNotes folds the user's own garments into the suggestion. Both
// notes are pure functions of the wardrobe list.
func wardrobeNotes(wardrobe []string) []string {
	if len(wardrobe) == 0 {
		return nil
	}

	var notes []string

	cats := preference.Categorize(wardrobe)
	owned := append(append([]string{}, cats.Tops...), cats.Bottoms...)
	if len(owned) > 0 {
		if len(owned) > 2 {
			owned = owned[:2]
		}
		notes = append(notes, fmt.Sprintf("Work in your %s.", strings.Join(owned, " and ")))
	}

	if colors := preference.DetectColors(wardrobe); len(colors) > 0 {
		notes = append(notes, fmt.Sprintf("Your wardrobe already leans %s.", strings.Join(colors, " and ")))
	}

	return notes
}

package preference

import (
	"fmt"
	"strings"
)

// Closed enums accepted by the collector. Matching is case-insensitive
// after trimming; anything outside these sets is rejected.
var (
	Styles    = []string{"casual", "formal", "sporty"}
	Occasions = []string{"work", "party", "college", "wedding"}
	Colors    = []string{"red", "blue", "green", "black", "white", "gray", "yellow", "pink"}
)

const maxWardrobeItems = 20

// Request is the normalized, validated input to the suggestion engine.
type Request struct {
	Style    string   `json:"style"`
	Occasion string   `json:"occasion"`
	Color    string   `json:"colorPreference"`
	Wardrobe []string `json:"wardrobe,omitempty"`

	// UseAI is the caller's explicit choice; nil means the server
	// configuration decides.
	UseAI *bool `json:"use_ai,omitempty"`
}

// ValidationError names the first form field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Normalize validates raw form fields into a Request. It has no side
// effects; the caller re-prompts the user on a *ValidationError.
func Normalize(raw map[string]string) (Request, error) {
	style, err := matchEnum(raw, "style", Styles, nil)
	if err != nil {
		return Request{}, err
	}

	occasion, err := matchEnum(raw, "occasion", Occasions, nil)
	if err != nil {
		return Request{}, err
	}

	color, err := matchEnum(raw, "colorPreference", Colors, []string{"color_preference", "color"})
	if err != nil {
		return Request{}, err
	}

	return Request{
		Style:    style,
		Occasion: occasion,
		Color:    color,
		Wardrobe: parseWardrobe(raw["wardrobe"]),
		UseAI:    parseUseAI(raw["use_ai"]),
	}, nil
}

func matchEnum(raw map[string]string, field string, allowed []string, aliases []string) (string, error) {
	val, ok := raw[field]
	if !ok {
		for _, alias := range aliases {
			if v, found := raw[alias]; found {
				val, ok = v, true
				break
			}
		}
	}

	val = strings.ToLower(strings.TrimSpace(val))
	if !ok || val == "" {
		return "", &ValidationError{Field: field, Reason: "is required"}
	}

	for _, a := range allowed {
		if val == a {
			return a, nil
		}
	}
	return "", &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")),
	}
}

// parseWardrobe splits a free-text, comma-separated garment list. It never
// fails: blanks are dropped and the list is capped at maxWardrobeItems.
func parseWardrobe(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		item := strings.ToLower(strings.TrimSpace(p))
		if item == "" {
			continue
		}
		items = append(items, item)
		if len(items) == maxWardrobeItems {
			break
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

// parseUseAI maps checkbox-style values onto the tri-state flag. Anything
// unrecognized is treated as absent rather than a validation failure.
func parseUseAI(s string) *bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "on", "1", "yes":
		v := true
		return &v
	case "false", "off", "0", "no":
		v := false
		return &v
	default:
		return nil
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/StyleMate-25-26J/stylemate-backend/internal/preference"
	"github.com/StyleMate-25-26J/stylemate-backend/internal/suggestion"
)

// advisor previews the deterministic rule table from the command line,
// without a server, database or API key.
func main() {
	style := flag.String("style", "casual", "style: casual, formal, sporty")
	occasion := flag.String("occasion", "work", "occasion: work, party, college, wedding")
	color := flag.String("color", "blue", "color preference: red, blue, green, black, white, gray, yellow, pink")
	wardrobe := flag.String("wardrobe", "", "optional comma-separated garment list")
	table := flag.Bool("table", false, "dump every (style, occasion) base entry and exit")
	flag.Parse()

	rule := suggestion.NewRuleStrategy()

	if *table {
		dumpTable(rule)
		return
	}

	req, err := preference.Normalize(map[string]string{
		"style":           *style,
		"occasion":        *occasion,
		"colorPreference": *color,
		"wardrobe":        *wardrobe,
	})
	if err != nil {
		log.Fatalf("invalid input: %v", err)
	}

	s, _ := rule.Suggest(context.Background(), req)
	fmt.Printf("outfit%d: %s\n", s.ImageRef, s.Text)
}

func dumpTable(rule *suggestion.RuleStrategy) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STYLE\tOCCASION\tREF\tTEXT")

	for _, style := range preference.Styles {
		for _, occasion := range preference.Occasions {
			req := preference.Request{Style: style, Occasion: occasion, Color: "blue"}
			s, _ := rule.Suggest(context.Background(), req)
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", style, occasion, s.ImageRef, s.Text)
		}
	}

	_ = w.Flush()
}

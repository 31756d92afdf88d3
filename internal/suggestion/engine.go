package suggestion

import (
	"context"
	"time"

	"github.com/StyleMate-25-26J/stylemate-backend/internal/logging"
	"github.com/StyleMate-25-26J/stylemate-backend/internal/preference"
)

// Suggestion is the engine's output: display text plus a reference to one
// of the 8 fixed gallery outfits.
type Suggestion struct {
	Text     string `json:"text"`
	ImageRef int    `json:"image_ref"`
	Source   string `json:"source"`
}

const (
	SourceRules = "rules"
	SourceAI    = "ai"
)

// Strategy produces a suggestion for a normalized request.
type Strategy interface {
	Name() string
	Suggest(ctx context.Context, req preference.Request) (Suggestion, error)
}

// Engine selects between the AI strategy and the rule strategy. It holds
// no mutable state and is safe for concurrent use. It never fails outward:
// any AI failure falls through to the rule table silently.
type Engine struct {
	rule *RuleStrategy
	ai   Strategy // nil when AI mode is off
}

// NewEngine builds an engine. Pass a nil Strategy to disable the AI path;
// the rule strategy is always available.
func NewEngine(ai Strategy) *Engine {
	return &Engine{
		rule: NewRuleStrategy(),
		ai:   ai,
	}
}

// Suggest returns a suggestion for the request. The AI strategy is
// attempted only when the server has it configured and the request did not
// opt out; a request cannot force AI on when the server has no credential.
func (e *Engine) Suggest(ctx context.Context, req preference.Request) Suggestion {
	if e.ai != nil && (req.UseAI == nil || *req.UseAI) {
		start := time.Now()
		s, err := e.ai.Suggest(ctx, req)
		recordAICall(time.Since(start), err)
		if err == nil {
			recordServed(SourceAI)
			return s
		}
		logging.NewLogger(ctx).LogWarnf("suggest", "%s strategy failed, falling back to rules: %v", e.ai.Name(), err)
	}

	s, _ := e.rule.Suggest(ctx, req)
	recordServed(SourceRules)
	return s
}

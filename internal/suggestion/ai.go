package suggestion

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/StyleMate-25-26J/stylemate-backend/internal/preference"
)

// Completer is the outbound text-completion dependency (internal/llm
// satisfies it). One call, no retry; errors feed the fallback.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// AIStrategy delegates to an external completion service. It is explicitly
// non-deterministic in text; only the imageRef is stable per request.
type AIStrategy struct {
	client  Completer
	timeout time.Duration
}

func NewAIStrategy(client Completer, timeout time.Duration) *AIStrategy {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &AIStrategy{client: client, timeout: timeout}
}

func (s *AIStrategy) Name() string { return "ai" }

func (s *AIStrategy) Suggest(ctx context.Context, req preference.Request) (Suggestion, error) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.client.Complete(cctx, buildPrompt(req))
	if err != nil {
		return Suggestion{}, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Suggestion{}, fmt.Errorf("completion returned empty text")
	}

	return Suggestion{
		Text:     text,
		ImageRef: hashImageRef(req),
		Source:   SourceAI,
	}, nil
}

func buildPrompt(req preference.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a fashion advisor. Suggest one complete outfit for a %s %s look that favors %s.",
		req.Style, req.Occasion, req.Color)
	if len(req.Wardrobe) > 0 {
		fmt.Fprintf(&b, " The user already owns: %s. Prefer pieces they own.", strings.Join(req.Wardrobe, ", "))
	}
	b.WriteString(" Answer in two sentences, no lists.")
	return b.String()
}

// hashImageRef maps the preference triple into [1,8] so the same request
// always shows the same gallery image regardless of the generated text.
func hashImageRef(req preference.Request) int {
	h := fnv.New32a()
	h.Write([]byte(req.Style + "|" + req.Occasion + "|" + req.Color))
	return int(h.Sum32()%8) + 1
}

package suggestion

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StyleMate-25-26J/stylemate-backend/internal/preference"
)

// fakeStrategy stands in for the AI path.
type fakeStrategy struct {
	calls  int
	result Suggestion
	err    error
}

func (f *fakeStrategy) Name() string { return "fake-ai" }

func (f *fakeStrategy) Suggest(_ context.Context, _ preference.Request) (Suggestion, error) {
	f.calls++
	return f.result, f.err
}

func testRequest() preference.Request {
	return preference.Request{Style: "casual", Occasion: "work", Color: "blue"}
}

func TestEngine_AIDisabledNeverCallsOut(t *testing.T) {
	engine := NewEngine(nil)

	s := engine.Suggest(context.Background(), testRequest())
	assert.Equal(t, SourceRules, s.Source)
	assert.NotEmpty(t, s.Text)
	assert.Equal(t, 3, s.ImageRef)
}

func TestEngine_AISuccess(t *testing.T) {
	fake := &fakeStrategy{result: Suggestion{Text: "wear the thing", ImageRef: 5, Source: SourceAI}}
	engine := NewEngine(fake)

	s := engine.Suggest(context.Background(), testRequest())
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, SourceAI, s.Source)
	assert.Equal(t, "wear the thing", s.Text)
	assert.Equal(t, 5, s.ImageRef)
}

func TestEngine_AIFailureFallsBackSilently(t *testing.T) {
	fake := &fakeStrategy{err: fmt.Errorf("completion timed out")}
	engine := NewEngine(fake)

	s := engine.Suggest(context.Background(), testRequest())
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, SourceRules, s.Source)
	assert.NotEmpty(t, s.Text)
	assert.GreaterOrEqual(t, s.ImageRef, 1)
	assert.LessOrEqual(t, s.ImageRef, 8)
}

func TestEngine_RequestOptOut(t *testing.T) {
	fake := &fakeStrategy{result: Suggestion{Text: "unused", ImageRef: 1, Source: SourceAI}}
	engine := NewEngine(fake)

	optOut := false
	req := testRequest()
	req.UseAI = &optOut

	s := engine.Suggest(context.Background(), req)
	assert.Equal(t, 0, fake.calls)
	assert.Equal(t, SourceRules, s.Source)
}

func TestEngine_RequestCannotForceAIOn(t *testing.T) {
	engine := NewEngine(nil)

	optIn := true
	req := testRequest()
	req.UseAI = &optIn

	s := engine.Suggest(context.Background(), req)
	assert.Equal(t, SourceRules, s.Source)
}

func TestEngine_Metrics(t *testing.T) {
	ResetMetrics()
	defer ResetMetrics()

	fail := &fakeStrategy{err: fmt.Errorf("boom")}
	engine := NewEngine(fail)
	engine.Suggest(context.Background(), testRequest())

	ok := &fakeStrategy{result: Suggestion{Text: "fine", ImageRef: 2, Source: SourceAI}}
	engine = NewEngine(ok)
	engine.Suggest(context.Background(), testRequest())

	snap := GetMetrics().Snapshot()
	assert.Equal(t, int64(1), snap.RulesServed)
	assert.Equal(t, int64(1), snap.AIServed)
	assert.Equal(t, int64(2), snap.AICalls)
	assert.Equal(t, int64(1), snap.AIErrors)
	assert.Equal(t, float64(50), snap.AIErrorRatePct)
}

func TestAIStrategy_HashedImageRefIsStable(t *testing.T) {
	req := testRequest()
	first := hashImageRef(req)
	assert.GreaterOrEqual(t, first, 1)
	assert.LessOrEqual(t, first, 8)

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, hashImageRef(req))
	}
}

type fixedCompleter struct {
	text string
	err  error
}

func (f fixedCompleter) Complete(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

func TestAIStrategy_Suggest(t *testing.T) {
	t.Run("passes text through with hashed ref", func(t *testing.T) {
		ai := NewAIStrategy(fixedCompleter{text: "  A linen shirt with stone chinos.  "}, 0)
		s, err := ai.Suggest(context.Background(), testRequest())
		require.NoError(t, err)
		assert.Equal(t, "A linen shirt with stone chinos.", s.Text)
		assert.Equal(t, hashImageRef(testRequest()), s.ImageRef)
		assert.Equal(t, SourceAI, s.Source)
	})

	t.Run("empty completion is an error", func(t *testing.T) {
		ai := NewAIStrategy(fixedCompleter{text: "   "}, 0)
		_, err := ai.Suggest(context.Background(), testRequest())
		assert.Error(t, err)
	})

	t.Run("client error propagates", func(t *testing.T) {
		ai := NewAIStrategy(fixedCompleter{err: fmt.Errorf("status 500")}, 0)
		_, err := ai.Suggest(context.Background(), testRequest())
		assert.Error(t, err)
	})
}

func TestBuildPrompt(t *testing.T) {
	req := testRequest()
	req.Wardrobe = []string{"blue jeans", "white shirt"}

	p := buildPrompt(req)
	assert.Contains(t, p, "casual")
	assert.Contains(t, p, "work")
	assert.Contains(t, p, "blue")
	assert.Contains(t, p, "blue jeans, white shirt")
}

package match

import (
	"strings"
	"testing"

	"knowbot/internal/model"
)

func facts(phrasings ...[]string) []model.Fact {
	fs := make([]model.Fact, len(phrasings))
	for i, ps := range phrasings {
		fs[i] = model.Fact{ID: i, Answer: "answer", Phrasings: ps}
	}
	return fs
}

func TestEngine_Match_ExactTier(t *testing.T) {
	e := NewEngine(nil, 0)
	fs := facts(
		[]string{"what is blockchain"},
		[]string{"what is a calorie"},
	)

	tests := []struct {
		utterance string
		wantID    int
	}{
		{"what is blockchain", 0},
		{"What is Blockchain?", 0}, // normalization applies
		{"  what   is a calorie ", 1},
	}

	for _, tt := range tests {
		got := e.Match(tt.utterance, fs)
		if !got.Matched || got.FactID != tt.wantID {
			t.Errorf("Match(%q) = %+v, want match on fact %d", tt.utterance, got, tt.wantID)
		}
		if got.Strategy != model.StrategyExact {
			t.Errorf("Match(%q) strategy = %s, want exact", tt.utterance, got.Strategy)
		}
		if got.Confidence != 1.0 {
			t.Errorf("Match(%q) confidence = %f, want 1.0", tt.utterance, got.Confidence)
		}
	}
}

func TestEngine_Match_ExactPrecedence(t *testing.T) {
	// An exact match must win even when another fact scores 100 in the
	// approximate tier (here: fact 0 contains the utterance verbatim as a
	// substring of a phrasing, fact 1 holds the exact phrasing).
	e := NewEngine(nil, 0)
	fs := facts(
		[]string{"tell me about gravity and more"},
		[]string{"tell me about gravity"},
	)

	got := e.Match("tell me about gravity", fs)
	if !got.Matched || got.FactID != 1 || got.Strategy != model.StrategyExact {
		t.Errorf("expected exact match on fact 1, got %+v", got)
	}
}

func TestEngine_Match_ThresholdBoundary(t *testing.T) {
	e := NewEngine(nil, 0)
	base := strings.Repeat("a", 100)

	// Equal-length strings: edit distance equals the number of
	// substituted characters, so the ratio is exactly 100-d.
	at80 := strings.Repeat("a", 80) + strings.Repeat("b", 20)
	at79 := strings.Repeat("a", 79) + strings.Repeat("b", 21)

	got := e.Match(at80, facts([]string{base}))
	if !got.Matched {
		t.Errorf("score exactly 80 must match, got %+v", got)
	}
	if got.Strategy != model.StrategyApproximate {
		t.Errorf("expected approximate strategy, got %s", got.Strategy)
	}
	if got.Confidence != 0.80 {
		t.Errorf("expected confidence 0.80, got %f", got.Confidence)
	}

	got = e.Match(at79, facts([]string{base}))
	if got.Matched {
		t.Errorf("score 79 must not match, got %+v", got)
	}
	if got.Confidence != 0.79 {
		t.Errorf("no-match confidence must still report best score, got %f", got.Confidence)
	}
}

func TestEngine_Match_TieBreak(t *testing.T) {
	// Both facts hold the same phrasing under normalization; the
	// first-inserted fact wins in both tiers.
	e := NewEngine(nil, 0)
	fs := facts(
		[]string{"what is blockchain"},
		[]string{"What is Blockchain"},
	)

	exact := e.Match("what is blockchain", fs)
	if exact.FactID != 0 {
		t.Errorf("exact tie must go to earliest fact, got %d", exact.FactID)
	}

	approx := e.Match("what is blockchian", fs) // transposed, below 100
	if !approx.Matched || approx.FactID != 0 {
		t.Errorf("approximate tie must go to earliest fact, got %+v", approx)
	}
}

func TestEngine_Match_Deterministic(t *testing.T) {
	e := NewEngine(nil, 0)
	fs := facts(
		[]string{"what is blockchain", "explain blockchain"},
		[]string{"what is a calorie", "define calorie"},
	)

	first := e.Match("explain blockchain technology", fs)
	for i := 0; i < 20; i++ {
		if got := e.Match("explain blockchain technology", fs); got != first {
			t.Fatalf("call %d returned %+v, first returned %+v", i, got, first)
		}
	}
}

func TestEngine_Match_EmptyCorpus(t *testing.T) {
	e := NewEngine(nil, 0)

	got := e.Match("anything at all", nil)
	if got.Matched {
		t.Errorf("empty corpus must not match, got %+v", got)
	}
	if got.Confidence != 0.0 {
		t.Errorf("empty corpus confidence must be 0.0, got %f", got.Confidence)
	}
}

func TestEngine_Match_EmptyUtterance(t *testing.T) {
	e := NewEngine(nil, 0)
	fs := facts([]string{"what is blockchain"})

	got := e.Match("", fs)
	if got.Matched {
		t.Errorf("empty utterance must not match, got %+v", got)
	}
}

func TestRatioScorer_PartialAlignment(t *testing.T) {
	s := &RatioScorer{}

	// A phrasing contained verbatim in a longer utterance scores 100
	if got := s.Score("explain blockchain technology", "explain blockchain"); got != 100 {
		t.Errorf("expected 100 for contained phrasing, got %d", got)
	}

	// Disjoint strings score low
	if got := s.Score("completely different", "what is blockchain"); got >= DefaultThreshold {
		t.Errorf("expected low score for disjoint strings, got %d", got)
	}
}

func TestRatioScorer_Bounds(t *testing.T) {
	s := &RatioScorer{}

	if got := s.Score("", ""); got != 100 {
		t.Errorf("both empty = 100, got %d", got)
	}
	if got := s.Score("", "abc"); got != 0 {
		t.Errorf("one empty = 0, got %d", got)
	}
	if got := s.Score("abc", "abc"); got != 100 {
		t.Errorf("identical = 100, got %d", got)
	}
}

func TestTokenScorer(t *testing.T) {
	s := &TokenScorer{}

	if got := s.Score("what is blockchain", "what is blockchain"); got != 100 {
		t.Errorf("identical token sets = 100, got %d", got)
	}
	// 1 shared of 3 distinct tokens
	if got := s.Score("blockchain technology", "blockchain basics"); got != 33 {
		t.Errorf("expected 33, got %d", got)
	}
}

func TestNewScorer(t *testing.T) {
	if s := NewScorer("tokens"); s.Name() != "tokens" {
		t.Errorf("expected tokens scorer, got %s", s.Name())
	}
	if s := NewScorer("ratio"); s.Name() != "ratio" {
		t.Errorf("expected ratio scorer, got %s", s.Name())
	}
	if s := NewScorer("unknown"); s.Name() != "ratio" {
		t.Errorf("unknown name must fall back to ratio, got %s", s.Name())
	}
}

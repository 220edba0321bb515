package assistant

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"knowbot/internal/kb"
	"knowbot/internal/model"
)

func testConfig(t *testing.T) *model.Config {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.KB.Path = filepath.Join(t.TempDir(), "knowledge.yaml")
	return cfg
}

func TestAssistant_Teach(t *testing.T) {
	cfg := testConfig(t)
	a := NewWithStore(cfg, kb.NewStore())

	fact, err := a.Teach(context.Background(), "blockchain", "A distributed ledger shared across a network.")
	if err != nil {
		t.Fatalf("Teach failed: %v", err)
	}

	has := make(map[string]bool)
	for _, p := range fact.Phrasings {
		has[p] = true
	}
	if !has["what is blockchain"] {
		t.Errorf("expected 'what is blockchain' in %v", fact.Phrasings)
	}
	if !has["tell me about blockchain"] {
		t.Errorf("expected a conversational variant in %v", fact.Phrasings)
	}

	// Teach accepts a seed question too, not just a bare topic
	fact2, err := a.Teach(context.Background(), "what is a calorie", "A unit of heat energy.")
	if err != nil {
		t.Fatalf("Teach failed: %v", err)
	}
	if fact2.ID != fact.ID+1 {
		t.Errorf("expected sequential ids, got %d then %d", fact.ID, fact2.ID)
	}
}

func TestAssistant_Teach_Validation(t *testing.T) {
	cfg := testConfig(t)
	a := NewWithStore(cfg, kb.NewStore())

	var verr *model.ValidationError

	_, err := a.Teach(context.Background(), "", "an answer")
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for empty topic, got %v", err)
	}

	_, err = a.Teach(context.Background(), "?!", "an answer")
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for topic empty after normalization, got %v", err)
	}

	_, err = a.Teach(context.Background(), "blockchain", "")
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for empty answer, got %v", err)
	}
}

func TestAssistant_EndToEnd(t *testing.T) {
	cfg := testConfig(t)
	a := NewWithStore(cfg, kb.NewStore())

	answer := "A distributed ledger shared across a network."
	fact, err := a.Teach(context.Background(), "blockchain", answer)
	if err != nil {
		t.Fatalf("Teach failed: %v", err)
	}

	result := a.Resolve("explain blockchain technology")
	if !result.Matched {
		t.Fatalf("expected match, got %+v", result)
	}
	if result.FactID != fact.ID {
		t.Errorf("matched wrong fact: %+v", result)
	}
	if result.Confidence < 0.80 {
		t.Errorf("expected confidence >= 0.80, got %f", result.Confidence)
	}

	got, _ := a.Answer("explain blockchain technology")
	if got != answer {
		t.Errorf("Answer = %q, want %q", got, answer)
	}
}

func TestAssistant_Resolve_CacheInvalidation(t *testing.T) {
	cfg := testConfig(t)
	a := NewWithStore(cfg, kb.NewStore())

	before := a.Resolve("what is blockchain")
	if before.Matched {
		t.Fatalf("expected no match on empty store, got %+v", before)
	}

	if _, err := a.Teach(context.Background(), "blockchain", "A distributed ledger."); err != nil {
		t.Fatalf("Teach failed: %v", err)
	}

	// The memoized no-match must not survive the mutation
	after := a.Resolve("what is blockchain")
	if !after.Matched {
		t.Errorf("expected match after teaching, got %+v", after)
	}
}

func TestAssistant_Enrich_Idempotent(t *testing.T) {
	cfg := testConfig(t)
	a := NewWithStore(cfg, kb.NewStore())

	fact, err := a.Teach(context.Background(), "blockchain", "A distributed ledger.")
	if err != nil {
		t.Fatalf("Teach failed: %v", err)
	}

	// Teach already expanded the topic, so enrichment adds nothing new
	added, err := a.Enrich(context.Background(), fact.ID)
	if err != nil {
		t.Fatalf("Enrich failed: %v", err)
	}
	if added != 0 {
		t.Errorf("expected idempotent enrichment, %d phrasings added", added)
	}

	if _, err := a.Enrich(context.Background(), 99); err == nil {
		t.Error("expected error for unknown fact id")
	}
}

func TestAssistant_Enrich_RecoversDroppedVariants(t *testing.T) {
	cfg := testConfig(t)
	store := kb.NewStore()
	// A fact authored externally with a bare seed question
	id, _ := store.Append("A unit of heat energy.", []string{"what is a calorie"})
	a := NewWithStore(cfg, store)

	added, err := a.Enrich(context.Background(), id)
	if err != nil {
		t.Fatalf("Enrich failed: %v", err)
	}
	if added == 0 {
		t.Error("expected enrichment to add template variants")
	}

	result := a.Resolve("tell me about calorie")
	if !result.Matched || result.FactID != id {
		t.Errorf("expected enriched phrasing to match, got %+v", result)
	}
}

func TestAssistant_Screen(t *testing.T) {
	cfg := testConfig(t)
	a := NewWithStore(cfg, kb.NewStore())

	if v := a.Screen("please do not harm the person"); v.Allowed {
		t.Errorf("expected denial, got %+v", v)
	}
	if v := a.Screen("harm the database"); !v.Allowed {
		t.Errorf("expected allow, got %+v", v)
	}
	if v := a.Screen("help the person"); !v.Allowed {
		t.Errorf("expected allow, got %+v", v)
	}
}

func TestAssistant_TeachPersists(t *testing.T) {
	cfg := testConfig(t)
	a := NewWithStore(cfg, kb.NewStore())

	if _, err := a.Teach(context.Background(), "blockchain", "A distributed ledger."); err != nil {
		t.Fatalf("Teach failed: %v", err)
	}

	reloaded, err := New(cfg)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	result := reloaded.Resolve("what is blockchain")
	if !result.Matched {
		t.Errorf("expected persisted fact to match after reload, got %+v", result)
	}
}

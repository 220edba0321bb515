package kb

import (
	"errors"
	"sync"
	"testing"

	"knowbot/internal/model"
)

func TestStore_Append(t *testing.T) {
	s := NewStore()

	id, err := s.Append("A distributed ledger.", []string{"what is blockchain", "explain blockchain"})
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if id != 0 {
		t.Errorf("expected first id 0, got %d", id)
	}

	id2, err := s.Append("A unit of heat.", []string{"what is a calorie"})
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if id2 != 1 {
		t.Errorf("expected second id 1, got %d", id2)
	}

	if s.Len() != 2 {
		t.Errorf("expected 2 facts, got %d", s.Len())
	}
}

func TestStore_Append_Validation(t *testing.T) {
	s := NewStore()

	_, err := s.Append("", []string{"what is x"})
	if err == nil {
		t.Fatal("expected validation error for empty answer")
	}
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected *model.ValidationError, got %T", err)
	}

	_, err = s.Append("an answer", nil)
	if err == nil {
		t.Fatal("expected validation error for empty phrasings")
	}

	// Phrasings that normalize to nothing count as empty
	_, err = s.Append("an answer", []string{"", "  ", "?!"})
	if err == nil {
		t.Fatal("expected validation error for phrasings empty after normalization")
	}
}

func TestStore_Append_DeduplicatesPhrasings(t *testing.T) {
	s := NewStore()

	id, err := s.Append("answer", []string{"what is X", "What is x?", "  what is x ", "explain x"})
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	fact, ok := s.Get(id)
	if !ok {
		t.Fatal("fact not found")
	}
	if len(fact.Phrasings) != 2 {
		t.Errorf("expected 2 unique phrasings, got %v", fact.Phrasings)
	}
	// First spelling wins
	if fact.Phrasings[0] != "what is X" {
		t.Errorf("expected original spelling kept, got %q", fact.Phrasings[0])
	}
}

func TestStore_AddPhrasings(t *testing.T) {
	s := NewStore()
	id, _ := s.Append("answer", []string{"what is x"})

	added, err := s.AddPhrasings(id, []string{"explain x", "What is X?", "explain x"})
	if err != nil {
		t.Fatalf("AddPhrasings failed: %v", err)
	}
	if added != 1 {
		t.Errorf("expected 1 added, got %d", added)
	}

	// All duplicates is a no-op
	added, err = s.AddPhrasings(id, []string{"what is x", "explain x"})
	if err != nil {
		t.Fatalf("AddPhrasings failed: %v", err)
	}
	if added != 0 {
		t.Errorf("expected no-op, got %d added", added)
	}

	if _, err := s.AddPhrasings(99, []string{"anything"}); err == nil {
		t.Error("expected error for unknown fact id")
	}
}

func TestStore_All_SnapshotIsolation(t *testing.T) {
	s := NewStore()
	id, _ := s.Append("answer", []string{"what is x"})

	snapshot := s.All()
	snapshot[0].Phrasings[0] = "mutated"
	snapshot[0].Answer = "mutated"

	fact, _ := s.Get(id)
	if fact.Phrasings[0] != "what is x" || fact.Answer != "answer" {
		t.Error("snapshot mutation leaked into store")
	}
}

func TestStore_ConcurrentAppendAndSnapshot(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.Append("answer", []string{"what is concurrency"})
		}()
		go func() {
			defer wg.Done()
			for _, f := range s.All() {
				// Every visible fact must be fully built
				if f.Answer == "" || len(f.Phrasings) == 0 {
					t.Error("partially-built fact visible in snapshot")
				}
			}
		}()
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Errorf("expected 50 facts, got %d", s.Len())
	}
}

package worker

import (
	"context"
	"testing"
	"time"
)

func TestNewLimiter_Defaults(t *testing.T) {
	l := NewLimiter(10, 5)
	if l.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", l.defaultBurst)
	}

	l2 := NewLimiter(0, -1)
	if l2.defaultRate != 1 || l2.defaultBurst != 1 {
		t.Errorf("expected rate 1 burst 1 for invalid input, got %v/%d", l2.defaultRate, l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	l := NewLimiter(100, 1)
	ctx := context.Background()

	if err := l.Wait(ctx, "http://example.com/faq"); err != nil {
		t.Errorf("wait failed: %v", err)
	}

	// A different host has its own limiter
	if err := l.Wait(ctx, "http://other.example.org/faq"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_WaitWithDelay(t *testing.T) {
	l := NewLimiter(100, 1)
	ctx := context.Background()

	start := time.Now()
	if err := l.WaitWithDelay(ctx, "http://example.com/faq", 50*time.Millisecond); err != nil {
		t.Fatalf("wait failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("additional delay not honored: %v", elapsed)
	}
}

func TestLimiter_WaitRespectsCancellation(t *testing.T) {
	l := NewLimiter(0.001, 1) // Effectively frozen after the first token
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_ = l.Wait(ctx, "http://example.com/a")
	if err := l.Wait(ctx, "http://example.com/b"); err == nil {
		t.Error("expected context error once the rate budget is exhausted")
	}
}

package ratelimit

import "testing"

func TestNilLimiterAlwaysAllows(t *testing.T) {
	var l *Limiter
	for i := 0; i < 100; i++ {
		if !l.Allow() {
			t.Fatal("nil limiter must always allow")
		}
	}
}

func TestLimiterCapsBurst(t *testing.T) {
	l := New(5)

	allowed := 0
	for i := 0; i < 20; i++ {
		if l.Allow() {
			allowed++
		}
	}
	if allowed != 5 {
		t.Fatalf("expected burst of 5, got %d", allowed)
	}
}

func TestNonPositiveRateDisablesLimiting(t *testing.T) {
	if l := New(0); l != nil {
		t.Fatal("zero rate should return nil limiter")
	}
}

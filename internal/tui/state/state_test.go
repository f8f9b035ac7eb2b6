package state

import "testing"

func TestClampCursor(t *testing.T) {
	if got := ClampCursor(-1, 3); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if got := ClampCursor(3, 3); got != 2 {
		t.Fatalf("expected clamp to 2, got %d", got)
	}
	if got := ClampCursor(1, 3); got != 1 {
		t.Fatalf("expected keep 1, got %d", got)
	}
	if got := ClampCursor(4, 0); got != 0 {
		t.Fatalf("expected 0 for empty list, got %d", got)
	}
}

func TestPageStep(t *testing.T) {
	if got := PageStep(0, 6); got != 10 {
		t.Fatalf("expected default step 10, got %d", got)
	}
	if got := PageStep(12, 6); got != 6 {
		t.Fatalf("expected step 6, got %d", got)
	}
	if got := PageStep(7, 6); got != 3 {
		t.Fatalf("expected minimum step 3, got %d", got)
	}
}

func TestClampScroll(t *testing.T) {
	if got := ClampScroll(50, 40, 10); got != 30 {
		t.Fatalf("expected max offset 30, got %d", got)
	}
	if got := ClampScroll(-3, 40, 10); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := ClampScroll(5, 4, 10); got != 0 {
		t.Fatalf("expected 0 when content fits, got %d", got)
	}
}

func TestReveal(t *testing.T) {
	if got := Reveal("Cargo", 3); got != "Car" {
		t.Fatalf("unexpected reveal: %q", got)
	}
	if got := Reveal("Cargo", 10); got != "Cargo" {
		t.Fatalf("unexpected full reveal: %q", got)
	}
	if got := Reveal("Cargo", 0); got != "" {
		t.Fatalf("expected empty reveal, got %q", got)
	}
}

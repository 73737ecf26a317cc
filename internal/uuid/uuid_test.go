package uuid

import "testing"

func TestNew(t *testing.T) {
	a, b := New(), New()
	if !IsValid(a) || !IsValid(b) {
		t.Fatalf("expected valid uuids, got %q %q", a, b)
	}
	if a == b {
		t.Error("expected distinct ids")
	}
}

func TestDerive(t *testing.T) {
	a := Derive("recurring", "rent", "2026-03-25")
	if a != Derive("recurring", "rent", "2026-03-25") {
		t.Error("expected the same parts to give the same id")
	}
	if a == Derive("recurring", "rent", "2026-04-25") {
		t.Error("expected different parts to give different ids")
	}
	if !IsValid(a) {
		t.Errorf("expected valid uuid, got %q", a)
	}
}

func TestParse(t *testing.T) {
	if _, err := Parse("not-a-uuid"); err == nil {
		t.Error("expected parse error")
	}
	id := New()
	got, err := Parse(id)
	if err != nil || got != id {
		t.Errorf("expected %q, got %q (%v)", id, got, err)
	}
}

package validator

import "testing"

func TestValidator_FirstErrorWins(t *testing.T) {
	v := New()
	v.Check(false, "low", "must be a number")
	v.Check(false, "low", "must not be greater than high")
	v.Check(true, "high", "unused")

	if v.Valid() {
		t.Fatalf("validator must be invalid")
	}
	if got := v.Errors["low"]; got != "must be a number" {
		t.Fatalf("unexpected message: %q", got)
	}
	if _, ok := v.Errors["high"]; ok {
		t.Fatalf("passing check must not add an error")
	}
}

func TestPermittedValue(t *testing.T) {
	if !PermittedValue("pie", "pie", "scatter") {
		t.Fatalf("pie must be permitted")
	}
	if PermittedValue("bar", "pie", "scatter") {
		t.Fatalf("bar must not be permitted")
	}
}

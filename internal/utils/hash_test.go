package utils

import "testing"

func TestHash(t *testing.T) {
	a := Hash("отличный товар")
	b := Hash("отличный товар")
	c := Hash("отличный  товар")

	if a != b {
		t.Errorf("same input hashed differently: %s vs %s", a, b)
	}
	if a == c {
		t.Error("different inputs hashed the same")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}

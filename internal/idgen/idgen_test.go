package idgen

import (
	"strings"
	"testing"
)

func TestGenIDFormat(t *testing.T) {
	id := GenID()
	if len(id) != 32 {
		t.Errorf("len(GenID()) = %d, want 32", len(id))
	}
	if strings.Contains(id, "-") {
		t.Errorf("GenID() = %q, want no dashes", id)
	}
	if strings.ToLower(id) != id {
		t.Errorf("GenID() = %q, want all lowercase", id)
	}
}

func TestGenIDIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenID()
		if seen[id] {
			t.Fatalf("GenID() produced a duplicate: %s", id)
		}
		seen[id] = true
	}
}

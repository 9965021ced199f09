package query

import "testing"

func TestIncrementString(t *testing.T) {
	if got := incrementString("CA"); got != "CB" {
		t.Errorf("incrementString(CA) = %q, want CB", got)
	}
	if got := incrementString(""); got != "" {
		t.Errorf("incrementString(\"\") = %q, want empty", got)
	}
	if got := incrementString(string([]byte{0xFF, 0xFF})); got != "" {
		t.Errorf("incrementString(all-0xFF) = %q, want empty (no finite bound)", got)
	}
	if got := incrementString(string([]byte{'A', 0xFF})); got != "B" {
		t.Errorf("incrementString(A,0xFF) = %q, want B (carry)", got)
	}
}

func TestExactRangeAndPrefixRange(t *testing.T) {
	keys := []string{"AA", "AB", "AB", "AC", "BA"}
	key := func(i int) string { return keys[i] }

	lo, hi := exactRange(0, len(keys), key, "AB")
	if lo != 1 || hi != 3 {
		t.Errorf("exactRange(AB) = [%d,%d), want [1,3)", lo, hi)
	}

	lo, hi = exactRange(0, len(keys), key, "ZZ")
	if lo != hi {
		t.Errorf("exactRange(ZZ) should be empty, got [%d,%d)", lo, hi)
	}

	lo, hi = prefixRange(0, len(keys), key, "A")
	if lo != 0 || hi != 4 {
		t.Errorf("prefixRange(A) = [%d,%d), want [0,4)", lo, hi)
	}
}

package taxonomy

import "testing"

func TestFuzzyScorerExcludesNonMatchingCandidates(t *testing.T) {
	s := NewFuzzyScorer()
	pattern := s.ParsePattern("girl")

	scored := s.ScoreCandidates(pattern, []string{"1girl", "girlfriend", "nothing"})
	if len(scored) == 0 {
		t.Fatal("expected at least one match for \"girl\"")
	}
	for _, c := range scored {
		if c.Key == "nothing" {
			t.Fatalf("unrelated candidate %q should not match pattern %q", c.Key, "girl")
		}
	}
}

func TestMultiHaystackIteratesAcrossSegments(t *testing.T) {
	m := multiHaystack([][]string{{"a", "b"}, {"c", "d", "e"}})

	if m.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", m.Len())
	}
	want := []string{"a", "b", "c", "d", "e"}
	for i, w := range want {
		if got := m.String(i); got != w {
			t.Fatalf("String(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestMultiHaystackEmptySegment(t *testing.T) {
	m := multiHaystack([][]string{{}, {"only"}})
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
	if got := m.String(0); got != "only" {
		t.Fatalf("String(0) = %q, want %q", got, "only")
	}
}

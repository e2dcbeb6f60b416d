package taxonomy

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestBuildIndexEveryPostingPresentInBothIndices(t *testing.T) {
	ix := buildIndex([]string{sampleCatalog}, log.Default())

	for i, entry := range ix.dict {
		checkCompletionKey := func(normalized string, wantAliasIndex int) {
			found := false
			for _, e := range ix.postingsFor(normalized) {
				if e.Index == i && e.AliasIndex == wantAliasIndex {
					found = true
				}
			}
			if !found {
				t.Fatalf("CompletionIndex missing {index=%d, alias_index=%d} under %q", i, wantAliasIndex, normalized)
			}
		}
		checkQueryKey := func(normalized string, wantAliasIndex int) {
			found := false
			for _, e := range ix.queryIndex[normalized] {
				if e.Index == i && e.AliasIndex == wantAliasIndex {
					found = true
				}
			}
			if !found {
				t.Fatalf("QueryIndex missing {index=%d, alias_index=%d} under %q", i, wantAliasIndex, normalized)
			}
		}

		checkCompletionKey(NormalizeForAutoCompletion(entry.Key), noAlias)
		checkQueryKey(NormalizeForQuery(entry.Key), noAlias)
		for j, alias := range entry.Aliases {
			checkCompletionKey(NormalizeForAutoCompletion(alias), j)
			checkQueryKey(NormalizeForQuery(alias), j)
		}
	}
}

func TestBuildIndexHaystackPartition(t *testing.T) {
	ix := buildIndex([]string{sampleCatalog}, log.Default())

	seen := make(map[string]int)
	for _, k := range ix.asciiHaystack {
		if !isASCII(k) {
			t.Fatalf("ascii haystack contains non-ascii key %q", k)
		}
		seen[k]++
	}
	for _, k := range ix.nonASCIIHaystack {
		if isASCII(k) {
			t.Fatalf("non-ascii haystack contains ascii key %q", k)
		}
		seen[k]++
	}
	for k, n := range seen {
		if n != 1 {
			t.Fatalf("haystack key %q appears %d times, want exactly once", k, n)
		}
	}
}

func TestBuildIndexPostingListsAreSorted(t *testing.T) {
	ix := buildIndex([]string{sampleCatalog}, log.Default())

	for _, k := range append(append([]string{}, ix.asciiHaystack...), ix.nonASCIIHaystack...) {
		postings := ix.postingsFor(k)
		for i := 1; i < len(postings); i++ {
			if compareEntries(ix.dict, postings[i-1], postings[i]) > 0 {
				t.Fatalf("posting list for %q not sorted: %+v", k, postings)
			}
		}
	}
}

func TestBuildIndexHaystacksAreSorted(t *testing.T) {
	ix := buildIndex([]string{sampleCatalog}, log.Default())

	for _, haystack := range [][]string{ix.asciiHaystack, ix.nonASCIIHaystack} {
		for i := 1; i < len(haystack); i++ {
			prev := haystackStats(ix.dict, haystack[i-1], ix.postingsFor(haystack[i-1]))
			cur := haystackStats(ix.dict, haystack[i], ix.postingsFor(haystack[i]))
			if compareHaystackKeys(prev, cur) > 0 {
				t.Fatalf("haystack not sorted at position %d: %q before %q", i, haystack[i-1], haystack[i])
			}
		}
	}
}

func TestBuildIndexDeterministic(t *testing.T) {
	a := buildIndex([]string{sampleCatalog}, log.Default())
	b := buildIndex([]string{sampleCatalog}, log.Default())

	if len(a.asciiHaystack) != len(b.asciiHaystack) || len(a.nonASCIIHaystack) != len(b.nonASCIIHaystack) {
		t.Fatal("two builds from identical input produced different haystack sizes")
	}
	for i := range a.asciiHaystack {
		if a.asciiHaystack[i] != b.asciiHaystack[i] {
			t.Fatalf("ascii haystack diverged at %d: %q != %q", i, a.asciiHaystack[i], b.asciiHaystack[i])
		}
	}
}

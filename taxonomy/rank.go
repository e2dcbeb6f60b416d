package taxonomy

// compareEntries implements the posting-entry total order from spec §4.4:
// higher count sorts first, canonical before alias, lower entry index
// first. It needs the dictionary table to look up each posting's count.
func compareEntries(dict []DictionaryEntry, a, b IndexEntry) int {
	ca, cb := dict[a.Index].Count, dict[b.Index].Count
	if ca != cb {
		if ca > cb {
			return -1
		}
		return 1
	}
	ia, ib := a.IsCanonical(), b.IsCanonical()
	if ia != ib {
		if ia {
			return -1
		}
		return 1
	}
	switch {
	case a.Index < b.Index:
		return -1
	case a.Index > b.Index:
		return 1
	default:
		return 0
	}
}

// haystackKey is the per-normalized-key aggregate used to order the two
// completion haystacks (spec §4.4).
type haystackKey struct {
	key           string
	aggregateCount int64
	anyCanonical   bool
	minIndex       int
}

// haystackStats computes aggregateCount, anyCanonical, and minIndex for a
// completion-normalized key's posting list.
func haystackStats(dict []DictionaryEntry, key string, postings []IndexEntry) haystackKey {
	hk := haystackKey{key: key, minIndex: -1}
	for _, e := range postings {
		hk.aggregateCount += int64(dict[e.Index].Count)
		if e.IsCanonical() {
			hk.anyCanonical = true
		}
		if hk.minIndex < 0 || e.Index < hk.minIndex {
			hk.minIndex = e.Index
		}
	}
	return hk
}

// compareHaystackKeys implements the haystack-key order from spec §4.4:
// higher aggregate count first, any-canonical before alias-only, lower
// minimum entry index first.
func compareHaystackKeys(a, b haystackKey) int {
	if a.aggregateCount != b.aggregateCount {
		if a.aggregateCount > b.aggregateCount {
			return -1
		}
		return 1
	}
	if a.anyCanonical != b.anyCanonical {
		if a.anyCanonical {
			return -1
		}
		return 1
	}
	switch {
	case a.minIndex < b.minIndex:
		return -1
	case a.minIndex > b.minIndex:
		return 1
	default:
		return 0
	}
}

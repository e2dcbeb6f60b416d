package taxonomy

// Term is the shared projection of an IndexEntry against its
// DictionaryEntry: the matched surface form plus the entry's canonical
// metadata (spec §4.5/§4.6).
type Term struct {
	Term         string
	IsCanonical  bool
	CanonicalKey string
	Category     int32
	Count        int32
	Aliases      []string
}

// CompletionResult is one fuzzy-search hit: a Term plus the scorer's
// relevance score for the haystack key it was expanded from.
type CompletionResult struct {
	Term
	Score uint32
}

// QueryResult is one query_words lookup outcome: the input word and its
// exact-match Terms in catalog insertion order. Terms is empty, never
// nil-vs-empty distinguished, when Word has no match.
type QueryResult struct {
	Word  string
	Terms []Term
}

// projectTerm builds the result projection for one posting.
func projectTerm(dict []DictionaryEntry, e IndexEntry) Term {
	entry := dict[e.Index]
	if e.IsCanonical() {
		return Term{
			Term:         entry.Key,
			IsCanonical:  true,
			CanonicalKey: entry.Key,
			Category:     entry.Category,
			Count:        entry.Count,
			Aliases:      entry.Aliases,
		}
	}
	return Term{
		Term:         entry.Aliases[e.AliasIndex],
		IsCanonical:  false,
		CanonicalKey: entry.Key,
		Category:     entry.Category,
		Count:        entry.Count,
		Aliases:      entry.Aliases,
	}
}

package taxonomy

import "time"

// FuzzySearch ranks completion candidates against query and expands each
// matched haystack key into its dictionary postings (spec §4.4).
//
// maxEntries, if non-nil, caps the number of returned results; if nil, the
// search is unbounded (spec §4.5 step 6 applies the cap only "if
// max_entries is set"). Callers wanting a default cap, such as the IPC
// server, apply one of their own before calling in.
// forceTryNonASCII, if non-nil, overrides the automatic non-ASCII
// haystack decision: nil means "search the non-ASCII haystack only when
// the normalized query itself contains a non-ASCII rune".
func (e *Engine) FuzzySearch(query string, maxEntries *int, forceTryNonASCII *bool) []CompletionResult {
	start := time.Now()
	defer func() {
		e.logger.Debugf("[taxonomy] fuzzy_search: %s (query=%q)", time.Since(start), query)
	}()

	if maxEntries != nil && *maxEntries <= 0 {
		return nil
	}

	normalized := NormalizeForAutoCompletion(query)

	tryNonASCII := !isASCII(normalized)
	if forceTryNonASCII != nil {
		tryNonASCII = *forceTryNonASCII
	}

	e.mu.Lock()
	pattern := e.scorer.ParsePattern(normalized)
	var scored []ScoredCandidate
	if tryNonASCII {
		scored = e.scorer.ScoreCandidates(pattern, e.ix.asciiHaystack, e.ix.nonASCIIHaystack)
	} else {
		scored = e.scorer.ScoreCandidates(pattern, e.ix.asciiHaystack)
	}
	e.mu.Unlock()

	// scoreByKey lets the expansion loop below look up the score the
	// scorer itself assigned to an entry's canonical key, when that key
	// was independently judged a match (not invented by the engine).
	scoreByKey := make(map[string]uint32, len(scored))
	for _, c := range scored {
		scoreByKey[c.Key] = c.Score
	}

	// Estimate 2 entries per match on average, capped by maxEntries when set.
	estimatedCapacity := len(scored) * 2
	if maxEntries != nil && *maxEntries < estimatedCapacity {
		estimatedCapacity = *maxEntries
	}
	results := make([]CompletionResult, 0, estimatedCapacity)
	emitted := make(map[IndexEntry]bool, estimatedCapacity)

	// emit appends posting's projection if not already emitted, and reports
	// whether the caller should keep expanding (false once maxEntries is
	// reached).
	emit := func(posting IndexEntry, score uint32) bool {
		if emitted[posting] {
			return true
		}
		emitted[posting] = true
		results = append(results, CompletionResult{
			Term:  projectTerm(e.ix.dict, posting),
			Score: score,
		})
		return maxEntries == nil || len(results) < *maxEntries
	}

	for _, candidate := range scored {
		for _, posting := range e.ix.postingsFor(candidate.Key) {
			// The scorer ranks haystack keys independently of the entries
			// behind them, so a popular entry's canonical key can score
			// below one of its own aliases (e.g. an exact alias match
			// outscoring a same-entry match with a leading gap). When the
			// scorer separately judged that canonical key a match too,
			// surface it ahead of the alias here, matching the
			// canonical-before-alias order already used within a single
			// posting list (spec §4.4).
			if !posting.IsCanonical() {
				canonical := IndexEntry{Index: posting.Index, AliasIndex: noAlias}
				if canonicalScore, ok := scoreByKey[NormalizeForAutoCompletion(e.ix.dict[posting.Index].Key)]; ok {
					if !emit(canonical, canonicalScore) {
						return results
					}
				}
			}
			if !emit(posting, candidate.Score) {
				return results
			}
		}
	}
	return results
}

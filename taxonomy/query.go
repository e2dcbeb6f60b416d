package taxonomy

import "time"

// QueryWords looks up each word by exact canonical-key-or-alias match
// (spec §4.6). It is total and infallible: a word with no match yields a
// QueryResult with an empty Terms slice, never an error.
func (e *Engine) QueryWords(words []string) []QueryResult {
	start := time.Now()
	defer func() {
		e.logger.Debugf("[taxonomy] query_words: %s (%d words)", time.Since(start), len(words))
	}()

	results := make([]QueryResult, len(words))
	for i, word := range words {
		normalized := NormalizeForQuery(word)
		postings := e.ix.queryIndex[normalized]

		terms := make([]Term, len(postings))
		for j, posting := range postings {
			terms[j] = projectTerm(e.ix.dict, posting)
		}

		results[i] = QueryResult{Word: word, Terms: terms}
	}
	return results
}

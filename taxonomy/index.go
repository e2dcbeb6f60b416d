package taxonomy

import (
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// index is the built, immutable state an Engine queries: the dictionary
// table in catalog order, a trie-backed CompletionIndex keyed by
// completion-normalized strings, a map-backed QueryIndex keyed by
// query-normalized strings, and the two pre-sorted completion haystacks
// (ASCII keys, non-ASCII keys) used by fuzzy search.
type index struct {
	dict []DictionaryEntry

	completionTrie *patricia.Trie
	queryIndex     map[string][]IndexEntry

	asciiHaystack    []string
	nonASCIIHaystack []string
}

// buildIndex parses catalogs into dictionary entries and builds the
// completion trie, query map, and sorted haystacks from them. It never
// fails: malformed catalog rows are skipped and logged by parseCatalogs.
func buildIndex(catalogs []string, logger *log.Logger) *index {
	buildStart := time.Now()

	parseStart := time.Now()
	dict := parseCatalogs(catalogs, logger)
	logger.Debugf("[taxonomy] CSV parsing and indexing: %s (%d entries)", time.Since(parseStart), len(dict))

	completionPostings := make(map[string][]IndexEntry)
	queryPostings := make(map[string][]IndexEntry)

	addPosting := func(postings map[string][]IndexEntry, key string, e IndexEntry) {
		postings[key] = append(postings[key], e)
	}

	for i, entry := range dict {
		canonical := IndexEntry{Index: i, AliasIndex: noAlias}
		addPosting(completionPostings, NormalizeForAutoCompletion(entry.Key), canonical)
		addPosting(queryPostings, NormalizeForQuery(entry.Key), canonical)

		for j, alias := range entry.Aliases {
			aliasEntry := IndexEntry{Index: i, AliasIndex: j}
			addPosting(completionPostings, NormalizeForAutoCompletion(alias), aliasEntry)
			addPosting(queryPostings, NormalizeForQuery(alias), aliasEntry)
		}
	}

	sortStart := time.Now()
	trie := patricia.NewTrie()
	for key, postings := range completionPostings {
		slices.SortFunc(postings, func(a, b IndexEntry) int {
			return compareEntries(dict, a, b)
		})
		trie.Insert(patricia.Prefix(key), postings)
	}
	logger.Debugf("[taxonomy] posting sort: %s (%d completion keys)", time.Since(sortStart), len(completionPostings))

	haystackStart := time.Now()
	type keyedHaystack struct {
		hk  haystackKey
		key string
	}
	var asciiKeys, nonASCIIKeys []keyedHaystack
	trie.Visit(func(prefix patricia.Prefix, item patricia.Item) error {
		key := string(prefix)
		postings := item.([]IndexEntry)
		hk := haystackStats(dict, key, postings)
		if isASCII(key) {
			asciiKeys = append(asciiKeys, keyedHaystack{hk: hk, key: key})
		} else {
			nonASCIIKeys = append(nonASCIIKeys, keyedHaystack{hk: hk, key: key})
		}
		return nil
	})

	sortKeyed := func(in []keyedHaystack) []string {
		slices.SortFunc(in, func(a, b keyedHaystack) int {
			return compareHaystackKeys(a.hk, b.hk)
		})
		out := make([]string, len(in))
		for i, kh := range in {
			out[i] = kh.key
		}
		return out
	}

	ix := &index{
		dict:             dict,
		completionTrie:   trie,
		queryIndex:       queryPostings,
		asciiHaystack:    sortKeyed(asciiKeys),
		nonASCIIHaystack: sortKeyed(nonASCIIKeys),
	}
	logger.Debugf("[taxonomy] haystack preparation: %s (ASCII: %d, non-ASCII: %d)",
		time.Since(haystackStart), len(ix.asciiHaystack), len(ix.nonASCIIHaystack))
	logger.Debugf("[taxonomy] index build: %s (%d entries total)", time.Since(buildStart), len(dict))
	return ix
}

// postingsFor returns the sorted posting list the completion trie stores
// for an exact completion-normalized key, or nil if the key is absent.
func (ix *index) postingsFor(key string) []IndexEntry {
	item := ix.completionTrie.Get(patricia.Prefix(key))
	if item == nil {
		return nil
	}
	return item.([]IndexEntry)
}

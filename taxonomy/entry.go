// Package taxonomy implements a dictionary-backed auto-completion and exact
// lookup engine for a tag taxonomy: canonical terms with multilingual
// aliases, category codes, and popularity counts.
//
// An Engine is built once from one or more CSV catalog blobs via New, and
// is immutable and safe for concurrent QueryWords calls after that. It
// serves two query primitives: FuzzySearch, a ranked completion search over
// a pluggable Scorer, and QueryWords, an exact lookup by canonical key or
// alias.
package taxonomy

// DictionaryEntry is one surviving catalog row: a canonical key, an opaque
// category code, a popularity count, and its ordered aliases.
type DictionaryEntry struct {
	Key      string
	Category int32
	Count    int32
	Aliases  []string
}

// IndexEntry is a pointer into the dictionary table: the entry's position,
// and, if this posting came from an alias rather than the canonical key,
// that alias's position within Aliases.
type IndexEntry struct {
	Index      int
	AliasIndex int // -1 when this entry designates the canonical key itself
}

// IsCanonical reports whether this IndexEntry designates the entry's
// canonical key rather than one of its aliases.
func (e IndexEntry) IsCanonical() bool {
	return e.AliasIndex < 0
}

// noAlias is the sentinel AliasIndex value for a canonical-key posting.
const noAlias = -1

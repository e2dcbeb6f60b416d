package taxonomy

import "github.com/sahilm/fuzzy"

// Pattern is an opaque, pre-parsed query produced by a Scorer's
// ParsePattern and consumed by that same Scorer's ScoreCandidates. Callers
// never inspect its fields; only the Scorer that parsed it understands it.
type Pattern struct {
	query string
}

// ScoredCandidate is one (candidate_key, score) pair returned by a Scorer,
// naming a haystack key and the scorer's own relevance score for it.
type ScoredCandidate struct {
	Key   string
	Score uint32
}

// Scorer is the pluggable fuzzy-matching black box fuzzy search depends on
// (spec §4.4). The engine never reorders a Scorer's output and never
// inspects Pattern's internals: the Scorer alone decides relevance order,
// while the engine decides how each matched key expands into dictionary
// entries.
//
// ScoreCandidates receives the haystack as a sequence of segments (ASCII
// keys, then non-ASCII keys, when both are searched) rather than a single
// concatenated slice, so implementations can iterate across them without
// copying.
type Scorer interface {
	ParsePattern(query string) Pattern
	ScoreCandidates(pattern Pattern, haystacks ...[]string) []ScoredCandidate
}

// FuzzyScorer is the engine's default Scorer, adapting
// github.com/sahilm/fuzzy's ranked substring/subsequence matcher to the
// Scorer contract. sahilm/fuzzy already does smart case-insensitive
// matching and returns its Matches best-first, which is what "smart case
// matching, smart normalization" (spec §4.4) calls for.
type FuzzyScorer struct{}

// NewFuzzyScorer constructs the default Scorer.
func NewFuzzyScorer() *FuzzyScorer {
	return &FuzzyScorer{}
}

// ParsePattern stores the already-normalized query string for later
// matching. sahilm/fuzzy has no separate pattern-compilation step, so this
// is a thin wrapper that exists to satisfy the Scorer contract.
func (s *FuzzyScorer) ParsePattern(query string) Pattern {
	return Pattern{query: query}
}

// ScoreCandidates scores every key across haystacks against pattern using
// sahilm/fuzzy, in that library's own best-first relevance order.
func (s *FuzzyScorer) ScoreCandidates(pattern Pattern, haystacks ...[]string) []ScoredCandidate {
	source := multiHaystack(haystacks)
	matches := fuzzy.FindFrom(pattern.query, source)

	out := make([]ScoredCandidate, len(matches))
	for i, m := range matches {
		score := m.Score
		if score < 0 {
			score = 0
		}
		out[i] = ScoredCandidate{Key: m.Str, Score: uint32(score)}
	}
	return out
}

// multiHaystack adapts a sequence of string slice segments to
// fuzzy.Source, letting a scorer iterate across multiple haystacks
// (e.g. ASCII then non-ASCII) without concatenating them into one slice.
type multiHaystack [][]string

func (m multiHaystack) Len() int {
	n := 0
	for _, seg := range m {
		n += len(seg)
	}
	return n
}

func (m multiHaystack) String(i int) string {
	for _, seg := range m {
		if i < len(seg) {
			return seg[i]
		}
		i -= len(seg)
	}
	return ""
}

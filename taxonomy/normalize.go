package taxonomy

import "golang.org/x/text/unicode/norm"

// katakanaLo and katakanaHi bound the Katakana block folded to Hiragana by
// NormalizeForAutoCompletion (U+30A1..U+30F6 inclusive).
const (
	katakanaLo = 0x30A1
	katakanaHi = 0x30F6
	// hiraganaOffset is subtracted from a Katakana code point to land on its
	// Hiragana counterpart.
	hiraganaOffset = 0x60
)

// NormalizeForAutoCompletion produces the completion-normalized form of s:
// compatibility-composition (NFKC) normalization, underscores folded to
// spaces, and Katakana folded to Hiragana. It maximizes fuzzy recall and is
// idempotent and total.
func NormalizeForAutoCompletion(s string) string {
	composed := norm.NFKC.String(s)
	out := make([]rune, 0, len(composed))
	for _, r := range composed {
		switch {
		case r == '_':
			out = append(out, ' ')
		case r >= katakanaLo && r <= katakanaHi:
			out = append(out, r-hiraganaOffset)
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

// NormalizeForQuery produces the query-normalized form of s: canonical
// composition (NFC) normalization and underscores folded to spaces. It
// preserves script distinctions (no compatibility folding, no Katakana
// folding) for predictable exact lookup, and is idempotent and total.
func NormalizeForQuery(s string) string {
	composed := norm.NFC.String(s)
	out := make([]rune, 0, len(composed))
	for _, r := range composed {
		if r == '_' {
			out = append(out, ' ')
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}

// isASCII reports whether every code point (rune) of s is below U+0080.
func isASCII(s string) bool {
	for _, r := range s {
		if r >= 0x80 {
			return false
		}
	}
	return true
}

package taxonomy

import "testing"

func TestNormalizeForAutoCompletion(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		want        string
	}{
		{"underscore folds to space", "blonde_hair", "blonde hair"},
		{"katakana folds to hiragana", "ロングヘア", "ろんぐへあ"},
		{"full-width ascii collapses via nfkc", "ｆｕｌｌ", "full"},
		{"ascii passes through unchanged", "smile", "smile"},
		{"already-normalized input is stable", "blonde hair", "blonde hair"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := NormalizeForAutoCompletion(tc.input)
			if got != tc.want {
				t.Fatalf("NormalizeForAutoCompletion(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeForAutoCompletionIdempotent(t *testing.T) {
	inputs := []string{"blonde_hair", "ロングヘア", "ｆｕｌｌ", "笑顔", "1girl"}
	for _, s := range inputs {
		once := NormalizeForAutoCompletion(s)
		twice := NormalizeForAutoCompletion(once)
		if once != twice {
			t.Fatalf("NormalizeForAutoCompletion not idempotent on %q: %q != %q", s, once, twice)
		}
	}
}

func TestNormalizeForQuery(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		want        string
	}{
		{"underscore folds to space", "blonde_hair", "blonde hair"},
		{"katakana is preserved, not folded", "ロングヘア", "ロングヘア"},
		{"full-width ascii is preserved, not folded", "ｆｕｌｌ", "ｆｕｌｌ"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := NormalizeForQuery(tc.input)
			if got != tc.want {
				t.Fatalf("NormalizeForQuery(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeForQueryIdempotent(t *testing.T) {
	inputs := []string{"blonde_hair", "ロングヘア", "ｆｕｌｌ", "笑顔", "1girl"}
	for _, s := range inputs {
		once := NormalizeForQuery(s)
		twice := NormalizeForQuery(once)
		if once != twice {
			t.Fatalf("NormalizeForQuery not idempotent on %q: %q != %q", s, once, twice)
		}
	}
}

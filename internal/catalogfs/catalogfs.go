// Package catalogfs loads CSV catalog blobs from a directory on disk. It is
// deliberately small: unlike the chunked binary dictionary format it
// replaces, a catalog directory is just a flat set of `*.csv` files read
// whole into memory, since taxonomy.New expects complete blobs rather than
// a lazily-paged stream.
package catalogfs

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/aliasdex/aliasdex/internal/utils"
)

// LoadDir reads every `*.csv` file directly under dir and returns their
// contents as catalog blobs, in lexical filename order (for deterministic
// engine construction across runs). A missing dir yields a nil slice and
// no error, and a dir with no `*.csv` files yields an empty slice: either
// way the caller ends up with an empty engine, matching taxonomy.New's
// tolerance for empty catalogs.
func LoadDir(dir string) ([]string, error) {
	if !utils.FileExists(dir) {
		return nil, nil
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	blobs := make([]string, 0, len(matches))
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		blobs = append(blobs, string(data))
	}
	return blobs, nil
}

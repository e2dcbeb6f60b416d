package taxonomy

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// parseCatalogs parses a sequence of CSV catalog blobs into dictionary
// entries, skipping malformed rows. Each row is: key, category (int32),
// count (int32), aliases (optional quoted comma-separated list). A
// whitespace-only or empty blob is skipped outright; each row is parsed
// independently, and parse errors are logged to logger (the caller's
// injected log sink) and swallowed so one bad row never aborts the build.
func parseCatalogs(catalogs []string, logger *log.Logger) []DictionaryEntry {
	var entries []DictionaryEntry

	for _, blob := range catalogs {
		if strings.TrimSpace(blob) == "" {
			continue
		}

		reader := csv.NewReader(strings.NewReader(blob))
		reader.FieldsPerRecord = -1

		rowNum := 0
		for {
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			rowNum++
			if err != nil {
				logger.Warnf("[taxonomy] skipping catalog row %d: %v", rowNum, err)
				continue
			}

			entry, ok := parseCatalogRecord(record)
			if !ok {
				logger.Warnf("[taxonomy] skipping catalog row %d: malformed record %v", rowNum, record)
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries
}

// parseCatalogRecord converts one already-split CSV record into a
// DictionaryEntry. It returns ok=false for a row with the wrong field
// count, non-numeric category/count, or an empty trimmed key.
func parseCatalogRecord(record []string) (DictionaryEntry, bool) {
	if len(record) != 3 && len(record) != 4 {
		return DictionaryEntry{}, false
	}

	key := strings.TrimSpace(record[0])
	if key == "" {
		return DictionaryEntry{}, false
	}

	category, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 32)
	if err != nil {
		return DictionaryEntry{}, false
	}

	count, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return DictionaryEntry{}, false
	}

	var aliases []string
	if len(record) == 4 && record[3] != "" {
		for _, alias := range strings.Split(record[3], ",") {
			alias = strings.TrimSpace(alias)
			if alias != "" {
				aliases = append(aliases, alias)
			}
		}
	}

	return DictionaryEntry{
		Key:      key,
		Category: int32(category),
		Count:    int32(count),
		Aliases:  aliases,
	}, true
}

package taxonomy

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseCatalogsResilience(t *testing.T) {
	catalogs := []string{
		"",
		"invalid_line_with_wrong_format",
		"valid1,0,1000,\"a,b\"",
		",,,",
		"valid2,1,2000,\"c,d\"",
	}

	entries := parseCatalogs(catalogs, log.Default())

	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2 (%v)", len(entries), entries)
	}
	if entries[0].Key != "valid1" || entries[1].Key != "valid2" {
		t.Fatalf("entries = %v, want keys valid1, valid2 in that order", entries)
	}
	if len(entries[0].Aliases) != 2 || entries[0].Aliases[0] != "a" || entries[0].Aliases[1] != "b" {
		t.Fatalf("entries[0].Aliases = %v, want [a b]", entries[0].Aliases)
	}
}

func TestParseCatalogsSkipsEmptyBlob(t *testing.T) {
	entries := parseCatalogs([]string{"   \n  "}, log.Default())
	if len(entries) != 0 {
		t.Fatalf("len(entries) = %d, want 0", len(entries))
	}
}

func TestParseCatalogRecordTrimsKeyAndAliases(t *testing.T) {
	entry, ok := parseCatalogRecord([]string{" girl ", "0", "5", " alias1 , alias2 "})
	if !ok {
		t.Fatal("parseCatalogRecord returned ok=false for a well-formed record")
	}
	if entry.Key != "girl" {
		t.Fatalf("entry.Key = %q, want %q", entry.Key, "girl")
	}
	if len(entry.Aliases) != 2 || entry.Aliases[0] != "alias1" || entry.Aliases[1] != "alias2" {
		t.Fatalf("entry.Aliases = %v, want [alias1 alias2]", entry.Aliases)
	}
}

func TestParseCatalogRecordRejectsEmptyKey(t *testing.T) {
	if _, ok := parseCatalogRecord([]string{"", "0", "0", ""}); ok {
		t.Fatal("parseCatalogRecord accepted a row with an empty key")
	}
}

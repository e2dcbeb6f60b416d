// Package cli provides an interactive REPL over a taxonomy engine, for
// debugging and manual testing of fuzzy_search and query_words.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aliasdex/aliasdex/internal/utils"
	"github.com/aliasdex/aliasdex/taxonomy"
	"github.com/charmbracelet/log"
)

// InputHandler reads lines from stdin and dispatches each to either
// fuzzy_search or query_words. A line prefixed with "=" runs query_words
// over its remaining whitespace-separated words; any other line runs
// fuzzy_search over the whole line.
type InputHandler struct {
	engine     *taxonomy.Engine
	maxEntries int
	noFilter   bool
}

// NewInputHandler creates an InputHandler bound to an already-built engine.
func NewInputHandler(engine *taxonomy.Engine, maxEntries int, noFilter bool) *InputHandler {
	return &InputHandler{
		engine:     engine,
		maxEntries: maxEntries,
		noFilter:   noFilter,
	}
}

// Start begins the REPL loop. It terminates if an error occurs reading
// from stdin.
func (h *InputHandler) Start() error {
	log.Print("aliasdex CLI [BETA]")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a query for fuzzy_search, or \"=word1 word2\" for query_words (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if rest, ok := strings.CutPrefix(line, "="); ok {
			h.handleQueryWords(strings.Fields(rest))
		} else {
			h.handleFuzzySearch(line)
		}
	}
}

func (h *InputHandler) handleFuzzySearch(query string) {
	if !h.noFilter && !utils.IsValidInput(query) {
		log.Warnf("no results for query: '%s' (filtered out)", query)
		return
	}

	limit := h.maxEntries
	start := time.Now()
	results := h.engine.FuzzySearch(query, &limit, nil)
	elapsed := time.Since(start)

	log.Debugf("took %v for query '%s'", elapsed, query)
	if len(results) == 0 {
		log.Warnf("no results for query: '%s'", query)
		return
	}

	log.Printf("found %d results for query '%s':", len(results), query)
	for i, r := range results {
		fmtCount := utils.FormatWithCommas(int(r.Count))
		clTerm := fmt.Sprintf("\033[38;5;75m%s\033[0m", r.Term)
		marker := " "
		if r.IsCanonical {
			marker = "*"
		}
		log.Printf("%2d. %s%-30s (key: %-20s count: %8s score: %d)", i+1, marker, clTerm, r.CanonicalKey, fmtCount, r.Score)
	}
}

func (h *InputHandler) handleQueryWords(words []string) {
	if len(words) == 0 {
		log.Warn("no words given after '='")
		return
	}

	start := time.Now()
	results := h.engine.QueryWords(words)
	elapsed := time.Since(start)
	log.Debugf("took %v for %d word(s)", elapsed, len(words))

	for _, r := range results {
		if len(r.Terms) == 0 {
			log.Printf("%-20s -> (no match)", r.Word)
			continue
		}
		for _, term := range r.Terms {
			marker := " "
			if term.IsCanonical {
				marker = "*"
			}
			log.Printf("%-20s -> %s%-20s (key: %-20s count: %s)", r.Word, marker, term.Term, term.CanonicalKey, utils.FormatWithCommas(int(term.Count)))
		}
	}
}

// Package ipc implements MessagePack IPC for fuzzy_search and query_words.
package ipc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/aliasdex/aliasdex/internal/utils"
	"github.com/aliasdex/aliasdex/pkg/config"
	"github.com/aliasdex/aliasdex/taxonomy"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles fuzzy_search and query_words requests over msgpack.
type Server struct {
	engine *taxonomy.Engine
	config *config.Config
	logger *log.Logger

	decoder    *msgpack.Decoder
	writeMutex sync.Mutex
}

// NewServer creates a Server bound to an already-built engine.
func NewServer(engine *taxonomy.Engine, cfg *config.Config, logger *log.Logger) *Server {
	return &Server{
		engine: engine,
		config: cfg,
		logger: logger,
		decoder: msgpack.NewDecoder(os.Stdin),
	}
}

// Start begins listening for requests on stdin until the client
// disconnects (io.EOF) or the process is signaled to stop.
func (s *Server) Start() error {
	s.logger.Debug("starting msgpack IPC server")

	for {
		if err := s.processRequest(); err != nil {
			if err == io.EOF {
				s.logger.Debug("client disconnected")
				return nil
			}
			s.logger.Warnf("request error: %v", err)
			continue
		}
	}
}

// processRequest decodes one request and dispatches it by shape: a "words"
// field selects query_words, otherwise it is treated as a fuzzy_search
// request.
func (s *Server) processRequest() error {
	var raw map[string]interface{}
	if err := s.decoder.Decode(&raw); err != nil {
		return err
	}

	if _, hasWords := raw["words"]; hasWords {
		return s.handleQueryWords(raw)
	}
	return s.handleFuzzySearch(raw)
}

func (s *Server) handleFuzzySearch(raw map[string]interface{}) error {
	var req FuzzySearchRequest
	if id, ok := raw["id"].(string); ok {
		req.ID = id
	}
	if q, ok := raw["q"].(string); ok {
		req.Query = q
	}
	if max, ok := toInt(raw["max"]); ok {
		req.MaxEntries = &max
	}
	if ascii, ok := raw["ascii"].(bool); ok {
		req.ForceTryNonASCII = &ascii
	}

	if req.Query == "" {
		return s.sendError(req.ID, "empty query", 400)
	}
	if len(req.Query) < s.config.Server.MinQueryLen {
		return s.sendError(req.ID, fmt.Sprintf("query too short (min: %d)", s.config.Server.MinQueryLen), 400)
	}
	if len(req.Query) > s.config.Server.MaxQueryLen {
		return s.sendError(req.ID, fmt.Sprintf("query too long (max: %d)", s.config.Server.MaxQueryLen), 400)
	}
	if s.config.Server.EnableFilter && !utils.IsValidInput(req.Query) {
		return s.sendResponse(&FuzzySearchResponse{ID: req.ID, Results: []CompletionResultMsg{}})
	}

	maxEntries := req.MaxEntries
	if maxEntries == nil {
		defaultMax := s.config.Server.MaxEntries
		maxEntries = &defaultMax
	} else if *maxEntries > s.config.Server.MaxEntries {
		clamped := s.config.Server.MaxEntries
		maxEntries = &clamped
	}

	start := time.Now()
	results := s.engine.FuzzySearch(req.Query, maxEntries, req.ForceTryNonASCII)
	elapsed := time.Since(start)

	msgResults := make([]CompletionResultMsg, len(results))
	for i, r := range results {
		msgResults[i] = CompletionResultMsg{TermMsg: toTermMsg(r.Term), Score: r.Score}
	}

	return s.sendResponse(&FuzzySearchResponse{
		ID:        req.ID,
		Results:   msgResults,
		Count:     len(msgResults),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleQueryWords(raw map[string]interface{}) error {
	var req QueryWordsRequest
	if id, ok := raw["id"].(string); ok {
		req.ID = id
	}
	if rawWords, ok := raw["words"].([]interface{}); ok {
		req.Words = make([]string, 0, len(rawWords))
		for _, w := range rawWords {
			if ws, ok := w.(string); ok {
				req.Words = append(req.Words, ws)
			}
		}
	}

	start := time.Now()
	results := s.engine.QueryWords(req.Words)
	elapsed := time.Since(start)

	matches := make([][]TermMsg, len(results))
	for i, r := range results {
		terms := make([]TermMsg, len(r.Terms))
		for j, term := range r.Terms {
			terms[j] = toTermMsg(term)
		}
		matches[i] = terms
	}

	return s.sendResponse(&QueryWordsResponse{
		ID:        req.ID,
		Words:     req.Words,
		Matches:   matches,
		TimeTaken: elapsed.Microseconds(),
	})
}

func toTermMsg(t taxonomy.Term) TermMsg {
	return TermMsg{
		Term:         t.Term,
		IsCanonical:  t.IsCanonical,
		CanonicalKey: t.CanonicalKey,
		Category:     t.Category,
		Count:        t.Count,
		Aliases:      t.Aliases,
	}
}

// toInt accepts the numeric shapes msgpack may decode an untyped map
// value into (int64 for most encoders, float64 for some JS clients).
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// sendResponse encodes and sends a MessagePack response to stdout
// atomically: one full message, never interleaved with another response.
func (s *Server) sendResponse(response any) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(response); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.sendResponse(&RequestError{ID: id, Error: message, Code: code})
}

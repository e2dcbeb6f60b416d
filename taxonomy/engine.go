package taxonomy

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Engine is a built, immutable taxonomy index plus a pluggable Scorer. It
// is safe for concurrent QueryWords calls; FuzzySearch calls are
// serialized against each other because they drive the Scorer's mutable
// scratch state (spec §4.4/§4.8).
type Engine struct {
	ix     *index
	logger *log.Logger
	scorer Scorer

	// mu guards exclusive access to scorer during FuzzySearch. The index
	// itself is read-only after New returns and needs no lock.
	mu sync.Mutex
}

// Option configures an Engine at construction time.
type Option func(*engineConfig)

type engineConfig struct {
	logger *log.Logger
	scorer Scorer
}

// WithLogger injects the log sink the Engine reports catalog parse
// warnings to. The default discards nothing silently: it falls back to
// log.Default(), matching the teacher's package-level logger behavior,
// but scoped to this Engine instead of a package global.
func WithLogger(logger *log.Logger) Option {
	return func(c *engineConfig) { c.logger = logger }
}

// WithScorer overrides the default FuzzyScorer.
func WithScorer(scorer Scorer) Option {
	return func(c *engineConfig) { c.scorer = scorer }
}

// New builds an Engine from one or more CSV catalog blobs. Construction is
// infallible: malformed rows are skipped and logged rather than rejected
// (spec §4.2, §8 S6). The returned Engine is immediately Ready.
func New(catalogs []string, opts ...Option) *Engine {
	cfg := engineConfig{
		logger: log.Default(),
		scorer: NewFuzzyScorer(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		ix:     buildIndex(catalogs, cfg.logger),
		logger: cfg.logger,
		scorer: cfg.scorer,
	}
}

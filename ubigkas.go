// Package ubigkas reconstructs grammatically marked Tagalog sentences.
//
// Given the tokens of a sentence together with a role tag and a
// confidence score per token (produced by an external tagger), an Engine
// infers the tense of the sentence, conjugates every known verb root for
// that tense, inserts the marker particles the tags call for
// (ay, sa, ng) and normalizes the result.
package ubigkas

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// DefaultConfidenceThreshold is the score below which a tag is ignored.
const DefaultConfidenceThreshold = 0.85

// ErrLengthMismatch is returned when tokens, tags and scores are not
// aligned one to one.
var ErrLengthMismatch = errors.New("ubigkas: tokens, tags and scores differ in length")

// Engine holds the lexical tables and provides the public API.
// An Engine is immutable after New and safe for concurrent use.
type Engine struct {
	tables    *Tables
	threshold float64
	logger    *zap.Logger

	// dataDir, when set, replaces the embedded tables at construction.
	dataDir string
}

// Option configures an Engine.
type Option func(*Engine)

// WithTables uses t instead of the embedded tables.
func WithTables(t *Tables) Option {
	return func(e *Engine) { e.tables = t }
}

// WithDataDir loads the tables from the files in dir.
func WithDataDir(dir string) Option {
	return func(e *Engine) { e.dataDir = dir }
}

// WithConfidenceThreshold overrides DefaultConfidenceThreshold.
func WithConfidenceThreshold(th float64) Option {
	return func(e *Engine) { e.threshold = th }
}

// WithLogger sets the logger. Per-token decisions are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New builds an Engine. Without options it uses the embedded tables and
// the default confidence threshold.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		threshold: DefaultConfidenceThreshold,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.threshold < 0 || e.threshold > 1 {
		return nil, fmt.Errorf("ubigkas: confidence threshold %v outside [0,1]", e.threshold)
	}

	switch {
	case e.dataDir != "":
		t, err := LoadTablesDir(e.dataDir)
		if err != nil {
			return nil, err
		}
		e.tables = t
	case e.tables == nil:
		t, err := defaultTables()
		if err != nil {
			return nil, fmt.Errorf("ubigkas: embedded tables: %w", err)
		}
		e.tables = t
	}

	e.logger.Info("tables loaded",
		zap.String("source", e.source()),
		zap.Int("verbs", e.tables.Verbs()),
		zap.Int("irregulars", e.tables.Irregulars()),
		zap.Float64("threshold", e.threshold))
	return e, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Engine {
	e, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Engine) source() string {
	if e.dataDir != "" {
		return e.dataDir
	}
	return "embedded"
}

// Tables returns the engine's lexical tables.
func (e *Engine) Tables() *Tables {
	return e.tables
}

// Threshold returns the confidence threshold in use.
func (e *Engine) Threshold() float64 {
	return e.threshold
}

// Correct reconstructs the sentence and returns it as normalized text.
// It is the single entry point for callers that already hold tokens,
// tags and scores.
func (e *Engine) Correct(tokens []string, tags []Tag, scores []float64) (string, error) {
	a, err := e.Explain(tokens, tags, scores)
	if err != nil {
		return "", err
	}
	return a.Text, nil
}

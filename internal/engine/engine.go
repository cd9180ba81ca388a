// Package engine implements the hybrid knowledge retrieval engine: it
// normalizes and classifies a free-text query, scores it against each
// curated knowledge entry with tiered heuristic rules, and resolves a
// confident match, an ambiguous multi-match, or a no-match outcome.
//
// The engine is a pure function of (query, knowledge snapshot, tuning).
// It performs no I/O, holds no mutable state, and never fails: every
// input maps to a valid Outcome. Dictionaries and thresholds are
// injected at construction so deployments can tune them.
package engine

// Tuning holds the thresholds and margins of the resolver and
// classifier. Zero values are not meaningful; use DefaultTuning as a
// base and override individual fields from configuration.
type Tuning struct {
	// ConfidenceThreshold is the minimum score a candidate needs to be
	// considered at all.
	ConfidenceThreshold float64
	// VagueThreshold replaces ConfidenceThreshold when the query is
	// made up only of common single words.
	VagueThreshold float64
	// AmbiguityMargin is how close to the top score a second candidate
	// must be to make the outcome ambiguous.
	AmbiguityMargin float64
	// AmbiguityCeiling: at or above this top score the winner is taken
	// as confident even with close competitors.
	AmbiguityCeiling float64
	// VagueTermLimit is the maximum meaningful-term count for a query
	// to be considered vague.
	VagueTermLimit int
	// MinTokenLen: tokens of this length or shorter are dropped.
	MinTokenLen int
	// MaxAmbiguous caps how many candidates an ambiguous outcome carries.
	MaxAmbiguous int
}

// DefaultTuning is the canonical configuration: threshold 70, vague
// threshold 85, margin 5, ceiling 90.
func DefaultTuning() Tuning {
	return Tuning{
		ConfidenceThreshold: 70,
		VagueThreshold:      85,
		AmbiguityMargin:     5,
		AmbiguityCeiling:    90,
		VagueTermLimit:      2,
		MinTokenLen:         1,
		MaxAmbiguous:        3,
	}
}

// Engine scores queries against knowledge entries. Safe for concurrent
// use: all state is immutable after construction.
type Engine struct {
	lex    Lexicon
	tuning Tuning
}

// New creates an engine with the given dictionaries and tuning.
func New(lex Lexicon, tuning Tuning) *Engine {
	return &Engine{lex: lex, tuning: tuning}
}

// NewDefault creates an engine with the built-in dictionaries and
// canonical tuning.
func NewDefault() *Engine {
	return New(DefaultLexicon(), DefaultTuning())
}

// Lexicon returns the engine's dictionaries.
func (e *Engine) Lexicon() Lexicon { return e.lex }

// Tuning returns the engine's tuning values.
func (e *Engine) Tuning() Tuning { return e.tuning }

package engine

import "github.com/ziadkadry99/campus-bot/internal/knowledge"

// Query is a single inbound user question. It is immutable for the
// duration of one matching pass.
type Query struct {
	Text     string
	HasImage bool
}

// MatchReason identifies which scoring rule produced a candidate's score.
type MatchReason string

const (
	ReasonExact              MatchReason = "exact"
	ReasonKeywordPhraseExact MatchReason = "keyword-phrase-exact"
	ReasonKeywordPhraseTerms MatchReason = "keyword-phrase-terms"
	ReasonAllTerms           MatchReason = "all-terms-match"
	ReasonReverseFull        MatchReason = "reverse-full-match"
	ReasonSubjectAction      MatchReason = "subject-action-match"
	ReasonCategoryTerm       MatchReason = "category-term"
	ReasonCriticalMismatch   MatchReason = "critical-mismatch"
	ReasonNone               MatchReason = "none"
)

// ScoredCandidate pairs a knowledge entry with its confidence score for
// one query. Scores are in [0,100].
type ScoredCandidate struct {
	Entry  knowledge.Entry
	Score  float64
	Reason MatchReason
}

// OutcomeKind classifies the result of a matching pass.
type OutcomeKind string

const (
	OutcomeConfident OutcomeKind = "confident"
	OutcomeAmbiguous OutcomeKind = "ambiguous"
	OutcomeNoMatch   OutcomeKind = "no_match"
)

// Outcome is the result of resolving a query against a knowledge base
// snapshot. Exactly one kind applies per query:
//   - Confident: Best holds the single winning candidate.
//   - Ambiguous: Candidates holds up to 3 close competitors, best first.
//   - NoMatch:   nothing matched; the caller escalates to the fallback.
type Outcome struct {
	Kind       OutcomeKind
	Best       *ScoredCandidate
	Candidates []ScoredCandidate
}

// Package escalate decides how a query that found no curated answer is
// handed to the generative fallback: whether the answer warrants an
// illustrative generated image, what the image prompt should be, and
// how the fallback's structured response is parsed. Everything here is
// pure; the actual provider calls live in the chat service.
package escalate

import (
	"strings"

	"github.com/ziadkadry99/campus-bot/internal/engine"
)

// Lexicon holds the dictionaries governing image enrichment. The
// exclusion list always wins over the trigger list: factual lookups
// (fees, phone numbers, timings) never get a generated diagram.
type Lexicon struct {
	ImageTriggers []string
	NoImageTopics []string
}

var defaultTriggers = []string{
	"explain", "diagram", "flow", "flowchart", "process", "illustrate",
	"how does", "architecture", "structure", "working", "visualize",
	"draw", "lifecycle", "steps",
}

var defaultNoImage = []string{
	"fee", "fees", "cost", "price", "phone", "contact", "email",
	"address", "timing", "timings", "location", "registration number",
	"date", "dates", "holiday", "holidays", "salary",
}

// leadPhrases are interrogative/request openers stripped from the
// normalized query when deriving the image prompt.
var leadPhrases = []string{
	"tell me about", "show me", "can you", "what is", "what are", "what",
	"how does", "how do", "how", "please", "explain", "describe", "draw",
	"give me", "about", "the", "a", "an", "is", "are",
}

// DefaultLexicon returns the built-in enrichment dictionaries.
func DefaultLexicon() Lexicon {
	return Lexicon{
		ImageTriggers: append([]string(nil), defaultTriggers...),
		NoImageTopics: append([]string(nil), defaultNoImage...),
	}
}

// Directive tells the caller how to shape the fallback answer.
type Directive struct {
	NeedsImage  bool
	ImagePrompt string
	Links       []Link
}

// Enricher makes enrichment decisions for escalated queries.
// Immutable after construction, safe for concurrent use.
type Enricher struct {
	lex Lexicon
}

// New creates an enricher with the given dictionaries.
func New(lex Lexicon) *Enricher {
	return &Enricher{lex: lex}
}

// NewDefault creates an enricher with the built-in dictionaries.
func NewDefault() *Enricher {
	return New(DefaultLexicon())
}

// Prepare decides, from the query text alone, whether the escalated
// answer should carry a generated image, and derives the prompt topic
// for it. Links are only known after the fallback responds, so the
// directive starts with none.
func (e *Enricher) Prepare(q engine.Query) Directive {
	d := Directive{}
	if !e.NeedsImage(q.Text) {
		return d
	}
	d.NeedsImage = true
	d.ImagePrompt = ImagePrompt(q.Text)
	return d
}

// NeedsImage reports whether the query text asks for something worth
// illustrating: it must contain an image-trigger term and no excluded
// factual topic.
func (e *Enricher) NeedsImage(text string) bool {
	norm := engine.Normalize(text)
	if norm == "" {
		return false
	}
	for _, topic := range e.lex.NoImageTopics {
		if containsTerm(norm, topic) {
			return false
		}
	}
	for _, trigger := range e.lex.ImageTriggers {
		if containsTerm(norm, trigger) {
			return true
		}
	}
	return false
}

// ImagePrompt strips leading request phrasing from the query, leaving
// the residual topic used to build the generation prompt. "can you
// explain the exam process" becomes "exam process".
func ImagePrompt(text string) string {
	rest := engine.Normalize(text)
	for stripped := true; stripped; {
		stripped = false
		for _, phrase := range leadPhrases {
			if rest == phrase {
				return ""
			}
			if strings.HasPrefix(rest, phrase+" ") {
				rest = strings.TrimSpace(rest[len(phrase)+1:])
				stripped = true
			}
		}
	}
	return rest
}

// containsTerm reports whether term (a word or a multi-word phrase)
// occurs in the normalized text on word boundaries.
func containsTerm(norm, term string) bool {
	return strings.Contains(" "+norm+" ", " "+term+" ")
}

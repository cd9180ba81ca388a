package engine

import (
	"testing"

	"github.com/ziadkadry99/campus-bot/internal/knowledge"
)

func entry(question string, keywords ...string) knowledge.Entry {
	return knowledge.Entry{ID: "e1", Question: question, Answer: "answer", Keywords: keywords}
}

func scoreAgainst(t *testing.T, query string, e knowledge.Entry) ScoredCandidate {
	t.Helper()
	eng := NewDefault()
	return eng.Score(eng.Classify(query), e)
}

func TestScoreExact(t *testing.T) {
	got := scoreAgainst(t, "What are BCA fees?", entry("what are bca fees"))
	if got.Score != 100 || got.Reason != ReasonExact {
		t.Errorf("got score %v reason %q, want 100 %q", got.Score, got.Reason, ReasonExact)
	}
}

func TestScoreKeywordPhraseExact(t *testing.T) {
	got := scoreAgainst(t, "BCA Fees", entry("what are the fees for bca", "bca fees"))
	if got.Score != 98 || got.Reason != ReasonKeywordPhraseExact {
		t.Errorf("got score %v reason %q, want 98 %q", got.Score, got.Reason, ReasonKeywordPhraseExact)
	}
}

func TestScoreKeywordPhraseForward(t *testing.T) {
	// All meaningful query terms appear among the keyword phrase's terms.
	got := scoreAgainst(t, "fee structure", entry("bca programme charges", "bca fee structure"))
	if got.Score != 92 || got.Reason != ReasonKeywordPhraseTerms {
		t.Errorf("got score %v reason %q, want 92 %q", got.Score, got.Reason, ReasonKeywordPhraseTerms)
	}
}

func TestScoreKeywordPhraseReverse(t *testing.T) {
	// The full multi-term keyword phrase is contained in a wordier query.
	got := scoreAgainst(t, "bca fees hostel detail", entry("programme charges", "bca fees"))
	if got.Score != 90 || got.Reason != ReasonKeywordPhraseTerms {
		t.Errorf("got score %v reason %q, want 90 %q", got.Score, got.Reason, ReasonKeywordPhraseTerms)
	}
}

func TestScoreCriticalTermGate(t *testing.T) {
	// Overlapping "semester" and "fees" must not bridge different ordinals.
	got := scoreAgainst(t, "3rd semester fees", entry("2nd semester fees"))
	if got.Score != 0 || got.Reason != ReasonCriticalMismatch {
		t.Errorf("got score %v reason %q, want 0 %q", got.Score, got.Reason, ReasonCriticalMismatch)
	}
}

func TestScoreCriticalTermAgreement(t *testing.T) {
	got := scoreAgainst(t, "2nd semester fees", entry("what are the 2nd semester fees"))
	if got.Score != 95 || got.Reason != ReasonAllTerms {
		t.Errorf("got score %v reason %q, want 95 %q", got.Score, got.Reason, ReasonAllTerms)
	}
}

func TestScoreAllTermsMatch(t *testing.T) {
	got := scoreAgainst(t, "BCA fees", entry("what are bca fees"))
	if got.Score != 95 || got.Reason != ReasonAllTerms {
		t.Errorf("got score %v reason %q, want 95 %q", got.Score, got.Reason, ReasonAllTerms)
	}
}

func TestScoreReverseFullMatch(t *testing.T) {
	// Query restates the entry's subject and adds a word of its own.
	got := scoreAgainst(t, "bca fees structure amount", entry("bca fees structure"))
	if got.Score != 92 || got.Reason != ReasonReverseFull {
		t.Errorf("got score %v reason %q, want 92 %q", got.Score, got.Reason, ReasonReverseFull)
	}
}

func TestScoreSubjectActionMatch(t *testing.T) {
	// Entry covers all of the query's subject terms but carries extra
	// subjects of its own, so the reverse rules cannot fire; the extra
	// action word keeps the all-terms rule from firing.
	got := scoreAgainst(t, "bca java admission fees", entry("bca java python fees course"))
	if got.Reason != ReasonSubjectAction {
		t.Fatalf("reason = %q, want %q", got.Reason, ReasonSubjectAction)
	}
	// Full subject coverage earns the maximum proportional bonus.
	if got.Score != 95 {
		t.Errorf("score = %v, want 95", got.Score)
	}
}

func TestScoreReverseSubjectAction(t *testing.T) {
	// The query covers the entry's subject but is much wordier, with
	// under half of its own subject terms matched.
	got := scoreAgainst(t, "bca admission fees office city campus", entry("bca fees"))
	if got.Score != 85 || got.Reason != ReasonSubjectAction {
		t.Errorf("got score %v reason %q, want 85 %q", got.Score, got.Reason, ReasonSubjectAction)
	}
}

func TestScoreCategoryTerm(t *testing.T) {
	e := knowledge.Entry{
		ID:       "e1",
		Question: "rooms available for students",
		Answer:   "answer",
		Category: "hostel",
	}
	got := scoreAgainst(t, "hostel fees rooms", e)
	if got.Score != 72 || got.Reason != ReasonCategoryTerm {
		t.Errorf("got score %v reason %q, want 72 %q", got.Score, got.Reason, ReasonCategoryTerm)
	}
}

func TestScoreNoMatch(t *testing.T) {
	got := scoreAgainst(t, "hostel fees", entry("library opening hours"))
	if got.Score != 0 || got.Reason != ReasonNone {
		t.Errorf("got score %v reason %q, want 0 %q", got.Score, got.Reason, ReasonNone)
	}
}

func TestScoreBareActionWordStaysLow(t *testing.T) {
	// A single generic action word must not earn subject-coverage
	// confidence against a specific entry.
	got := scoreAgainst(t, "fees", entry("what are bca fees"))
	if got.Score != 0 {
		t.Errorf("score = %v, want 0", got.Score)
	}
}

func TestCoverage(t *testing.T) {
	want := NewSet([]string{"a1", "b1", "c1", "d1"})
	have := NewSet([]string{"a1", "b1", "c1", "x1"})
	if got := coverage(want, have); got != 0.75 {
		t.Errorf("coverage = %v, want 0.75", got)
	}
	if got := coverage(map[string]bool{}, have); got != 1 {
		t.Errorf("coverage of empty set = %v, want 1", got)
	}
}

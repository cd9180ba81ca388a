package engine

import (
	"strings"

	"github.com/ziadkadry99/campus-bot/internal/knowledge"
)

// Rule scores, in priority order. The first rule to yield a nonzero
// score wins; category-term is the one exception, applying only when
// every higher rule scored zero.
const (
	scoreExact              = 100
	scoreKeywordExact       = 98
	scoreAllTerms           = 95
	scoreKeywordForward     = 92
	scoreReverseFull        = 92
	scoreKeywordReverse     = 90
	scoreSubjectActionBase  = 85
	scoreSubjectActionBonus = 10
	scoreCategoryTerm       = 72

	subjectCoverageFloor = 0.7
	entryCoverageFloor   = 0.8
	reverseQueryFloor    = 0.5
)

// Score evaluates one knowledge entry against a classified query.
// Deterministic and pure; entries are scored independently of each
// other, so a scoring pass can be parallelized across entries.
func (e *Engine) Score(q TermSet, entry knowledge.Entry) ScoredCandidate {
	cand := ScoredCandidate{Entry: entry, Reason: ReasonNone}
	entryTS := e.Classify(entry.Question)

	// Rule 1: whole-text exact match.
	if q.Normalized != "" && q.Normalized == entryTS.Normalized {
		cand.Score, cand.Reason = scoreExact, ReasonExact
		return cand
	}

	// Rules 2-3: keyword phrase matches.
	if score, reason := e.scoreKeywords(q, entry.Keywords); score > 0 {
		cand.Score, cand.Reason = score, reason
		return cand
	}

	// Rule 4: critical-term gate. When both sides carry ordinal markers
	// they must agree exactly; "2nd semester fees" must not fall through
	// to term-overlap rules against "3rd semester fees".
	if len(q.Critical) > 0 && len(entryTS.Critical) > 0 && !sameSet(q.Critical, entryTS.Critical) {
		cand.Reason = ReasonCriticalMismatch
		return cand
	}

	// Rule 5: every meaningful query term appears in the entry.
	if len(q.Meaningful) >= 2 && subset(q.Meaningful, entryTS.Terms) {
		cand.Score, cand.Reason = scoreAllTerms, ReasonAllTerms
		return cand
	}

	actionOverlap := intersects(q.Action, entryTS.Action)

	// Rule 6: reverse full match. The query restates most of the entry's
	// subject and the entry covers at least half of the query's.
	if actionOverlap &&
		coverage(entryTS.Subject, q.Terms) >= entryCoverageFloor &&
		coverage(q.Subject, entryTS.Terms) >= reverseQueryFloor {
		cand.Score, cand.Reason = scoreReverseFull, ReasonReverseFull
		return cand
	}

	// Rule 7: subject+action match with proportional bonus. Needs at
	// least one subject term on the query side; a bare action word must
	// not ride this rule past the vague threshold.
	if actionOverlap && len(q.Subject) > 0 {
		if cov := coverage(q.Subject, entryTS.Terms); cov >= subjectCoverageFloor {
			bonus := scoreSubjectActionBonus * (cov - subjectCoverageFloor) / (1 - subjectCoverageFloor)
			cand.Score = scoreSubjectActionBase + bonus
			cand.Reason = ReasonSubjectAction
			return cand
		}
	}

	// Rule 8: reverse subject+action. The query covers the entry's
	// subject terms but carries extra words of its own.
	if actionOverlap && coverage(entryTS.Subject, q.Terms) >= entryCoverageFloor {
		cand.Score, cand.Reason = scoreSubjectActionBase, ReasonSubjectAction
		return cand
	}

	// Rule 9: category as last resort. Fires only when everything above
	// scored zero.
	if e.categoryMatches(q, entryTS, entry.Category) {
		cand.Score, cand.Reason = scoreCategoryTerm, ReasonCategoryTerm
		return cand
	}

	return cand
}

// scoreKeywords applies the keyword phrase rules (2 and 3) against each
// stored keyword phrase of the entry.
func (e *Engine) scoreKeywords(q TermSet, keywords []string) (float64, MatchReason) {
	for _, kw := range keywords {
		phraseNorm := Normalize(kw)
		if phraseNorm == "" {
			continue
		}
		// Rule 2: the phrase equals the whole query.
		if phraseNorm == q.Normalized {
			return scoreKeywordExact, ReasonKeywordPhraseExact
		}
	}

	for _, kw := range keywords {
		phrase := e.Classify(kw)
		if phrase.Normalized == "" {
			continue
		}
		// Rule 3 forward: all meaningful query terms appear in the
		// phrase. A known course phrase counts as one unit: if both
		// sides name the same course, only the remaining terms need
		// term-by-term coverage.
		if len(q.Meaningful) > 0 && e.forwardPhraseMatch(q, phrase) {
			return scoreKeywordForward, ReasonKeywordPhraseTerms
		}
		// Rule 3 reverse: a multi-term phrase fully contained in the
		// query.
		if len(phrase.Meaningful) >= 2 && subset(phrase.Meaningful, q.Terms) {
			return scoreKeywordReverse, ReasonKeywordPhraseTerms
		}
	}
	return 0, ReasonNone
}

// forwardPhraseMatch reports whether every meaningful query term is
// accounted for by the keyword phrase, treating a shared known entity
// (course or topic) as covering its own words.
func (e *Engine) forwardPhraseMatch(q TermSet, phrase TermSet) bool {
	entity := ""
	if q.Course != "" && containsPhrase(phrase.Normalized, q.Course) {
		entity = q.Course
	} else if q.Topic != "" && containsPhrase(phrase.Normalized, q.Topic) {
		entity = q.Topic
	}
	for term := range q.Meaningful {
		if phrase.Terms[term] {
			continue
		}
		if entity != "" && strings.Contains(" "+entity+" ", " "+term+" ") {
			continue
		}
		return false
	}
	return true
}

// categoryMatches implements the last-resort category rule: the entry's
// category literally equals one of the query terms and at least one
// other term overlaps.
func (e *Engine) categoryMatches(q TermSet, entryTS TermSet, category string) bool {
	cat := Normalize(category)
	if cat == "" || !q.Terms[cat] {
		return false
	}
	for term := range q.Terms {
		if term != cat && entryTS.Terms[term] {
			return true
		}
	}
	return false
}

func subset(sub, super map[string]bool) bool {
	for term := range sub {
		if !super[term] {
			return false
		}
	}
	return true
}

func sameSet(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	return subset(a, b)
}

func intersects(a, b map[string]bool) bool {
	for term := range a {
		if b[term] {
			return true
		}
	}
	return false
}

// coverage returns the fraction of terms in want that appear in have.
// An empty want set is fully covered.
func coverage(want, have map[string]bool) float64 {
	if len(want) == 0 {
		return 1
	}
	hit := 0
	for term := range want {
		if have[term] {
			hit++
		}
	}
	return float64(hit) / float64(len(want))
}

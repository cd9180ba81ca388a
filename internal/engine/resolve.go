package engine

import (
	"sort"

	"github.com/ziadkadry99/campus-bot/internal/knowledge"
)

// Resolve scores a query against a knowledge base snapshot and
// classifies the result. The snapshot must be a single consistent read;
// Resolve never modifies it.
//
// Three guards skip scoring entirely and force NoMatch: the query
// carries an image, the query is explanation-only (meaningful terms but
// no action word), or the query has no meaningful terms at all. A vague
// query (few terms, all generic) is still scored, but against the
// raised vague threshold.
func (e *Engine) Resolve(q Query, entries []knowledge.Entry) Outcome {
	if q.HasImage {
		return Outcome{Kind: OutcomeNoMatch}
	}

	ts := e.Classify(q.Text)
	if len(ts.Meaningful) == 0 {
		return Outcome{Kind: OutcomeNoMatch}
	}
	if len(ts.Action) == 0 {
		// Explanation-only: a pure topic with no task word never has a
		// curated fact answer; it always escalates.
		return Outcome{Kind: OutcomeNoMatch}
	}

	threshold := e.tuning.ConfidenceThreshold
	if e.isVague(ts) {
		threshold = e.tuning.VagueThreshold
	}

	var kept []ScoredCandidate
	for _, entry := range entries {
		cand := e.Score(ts, entry)
		if cand.Score >= threshold {
			kept = append(kept, cand)
		}
	}
	if len(kept) == 0 {
		return Outcome{Kind: OutcomeNoMatch}
	}

	// Stable sort keeps original snapshot order for equal scores.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})

	top := kept[0].Score
	end := 1
	for end < len(kept) && kept[end].Score >= top-e.tuning.AmbiguityMargin {
		end++
	}
	cluster := kept[:end]

	if len(cluster) > 1 && top < e.tuning.AmbiguityCeiling {
		if len(cluster) > e.tuning.MaxAmbiguous {
			cluster = cluster[:e.tuning.MaxAmbiguous]
		}
		return Outcome{Kind: OutcomeAmbiguous, Candidates: cluster}
	}

	best := kept[0]
	return Outcome{Kind: OutcomeConfident, Best: &best}
}

// isVague reports whether every meaningful term is a generic single
// common word and the query is short enough to be ambiguous on its own.
func (e *Engine) isVague(ts TermSet) bool {
	if len(ts.Meaningful) > e.tuning.VagueTermLimit {
		return false
	}
	for term := range ts.Meaningful {
		if !e.lex.CommonSingle[term] {
			return false
		}
	}
	return true
}

package engine

import "strings"

// TermSet is the classified view of one piece of text. It is derived
// fresh per call and never cached across queries, since the knowledge
// base can change between calls.
type TermSet struct {
	Normalized string
	// Terms holds every token, filler included, for phrase and substring
	// comparisons.
	Terms map[string]bool
	// Meaningful is Terms minus filler words.
	Meaningful map[string]bool
	// Action is Meaningful intersected with the action-word dictionary.
	Action map[string]bool
	// Subject is Meaningful minus Action.
	Subject map[string]bool
	// Critical holds ordinal/semester markers present in the text.
	Critical map[string]bool
	// Course and Topic are the first known entity phrases found in the
	// normalized text, or empty. Longest literal wins.
	Course string
	Topic  string
}

// Classify tokenizes and tags text against the engine's dictionaries.
// Total over arbitrary strings; classifying already-normalized text
// yields the same result as classifying the raw text.
func (e *Engine) Classify(text string) TermSet {
	norm := Normalize(text)
	ts := TermSet{
		Normalized: norm,
		Terms:      map[string]bool{},
		Meaningful: map[string]bool{},
		Action:     map[string]bool{},
		Subject:    map[string]bool{},
		Critical:   map[string]bool{},
	}

	for _, tok := range strings.Fields(norm) {
		if len(tok) <= e.tuning.MinTokenLen {
			continue
		}
		ts.Terms[tok] = true
		if e.lex.Critical[tok] {
			ts.Critical[tok] = true
		}
		if e.lex.Filler[tok] {
			continue
		}
		ts.Meaningful[tok] = true
		if e.lex.Action[tok] {
			ts.Action[tok] = true
		} else {
			ts.Subject[tok] = true
		}
	}

	ts.Course = firstPhrase(norm, e.lex.KnownCourses)
	ts.Topic = firstPhrase(norm, e.lex.KnownTopics)
	return ts
}

// firstPhrase returns the first phrase from the list found as a literal
// substring of the normalized text. Lists are ordered longest-first, so
// "bachelor of computer applications" wins over "computer applications".
func firstPhrase(norm string, phrases []string) string {
	for _, p := range phrases {
		if containsPhrase(norm, p) {
			return p
		}
	}
	return ""
}

// containsPhrase reports whether phrase occurs in text on word
// boundaries, so "bca" does not match inside "bcad".
func containsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	idx := 0
	for {
		i := strings.Index(text[idx:], phrase)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(phrase)
		leftOK := start == 0 || text[start-1] == ' '
		rightOK := end == len(text) || text[end] == ' '
		if leftOK && rightOK {
			return true
		}
		idx = start + 1
		if idx >= len(text) {
			return false
		}
	}
}

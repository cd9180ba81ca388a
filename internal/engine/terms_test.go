package engine

import "testing"

func TestClassify(t *testing.T) {
	e := NewDefault()
	ts := e.Classify("What is the fee structure for BCA?")

	if ts.Normalized != "what is the fee structure for bca" {
		t.Errorf("Normalized = %q", ts.Normalized)
	}
	for _, term := range []string{"what", "is", "the", "fee", "structure", "for", "bca"} {
		if !ts.Terms[term] {
			t.Errorf("Terms missing %q", term)
		}
	}
	wantMeaningful := []string{"fee", "structure", "bca"}
	if len(ts.Meaningful) != len(wantMeaningful) {
		t.Errorf("Meaningful = %v, want %v", ts.Meaningful, wantMeaningful)
	}
	for _, term := range wantMeaningful {
		if !ts.Meaningful[term] {
			t.Errorf("Meaningful missing %q", term)
		}
	}
	if !ts.Action["fee"] || len(ts.Action) != 1 {
		t.Errorf("Action = %v, want {fee}", ts.Action)
	}
	if !ts.Subject["structure"] || !ts.Subject["bca"] || len(ts.Subject) != 2 {
		t.Errorf("Subject = %v, want {structure, bca}", ts.Subject)
	}
	if ts.Course != "bca" {
		t.Errorf("Course = %q, want %q", ts.Course, "bca")
	}
}

func TestClassifyCriticalTerms(t *testing.T) {
	e := NewDefault()
	ts := e.Classify("3rd semester fees")
	if !ts.Critical["3rd"] || !ts.Critical["semester"] {
		t.Errorf("Critical = %v, want 3rd and semester", ts.Critical)
	}
	if len(ts.Critical) != 2 {
		t.Errorf("Critical has %d terms, want 2", len(ts.Critical))
	}
}

func TestClassifyDropsShortTokens(t *testing.T) {
	e := NewDefault()
	ts := e.Classify("a b fees")
	if ts.Terms["a"] || ts.Terms["b"] {
		t.Errorf("single-character tokens should be dropped, got %v", ts.Terms)
	}
	if !ts.Terms["fees"] {
		t.Error("fees should survive tokenization")
	}
}

func TestClassifyNormalizedInputEquivalence(t *testing.T) {
	e := NewDefault()
	raw := "  What are BCA Fees?! "
	a := e.Classify(raw)
	b := e.Classify(Normalize(raw))
	if a.Normalized != b.Normalized {
		t.Errorf("Normalized differs: %q vs %q", a.Normalized, b.Normalized)
	}
	if !sameSet(a.Meaningful, b.Meaningful) || !sameSet(a.Terms, b.Terms) {
		t.Error("classifying normalized text must match classifying raw text")
	}
}

func TestClassifyLongestCourseWins(t *testing.T) {
	e := NewDefault()
	ts := e.Classify("fees for bachelor of computer applications")
	if ts.Course != "bachelor of computer applications" {
		t.Errorf("Course = %q, want full course phrase", ts.Course)
	}
}

func TestContainsPhraseWordBoundaries(t *testing.T) {
	tests := []struct {
		text   string
		phrase string
		want   bool
	}{
		{"bca fees", "bca", true},
		{"bcad fees", "bca", false},
		{"fees bca", "bca", true},
		{"abca fees", "bca", false},
		{"fees for bca", "bca", true},
		{"", "bca", false},
		{"bca", "", false},
	}
	for _, tt := range tests {
		if got := containsPhrase(tt.text, tt.phrase); got != tt.want {
			t.Errorf("containsPhrase(%q, %q) = %v, want %v", tt.text, tt.phrase, got, tt.want)
		}
	}
}

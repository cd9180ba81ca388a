package engine

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "What Are BCA Fees", "what are bca fees"},
		{"strips punctuation", `What are "BCA" fees?!`, "what are bca fees"},
		{"strips apostrophes and commas", "what's the fee, please.", "whats the fee please"},
		{"collapses whitespace", "  bca   fees \t structure ", "bca fees structure"},
		{"empty", "", ""},
		{"only punctuation", `?!.,'"`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"What are BCA fees?",
		"  Explain   the exam process!! ",
		"3rd semester fees",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

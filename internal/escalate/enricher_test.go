package escalate

import (
	"testing"

	"github.com/ziadkadry99/campus-bot/internal/engine"
)

func TestNeedsImage(t *testing.T) {
	e := NewDefault()
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"trigger word", "explain the admission process", true},
		{"diagram request", "draw a flowchart of registration steps", true},
		{"phrase trigger", "how does the library system work", true},
		{"no trigger", "hostel rooms", false},
		{"exclusion wins over trigger", "explain the fee structure", false},
		{"contact lookup", "contact number of the office diagram", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.NeedsImage(tt.text); got != tt.want {
				t.Errorf("NeedsImage(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestImagePrompt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"can you draw the exam process", "exam process"},
		{"Explain the admission process?", "admission process"},
		{"what is machine learning", "machine learning"},
		{"tell me about cloud computing", "cloud computing"},
		{"please explain operating system lifecycle", "operating system lifecycle"},
		{"explain", ""},
	}
	for _, tt := range tests {
		if got := ImagePrompt(tt.in); got != tt.want {
			t.Errorf("ImagePrompt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrepare(t *testing.T) {
	e := NewDefault()

	d := e.Prepare(engine.Query{Text: "explain the hostel fees process"})
	if d.NeedsImage {
		t.Error("fees is an excluded topic, should not need an image")
	}

	d = e.Prepare(engine.Query{Text: "explain the admission process"})
	if !d.NeedsImage {
		t.Fatal("expected an image directive")
	}
	if d.ImagePrompt != "admission process" {
		t.Errorf("ImagePrompt = %q, want %q", d.ImagePrompt, "admission process")
	}
	if len(d.Links) != 0 {
		t.Errorf("Links should start empty, got %v", d.Links)
	}
}

package escalate

import "testing"

func TestParseAnswerPlainText(t *testing.T) {
	got := ParseAnswer("The admission office is in block A.")
	if got.Structured {
		t.Error("plain text should not be structured")
	}
	if got.Text != "The admission office is in block A." {
		t.Errorf("Text = %q", got.Text)
	}
	if len(got.Links) != 0 || got.ImagePrompt != "" {
		t.Errorf("plain answer carries no links or image prompt, got %+v", got)
	}
}

func TestParseAnswerStructured(t *testing.T) {
	raw := `{"type":"text+image+links","text":"OSI has seven layers.","image_prompt":"osi model layers","links":[{"title":"OSI model","url":"https://example.com/osi"}]}`
	got := ParseAnswer(raw)
	if !got.Structured {
		t.Fatal("expected structured answer")
	}
	if got.Text != "OSI has seven layers." {
		t.Errorf("Text = %q", got.Text)
	}
	if got.ImagePrompt != "osi model layers" {
		t.Errorf("ImagePrompt = %q", got.ImagePrompt)
	}
	if len(got.Links) != 1 || got.Links[0].URL != "https://example.com/osi" {
		t.Errorf("Links = %+v", got.Links)
	}
}

func TestParseAnswerFencedPayload(t *testing.T) {
	raw := "```json\n{\"type\":\"text+image+links\",\"text\":\"Fenced answer.\",\"links\":[]}\n```"
	got := ParseAnswer(raw)
	if !got.Structured {
		t.Fatal("fenced payload should still parse as structured")
	}
	if got.Text != "Fenced answer." {
		t.Errorf("Text = %q", got.Text)
	}
}

func TestParseAnswerTruncatedJSON(t *testing.T) {
	raw := `{"type":"text+image+links","text":"half an ans`
	got := ParseAnswer(raw)
	if got.Structured {
		t.Error("truncated JSON must degrade to plain text")
	}
	if got.Text != raw {
		t.Errorf("Text = %q, want the raw response", got.Text)
	}
	if len(got.Links) != 0 {
		t.Errorf("Links = %v, want none", got.Links)
	}
}

func TestParseAnswerUnknownType(t *testing.T) {
	raw := `{"type":"something-else","text":"hi"}`
	got := ParseAnswer(raw)
	if got.Structured {
		t.Error("unknown payload type must degrade to plain text")
	}
	if got.Text != raw {
		t.Errorf("Text = %q, want the raw response", got.Text)
	}
}

func TestParseAnswerStructuredEmptyText(t *testing.T) {
	raw := `{"type":"text+image+links","text":"  "}`
	got := ParseAnswer(raw)
	if got.Structured {
		t.Error("empty structured body must degrade to plain text")
	}
}

package escalate

import (
	"encoding/json"
	"strings"
)

// Link is a reference attached to an escalated answer.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Answer is the shaped result of a fallback response. Structured is
// true when the provider returned the text+image+links payload; a plain
// or malformed response degrades to just Text.
type Answer struct {
	Text        string
	Links       []Link
	ImagePrompt string
	Structured  bool
}

// payloadType is the structured response shape the fallback is prompted
// to use when an answer benefits from an image or reference links.
const payloadType = "text+image+links"

type fallbackPayload struct {
	Type        string `json:"type"`
	Text        string `json:"text"`
	ImagePrompt string `json:"image_prompt"`
	Links       []Link `json:"links"`
}

// ParseAnswer interprets a raw fallback response. The response is
// untrusted: a fenced-code wrapper is stripped before parsing, and any
// parse failure falls back to treating the whole response as plain
// text. ParseAnswer never fails.
func ParseAnswer(raw string) Answer {
	trimmed := stripCodeFence(strings.TrimSpace(raw))

	var payload fallbackPayload
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil || payload.Type != payloadType {
		return Answer{Text: strings.TrimSpace(raw)}
	}
	if strings.TrimSpace(payload.Text) == "" {
		// A structured payload with no answer body is useless; keep the
		// raw response rather than returning an empty message.
		return Answer{Text: strings.TrimSpace(raw)}
	}
	return Answer{
		Text:        strings.TrimSpace(payload.Text),
		Links:       payload.Links,
		ImagePrompt: strings.TrimSpace(payload.ImagePrompt),
		Structured:  true,
	}
}

// stripCodeFence removes a leading/trailing markdown code fence wrapper
// (```json ... ```), which models often add around JSON output.
func stripCodeFence(raw string) string {
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	lines := strings.Split(raw, "\n")
	if len(lines) < 2 {
		return raw
	}
	end := len(lines)
	if strings.TrimSpace(lines[end-1]) == "```" {
		end--
	}
	return strings.Join(lines[1:end], "\n")
}

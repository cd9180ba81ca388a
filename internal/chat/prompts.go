package chat

import (
	"fmt"
	"strings"

	"github.com/ziadkadry99/campus-bot/internal/llm"
)

const fallbackSystemPrompt = `You are a helpful assistant for a college campus. You answer student
questions about courses, fees, admissions, exams, hostels, placements and
campus facilities. Keep answers short and factual.

If the answer would benefit from an illustration or from reference links,
respond ONLY with a JSON object of this exact shape and nothing else:

{
  "type": "text+image+links",
  "text": "the answer text",
  "image_prompt": "a short prompt describing the diagram to generate, or omit",
  "links": [{"title": "link title", "url": "https://..."}]
}

Otherwise respond with plain text. Never invent URLs.`

// unavailableAnswer is returned when the fallback provider cannot be
// reached. The user gets a definite answer rather than an error.
const unavailableAnswer = "I don't have exact information for this. Please contact the campus office for accurate details."

func buildFallbackMessages(history []Message, question, language string) []llm.Message {
	system := fallbackSystemPrompt
	if language != "" && language != "en" {
		system += fmt.Sprintf("\n\nAnswer in the language with ISO code %q.", language)
	}

	msgs := []llm.Message{{Role: llm.RoleSystem, Content: system}}
	for _, h := range history {
		switch h.Role {
		case "user":
			msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: h.Content})
		case "assistant":
			msgs = append(msgs, llm.Message{Role: llm.RoleAssistant, Content: h.Content})
		}
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: question})
	return msgs
}

func formatClarification(questions []string) string {
	var b strings.Builder
	b.WriteString("I found multiple possible answers. Did you mean:\n")
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}

package llm

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a conversation.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest contains the parameters for a completion request.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
	JSONMode    bool
}

// CompletionResponse contains the result of a completion request.
type CompletionResponse struct {
	Content      string
	InputTokens  int
	OutputTokens int
	Model        string
	FinishReason string
}

// ImageRequest asks an image provider to generate one illustrative
// image for the given prompt.
type ImageRequest struct {
	Prompt string
	Model  string
	Size   string
}

// ImageResult carries the generated image location. URL may be empty
// when the provider produced nothing; callers treat that as a
// non-fatal miss.
type ImageResult struct {
	URL string
}

// Package chat orchestrates a single inbound chat message: knowledge
// base resolution first, then clarification or LLM escalation, with
// session history persisted around every exchange.
package chat

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ziadkadry99/campus-bot/internal/engine"
	"github.com/ziadkadry99/campus-bot/internal/escalate"
	"github.com/ziadkadry99/campus-bot/internal/knowledge"
	"github.com/ziadkadry99/campus-bot/internal/llm"
)

// Answer sources.
const (
	SourceKnowledge = "knowledge"
	SourceClarify   = "clarify"
	SourceAssistant = "assistant"
)

// Options tunes the chat service.
type Options struct {
	Model           string
	ImageModel      string
	Language        string
	HistoryLimit    int
	FallbackTimeout time.Duration
	ImageTimeout    time.Duration
	ImagesEnabled   bool
	Verbose         bool
}

// DefaultOptions returns the service defaults.
func DefaultOptions() Options {
	return Options{
		Language:        "en",
		HistoryLimit:    10,
		FallbackTimeout: 30 * time.Second,
		ImageTimeout:    60 * time.Second,
		ImagesEnabled:   true,
	}
}

// KnowledgeSource provides the entries the engine scores against.
type KnowledgeSource interface {
	Snapshot(ctx context.Context) ([]knowledge.Entry, error)
}

// Reply is the outcome of one inbound message.
type Reply struct {
	SessionID string          `json:"session_id"`
	Text      string          `json:"text"`
	HTML      string          `json:"html,omitempty"`
	Source    string          `json:"source"`
	EntryID   string          `json:"entry_id,omitempty"`
	ImageURL  string          `json:"image_url,omitempty"`
	Links     []escalate.Link `json:"links,omitempty"`
}

// Service answers chat messages.
type Service struct {
	kb       KnowledgeSource
	engine   *engine.Engine
	enricher *escalate.Enricher
	provider llm.Provider
	images   llm.ImageProvider
	store    *Store
	opts     Options
}

// New creates a chat service. provider and images may be nil, in which
// case escalated queries get the generic unavailable answer and no
// generated images respectively.
func New(kb KnowledgeSource, eng *engine.Engine, enricher *escalate.Enricher, provider llm.Provider, images llm.ImageProvider, store *Store, opts Options) *Service {
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = 10
	}
	if opts.FallbackTimeout <= 0 {
		opts.FallbackTimeout = 30 * time.Second
	}
	if opts.ImageTimeout <= 0 {
		opts.ImageTimeout = 60 * time.Second
	}
	return &Service{
		kb:       kb,
		engine:   eng,
		enricher: enricher,
		provider: provider,
		images:   images,
		store:    store,
		opts:     opts,
	}
}

// Ask handles one user message. When sessionID is empty a new session is
// started; the reply carries the session ID to continue with.
func (s *Service) Ask(ctx context.Context, sessionID, userID string, q engine.Query) (*Reply, error) {
	if sessionID == "" {
		sess, err := s.store.CreateSession(ctx, userID, s.opts.Language)
		if err != nil {
			return nil, err
		}
		sessionID = sess.ID
	}

	entries, err := s.kb.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading knowledge base: %w", err)
	}

	outcome := s.engine.Resolve(q, entries)

	var reply *Reply
	switch outcome.Kind {
	case engine.OutcomeConfident:
		best := outcome.Best
		if s.opts.Verbose {
			log.Printf("confident match %q score=%.0f reason=%s", best.Entry.Question, best.Score, best.Reason)
		}
		reply = &Reply{
			Text:     best.Entry.Answer,
			Source:   SourceKnowledge,
			EntryID:  best.Entry.ID,
			ImageURL: best.Entry.ImageURL,
		}
	case engine.OutcomeAmbiguous:
		questions := make([]string, 0, len(outcome.Candidates))
		for _, c := range outcome.Candidates {
			questions = append(questions, c.Entry.Question)
		}
		reply = &Reply{
			Text:   formatClarification(questions),
			Source: SourceClarify,
		}
	default:
		reply = s.escalate(ctx, sessionID, q)
	}

	reply.SessionID = sessionID
	reply.HTML = renderHTML(reply.Text)

	// The inbound message is persisted only now so that the escalation
	// path sees history up to but not including the current question.
	if _, err := s.store.AddMessage(ctx, Message{
		SessionID: sessionID,
		Role:      "user",
		Content:   q.Text,
	}); err != nil {
		return nil, err
	}
	if _, err := s.store.AddMessage(ctx, Message{
		SessionID: sessionID,
		Role:      "assistant",
		Content:   reply.Text,
		Source:    reply.Source,
		EntryID:   reply.EntryID,
		ImageURL:  reply.ImageURL,
		Links:     reply.Links,
	}); err != nil {
		return nil, err
	}
	return reply, nil
}

// escalate answers a query the knowledge base could not. Every failure
// along the way degrades to a usable answer rather than an error.
func (s *Service) escalate(ctx context.Context, sessionID string, q engine.Query) *Reply {
	if s.provider == nil {
		return &Reply{Text: unavailableAnswer, Source: SourceAssistant}
	}

	directive := s.enricher.Prepare(q)

	history, err := s.store.RecentMessages(ctx, sessionID, s.opts.HistoryLimit)
	if err != nil {
		log.Printf("Warning: loading chat history: %v", err)
		history = nil
	}

	cctx, cancel := context.WithTimeout(ctx, s.opts.FallbackTimeout)
	defer cancel()
	resp, err := s.provider.Complete(cctx, llm.CompletionRequest{
		Model:       s.opts.Model,
		Messages:    buildFallbackMessages(history, q.Text, s.opts.Language),
		MaxTokens:   1024,
		Temperature: 0.4,
	})
	if err != nil {
		log.Printf("Warning: fallback completion failed: %v", err)
		return &Reply{Text: unavailableAnswer, Source: SourceAssistant}
	}

	ans := escalate.ParseAnswer(resp.Content)
	reply := &Reply{
		Text:   ans.Text,
		Links:  ans.Links,
		Source: SourceAssistant,
	}

	prompt := ans.ImagePrompt
	if prompt == "" {
		prompt = directive.ImagePrompt
	}
	wantImage := directive.NeedsImage || (ans.Structured && ans.ImagePrompt != "")
	if wantImage && prompt != "" {
		reply.ImageURL = s.generateImage(ctx, prompt)
	}
	return reply
}

// generateImage is best effort; a failed or disabled image call returns
// an empty URL and the text answer stands on its own.
func (s *Service) generateImage(ctx context.Context, prompt string) string {
	if !s.opts.ImagesEnabled || s.images == nil {
		return ""
	}
	ictx, cancel := context.WithTimeout(ctx, s.opts.ImageTimeout)
	defer cancel()
	res, err := s.images.GenerateImage(ictx, llm.ImageRequest{
		Prompt: prompt,
		Model:  s.opts.ImageModel,
	})
	if err != nil {
		log.Printf("Warning: image generation failed: %v", err)
		return ""
	}
	return res.URL
}

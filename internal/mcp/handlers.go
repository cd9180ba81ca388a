package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/campus-bot/internal/chat"
	"github.com/ziadkadry99/campus-bot/internal/engine"
)

// handleAskCampus answers a question through the full chat pipeline.
func (s *Server) handleAskCampus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}
	sessionID := request.GetString("session_id", "")

	reply, err := s.svc.Ask(ctx, sessionID, "mcp", engine.Query{Text: question})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ask failed: %v", err)), nil
	}

	return mcp.NewToolResultText(formatReply(reply)), nil
}

// handleSearchKnowledge scores a query against every entry and returns
// the ranked candidates without answering.
func (s *Server) handleSearchKnowledge(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}
	limit := request.GetInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}

	entries, err := s.kb.Snapshot(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading knowledge base: %v", err)), nil
	}
	if len(entries) == 0 {
		return mcp.NewToolResultText("The knowledge base is empty. Run `campusbot kb import` to load entries."), nil
	}

	ts := s.engine.Classify(query)
	var scored []engine.ScoredCandidate
	for _, entry := range entries {
		cand := s.engine.Score(ts, entry)
		if cand.Score > 0 {
			scored = append(scored, cand)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	if len(scored) == 0 {
		return mcp.NewToolResultText("No entries scored above zero for this query."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Top %d candidates:\n\n", len(scored))
	for i, c := range scored {
		fmt.Fprintf(&b, "%d. [%.0f, %s] %s\n", i+1, c.Score, c.Reason, c.Entry.Question)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleListEntries lists entry questions, optionally filtered by category.
func (s *Server) handleListEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := request.GetString("category", "")

	entries, err := s.kb.Snapshot(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading knowledge base: %v", err)), nil
	}

	var b strings.Builder
	count := 0
	for _, e := range entries {
		if category != "" && !strings.EqualFold(e.Category, category) {
			continue
		}
		count++
		if e.Category != "" {
			fmt.Fprintf(&b, "- [%s] %s\n", e.Category, e.Question)
		} else {
			fmt.Fprintf(&b, "- %s\n", e.Question)
		}
	}
	if count == 0 {
		return mcp.NewToolResultText("No matching entries."), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%d entries:\n\n%s", count, b.String())), nil
}

func formatReply(reply *chat.Reply) string {
	var b strings.Builder
	b.WriteString(reply.Text)
	if reply.ImageURL != "" {
		fmt.Fprintf(&b, "\n\nImage: %s", reply.ImageURL)
	}
	for _, link := range reply.Links {
		fmt.Fprintf(&b, "\n- %s: %s", link.Title, link.URL)
	}
	fmt.Fprintf(&b, "\n\n(session_id: %s, source: %s)", reply.SessionID, reply.Source)
	return b.String()
}

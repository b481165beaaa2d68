// ABOUTME: MCP tool handler implementations for the StudyBuddy server
// ABOUTME: One active session at a time; chat turns stay strictly sequential
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/harper/studybuddy/internal/core"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools.
// The mutex serializes tool calls so the single-writer session contract
// holds even if an MCP client pipelines requests.
type Handlers struct {
	pipeline *core.Pipeline
	session  *core.Session
	mu       sync.Mutex
}

// ProcessDocument handles the process_document tool
func (h *Handlers) ProcessDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name argument is required and must be a string"), nil
	}
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	sess, err := h.pipeline.Process(name, text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("processing failed: %v", err)), nil
	}
	h.session = sess

	stats := sess.Stats()
	response := map[string]interface{}{
		"session_id": sess.ID,
		"summary":    sess.Summary(),
		"questions":  sess.Questions(),
		"concepts":   sess.Concepts(0),
		"stats":      stats,
	}
	return marshalResult(response)
}

// GetSummary handles the get_summary tool
func (h *Handlers) GetSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		return mcp.NewToolResultError("no active session; call process_document first"), nil
	}
	return marshalResult(map[string]interface{}{
		"summary": h.session.Summary(),
	})
}

// GetConcepts handles the get_concepts tool
func (h *Handlers) GetConcepts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topK := request.GetInt("top_k", 15)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		return mcp.NewToolResultError("no active session; call process_document first"), nil
	}
	return marshalResult(map[string]interface{}{
		"concepts": h.session.Concepts(topK),
	})
}

// GetStats handles the get_stats tool
func (h *Handlers) GetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		return mcp.NewToolResultError("no active session; call process_document first"), nil
	}
	return marshalResult(map[string]interface{}{
		"stats": h.session.Stats(),
	})
}

// MoreQuestions handles the more_questions tool
func (h *Handlers) MoreQuestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n := request.GetInt("n", 5)
	if n <= 0 {
		return mcp.NewToolResultError("n must be a positive number"), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		return mcp.NewToolResultError("no active session; call process_document first"), nil
	}

	questions, returned := h.session.MoreQuestions(n)
	return marshalResult(map[string]interface{}{
		"questions":      questions,
		"requested":      n,
		"returned_count": returned,
	})
}

func marshalResult(response map[string]interface{}) (*mcp.CallToolResult, error) {
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

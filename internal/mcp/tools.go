// ABOUTME: MCP tool definitions and registration for the StudyBuddy server
// ABOUTME: Exposes the session API (process, summary, concepts, stats, questions) to agents
package mcp

import (
	"github.com/harper/studybuddy/internal/core"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all StudyBuddy tools with the MCP server
func RegisterTools(server *mcpserver.MCPServer, pipeline *core.Pipeline) *Handlers {
	handlers := &Handlers{pipeline: pipeline}

	// 1. process_document - run the full study pipeline over raw text
	server.AddTool(mcp.Tool{
		Name:        "process_document",
		Description: "Process document text into a study guide session: summary, ranked key concepts, and an initial question set. Replaces any previous session.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Document name for the study guide header",
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Full document text to process",
				},
			},
			Required: []string{"name", "text"},
		},
	}, handlers.ProcessDocument)

	// 2. get_summary - document summary for the active session
	server.AddTool(mcp.Tool{
		Name:        "get_summary",
		Description: "Get the document summary for the active study session.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.GetSummary)

	// 3. get_concepts - ranked key concepts
	server.AddTool(mcp.Tool{
		Name:        "get_concepts",
		Description: "Get the top ranked key concepts for the active study session.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"top_k": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of concepts to return (default: 15)",
					"default":     15,
				},
			},
		},
	}, handlers.GetConcepts)

	// 4. get_stats - document and session counters
	server.AddTool(mcp.Tool{
		Name:        "get_stats",
		Description: "Get document and session statistics (word count, chunk count, questions issued).",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.GetStats)

	// 5. more_questions - incremental question generation
	server.AddTool(mcp.Tool{
		Name:        "more_questions",
		Description: "Generate up to n new study questions that have not been issued before. May return fewer once the material is exhausted; check returned_count.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"n": map[string]interface{}{
					"type":        "number",
					"description": "Number of new questions requested (default: 5)",
					"default":     5,
				},
			},
		},
	}, handlers.MoreQuestions)

	return handlers
}

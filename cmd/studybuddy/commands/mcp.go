// ABOUTME: MCP command starts the Model Context Protocol server
// ABOUTME: Enables LLM agents to build study guides via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harper/studybuddy/internal/config"
	"github.com/harper/studybuddy/internal/mcp"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs StudyBuddy as an MCP (Model Context Protocol) server, enabling
LLM agents to process documents and request study material via stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an agent host)
  studybuddy mcp

  # Configure in an MCP client config:
  # {
  #   "mcpServers": {
  #     "studybuddy": {
  #       "command": "studybuddy",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if cfg.Backend == config.BackendOpenAI && cfg.OpenAIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set - falling back to the heuristic backend")
		cfg.Backend = config.BackendHeuristic
	}

	pipeline, err := buildPipeline(cfg)
	if err != nil {
		return fmt.Errorf("initializing pipeline: %w", err)
	}

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"StudyBuddy",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, pipeline)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("StudyBuddy MCP server starting on stdio...")
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	// Wait for shutdown signal or server error
	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, exiting")
		}
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}

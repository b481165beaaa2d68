// ABOUTME: Process command runs the full study pipeline over a document file
// ABOUTME: Prints results, saves the study guide, and optionally starts chat
package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/studybuddy/internal/config"
	"github.com/harper/studybuddy/internal/core"
	"github.com/harper/studybuddy/internal/guide"
	"github.com/joho/godotenv"
)

var (
	processQuestions int
	processOutput    string
	processNoSave    bool
	processChat      bool
)

// NewProcessCmd creates the process command
func NewProcessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Process a document into a study guide",
		Long: `Process a text document through the full study pipeline:
chunking, concept extraction, summarization, and question generation.

Input must be plain text (.txt or .md). Convert PDFs to text first.

Examples:
  studybuddy process notes.txt
  studybuddy process notes.txt -n 20 -o guide.txt
  studybuddy process notes.txt --chat
  studybuddy process notes.txt --no-save`,
		Args: cobra.ExactArgs(1),
		RunE: runProcess,
	}

	cmd.Flags().IntVarP(&processQuestions, "num-questions", "n", 0, "Number of initial questions to generate")
	cmd.Flags().StringVarP(&processOutput, "output", "o", "", "Study guide output path")
	cmd.Flags().BoolVar(&processNoSave, "no-save", false, "Don't save the study guide to a file")
	cmd.Flags().BoolVar(&processChat, "chat", false, "Start interactive chat after processing")

	return cmd
}

func runProcess(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if processQuestions > 0 {
		cfg.InitialQuestions = processQuestions
	}

	text, name, err := readDocument(args[0])
	if err != nil {
		return err
	}

	pipeline, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Processing %s...\n", name)
	}

	sess, err := pipeline.Process(name, text)
	if err != nil {
		return fmt.Errorf("processing %s: %w", name, err)
	}

	if outputFormat == "json" {
		if err := printJSON(cmd, sess); err != nil {
			return err
		}
	} else if !quiet {
		printResults(cmd, sess)
	}

	if !processNoSave {
		g := &guide.Guide{
			DocumentName: name,
			GeneratedAt:  time.Now(),
			Summary:      sess.Summary(),
			Questions:    sess.Questions(),
			Concepts:     sess.Concepts(cfg.TopConcepts),
		}
		path, err := g.Save(processOutput)
		if err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Study guide saved to: %s\n", path)
		}
	}

	if processChat {
		runChatLoop(cmd, sess)
	} else {
		sess.Terminate()
	}

	return nil
}

// readDocument loads plain text from a .txt or .md file
func readDocument(path string) (text, name string, err error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".pdf" {
		return "", "", fmt.Errorf("PDF extraction is not supported; convert %s to plain text first", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading document: %w", err)
	}
	return string(data), filepath.Base(path), nil
}

// printResults prints the study material sections to stdout
func printResults(cmd *cobra.Command, sess *core.Session) {
	out := cmd.OutOrStdout()
	rule := strings.Repeat("=", 60)
	section := strings.Repeat("-", 60)

	fmt.Fprintf(out, "\n%s\n  STUDYBUDDY RESULTS\n%s\n\n", rule, rule)

	fmt.Fprintf(out, "SUMMARY\n%s\n%s\n\n", section, sess.Summary())

	fmt.Fprintf(out, "STUDY QUESTIONS\n%s\n", section)
	for i, q := range sess.Questions() {
		fmt.Fprintf(out, "%2d. %s\n", i+1, q.Text)
	}

	fmt.Fprintf(out, "\nKEY CONCEPTS\n%s\n", section)
	for i, c := range sess.Concepts(0) {
		fmt.Fprintf(out, "%2d. %s\n", i+1, c.DisplayText)
	}

	stats := sess.Stats()
	fmt.Fprintf(out, "\nSTATISTICS\n%s\n", section)
	fmt.Fprintf(out, "  Words: %d\n", stats.WordCount)
	fmt.Fprintf(out, "  Sentences: %d\n", stats.SentenceCount)
	fmt.Fprintf(out, "  Chunks: %d\n", stats.ChunkCount)
	fmt.Fprintf(out, "  Questions generated: %d\n", stats.QuestionsIssued)
	fmt.Fprintf(out, "  Key concepts: %d\n\n", stats.ConceptCount)
}

// printJSON dumps the full session result as JSON
func printJSON(cmd *cobra.Command, sess *core.Session) error {
	payload := map[string]interface{}{
		"summary":   sess.Summary(),
		"questions": sess.Questions(),
		"concepts":  sess.Concepts(0),
		"stats":     sess.Stats(),
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
	return nil
}

// runChatLoop drives the interactive session until exit or EOF
func runChatLoop(cmd *cobra.Command, sess *core.Session) {
	out := cmd.OutOrStdout()
	sess.BeginChat()

	fmt.Fprintln(out, "\nI've processed your document and generated study materials.")
	fmt.Fprintln(out, "Type 'help' to see available commands, or 'exit' to quit.")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for sess.State() == core.StateAwaitingInput {
		fmt.Fprint(out, "\nYou: ")
		if !scanner.Scan() {
			// EOF ends the loop like an exit
			sess.Terminate()
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		response, _ := sess.HandleTurn(input)
		fmt.Fprintf(out, "\nStudyBuddy: %s\n", response)
	}
}

// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Entry point for process, mcp, and version subcommands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "studybuddy",
		Short: "Turn a document into a study guide",
		Long: `StudyBuddy turns a document into a study guide: a summary,
a deduplicated set of study questions, and a ranked list of key
concepts, with an interactive chat for follow-up requests.

Examples:
  studybuddy process notes.txt
  studybuddy process notes.txt -n 20 -o guide.txt
  studybuddy process notes.txt --chat
  studybuddy mcp`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress messages")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "Output format (text or json)")

	cmd.AddCommand(NewProcessCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// ABOUTME: Writes the plain-text study guide artifact
// ABOUTME: Fixed section headers SUMMARY, STUDY QUESTIONS, KEY CONCEPTS
package guide

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harper/studybuddy/internal/models"
)

const ruleWidth = 60

// Guide is the renderable study guide for one processed document
type Guide struct {
	DocumentName string
	GeneratedAt  time.Time
	Summary      string
	Questions    []models.Question
	Concepts     []models.ConceptRecord
}

// Write renders the guide to w in the fixed plain-text format
func (g *Guide) Write(w io.Writer) error {
	rule := strings.Repeat("=", ruleWidth)
	section := strings.Repeat("-", ruleWidth)

	fmt.Fprintf(w, "%s\n", rule)
	fmt.Fprintf(w, "  STUDYBUDDY STUDY GUIDE\n")
	fmt.Fprintf(w, "%s\n\n", rule)
	fmt.Fprintf(w, "Document: %s\n", g.DocumentName)
	fmt.Fprintf(w, "Generated: %s\n\n", g.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(w, "SUMMARY\n%s\n", section)
	if g.Summary != "" {
		fmt.Fprintf(w, "%s\n", g.Summary)
	} else {
		fmt.Fprintf(w, "(no summary available)\n")
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "STUDY QUESTIONS\n%s\n", section)
	for i, q := range g.Questions {
		fmt.Fprintf(w, "%d. %s\n", i+1, q.Text)
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "KEY CONCEPTS\n%s\n", section)
	for i, c := range g.Concepts {
		fmt.Fprintf(w, "%d. %s\n", i+1, c.DisplayText)
	}
	fmt.Fprintf(w, "\n")

	return nil
}

// Save writes the guide to path, or to the default
// "<document base>_study_guide.txt" when path is empty.
func (g *Guide) Save(path string) (string, error) {
	if path == "" {
		base := strings.TrimSuffix(g.DocumentName, filepath.Ext(g.DocumentName))
		path = base + "_study_guide.txt"
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating study guide file: %w", err)
	}
	defer f.Close()

	if err := g.Write(f); err != nil {
		return "", fmt.Errorf("writing study guide: %w", err)
	}
	return path, nil
}

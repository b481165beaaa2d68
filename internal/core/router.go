// ABOUTME: Intent router maps raw chat input to a tagged intent
// ABOUTME: Ordered rules: exact commands, parameterized questions, phrase heuristics, fallback
package core

import (
	"regexp"
	"strconv"
	"strings"
)

// IntentKind enumerates the fixed set of chat operations
type IntentKind int

const (
	IntentUnknown IntentKind = iota
	IntentHelp
	IntentSummary
	IntentConcepts
	IntentStats
	IntentMoreQuestions
	IntentExit
)

func (k IntentKind) String() string {
	switch k {
	case IntentHelp:
		return "help"
	case IntentSummary:
		return "summary"
	case IntentConcepts:
		return "concepts"
	case IntentStats:
		return "stats"
	case IntentMoreQuestions:
		return "questions"
	case IntentExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Intent is the resolved meaning of one chat turn.
// Count is meaningful only for IntentMoreQuestions.
type Intent struct {
	Kind  IntentKind
	Count int
}

var numberRe = regexp.MustCompile(`\d+`)

// exactCommands resolve when the input's first word matches exactly
var exactCommands = map[string]IntentKind{
	"help":     IntentHelp,
	"summary":  IntentSummary,
	"concepts": IntentConcepts,
	"stats":    IntentStats,
	"exit":     IntentExit,
	"quit":     IntentExit,
}

// ParseIntent resolves raw user input against the rule list in order:
// exact commands, then "questions [n]", then natural-language phrase
// heuristics, then the unknown fallback. It never fails.
func ParseIntent(input string, defaultCount int) Intent {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		return Intent{Kind: IntentUnknown}
	}
	fields := strings.Fields(lower)
	first := fields[0]

	// Rule 1: exact structured commands
	if kind, ok := exactCommands[first]; ok {
		return Intent{Kind: kind}
	}

	// Rule 2: parameterized questions command
	if first == "questions" || first == "question" {
		return Intent{Kind: IntentMoreQuestions, Count: extractCount(lower, defaultCount)}
	}

	// Rule 3: natural-language phrase heuristics, most specific first
	switch {
	case strings.Contains(lower, "question"):
		return Intent{Kind: IntentMoreQuestions, Count: extractCount(lower, defaultCount)}
	case strings.Contains(lower, "summar"):
		return Intent{Kind: IntentSummary}
	case strings.Contains(lower, "concept"), strings.Contains(lower, "keyword"):
		return Intent{Kind: IntentConcepts}
	case strings.Contains(lower, "statistic"), strings.Contains(lower, "stat"):
		return Intent{Kind: IntentStats}
	case strings.Contains(lower, "help"):
		return Intent{Kind: IntentHelp}
	case strings.Contains(lower, "bye"), strings.Contains(lower, "goodbye"):
		return Intent{Kind: IntentExit}
	}

	// Rule 4: fallback, handled with a help hint upstream
	return Intent{Kind: IntentUnknown}
}

// extractCount pulls the first integer out of the input, falling back to
// defaultCount when absent or unparsable.
func extractCount(input string, defaultCount int) int {
	m := numberRe.FindString(input)
	if m == "" {
		return defaultCount
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return defaultCount
	}
	return n
}

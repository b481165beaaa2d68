// ABOUTME: Session holds per-document conversation state and the chat state machine
// ABOUTME: Single writer; questions grow monotonically and never resurface
package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harper/studybuddy/internal/models"
)

// State is the session lifecycle position
type State int

const (
	StateIdle State = iota
	StateReady
	StateAwaitingInput
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateReady:
		return "READY"
	case StateAwaitingInput:
		return "AWAITING_INPUT"
	case StateTerminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

// Session is the conversation state for one processed document.
// It is not safe for concurrent use; chat turns are strictly sequential.
type Session struct {
	ID string

	doc      *models.Document
	concepts []models.ConceptRecord
	summary  string

	engine    *QuestionEngine
	qstate    *questionState
	questions []models.Question

	state            State
	lastCommand      string
	turnCount        int
	defaultQuestions int
	topConcepts      int
}

// newSession is called by the pipeline once processing succeeds
func newSession(doc *models.Document, concepts []models.ConceptRecord, summary string, engine *QuestionEngine, defaultQuestions, topConcepts int) *Session {
	if defaultQuestions <= 0 {
		defaultQuestions = 5
	}
	if topConcepts <= 0 {
		topConcepts = 15
	}
	return &Session{
		ID:               "session_" + uuid.New().String(),
		doc:              doc,
		concepts:         concepts,
		summary:          summary,
		engine:           engine,
		qstate:           newQuestionState(),
		state:            StateReady,
		defaultQuestions: defaultQuestions,
		topConcepts:      topConcepts,
	}
}

// State returns the current lifecycle state
func (s *Session) State() State { return s.state }

// Document returns the processed document
func (s *Session) Document() *models.Document { return s.doc }

// Summary returns the document-level summary
func (s *Session) Summary() string { return s.summary }

// Questions returns every question issued so far, in issue order
func (s *Session) Questions() []models.Question {
	out := make([]models.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Concepts returns up to topK ranked concepts
func (s *Session) Concepts(topK int) []models.ConceptRecord {
	if topK <= 0 || topK > len(s.concepts) {
		topK = len(s.concepts)
	}
	out := make([]models.ConceptRecord, topK)
	copy(out, s.concepts[:topK])
	return out
}

// Stats returns document and session counters without recomputation
func (s *Session) Stats() models.Stats {
	return models.Stats{
		DocumentName:    s.doc.Name,
		CharCount:       s.doc.CharCount,
		WordCount:       s.doc.WordCount,
		SentenceCount:   s.doc.SentenceCount,
		ChunkCount:      len(s.doc.Chunks),
		ConceptCount:    len(s.concepts),
		QuestionsIssued: len(s.questions),
		TurnCount:       s.turnCount,
	}
}

// MoreQuestions issues up to n new questions. The returned count may be
// smaller than n once the source material is exhausted; that is a valid
// result, not an error.
func (s *Session) MoreQuestions(n int) ([]models.Question, int) {
	if n <= 0 {
		n = s.defaultQuestions
	}
	batch := s.engine.Next(s.qstate, s.concepts, s.doc.Chunks, n)
	s.questions = append(s.questions, batch...)
	return batch, len(batch)
}

// BeginChat moves a ready session into the interactive loop
func (s *Session) BeginChat() {
	if s.state == StateReady {
		s.state = StateAwaitingInput
	}
}

// Terminate ends the session; the only normal exit besides input EOF
func (s *Session) Terminate() {
	s.state = StateTerminated
}

// HandleTurn resolves one chat turn and returns the response text plus
// the state after the turn. Unrecognized input yields a help hint and
// never terminates the session.
func (s *Session) HandleTurn(raw string) (string, State) {
	if s.state == StateTerminated {
		return "This session has ended.", s.state
	}
	s.turnCount++

	intent := ParseIntent(raw, s.defaultQuestions)
	s.lastCommand = intent.Kind.String()

	switch intent.Kind {
	case IntentHelp:
		return helpText(), s.state
	case IntentSummary:
		return s.summaryResponse(), s.state
	case IntentConcepts:
		return s.conceptsResponse(), s.state
	case IntentStats:
		return s.statsResponse(), s.state
	case IntentMoreQuestions:
		return s.questionsResponse(intent.Count), s.state
	case IntentExit:
		s.state = StateTerminated
		return "Thanks for studying with me. Good luck!", s.state
	default:
		return "I'm not sure what you mean. Type 'help' for available commands.", s.state
	}
}

func (s *Session) summaryResponse() string {
	if s.summary == "" {
		return "No summary is available for this document."
	}
	return "Here's a summary of your document:\n\n" + s.summary
}

func (s *Session) conceptsResponse() string {
	concepts := s.Concepts(s.topConcepts)
	if len(concepts) == 0 {
		return "No key concepts were identified in this document."
	}
	var b strings.Builder
	b.WriteString("Here are the key concepts I identified:\n\n")
	for i, c := range concepts {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, c.DisplayText)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Session) statsResponse() string {
	stats := s.Stats()
	var b strings.Builder
	b.WriteString("Document Statistics\n")
	fmt.Fprintf(&b, "  Words: %d\n", stats.WordCount)
	fmt.Fprintf(&b, "  Sentences: %d\n", stats.SentenceCount)
	if stats.SentenceCount > 0 {
		fmt.Fprintf(&b, "  Avg words/sentence: %.1f\n", float64(stats.WordCount)/float64(stats.SentenceCount))
	}
	fmt.Fprintf(&b, "  Chunks: %d\n", stats.ChunkCount)
	fmt.Fprintf(&b, "  Concepts: %d\n", stats.ConceptCount)
	fmt.Fprintf(&b, "  Questions issued: %d\n", stats.QuestionsIssued)
	fmt.Fprintf(&b, "  Turns: %d", stats.TurnCount)
	return b.String()
}

func (s *Session) questionsResponse(n int) string {
	batch, returned := s.MoreQuestions(n)
	if returned == 0 {
		return "I couldn't come up with any new questions; the material may be exhausted."
	}
	var b strings.Builder
	if returned < n {
		fmt.Fprintf(&b, "I could only come up with %d new questions:\n\n", returned)
	} else {
		fmt.Fprintf(&b, "Here are %d study questions:\n\n", returned)
	}
	for i, q := range batch {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Text)
	}
	return strings.TrimRight(b.String(), "\n")
}

func helpText() string {
	return strings.Join([]string{
		"Here are the commands I understand:",
		"",
		"  summary          - Show the document summary",
		"  questions [n]    - Generate n more questions (default: 5)",
		"  concepts         - Show extracted key concepts",
		"  stats            - Show document statistics",
		"  help             - Show this help message",
		"  exit / quit      - End the session",
		"",
		"You can also ask naturally, like:",
		"  'Give me 10 more questions'",
		"  'Summarize the main ideas'",
		"  'What are the key concepts?'",
	}, "\n")
}

// Package chat holds the in-memory conversation transcript and the
// at-most-one-in-flight request state machine.
package chat

import (
	"strings"

	"spendwise/internal/assistant"
	"spendwise/internal/model"
)

// Transcript messages for the two loading placeholders and the greeting.
const (
	greetingText      = "Hello! How can I help you with your budget today? Ask me for a budget plan or expense analysis."
	analyzingText     = "Analyzing your finances and preparing advice..."
	thinkingText      = "Thinking..."
)

// Request describes the single outbound call the caller should execute.
// Persona and Payload go to the gateway verbatim.
type Request struct {
	Kind    assistant.RequestKind
	Persona string
	Payload string
}

// Session owns the transcript. It is not safe for concurrent use: all
// mutation happens from the single UI-facing execution context, and the
// background network call only reports back through Resolve.
type Session struct {
	turns    []model.Turn
	awaiting bool
}

// New creates a session seeded with the assistant greeting.
func New() *Session {
	return &Session{
		turns: []model.Turn{{Text: greetingText, Speaker: model.SpeakerAssistant}},
	}
}

// Turns returns the transcript in insertion order.
func (s *Session) Turns() []model.Turn {
	return s.turns
}

// Awaiting reports whether a request is in flight.
func (s *Session) Awaiting() bool {
	return s.awaiting
}

// Begin appends the user turn and transitions to AwaitingReply, appending a
// pending placeholder. It returns the request the caller must execute, or nil
// when nothing should be sent:
//   - blank input is ignored entirely
//   - a second send while one is in flight is silently dropped
//   - the income precondition fails, which resolves locally with a guidance
//     turn and no network call
func (s *Session) Begin(text string, income float64, expenses []model.Expense, currency string) *Request {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if s.awaiting {
		return nil
	}

	s.turns = append(s.turns, model.Turn{Text: text, Speaker: model.SpeakerUser})

	kind := assistant.Classify(text)
	if kind == assistant.FinancialAnalysis {
		if income <= 0 {
			s.turns = append(s.turns, model.Turn{Text: assistant.IncomeUnsetMessage, Speaker: model.SpeakerAssistant})
			return nil
		}

		s.awaiting = true
		s.turns = append(s.turns, model.Turn{Text: analyzingText, Speaker: model.SpeakerAssistant, Pending: true})
		return &Request{
			Kind:    kind,
			Persona: kind.Persona(),
			Payload: assistant.BuildFinancialContext(income, expenses, text, currency),
		}
	}

	s.awaiting = true
	s.turns = append(s.turns, model.Turn{Text: thinkingText, Speaker: model.SpeakerAssistant, Pending: true})
	return &Request{Kind: kind, Persona: kind.Persona(), Payload: text}
}

// Resolve replaces the pending placeholder with the final reply (or error
// message) and returns to Idle. A resolve with no request in flight is a no-op.
func (s *Session) Resolve(reply string) {
	if !s.awaiting {
		return
	}
	s.awaiting = false

	for i := len(s.turns) - 1; i >= 0; i-- {
		if s.turns[i].Pending {
			s.turns[i] = model.Turn{Text: reply, Speaker: model.SpeakerAssistant}
			return
		}
	}
	// Placeholder missing would be a programming error; still record the reply
	s.turns = append(s.turns, model.Turn{Text: reply, Speaker: model.SpeakerAssistant})
}

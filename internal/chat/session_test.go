package chat

import (
	"testing"
	"time"

	"spendwise/internal/assistant"
	"spendwise/internal/model"
)

func pendingCount(s *Session) int {
	n := 0
	for _, turn := range s.Turns() {
		if turn.Pending {
			n++
		}
	}
	return n
}

func TestNew_SeedsGreeting(t *testing.T) {
	s := New()
	turns := s.Turns()
	if len(turns) != 1 {
		t.Fatalf("initial turns = %d, want 1", len(turns))
	}
	if turns[0].Speaker != model.SpeakerAssistant || turns[0].Pending {
		t.Fatalf("greeting turn = %+v", turns[0])
	}
}

func TestBegin_BlankInputIgnored(t *testing.T) {
	s := New()
	if req := s.Begin("   \n", 1000, nil, "₹"); req != nil {
		t.Fatal("blank input should produce no request")
	}
	if len(s.Turns()) != 1 {
		t.Fatal("blank input should append no turn")
	}
}

func TestBegin_FinancialRequest(t *testing.T) {
	s := New()
	expenses := []model.Expense{{Amount: 50, Date: time.Now(), Description: "coffee"}}

	req := s.Begin("give me a budget plan", 40000, expenses, "₹")
	if req == nil {
		t.Fatal("expected an outbound request")
	}
	if req.Kind != assistant.FinancialAnalysis {
		t.Fatalf("kind = %v, want FinancialAnalysis", req.Kind)
	}
	if !s.Awaiting() {
		t.Fatal("session should be awaiting a reply")
	}
	if pendingCount(s) != 1 {
		t.Fatalf("pending turns = %d, want 1", pendingCount(s))
	}
}

func TestBegin_IncomeUnsetShortCircuits(t *testing.T) {
	s := New()

	req := s.Begin("give me a budget plan", 0, nil, "₹")
	if req != nil {
		t.Fatal("no request may be issued when income is unset")
	}
	if s.Awaiting() {
		t.Fatal("no loading state for the local guidance path")
	}

	turns := s.Turns()
	last := turns[len(turns)-1]
	if last.Text != assistant.IncomeUnsetMessage || last.Pending {
		t.Fatalf("last turn = %+v, want the local guidance message", last)
	}
}

func TestBegin_SecondSendDroppedWhileAwaiting(t *testing.T) {
	s := New()
	if s.Begin("plan please", 1000, nil, "₹") == nil {
		t.Fatal("first send should go out")
	}
	before := len(s.Turns())

	if req := s.Begin("analyze again", 1000, nil, "₹"); req != nil {
		t.Fatal("second send while awaiting must be dropped, not queued")
	}
	if len(s.Turns()) != before {
		t.Fatal("dropped send must not append turns")
	}
	if pendingCount(s) != 1 {
		t.Fatalf("pending turns = %d, want exactly 1", pendingCount(s))
	}
}

func TestResolve_ReplacesPlaceholderInPlace(t *testing.T) {
	s := New()
	s.Begin("what's the weather?", 1000, nil, "₹")
	placeholderIdx := len(s.Turns()) - 1

	s.Resolve("I can only help with budgeting.")

	turns := s.Turns()
	if s.Awaiting() {
		t.Fatal("session should be idle after resolve")
	}
	if pendingCount(s) != 0 {
		t.Fatal("placeholder should be gone")
	}
	got := turns[placeholderIdx]
	if got.Text != "I can only help with budgeting." || got.Speaker != model.SpeakerAssistant {
		t.Fatalf("resolved turn = %+v", got)
	}
	if len(turns) != placeholderIdx+1 {
		t.Fatalf("resolve must replace, not append: %d turns", len(turns))
	}
}

func TestResolve_NoopWhenIdle(t *testing.T) {
	s := New()
	before := len(s.Turns())
	s.Resolve("stray reply")
	if len(s.Turns()) != before {
		t.Fatal("resolve without an in-flight request must be a no-op")
	}
}

func TestBegin_AllowedAgainAfterResolve(t *testing.T) {
	s := New()
	s.Begin("budget plan", 1000, nil, "₹")
	s.Resolve("done")

	if req := s.Begin("analyze spending", 1000, nil, "₹"); req == nil {
		t.Fatal("new send should be allowed after the previous one resolved")
	}
}

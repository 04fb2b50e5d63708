package refine

import (
	"testing"

	"github.com/google/uuid"
)

func newTestSession(text string) *Session {
	return NewSession(uuid.New(), uuid.New(), text)
}

func TestRoundLifecycle(t *testing.T) {
	s := newTestSession("A")

	working, err := s.BeginRound()
	if err != nil {
		t.Fatalf("BeginRound() error = %v", err)
	}
	if working != "A" {
		t.Errorf("working = %q, want %q", working, "A")
	}
	if s.Snapshot().State != StateRefining {
		t.Errorf("state = %s, want %s", s.Snapshot().State, StateRefining)
	}

	s.CompleteRound("make it shorter", "B")

	view := s.Snapshot()
	if view.State != StateIdle {
		t.Errorf("state = %s, want %s", view.State, StateIdle)
	}
	if view.WorkingText != "B" {
		t.Errorf("WorkingText = %q, want %q", view.WorkingText, "B")
	}
	if len(view.Exchanges) != 2 {
		t.Fatalf("Exchanges length = %d, want 2", len(view.Exchanges))
	}
	if view.Exchanges[0].Role != "user" || view.Exchanges[0].Content != "make it shorter" {
		t.Errorf("Exchanges[0] = %+v, want user instruction", view.Exchanges[0])
	}
	if view.Exchanges[1].Role != "model" || view.Exchanges[1].Content != "B" {
		t.Errorf("Exchanges[1] = %+v, want model result", view.Exchanges[1])
	}
}

func TestExchangesGrowInPairs(t *testing.T) {
	s := newTestSession("v0")

	rounds := []struct {
		instruction string
		result      string
	}{
		{"make it shorter", "v1"},
		{"make it formal", "v2"},
		{"extract action items", "v3"},
	}

	for i, r := range rounds {
		if _, err := s.BeginRound(); err != nil {
			t.Fatalf("round %d: BeginRound() error = %v", i, err)
		}
		s.CompleteRound(r.instruction, r.result)

		got := len(s.Snapshot().Exchanges)
		want := 2 * (i + 1)
		if got != want {
			t.Errorf("after round %d: Exchanges length = %d, want %d", i, got, want)
		}
	}
}

func TestSubmitWhileRefiningRejected(t *testing.T) {
	s := newTestSession("A")

	if _, err := s.BeginRound(); err != nil {
		t.Fatalf("BeginRound() error = %v", err)
	}
	if _, err := s.BeginRound(); err != ErrRefineInFlight {
		t.Errorf("second BeginRound() error = %v, want ErrRefineInFlight", err)
	}
	if err := s.Undo(); err != ErrRefineInFlight {
		t.Errorf("Undo() while refining error = %v, want ErrRefineInFlight", err)
	}
}

func TestFailedRoundLeavesStateUntouched(t *testing.T) {
	s := newTestSession("A")
	if _, err := s.BeginRound(); err != nil {
		t.Fatalf("BeginRound() error = %v", err)
	}
	s.FailRound()

	view := s.Snapshot()
	if view.WorkingText != "A" {
		t.Errorf("WorkingText = %q, want unchanged %q", view.WorkingText, "A")
	}
	if len(view.Exchanges) != 0 {
		t.Errorf("Exchanges length = %d, want 0 after failed round", len(view.Exchanges))
	}
	if view.State != StateIdle {
		t.Errorf("state = %s, want %s", view.State, StateIdle)
	}

	// The session is usable again after a failure.
	if _, err := s.BeginRound(); err != nil {
		t.Errorf("BeginRound() after failure error = %v", err)
	}
}

func TestUndoAfterFailedRoundRevertsLastSuccess(t *testing.T) {
	s := newTestSession("A")

	if _, err := s.BeginRound(); err != nil {
		t.Fatalf("BeginRound() error = %v", err)
	}
	s.CompleteRound("make it shorter", "B")

	if _, err := s.BeginRound(); err != nil {
		t.Fatalf("second BeginRound() error = %v", err)
	}
	s.FailRound()

	view := s.Snapshot()
	if view.PreviousText != "A" {
		t.Errorf("PreviousText = %q after failed round, want %q", view.PreviousText, "A")
	}

	if err := s.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}

	view = s.Snapshot()
	if view.WorkingText != "A" {
		t.Errorf("WorkingText = %q after undo, want %q", view.WorkingText, "A")
	}
	if len(view.Exchanges) != 0 {
		t.Errorf("Exchanges length = %d after undo, want 0", len(view.Exchanges))
	}
}

func TestUndoRestoresPreviousRound(t *testing.T) {
	s := newTestSession("A")

	if _, err := s.BeginRound(); err != nil {
		t.Fatalf("BeginRound() error = %v", err)
	}
	s.CompleteRound("make it shorter", "B")

	if err := s.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}

	view := s.Snapshot()
	if view.WorkingText != "A" {
		t.Errorf("WorkingText = %q, want %q", view.WorkingText, "A")
	}
	if len(view.Exchanges) != 0 {
		t.Errorf("Exchanges length = %d, want 0", len(view.Exchanges))
	}
}

func TestUndoOnEmptyLogIsNoop(t *testing.T) {
	s := newTestSession("A")

	if err := s.Undo(); err != nil {
		t.Fatalf("Undo() on fresh session error = %v", err)
	}

	view := s.Snapshot()
	if view.WorkingText != "A" || len(view.Exchanges) != 0 || view.State != StateIdle {
		t.Errorf("session corrupted by no-op undo: %+v", view)
	}
}

func TestUndoIsSingleLevel(t *testing.T) {
	s := newTestSession("A")

	if _, err := s.BeginRound(); err != nil {
		t.Fatal(err)
	}
	s.CompleteRound("first", "B")
	if _, err := s.BeginRound(); err != nil {
		t.Fatal(err)
	}
	s.CompleteRound("second", "C")

	// First undo steps back to B.
	if err := s.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if got := s.Snapshot().WorkingText; got != "B" {
		t.Errorf("WorkingText after first undo = %q, want %q", got, "B")
	}

	// Second undo removes the remaining pair but cannot reach "A":
	// the undo slot only ever holds one step of history.
	if err := s.Undo(); err != nil {
		t.Fatalf("second Undo() error = %v", err)
	}
	view := s.Snapshot()
	if view.WorkingText != "B" {
		t.Errorf("WorkingText after second undo = %q, want %q", view.WorkingText, "B")
	}
	if len(view.Exchanges) != 0 {
		t.Errorf("Exchanges length = %d, want 0", len(view.Exchanges))
	}

	// A third undo underflows nothing.
	if err := s.Undo(); err != nil {
		t.Fatalf("third Undo() error = %v", err)
	}
}

func TestResetReinitializes(t *testing.T) {
	s := newTestSession("A")
	if _, err := s.BeginRound(); err != nil {
		t.Fatal(err)
	}
	s.CompleteRound("instruction", "B")

	otherSummary := uuid.New()
	s.Reset(otherSummary, "Z")

	view := s.Snapshot()
	if view.SummaryID != otherSummary {
		t.Errorf("SummaryID = %s, want %s", view.SummaryID, otherSummary)
	}
	if view.WorkingText != "Z" || view.PreviousText != "Z" {
		t.Errorf("texts = (%q, %q), want both %q", view.WorkingText, view.PreviousText, "Z")
	}
	if len(view.Exchanges) != 0 {
		t.Errorf("Exchanges length = %d, want 0", len(view.Exchanges))
	}
	if view.State != StateIdle {
		t.Errorf("state = %s, want %s", view.State, StateIdle)
	}
}

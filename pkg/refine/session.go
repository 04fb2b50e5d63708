package refine

import (
	"errors"
	"sync"

	"ai-summarizer-be/internal/constant"

	"github.com/google/uuid"
)

const (
	// StateIdle means no refinement request is in flight for the session.
	StateIdle = "IDLE"
	// StateRefining means exactly one refinement request is in flight.
	StateRefining = "REFINING"
)

var (
	// ErrRefineInFlight is returned when a round is submitted (or an undo
	// attempted) while another refinement request is still pending.
	ErrRefineInFlight = errors.New("a refinement request is already in flight")
)

// Exchange is one role-tagged entry of the session's conversation log.
// Entries are appended strictly in user/model pairs, one pair per
// successful refinement round.
type Exchange struct {
	Role    string `json:"role"` // constant.ExchangeRoleUser | constant.ExchangeRoleModel
	Content string `json:"content"`
}

// Session holds the ephemeral editing state of one open summary:
// the current working text, the text as it was before the last successful
// round (two-slot, single-level undo), and the exchange log.
// Nothing in here is durable until explicitly saved.
type Session struct {
	mu sync.Mutex

	UserID    uuid.UUID
	SummaryID uuid.UUID

	WorkingText  string
	PreviousText string
	Exchanges    []Exchange
	State        string
}

// SessionView is an immutable snapshot safe to hand to callers.
type SessionView struct {
	SummaryID    uuid.UUID  `json:"summary_id"`
	WorkingText  string     `json:"working_text"`
	PreviousText string     `json:"previous_text"`
	Exchanges    []Exchange `json:"exchanges"`
	State        string     `json:"state"`
}

func NewSession(userID, summaryID uuid.UUID, summaryText string) *Session {
	return &Session{
		UserID:       userID,
		SummaryID:    summaryID,
		WorkingText:  summaryText,
		PreviousText: summaryText,
		Exchanges:    make([]Exchange, 0),
		State:        StateIdle,
	}
}

// Key builds the cache key a session is stored under.
func Key(userID, summaryID uuid.UUID) string {
	return userID.String() + ":" + summaryID.String()
}

// BeginRound transitions Idle -> Refining and returns the working text
// the gateway call should operate on. Only one round may be in flight
// at a time.
func (s *Session) BeginRound() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State == StateRefining {
		return "", ErrRefineInFlight
	}
	s.State = StateRefining
	return s.WorkingText, nil
}

// CompleteRound transitions Refining -> Idle after a successful gateway
// call: the undo slot takes the pre-round text, the result becomes the
// working text and the instruction/result pair is appended to the log.
// The undo slot and the log move only here, so a failed round cannot
// disturb either. The pair is only logged on success, so the even-length
// invariant of Exchanges always holds.
func (s *Session) CompleteRound(instruction, result string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.PreviousText = s.WorkingText
	s.WorkingText = result
	s.Exchanges = append(s.Exchanges,
		Exchange{Role: constant.ExchangeRoleUser, Content: instruction},
		Exchange{Role: constant.ExchangeRoleModel, Content: result},
	)
	s.State = StateIdle
}

// FailRound transitions Refining -> Idle after a failed gateway call.
// The working text, undo slot and exchange log are left untouched.
func (s *Session) FailRound() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.State = StateIdle
}

// Undo reverts the most recent successful round: the working text is
// restored from the undo slot and the last exchange pair is removed.
// With an empty log it is a pure no-op. There is no redo and no
// multi-level history.
func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State == StateRefining {
		return ErrRefineInFlight
	}
	if len(s.Exchanges) == 0 {
		return nil
	}

	s.WorkingText = s.PreviousText
	s.Exchanges = s.Exchanges[:len(s.Exchanges)-2]
	return nil
}

// Reset re-initializes the session for a (possibly different) summary:
// working and undo slots reloaded from the stored text, log cleared.
func (s *Session) Reset(summaryID uuid.UUID, summaryText string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.SummaryID = summaryID
	s.WorkingText = summaryText
	s.PreviousText = summaryText
	s.Exchanges = make([]Exchange, 0)
	s.State = StateIdle
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	exchanges := make([]Exchange, len(s.Exchanges))
	copy(exchanges, s.Exchanges)

	return SessionView{
		SummaryID:    s.SummaryID,
		WorkingText:  s.WorkingText,
		PreviousText: s.PreviousText,
		Exchanges:    exchanges,
		State:        s.State,
	}
}

package session

import (
	"time"

	"bookfast-web/internal/domain/entity"
	"bookfast-web/internal/selection"

	"github.com/google/uuid"
)

// NoticeKind distinguishes success and error notifications
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a one-shot message shown on the next rendered page
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

// ActionKind names a destructive operation that needs confirmation
type ActionKind string

const (
	ActionCancelBooking  ActionKind = "cancel_booking"
	ActionDeleteSalon    ActionKind = "delete_salon"
	ActionDeleteEmployee ActionKind = "delete_employee"
)

// PendingAction is a destructive operation waiting for the user's confirmation
type PendingAction struct {
	Kind     ActionKind `json:"kind"`
	TargetID int64      `json:"target_id"`
	Label    string     `json:"label"`
}

// Prompt returns the confirmation question shown to the user
func (p *PendingAction) Prompt() string {
	switch p.Kind {
	case ActionCancelBooking:
		return "Jeste li sigurni da želite otkazati rezervaciju " + p.Label + "?"
	case ActionDeleteSalon:
		return "Obrisati salon " + p.Label + "? Svi zaposlenici, termini i rezervacije salona bit će obrisani."
	case ActionDeleteEmployee:
		return "Obrisati zaposlenika " + p.Label + "?"
	}
	return "Jeste li sigurni?"
}

// Session is the server-side state of one logged-in browser
type Session struct {
	ID        string          `json:"id"`
	Token     string          `json:"token"`
	User      entity.User     `json:"user"`
	Selection selection.State `json:"selection"`
	Pending   *PendingAction  `json:"pending,omitempty"`
	Notices   []Notice        `json:"notices,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// New creates a session for an authenticated user
func New(result *entity.AuthResult, now time.Time, loc *time.Location) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Token:     result.Token,
		User:      result.User,
		Selection: selection.New(now, loc),
		CreatedAt: now,
	}
}

// Role returns the role of the session's user
func (s *Session) Role() entity.Role {
	return s.User.Role()
}

// Notify queues a success notice
func (s *Session) Notify(message string) {
	s.Notices = append(s.Notices, Notice{Kind: NoticeSuccess, Message: message})
}

// Fail queues an error notice
func (s *Session) Fail(message string) {
	s.Notices = append(s.Notices, Notice{Kind: NoticeError, Message: message})
}

// TakeNotices returns the queued notices and clears them
func (s *Session) TakeNotices() []Notice {
	notices := s.Notices
	s.Notices = nil
	return notices
}

// Ask stores action as the pending confirmation, replacing any previous one
func (s *Session) Ask(action PendingAction) {
	s.Pending = &action
}

// TakePending returns the pending action and clears it
func (s *Session) TakePending() *PendingAction {
	p := s.Pending
	s.Pending = nil
	return p
}

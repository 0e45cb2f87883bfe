package session_test

import (
	"testing"
	"time"

	"bookfast-web/internal/domain/entity"
	"bookfast-web/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	now := time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC)
	s := session.New(&entity.AuthResult{
		Token: "tok",
		User:  entity.User{ID: 1, Username: "ana", IsStaff: true},
	}, now, time.UTC)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "tok", s.Token)
	assert.Equal(t, entity.RoleAdmin, s.Role())
	assert.Equal(t, "2026-10-17", s.Selection.Date)
	assert.Equal(t, now, s.CreatedAt)
}

func TestNoticesAreReadOnce(t *testing.T) {
	s := &session.Session{}
	s.Notify("Termin je uspješno rezerviran.")
	s.Fail("Termin više nije slobodan.")

	notices := s.TakeNotices()
	require.Len(t, notices, 2)
	assert.Equal(t, session.NoticeSuccess, notices[0].Kind)
	assert.Equal(t, session.NoticeError, notices[1].Kind)
	assert.Empty(t, s.TakeNotices())
}

func TestPendingAction(t *testing.T) {
	s := &session.Session{}
	assert.Nil(t, s.TakePending())

	s.Ask(session.PendingAction{Kind: session.ActionDeleteSalon, TargetID: 3, Label: "Salon Ana"})
	s.Ask(session.PendingAction{Kind: session.ActionDeleteEmployee, TargetID: 4, Label: "Iva"})

	p := s.TakePending()
	require.NotNil(t, p)
	assert.Equal(t, session.ActionDeleteEmployee, p.Kind)
	assert.Equal(t, int64(4), p.TargetID)
	assert.Contains(t, p.Prompt(), "Iva")
	assert.Nil(t, s.TakePending())
}

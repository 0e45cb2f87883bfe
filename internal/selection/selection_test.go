package selection_test

import (
	"testing"
	"time"

	"bookfast-web/internal/calendar"
	"bookfast-web/internal/domain/entity"
	"bookfast-web/internal/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC)

func slot(date, from, to string, available bool) entity.Slot {
	return entity.Slot{
		ID:          date + "-" + from + "-" + to,
		SalonID:     7,
		Date:        date,
		StartTime:   from,
		EndTime:     to,
		IsAvailable: available,
	}
}

func setupState(t *testing.T) selection.State {
	t.Helper()
	s := selection.New(now, time.UTC)
	s.SetSalon(7)
	return s
}

func TestNew(t *testing.T) {
	s := selection.New(now, time.UTC)
	assert.Equal(t, "2026-10-17", s.Date)
	assert.Equal(t, calendar.View{Year: 2026, Month: 9}, s.View)
	assert.False(t, s.HasSalon())
	assert.False(t, s.HasSelection())
}

func TestSelectThenChangeDateClearsSelection(t *testing.T) {
	s := setupState(t)
	require.NoError(t, s.Select(slot("2026-10-17", "09:00", "09:30", true)))
	assert.Equal(t, "2026-10-17-09:00-09:30", s.SelectedSlotID)

	require.NoError(t, s.SetDate("2026-10-20"))
	assert.False(t, s.HasSelection())
	assert.Equal(t, "2026-10-20", s.Date)
}

func TestChangeSalonClearsSelection(t *testing.T) {
	s := setupState(t)
	require.NoError(t, s.Select(slot("2026-10-17", "09:00", "09:30", true)))

	s.SetSalon(8)
	assert.False(t, s.HasSelection())
	assert.Equal(t, int64(8), s.SalonID)
}

func TestSetDate(t *testing.T) {
	t.Run("moves calendar", func(t *testing.T) {
		s := setupState(t)
		require.NoError(t, s.SetDate("2027-01-05"))
		assert.Equal(t, calendar.View{Year: 2027, Month: 0}, s.View)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		s := setupState(t)
		require.NoError(t, s.Select(slot("2026-10-17", "09:00", "09:30", true)))
		assert.Error(t, s.SetDate("17.10.2026"))
		assert.Equal(t, "2026-10-17", s.Date)
		assert.True(t, s.HasSelection())
	})
}

func TestSelect(t *testing.T) {
	t.Run("requires salon", func(t *testing.T) {
		s := selection.New(now, time.UTC)
		assert.ErrorIs(t, s.Select(slot("2026-10-17", "09:00", "09:30", true)), selection.ErrNoSalon)
	})

	t.Run("rejects unavailable slot", func(t *testing.T) {
		s := setupState(t)
		assert.ErrorIs(t, s.Select(slot("2026-10-17", "09:00", "09:30", false)), selection.ErrSlotUnavailable)
		assert.False(t, s.HasSelection())
	})

	t.Run("rejects slot of another date", func(t *testing.T) {
		s := setupState(t)
		assert.ErrorIs(t, s.Select(slot("2026-10-18", "09:00", "09:30", true)), selection.ErrSlotDateMismatch)
	})

	t.Run("replaces previous selection", func(t *testing.T) {
		s := setupState(t)
		require.NoError(t, s.Select(slot("2026-10-17", "09:00", "09:30", true)))
		require.NoError(t, s.Select(slot("2026-10-17", "10:00", "10:30", true)))
		assert.Equal(t, "2026-10-17-10:00-10:30", s.SelectedSlotID)
	})
}

func TestCalendarNavigationKeepsSelection(t *testing.T) {
	s := setupState(t)
	require.NoError(t, s.Select(slot("2026-10-17", "09:00", "09:30", true)))

	s.NextMonth()
	s.NextMonth()
	s.NextMonth()
	assert.Equal(t, calendar.View{Year: 2027, Month: 0}, s.View)
	s.PrevMonth()
	assert.Equal(t, calendar.View{Year: 2026, Month: 11}, s.View)
	assert.Equal(t, "2026-10-17", s.Date)
	assert.True(t, s.HasSelection())

	s.Today(now.AddDate(0, 0, 3), time.UTC)
	assert.Equal(t, "2026-10-20", s.Date)
	assert.Equal(t, calendar.View{Year: 2026, Month: 9}, s.View)
	assert.False(t, s.HasSelection())
}

func TestRevalidate(t *testing.T) {
	selected := slot("2026-10-17", "09:00", "09:30", true)

	t.Run("nothing selected", func(t *testing.T) {
		s := setupState(t)
		_, err := s.Revalidate([]entity.Slot{selected})
		assert.ErrorIs(t, err, selection.ErrNoSelection)
	})

	t.Run("still available", func(t *testing.T) {
		s := setupState(t)
		require.NoError(t, s.Select(selected))
		got, err := s.Revalidate([]entity.Slot{slot("2026-10-17", "08:30", "09:00", true), selected})
		require.NoError(t, err)
		assert.Equal(t, selected, got)
		assert.True(t, s.HasSelection())
	})

	t.Run("taken meanwhile", func(t *testing.T) {
		s := setupState(t)
		require.NoError(t, s.Select(selected))
		_, err := s.Revalidate([]entity.Slot{slot("2026-10-17", "09:00", "09:30", false)})
		assert.ErrorIs(t, err, selection.ErrSelectionStale)
		assert.False(t, s.HasSelection())
	})

	t.Run("gone from list", func(t *testing.T) {
		s := setupState(t)
		require.NoError(t, s.Select(selected))
		_, err := s.Revalidate(nil)
		assert.ErrorIs(t, err, selection.ErrSelectionStale)
		assert.False(t, s.HasSelection())
	})
}

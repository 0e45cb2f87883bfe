package selection

import (
	"errors"
	"time"

	"bookfast-web/internal/calendar"
	"bookfast-web/internal/domain/entity"
)

var (
	ErrNoSalon          = errors.New("salon not selected")
	ErrNoSelection      = errors.New("slot not selected")
	ErrSlotUnavailable  = errors.New("slot is not available")
	ErrSlotDateMismatch = errors.New("slot does not belong to the selected date")
	ErrSelectionStale   = errors.New("selected slot is no longer available")
)

// State is the customer's booking context: the active salon, the active
// date, the month shown by the calendar and at most one selected slot.
// A selected slot always belongs to the active salon and date.
type State struct {
	SalonID        int64         `json:"salon_id,omitempty"`
	Date           string        `json:"date"`
	SelectedSlotID string        `json:"selected_slot_id,omitempty"`
	View           calendar.View `json:"view"`
}

// New returns a state positioned on today.
func New(now time.Time, loc *time.Location) State {
	var s State
	s.Today(now, loc)
	return s
}

// HasSalon reports whether a salon is active.
func (s *State) HasSalon() bool {
	return s.SalonID != 0
}

// HasSelection reports whether a slot is selected.
func (s *State) HasSelection() bool {
	return s.SelectedSlotID != ""
}

// SetSalon changes the active salon and clears the selection.
func (s *State) SetSalon(id int64) {
	s.SalonID = id
	s.SelectedSlotID = ""
}

// SetDate changes the active date, moves the calendar to its month and
// clears the selection.
func (s *State) SetDate(date string) error {
	d, err := calendar.ParseDate(date)
	if err != nil {
		return err
	}
	s.Date = date
	s.View = calendar.ViewOf(d)
	s.SelectedSlotID = ""
	return nil
}

// Today resets the date and the calendar to the current day.
func (s *State) Today(now time.Time, loc *time.Location) {
	if loc != nil {
		now = now.In(loc)
	}
	s.Date = calendar.Today(now, loc)
	s.View = calendar.ViewOf(now)
	s.SelectedSlotID = ""
}

// PrevMonth moves the calendar one month back without touching the date.
func (s *State) PrevMonth() {
	s.View = s.View.Prev()
}

// NextMonth moves the calendar one month forward without touching the date.
func (s *State) NextMonth() {
	s.View = s.View.Next()
}

// Select marks slot as the chosen one.
func (s *State) Select(slot entity.Slot) error {
	if !s.HasSalon() {
		return ErrNoSalon
	}
	if !slot.IsAvailable {
		return ErrSlotUnavailable
	}
	if slot.Date != s.Date {
		return ErrSlotDateMismatch
	}
	s.SelectedSlotID = slot.ID
	return nil
}

// ClearSelection forgets the selected slot.
func (s *State) ClearSelection() {
	s.SelectedSlotID = ""
}

// Revalidate checks the selection against a freshly fetched slot list and
// returns the selected slot. A selection missing from latest or no longer
// available is cleared.
func (s *State) Revalidate(latest []entity.Slot) (entity.Slot, error) {
	if !s.HasSelection() {
		return entity.Slot{}, ErrNoSelection
	}
	slot, ok := entity.FindSlot(latest, s.SelectedSlotID)
	if !ok || !slot.IsAvailable || slot.Date != s.Date {
		s.SelectedSlotID = ""
		return entity.Slot{}, ErrSelectionStale
	}
	return *slot, nil
}

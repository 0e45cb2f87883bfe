package converter_test

import (
	"testing"
	"time"

	"bookfast-web/internal/calendar"
	"bookfast-web/internal/converter"
	"bookfast-web/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingsToResponsesCancelControl(t *testing.T) {
	responses := converter.BookingsToResponses([]entity.Booking{
		{ID: 1, Status: entity.BookingStatusConfirmed, Date: "2026-10-17"},
		{ID: 2, Status: entity.BookingStatusCancelled, Date: "2026-10-18"},
		{ID: 3, Status: "unknown"},
	})

	require.Len(t, responses, 3)
	assert.True(t, responses[0].CanCancel)
	assert.Equal(t, "Potvrđena", responses[0].StatusLabel)
	assert.Equal(t, "17.10.2026.", responses[0].DateLabel)
	assert.False(t, responses[1].CanCancel)
	assert.Equal(t, "Otkazana", responses[1].StatusLabel)
	assert.False(t, responses[2].CanCancel)
}

func TestCalendarToResponse(t *testing.T) {
	today := time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC)
	resp := converter.CalendarToResponse(calendar.View{Year: 2024, Month: 1}, today, "2024-02-20")

	assert.Equal(t, "Veljača", resp.MonthName)
	require.Len(t, resp.Days, calendar.GridSize)
	assert.Len(t, resp.Weekdays, 7)

	selected, todays := 0, 0
	for _, d := range resp.Days {
		if d.IsSelected {
			selected++
			assert.Equal(t, "2024-02-20", d.Date)
		}
		if d.IsToday {
			todays++
		}
	}
	assert.Equal(t, 1, selected)
	assert.Equal(t, 1, todays)
}

func TestSlotsAndSalonsMarkSelection(t *testing.T) {
	slots := converter.SlotsToResponses([]entity.Slot{{ID: "a"}, {ID: "b"}}, "b")
	assert.False(t, slots[0].Selected)
	assert.True(t, slots[1].Selected)

	none := converter.SlotsToResponses([]entity.Slot{{ID: ""}}, "")
	assert.False(t, none[0].Selected)

	salons := converter.SalonsToResponses([]entity.Salon{{ID: 1}, {ID: 2}}, 1)
	assert.True(t, salons[0].Selected)
	assert.False(t, salons[1].Selected)
}

func TestUserToResponseFallbacks(t *testing.T) {
	resp := converter.UserToResponse(&entity.User{Username: "ana"})
	assert.Equal(t, "ana", resp.FullName)
	assert.Equal(t, "Nema email adrese", resp.Email)
	assert.Equal(t, "customer", resp.Role)

	resp = converter.UserToResponse(&entity.User{})
	assert.Equal(t, "Korisnik", resp.FullName)
}

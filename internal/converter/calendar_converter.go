package converter

import (
	"time"

	"bookfast-web/internal/calendar"
	"bookfast-web/internal/delivery/dto"
)

// CalendarToResponse builds the month grid of view and marks selectedDate
func CalendarToResponse(view calendar.View, today time.Time, selectedDate string) *dto.CalendarResponse {
	view = view.Normalize()
	days := view.Days(today)

	resp := &dto.CalendarResponse{
		Year:      view.Year,
		Month:     view.Month,
		MonthName: view.MonthName(),
		Weekdays:  calendar.Weekdays(),
		Days:      make([]dto.CalendarDayResponse, len(days)),
	}
	for i, d := range days {
		resp.Days[i] = dto.CalendarDayResponse{
			Date:           d.Date,
			Day:            d.Day,
			IsCurrentMonth: d.IsCurrentMonth,
			IsToday:        d.IsToday,
			IsSelected:     d.Date == selectedDate,
		}
	}
	return resp
}

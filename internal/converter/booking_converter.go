package converter

import (
	"time"

	"bookfast-web/internal/delivery/dto"
	"bookfast-web/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:          booking.ID,
		Username:    booking.Username,
		UserEmail:   booking.UserEmail,
		SalonName:   booking.SalonName,
		Date:        booking.Date,
		DateLabel:   DateLabel(booking.Date),
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
		Status:      string(booking.Status),
		StatusLabel: StatusLabel(booking.Status),
		Note:        booking.Note,
		CanCancel:   booking.CanBeCancelled(),
	}
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}

func StatusLabel(status entity.BookingStatus) string {
	switch status {
	case entity.BookingStatusConfirmed:
		return "Potvrđena"
	case entity.BookingStatusCancelled:
		return "Otkazana"
	}
	return string(status)
}

// DateLabel formats YYYY-MM-DD as DD.MM.YYYY.
func DateLabel(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02.01.2006.")
}

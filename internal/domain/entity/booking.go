package entity

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation of a slot in a salon
type Booking struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"user_id"`
	Username  string        `json:"username"`
	UserEmail string        `json:"user_email"`
	SalonName string        `json:"salon_name"`
	Date      string        `json:"date"`
	StartTime string        `json:"start_time"`
	EndTime   string        `json:"end_time"`
	Status    BookingStatus `json:"status"`
	Note      string        `json:"note,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// IsConfirmed checks if booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}

// IsCancelled checks if booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// CanBeCancelled reports whether the customer may still cancel the booking
func (b *Booking) CanBeCancelled() bool {
	return b.IsConfirmed()
}

// BookingRequest describes the slot a customer wants to reserve
type BookingRequest struct {
	SalonID   int64
	Date      string
	StartTime string
	EndTime   string
}

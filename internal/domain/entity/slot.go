package entity

// Slot represents a bookable time window of a salon on a given date.
// ID has the form "YYYY-MM-DD-HH:MM-HH:MM" and is stable for the same window.
type Slot struct {
	ID          string `json:"id"`
	SalonID     int64  `json:"salon_id"`
	SalonName   string `json:"salon_name"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
	FreePlaces  int    `json:"free_places"`
	TotalPlaces int    `json:"total_places"`
}

// Request returns the booking request reserving this slot
func (s *Slot) Request() BookingRequest {
	return BookingRequest{
		SalonID:   s.SalonID,
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

// FindSlot returns the slot with the given id
func FindSlot(slots []Slot, id string) (*Slot, bool) {
	for i := range slots {
		if slots[i].ID == id {
			return &slots[i], true
		}
	}
	return nil, false
}

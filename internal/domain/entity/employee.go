package entity

// Employee represents a hairdresser working in a salon
type Employee struct {
	ID        int64  `json:"id"`
	SalonID   int64  `json:"salon_id"`
	FullName  string `json:"full_name"`
	IsActive  bool   `json:"is_active"`
	SalonName string `json:"salon_name,omitempty"`
}

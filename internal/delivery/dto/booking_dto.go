package dto

// Response DTOs

type BookingResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username,omitempty"`
	UserEmail   string `json:"user_email,omitempty"`
	SalonName   string `json:"salon_name"`
	Date        string `json:"date"`
	DateLabel   string `json:"date_label"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	Note        string `json:"note,omitempty"`
	CanCancel   bool   `json:"can_cancel"`
}

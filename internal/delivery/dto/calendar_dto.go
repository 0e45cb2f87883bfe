package dto

// Request DTOs

type CalendarRequest struct {
	Year  int `schema:"year" validate:"omitempty,gte=1900,lte=9999" label:"Godina"`
	Month int `schema:"month" validate:"omitempty,gte=-1200,lte=1200" label:"Mjesec"`
}

// Response DTOs

type CalendarDayResponse struct {
	Date           string `json:"date"`
	Day            int    `json:"day"`
	IsCurrentMonth bool   `json:"is_current_month"`
	IsToday        bool   `json:"is_today"`
	IsSelected     bool   `json:"is_selected"`
}

type CalendarResponse struct {
	Year      int                   `json:"year"`
	Month     int                   `json:"month"`
	MonthName string                `json:"month_name"`
	Weekdays  []string              `json:"weekdays"`
	Days      []CalendarDayResponse `json:"days"`
}

package dto

// Request DTOs

type EmployeeRequest struct {
	SalonID  int64  `schema:"salon_id" validate:"required,gte=1" label:"Salon"`
	FullName string `schema:"full_name" validate:"required,min=2,max=150" label:"Ime i prezime"`
	IsActive bool   `schema:"is_active"`
}

// Response DTOs

type EmployeeResponse struct {
	ID        int64  `json:"id"`
	SalonID   int64  `json:"salon_id"`
	SalonName string `json:"salon_name"`
	FullName  string `json:"full_name"`
	IsActive  bool   `json:"is_active"`
}

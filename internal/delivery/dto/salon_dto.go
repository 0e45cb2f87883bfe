package dto

// Request DTOs

type SalonRequest struct {
	Name         string `schema:"name" validate:"required,max=150" label:"Naziv"`
	Address      string `schema:"address" validate:"required,max=255" label:"Adresa"`
	Description  string `schema:"description" validate:"max=2000" label:"Opis"`
	IsActive     bool   `schema:"is_active"`
	OpensAt      string `schema:"opens_at" validate:"required,hhmm" label:"Radno od"`
	ClosesAt     string `schema:"closes_at" validate:"required,hhmm" label:"Radno do"`
	SlotDuration int    `schema:"slot_duration" validate:"required" label:"Trajanje termina"`
}

type SearchRequest struct {
	Query string `schema:"q"`
}

// Response DTOs

type SalonResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Description  string `json:"description,omitempty"`
	IsActive     bool   `json:"is_active"`
	OpensAt      string `json:"opens_at"`
	ClosesAt     string `json:"closes_at"`
	SlotDuration int    `json:"slot_duration"`
	OwnerName    string `json:"owner_name,omitempty"`
	Selected     bool   `json:"selected"`
}

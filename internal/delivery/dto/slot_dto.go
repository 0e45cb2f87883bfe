package dto

// Request DTOs

type DateRequest struct {
	Date string `schema:"date" validate:"required,datetime=2006-01-02" label:"Datum"`
}

type SelectSlotRequest struct {
	SlotID string `schema:"slot_id" validate:"required" label:"Termin"`
}

// Response DTOs

type SlotResponse struct {
	ID          string `json:"id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
	FreePlaces  int    `json:"free_places"`
	TotalPlaces int    `json:"total_places"`
	Selected    bool   `json:"selected"`
}

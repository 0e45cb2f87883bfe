package converter

import (
	"bookfast-web/internal/delivery/dto"
	"bookfast-web/internal/domain/entity"
)

// SlotsToResponses converts slots and marks the selected one
func SlotsToResponses(slots []entity.Slot, selectedID string) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, s := range slots {
		responses[i] = dto.SlotResponse{
			ID:          s.ID,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			IsAvailable: s.IsAvailable,
			FreePlaces:  s.FreePlaces,
			TotalPlaces: s.TotalPlaces,
			Selected:    selectedID != "" && s.ID == selectedID,
		}
	}
	return responses
}

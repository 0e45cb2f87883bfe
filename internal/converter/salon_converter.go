package converter

import (
	"bookfast-web/internal/delivery/dto"
	"bookfast-web/internal/domain/entity"
)

// SalonToResponse converts a Salon entity to SalonResponse DTO
func SalonToResponse(salon *entity.Salon) *dto.SalonResponse {
	if salon == nil {
		return nil
	}

	return &dto.SalonResponse{
		ID:           salon.ID,
		Name:         salon.Name,
		Address:      salon.Address,
		Description:  salon.Description,
		IsActive:     salon.IsActive,
		OpensAt:      salon.OpensAt,
		ClosesAt:     salon.ClosesAt,
		SlotDuration: salon.SlotDuration,
		OwnerName:    salon.OwnerName,
	}
}

// SalonsToResponses converts salons and marks the one with selectedID
func SalonsToResponses(salons []entity.Salon, selectedID int64) []dto.SalonResponse {
	responses := make([]dto.SalonResponse, len(salons))
	for i := range salons {
		responses[i] = *SalonToResponse(&salons[i])
		responses[i].Selected = salons[i].ID == selectedID
	}
	return responses
}

// SalonRequestToEntity converts the salon form into a Salon entity
func SalonRequestToEntity(req *dto.SalonRequest) *entity.Salon {
	return &entity.Salon{
		Name:         req.Name,
		Address:      req.Address,
		Description:  req.Description,
		IsActive:     req.IsActive,
		OpensAt:      req.OpensAt,
		ClosesAt:     req.ClosesAt,
		SlotDuration: req.SlotDuration,
	}
}

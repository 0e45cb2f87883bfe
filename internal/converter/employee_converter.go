package converter

import (
	"bookfast-web/internal/delivery/dto"
	"bookfast-web/internal/domain/entity"
)

func EmployeeToResponse(employee *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:        employee.ID,
		SalonID:   employee.SalonID,
		SalonName: employee.SalonName,
		FullName:  employee.FullName,
		IsActive:  employee.IsActive,
	}
}

func EmployeesToResponses(employees []entity.Employee) []dto.EmployeeResponse {
	responses := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = EmployeeToResponse(&employees[i])
	}
	return responses
}

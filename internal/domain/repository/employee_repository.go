package repository

import (
	"context"

	"bookfast-web/internal/domain/entity"
)

type EmployeeRepository interface {
	FindBySalonID(ctx context.Context, token string, salonID int64) ([]entity.Employee, error)
	Create(ctx context.Context, token string, employee *entity.Employee) error
	Delete(ctx context.Context, token string, id int64) error
}

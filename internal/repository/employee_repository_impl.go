package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"bookfast-web/internal/domain/entity"
	domainRepo "bookfast-web/internal/domain/repository"
	"bookfast-web/internal/infrastructure/api"
)

type employeeRepository struct {
	client *api.Client
}

func NewEmployeeRepository(client *api.Client) domainRepo.EmployeeRepository {
	return &employeeRepository{client: client}
}

func (r *employeeRepository) FindBySalonID(ctx context.Context, token string, salonID int64) ([]entity.Employee, error) {
	params := url.Values{"salon": {strconv.FormatInt(salonID, 10)}}

	var models []api.EmployeeModel
	if err := r.client.Get(ctx, token, "frizeri/", params, &models); err != nil {
		return nil, err
	}

	employees := make([]entity.Employee, len(models))
	for i := range models {
		employees[i] = models[i].ToEntity()
	}
	return employees, nil
}

func (r *employeeRepository) Create(ctx context.Context, token string, employee *entity.Employee) error {
	body := api.EmployeeModel{
		SalonID:  employee.SalonID,
		FullName: employee.FullName,
		IsActive: employee.IsActive,
	}

	var created api.EmployeeModel
	if err := r.client.Post(ctx, token, "frizeri/", body, &created); err != nil {
		return err
	}
	*employee = created.ToEntity()
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, token string, id int64) error {
	return r.client.Delete(ctx, token, fmt.Sprintf("frizeri/%d/", id))
}

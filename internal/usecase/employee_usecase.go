package usecase

import (
	"context"
	"errors"
	"strings"

	"bookfast-web/internal/delivery/dto"
	"bookfast-web/internal/domain/entity"
	"bookfast-web/internal/domain/repository"
	"bookfast-web/internal/service"
	"bookfast-web/internal/session"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
)

type EmployeeUsecase interface {
	ListForSalons(ctx context.Context, s *session.Session, salons []entity.Salon) ([]entity.Employee, error)
	Create(ctx context.Context, s *session.Session, req *dto.EmployeeRequest) (*entity.Employee, error)
	RequestDelete(ctx context.Context, s *session.Session, id int64) error
	Delete(ctx context.Context, s *session.Session, id int64) error
}

type employeeUsecase struct {
	log          *logrus.Logger
	salonRepo    repository.SalonRepository
	employeeRepo repository.EmployeeRepository
	audit        service.AuditService
}

func NewEmployeeUsecase(
	log *logrus.Logger,
	salonRepo repository.SalonRepository,
	employeeRepo repository.EmployeeRepository,
	audit service.AuditService,
) EmployeeUsecase {
	return &employeeUsecase{
		log:          log,
		salonRepo:    salonRepo,
		employeeRepo: employeeRepo,
		audit:        audit,
	}
}

// ListForSalons fetches the employees of every salon concurrently. The result
// keeps the order of salons and each employee carries its salon's name. Any
// failed fetch fails the whole list.
func (u *employeeUsecase) ListForSalons(ctx context.Context, s *session.Session, salons []entity.Salon) ([]entity.Employee, error) {
	perSalon := make([][]entity.Employee, len(salons))

	g, gctx := errgroup.WithContext(ctx)
	for i := range salons {
		salon := salons[i]
		g.Go(func() error {
			employees, err := u.employeeRepo.FindBySalonID(gctx, s.Token, salon.ID)
			if err != nil {
				return err
			}
			for j := range employees {
				employees[j].SalonName = salon.Name
			}
			perSalon[i] = employees
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to list employees: %+v", err)
		return nil, mapAPIError(err)
	}

	var all []entity.Employee
	for _, employees := range perSalon {
		all = append(all, employees...)
	}
	return all, nil
}

func (u *employeeUsecase) Create(ctx context.Context, s *session.Session, req *dto.EmployeeRequest) (*entity.Employee, error) {
	employee := &entity.Employee{
		SalonID:  req.SalonID,
		FullName: strings.TrimSpace(req.FullName),
		IsActive: req.IsActive,
	}

	if err := u.employeeRepo.Create(ctx, s.Token, employee); err != nil {
		u.log.Warnf("Failed to create employee: %+v", err)
		return nil, mapAPIError(err)
	}

	u.audit.Record(ctx, s, service.AuditActionCreate, "employee", employee.ID, employee.FullName)
	return employee, nil
}

// RequestDelete stores a pending confirmation for deleting the employee
func (u *employeeUsecase) RequestDelete(ctx context.Context, s *session.Session, id int64) error {
	salons, err := u.salonRepo.FindAll(ctx, s.Token, "")
	if err != nil {
		u.log.Warnf("Failed to list salons: %+v", err)
		return mapAPIError(err)
	}

	employees, err := u.ListForSalons(ctx, s, salons)
	if err != nil {
		return err
	}

	for _, e := range employees {
		if e.ID == id {
			s.Ask(session.PendingAction{
				Kind:     session.ActionDeleteEmployee,
				TargetID: e.ID,
				Label:    e.FullName,
			})
			return nil
		}
	}
	return ErrEmployeeNotFound
}

func (u *employeeUsecase) Delete(ctx context.Context, s *session.Session, id int64) error {
	if err := u.employeeRepo.Delete(ctx, s.Token, id); err != nil {
		u.log.Warnf("Failed to delete employee %d: %+v", id, err)
		return mapAPIError(err)
	}

	u.audit.Record(ctx, s, service.AuditActionDelete, "employee", id, nil)
	return nil
}

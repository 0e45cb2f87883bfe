package usecase

import (
	"context"
	"errors"
	"strings"

	"bookfast-web/internal/converter"
	"bookfast-web/internal/delivery/dto"
	"bookfast-web/internal/domain/entity"
	"bookfast-web/internal/domain/repository"
	"bookfast-web/internal/service"
	"bookfast-web/internal/session"

	"github.com/sirupsen/logrus"
)

var (
	ErrSalonNotFound   = errors.New("salon not found")
	ErrInvalidHours    = errors.New("opening time must be before closing time")
	ErrInvalidDuration = errors.New("slot duration must be between 5 and 180 minutes")
)

type SalonUsecase interface {
	List(ctx context.Context, s *session.Session, query string) ([]entity.Salon, error)
	Create(ctx context.Context, s *session.Session, req *dto.SalonRequest) (*entity.Salon, error)
	Update(ctx context.Context, s *session.Session, id int64, req *dto.SalonRequest) (*entity.Salon, error)
	RequestDelete(ctx context.Context, s *session.Session, id int64) error
	Delete(ctx context.Context, s *session.Session, id int64) error
}

type salonUsecase struct {
	log       *logrus.Logger
	salonRepo repository.SalonRepository
	audit     service.AuditService
}

func NewSalonUsecase(log *logrus.Logger, salonRepo repository.SalonRepository, audit service.AuditService) SalonUsecase {
	return &salonUsecase{
		log:       log,
		salonRepo: salonRepo,
		audit:     audit,
	}
}

func (u *salonUsecase) List(ctx context.Context, s *session.Session, query string) ([]entity.Salon, error) {
	salons, err := u.salonRepo.FindAll(ctx, s.Token, strings.TrimSpace(query))
	if err != nil {
		u.log.Warnf("Failed to list salons: %+v", err)
		return nil, mapAPIError(err)
	}
	return salons, nil
}

func (u *salonUsecase) Create(ctx context.Context, s *session.Session, req *dto.SalonRequest) (*entity.Salon, error) {
	salon := converter.SalonRequestToEntity(req)
	if err := checkSalon(salon); err != nil {
		return nil, err
	}

	if err := u.salonRepo.Create(ctx, s.Token, salon); err != nil {
		u.log.Warnf("Failed to create salon: %+v", err)
		return nil, mapAPIError(err)
	}

	u.audit.Record(ctx, s, service.AuditActionCreate, "salon", salon.ID, salon.Name)
	return salon, nil
}

func (u *salonUsecase) Update(ctx context.Context, s *session.Session, id int64, req *dto.SalonRequest) (*entity.Salon, error) {
	salon := converter.SalonRequestToEntity(req)
	salon.ID = id
	if err := checkSalon(salon); err != nil {
		return nil, err
	}

	if err := u.salonRepo.Update(ctx, s.Token, salon); err != nil {
		u.log.Warnf("Failed to update salon %d: %+v", id, err)
		return nil, mapAPIError(err)
	}

	u.audit.Record(ctx, s, service.AuditActionUpdate, "salon", salon.ID, salon.Name)
	return salon, nil
}

// RequestDelete stores a pending confirmation for deleting the salon
func (u *salonUsecase) RequestDelete(ctx context.Context, s *session.Session, id int64) error {
	salon, err := u.find(ctx, s, id)
	if err != nil {
		return err
	}

	s.Ask(session.PendingAction{
		Kind:     session.ActionDeleteSalon,
		TargetID: salon.ID,
		Label:    salon.Name,
	})
	return nil
}

func (u *salonUsecase) Delete(ctx context.Context, s *session.Session, id int64) error {
	if err := u.salonRepo.Delete(ctx, s.Token, id); err != nil {
		u.log.Warnf("Failed to delete salon %d: %+v", id, err)
		return mapAPIError(err)
	}

	u.audit.Record(ctx, s, service.AuditActionDelete, "salon", id, nil)
	return nil
}

func (u *salonUsecase) find(ctx context.Context, s *session.Session, id int64) (*entity.Salon, error) {
	salons, err := u.List(ctx, s, "")
	if err != nil {
		return nil, err
	}
	for i := range salons {
		if salons[i].ID == id {
			return &salons[i], nil
		}
	}
	return nil, ErrSalonNotFound
}

func checkSalon(salon *entity.Salon) error {
	if !salon.HasValidHours() {
		return ErrInvalidHours
	}
	if !salon.HasValidDuration() {
		return ErrInvalidDuration
	}
	return nil
}

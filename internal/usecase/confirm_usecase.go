package usecase

import (
	"context"
	"errors"

	"bookfast-web/internal/domain/entity"
	"bookfast-web/internal/session"

	"github.com/sirupsen/logrus"
)

var (
	ErrNothingPending   = errors.New("no action is waiting for confirmation")
	ErrActionNotAllowed = errors.New("action is not allowed for this role")
)

// ConfirmUsecase runs or discards the destructive action a session asked to
// confirm. The pending action is consumed either way.
type ConfirmUsecase interface {
	Confirm(ctx context.Context, s *session.Session) (string, error)
	Dismiss(s *session.Session)
}

type confirmUsecase struct {
	log             *logrus.Logger
	salonUsecase    SalonUsecase
	employeeUsecase EmployeeUsecase
	bookingUsecase  BookingUsecase
}

func NewConfirmUsecase(
	log *logrus.Logger,
	salonUsecase SalonUsecase,
	employeeUsecase EmployeeUsecase,
	bookingUsecase BookingUsecase,
) ConfirmUsecase {
	return &confirmUsecase{
		log:             log,
		salonUsecase:    salonUsecase,
		employeeUsecase: employeeUsecase,
		bookingUsecase:  bookingUsecase,
	}
}

// Confirm performs the pending action and returns the success message to show
func (u *confirmUsecase) Confirm(ctx context.Context, s *session.Session) (string, error) {
	pending := s.TakePending()
	if pending == nil {
		return "", ErrNothingPending
	}

	switch pending.Kind {
	case session.ActionDeleteSalon:
		if s.Role() != entity.RoleAdmin {
			return "", ErrActionNotAllowed
		}
		if err := u.salonUsecase.Delete(ctx, s, pending.TargetID); err != nil {
			return "", err
		}
		return "Salon i povezani podaci su obrisani.", nil

	case session.ActionDeleteEmployee:
		if s.Role() != entity.RoleAdmin {
			return "", ErrActionNotAllowed
		}
		if err := u.employeeUsecase.Delete(ctx, s, pending.TargetID); err != nil {
			return "", err
		}
		return "Zaposlenik i povezani podaci su obrisani.", nil

	case session.ActionCancelBooking:
		if s.Role() != entity.RoleCustomer {
			return "", ErrActionNotAllowed
		}
		if err := u.bookingUsecase.Cancel(ctx, s, pending.TargetID); err != nil {
			return "", err
		}
		return "Rezervacija je uspješno otkazana.", nil
	}

	u.log.Warnf("Unknown pending action %q", pending.Kind)
	return "", ErrNothingPending
}

func (u *confirmUsecase) Dismiss(s *session.Session) {
	s.TakePending()
}

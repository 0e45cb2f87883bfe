package usecase

import (
	"context"
	"errors"
	"fmt"

	"bookfast-web/internal/converter"
	"bookfast-web/internal/domain/entity"
	"bookfast-web/internal/domain/repository"
	"bookfast-web/internal/selection"
	"bookfast-web/internal/service"
	"bookfast-web/internal/session"

	"github.com/sirupsen/logrus"
)

var (
	ErrBookingNotFound       = errors.New("booking not found")
	ErrBookingNotCancellable = errors.New("only confirmed bookings can be cancelled")
	ErrSlotNotFound          = errors.New("slot not found")
)

type BookingUsecase interface {
	Slots(ctx context.Context, s *session.Session) ([]entity.Slot, error)
	SelectSalon(ctx context.Context, s *session.Session, salonID int64) error
	SetDate(s *session.Session, date string) error
	SelectSlot(ctx context.Context, s *session.Session, slotID string) error
	Confirm(ctx context.Context, s *session.Session) (*entity.Booking, error)
	ListMine(ctx context.Context, s *session.Session) ([]entity.Booking, error)
	ListForOwner(ctx context.Context, s *session.Session) ([]entity.Booking, error)
	RequestCancel(ctx context.Context, s *session.Session, id int64) error
	Cancel(ctx context.Context, s *session.Session, id int64) error
}

type bookingUsecase struct {
	log         *logrus.Logger
	salonRepo   repository.SalonRepository
	slotRepo    repository.SlotRepository
	bookingRepo repository.BookingRepository
	audit       service.AuditService
}

func NewBookingUsecase(
	log *logrus.Logger,
	salonRepo repository.SalonRepository,
	slotRepo repository.SlotRepository,
	bookingRepo repository.BookingRepository,
	audit service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		log:         log,
		salonRepo:   salonRepo,
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		audit:       audit,
	}
}

// Slots returns the slots of the active salon on the active date. Without
// an active salon there is nothing to show.
func (u *bookingUsecase) Slots(ctx context.Context, s *session.Session) ([]entity.Slot, error) {
	if !s.Selection.HasSalon() {
		return nil, nil
	}

	slots, err := u.slotRepo.FindAll(ctx, s.Token, &entity.SlotFilter{
		SalonID:  s.Selection.SalonID,
		Date:     s.Selection.Date,
		OnlyFree: true,
	})
	if err != nil {
		u.log.Warnf("Failed to list slots for salon %d on %s: %+v", s.Selection.SalonID, s.Selection.Date, err)
		return nil, mapAPIError(err)
	}
	return slots, nil
}

func (u *bookingUsecase) SelectSalon(ctx context.Context, s *session.Session, salonID int64) error {
	salons, err := u.salonRepo.FindAll(ctx, s.Token, "")
	if err != nil {
		u.log.Warnf("Failed to list salons: %+v", err)
		return mapAPIError(err)
	}

	for _, salon := range salons {
		if salon.ID == salonID {
			s.Selection.SetSalon(salonID)
			return nil
		}
	}
	return ErrSalonNotFound
}

func (u *bookingUsecase) SetDate(s *session.Session, date string) error {
	return s.Selection.SetDate(date)
}

func (u *bookingUsecase) SelectSlot(ctx context.Context, s *session.Session, slotID string) error {
	slots, err := u.Slots(ctx, s)
	if err != nil {
		return err
	}

	slot, ok := entity.FindSlot(slots, slotID)
	if !ok {
		return ErrSlotNotFound
	}
	return s.Selection.Select(*slot)
}

// Confirm books the selected slot after checking it against a fresh slot list
func (u *bookingUsecase) Confirm(ctx context.Context, s *session.Session) (*entity.Booking, error) {
	if !s.Selection.HasSelection() {
		return nil, selection.ErrNoSelection
	}

	latest, err := u.Slots(ctx, s)
	if err != nil {
		return nil, err
	}

	slot, err := s.Selection.Revalidate(latest)
	if err != nil {
		return nil, err
	}

	req := slot.Request()
	booking, err := u.bookingRepo.Create(ctx, s.Token, &req)
	if err != nil {
		u.log.Warnf("Failed to create booking for slot %s: %+v", slot.ID, err)
		return nil, mapAPIError(err)
	}

	s.Selection.ClearSelection()
	u.audit.Record(ctx, s, service.AuditActionCreate, "booking", booking.ID, slot.ID)
	return booking, nil
}

func (u *bookingUsecase) ListMine(ctx context.Context, s *session.Session) ([]entity.Booking, error) {
	bookings, err := u.bookingRepo.FindMine(ctx, s.Token)
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, mapAPIError(err)
	}
	return bookings, nil
}

func (u *bookingUsecase) ListForOwner(ctx context.Context, s *session.Session) ([]entity.Booking, error) {
	bookings, err := u.bookingRepo.FindForOwner(ctx, s.Token)
	if err != nil {
		u.log.Warnf("Failed to list salon bookings: %+v", err)
		return nil, mapAPIError(err)
	}
	return bookings, nil
}

// RequestCancel stores a pending confirmation for cancelling the booking
func (u *bookingUsecase) RequestCancel(ctx context.Context, s *session.Session, id int64) error {
	booking, err := u.findCancellable(ctx, s, id)
	if err != nil {
		return err
	}

	s.Ask(session.PendingAction{
		Kind:     session.ActionCancelBooking,
		TargetID: booking.ID,
		Label:    fmt.Sprintf("%s %s %s", booking.SalonName, converter.DateLabel(booking.Date), booking.StartTime),
	})
	return nil
}

func (u *bookingUsecase) Cancel(ctx context.Context, s *session.Session, id int64) error {
	if _, err := u.findCancellable(ctx, s, id); err != nil {
		return err
	}

	if err := u.bookingRepo.Cancel(ctx, s.Token, id); err != nil {
		u.log.Warnf("Failed to cancel booking %d: %+v", id, err)
		return mapAPIError(err)
	}

	u.audit.Record(ctx, s, service.AuditActionCancel, "booking", id, nil)
	return nil
}

func (u *bookingUsecase) findCancellable(ctx context.Context, s *session.Session, id int64) (*entity.Booking, error) {
	bookings, err := u.ListMine(ctx, s)
	if err != nil {
		return nil, err
	}

	for i := range bookings {
		if bookings[i].ID == id {
			if !bookings[i].CanBeCancelled() {
				return nil, ErrBookingNotCancellable
			}
			return &bookings[i], nil
		}
	}
	return nil, ErrBookingNotFound
}

package usecase_test

import (
	"context"
	"testing"

	"bookfast-web/internal/domain/entity"
	"bookfast-web/internal/session"
	"bookfast-web/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type confirmFixture struct {
	uc         usecase.ConfirmUsecase
	salons     *fakeSalonRepo
	employees  *fakeEmployeeRepo
	bookings   *fakeBookingRepo
	salonUC    usecase.SalonUsecase
	employeeUC usecase.EmployeeUsecase
	bookingUC  usecase.BookingUsecase
}

func setupConfirm(t *testing.T) *confirmFixture {
	t.Helper()

	log, _ := setupLogger()
	audit := setupAudit()
	f := &confirmFixture{
		salons: &fakeSalonRepo{salons: []entity.Salon{{ID: 1, Name: "Studio Ana"}}},
		employees: &fakeEmployeeRepo{bySalon: map[int64][]entity.Employee{
			1: {{ID: 5, SalonID: 1, FullName: "Iva Horvat"}},
		}},
		bookings: &fakeBookingRepo{mine: []entity.Booking{
			{ID: 3, SalonName: "Studio Ana", Date: "2026-10-20", StartTime: "10:00", Status: entity.BookingStatusConfirmed},
		}},
	}
	f.salonUC = usecase.NewSalonUsecase(log, f.salons, audit)
	f.employeeUC = usecase.NewEmployeeUsecase(log, f.salons, f.employees, audit)
	f.bookingUC = usecase.NewBookingUsecase(log, f.salons, &fakeSlotRepo{}, f.bookings, audit)
	f.uc = usecase.NewConfirmUsecase(log, f.salonUC, f.employeeUC, f.bookingUC)
	return f
}

func TestConfirmWithoutPendingAction(t *testing.T) {
	t.Parallel()
	f := setupConfirm(t)

	_, err := f.uc.Confirm(context.Background(), newSession(true))
	assert.ErrorIs(t, err, usecase.ErrNothingPending)
	assert.Empty(t, f.salons.deleted)
}

func TestConfirmDeleteSalon(t *testing.T) {
	t.Parallel()
	f := setupConfirm(t)
	ctx := context.Background()
	s := newSession(true)

	require.NoError(t, f.salonUC.RequestDelete(ctx, s, 1))
	assert.Empty(t, f.salons.deleted, "request alone must not delete")

	msg, err := f.uc.Confirm(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, "Salon i povezani podaci su obrisani.", msg)
	assert.Equal(t, []int64{1}, f.salons.deleted)
	assert.Nil(t, s.Pending)

	_, err = f.uc.Confirm(ctx, s)
	assert.ErrorIs(t, err, usecase.ErrNothingPending)
	assert.Len(t, f.salons.deleted, 1)
}

func TestConfirmDeleteEmployee(t *testing.T) {
	t.Parallel()
	f := setupConfirm(t)
	ctx := context.Background()
	s := newSession(true)

	require.NoError(t, f.employeeUC.RequestDelete(ctx, s, 5))
	require.NotNil(t, s.Pending)
	assert.Equal(t, "Iva Horvat", s.Pending.Label)

	msg, err := f.uc.Confirm(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, "Zaposlenik i povezani podaci su obrisani.", msg)
	assert.Equal(t, []int64{5}, f.employees.deleted)
}

func TestConfirmCancelBooking(t *testing.T) {
	t.Parallel()
	f := setupConfirm(t)
	ctx := context.Background()
	s := newSession(false)

	require.NoError(t, f.bookingUC.RequestCancel(ctx, s, 3))
	msg, err := f.uc.Confirm(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, "Rezervacija je uspješno otkazana.", msg)
	assert.Equal(t, []int64{3}, f.bookings.cancelled)
}

func TestConfirmRejectsForeignRole(t *testing.T) {
	t.Parallel()
	f := setupConfirm(t)
	s := newSession(false)
	s.Ask(session.PendingAction{Kind: session.ActionDeleteSalon, TargetID: 1})

	_, err := f.uc.Confirm(context.Background(), s)
	assert.ErrorIs(t, err, usecase.ErrActionNotAllowed)
	assert.Empty(t, f.salons.deleted)
	assert.Nil(t, s.Pending)
}

func TestDismissDropsPendingAction(t *testing.T) {
	t.Parallel()
	f := setupConfirm(t)
	s := newSession(true)
	s.Ask(session.PendingAction{Kind: session.ActionDeleteSalon, TargetID: 1})

	f.uc.Dismiss(s)
	assert.Nil(t, s.Pending)
	assert.Empty(t, f.salons.deleted)
}

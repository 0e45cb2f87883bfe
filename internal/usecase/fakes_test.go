package usecase_test

import (
	"context"
	"sync"
	"time"

	"bookfast-web/internal/domain/entity"
	"bookfast-web/internal/infrastructure/api"
	"bookfast-web/internal/service"
	"bookfast-web/internal/session"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type fakeSalonRepo struct {
	mu      sync.Mutex
	salons  []entity.Salon
	queries []string
	deleted []int64
	err     error
}

func (f *fakeSalonRepo) FindAll(ctx context.Context, token, query string) ([]entity.Salon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return append([]entity.Salon(nil), f.salons...), nil
}

func (f *fakeSalonRepo) Create(ctx context.Context, token string, salon *entity.Salon) error {
	if f.err != nil {
		return f.err
	}
	salon.ID = int64(len(f.salons) + 1)
	f.salons = append(f.salons, *salon)
	return nil
}

func (f *fakeSalonRepo) Update(ctx context.Context, token string, salon *entity.Salon) error {
	return f.err
}

func (f *fakeSalonRepo) Delete(ctx context.Context, token string, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeEmployeeRepo struct {
	mu       sync.Mutex
	bySalon  map[int64][]entity.Employee
	failFor  int64
	deleted  []int64
	requests int
}

func (f *fakeEmployeeRepo) FindBySalonID(ctx context.Context, token string, salonID int64) ([]entity.Employee, error) {
	f.mu.Lock()
	f.requests++
	f.mu.Unlock()

	if salonID == f.failFor {
		return nil, api.ErrUpstream
	}
	// later salons answer first
	time.Sleep(time.Duration(10-salonID) * time.Millisecond)
	return append([]entity.Employee(nil), f.bySalon[salonID]...), nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, token string, employee *entity.Employee) error {
	employee.ID = 99
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, token string, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSlotRepo struct {
	slots   []entity.Slot
	err     error
	filters []entity.SlotFilter
}

func (f *fakeSlotRepo) FindAll(ctx context.Context, token string, filter *entity.SlotFilter) ([]entity.Slot, error) {
	f.filters = append(f.filters, *filter)
	if f.err != nil {
		return nil, f.err
	}
	return append([]entity.Slot(nil), f.slots...), nil
}

type fakeBookingRepo struct {
	mine      []entity.Booking
	owner     []entity.Booking
	created   []entity.BookingRequest
	cancelled []int64
	err       error
	cancelErr error
}

func (f *fakeBookingRepo) Create(ctx context.Context, token string, req *entity.BookingRequest) (*entity.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, *req)
	return &entity.Booking{ID: int64(len(f.created)), Date: req.Date, StartTime: req.StartTime, Status: entity.BookingStatusConfirmed}, nil
}

func (f *fakeBookingRepo) FindMine(ctx context.Context, token string) ([]entity.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.mine, nil
}

func (f *fakeBookingRepo) FindForOwner(ctx context.Context, token string) ([]entity.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.owner, nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, token string, id int64) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

func setupLogger() (*logrus.Logger, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return log, hook
}

func setupAudit() service.AuditService {
	log, _ := setupLogger()
	return service.NewAuditService(log)
}

var testNow = time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)

func newSession(staff bool) *session.Session {
	return session.New(&entity.AuthResult{
		Token: "tok",
		User:  entity.User{ID: 7, Username: "ana", IsStaff: staff},
	}, testNow, time.UTC)
}

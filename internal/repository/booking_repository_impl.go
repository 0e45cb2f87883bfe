package repository

import (
	"context"
	"fmt"

	"bookfast-web/internal/domain/entity"
	domainRepo "bookfast-web/internal/domain/repository"
	"bookfast-web/internal/infrastructure/api"
)

type bookingRepository struct {
	client *api.Client
}

func NewBookingRepository(client *api.Client) domainRepo.BookingRepository {
	return &bookingRepository{client: client}
}

func (r *bookingRepository) Create(ctx context.Context, token string, req *entity.BookingRequest) (*entity.Booking, error) {
	body := api.BookingRequest{
		SalonID:   req.SalonID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	var created api.BookingModel
	if err := r.client.Post(ctx, token, "rezervacije/", body, &created); err != nil {
		return nil, err
	}
	booking := created.ToEntity()
	return &booking, nil
}

func (r *bookingRepository) FindMine(ctx context.Context, token string) ([]entity.Booking, error) {
	return r.list(ctx, token, "rezervacije/")
}

func (r *bookingRepository) FindForOwner(ctx context.Context, token string) ([]entity.Booking, error) {
	return r.list(ctx, token, "admin-dashboard/")
}

// Cancel marks the booking as cancelled upstream. The upstream frees the slot.
func (r *bookingRepository) Cancel(ctx context.Context, token string, id int64) error {
	return r.client.Post(ctx, token, fmt.Sprintf("rezervacije/%d/otkazi/", id), nil, nil)
}

func (r *bookingRepository) list(ctx context.Context, token, path string) ([]entity.Booking, error) {
	var models []api.BookingModel
	if err := r.client.Get(ctx, token, path, nil, &models); err != nil {
		return nil, err
	}

	bookings := make([]entity.Booking, len(models))
	for i := range models {
		bookings[i] = models[i].ToEntity()
	}
	return bookings, nil
}

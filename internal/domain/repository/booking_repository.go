package repository

import (
	"context"

	"bookfast-web/internal/domain/entity"
)

type BookingRepository interface {
	Create(ctx context.Context, token string, req *entity.BookingRequest) (*entity.Booking, error)
	FindMine(ctx context.Context, token string) ([]entity.Booking, error)
	FindForOwner(ctx context.Context, token string) ([]entity.Booking, error)
	Cancel(ctx context.Context, token string, id int64) error
}

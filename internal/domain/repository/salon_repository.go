package repository

import (
	"context"

	"bookfast-web/internal/domain/entity"
)

type SalonRepository interface {
	FindAll(ctx context.Context, token, query string) ([]entity.Salon, error)
	Create(ctx context.Context, token string, salon *entity.Salon) error
	Update(ctx context.Context, token string, salon *entity.Salon) error
	Delete(ctx context.Context, token string, id int64) error
}

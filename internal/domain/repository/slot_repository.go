package repository

import (
	"context"

	"bookfast-web/internal/domain/entity"
)

type SlotRepository interface {
	FindAll(ctx context.Context, token string, filter *entity.SlotFilter) ([]entity.Slot, error)
}

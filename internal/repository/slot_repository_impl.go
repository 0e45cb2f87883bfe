package repository

import (
	"context"
	"net/url"
	"strconv"

	"bookfast-web/internal/domain/entity"
	domainRepo "bookfast-web/internal/domain/repository"
	"bookfast-web/internal/infrastructure/api"
)

type slotRepository struct {
	client *api.Client
}

func NewSlotRepository(client *api.Client) domainRepo.SlotRepository {
	return &slotRepository{client: client}
}

func (r *slotRepository) FindAll(ctx context.Context, token string, filter *entity.SlotFilter) ([]entity.Slot, error) {
	params := url.Values{
		"salon": {strconv.FormatInt(filter.SalonID, 10)},
		"datum": {filter.Date},
	}
	if filter.OnlyFree {
		params.Set("samo_slobodni", "true")
	}

	var models []api.SlotModel
	if err := r.client.Get(ctx, token, "termini/", params, &models); err != nil {
		return nil, err
	}

	slots := make([]entity.Slot, len(models))
	for i := range models {
		slots[i] = models[i].ToEntity()
	}
	return slots, nil
}

package repository

import (
	"context"
	"fmt"
	"net/url"

	"bookfast-web/internal/domain/entity"
	domainRepo "bookfast-web/internal/domain/repository"
	"bookfast-web/internal/infrastructure/api"
)

type salonRepository struct {
	client *api.Client
}

func NewSalonRepository(client *api.Client) domainRepo.SalonRepository {
	return &salonRepository{client: client}
}

func (r *salonRepository) FindAll(ctx context.Context, token, query string) ([]entity.Salon, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}

	var models []api.SalonModel
	if err := r.client.Get(ctx, token, "saloni/", params, &models); err != nil {
		return nil, err
	}

	salons := make([]entity.Salon, len(models))
	for i := range models {
		salons[i] = models[i].ToEntity()
	}
	return salons, nil
}

func (r *salonRepository) Create(ctx context.Context, token string, salon *entity.Salon) error {
	var created api.SalonModel
	if err := r.client.Post(ctx, token, "saloni/", api.NewSalonModel(salon), &created); err != nil {
		return err
	}
	*salon = created.ToEntity()
	return nil
}

func (r *salonRepository) Update(ctx context.Context, token string, salon *entity.Salon) error {
	var updated api.SalonModel
	path := fmt.Sprintf("saloni/%d/", salon.ID)
	if err := r.client.Patch(ctx, token, path, api.NewSalonModel(salon), &updated); err != nil {
		return err
	}
	*salon = updated.ToEntity()
	return nil
}

func (r *salonRepository) Delete(ctx context.Context, token string, id int64) error {
	return r.client.Delete(ctx, token, fmt.Sprintf("saloni/%d/", id))
}

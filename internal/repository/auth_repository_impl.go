package repository

import (
	"context"

	"bookfast-web/internal/domain/entity"
	domainRepo "bookfast-web/internal/domain/repository"
	"bookfast-web/internal/infrastructure/api"
)

type authRepository struct {
	client *api.Client
}

func NewAuthRepository(client *api.Client) domainRepo.AuthRepository {
	return &authRepository{client: client}
}

func (r *authRepository) Register(ctx context.Context, reg *entity.Registration) (*entity.AuthResult, error) {
	var resp api.AuthResponse
	err := r.client.Post(ctx, "", "auth/registracija/", api.RegisterRequest{
		Name:     reg.FullName,
		Email:    reg.Email,
		Password: reg.Password,
		IsOwner:  reg.IsOwner,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.ToEntity(), nil
}

func (r *authRepository) Login(ctx context.Context, creds *entity.Credentials) (*entity.AuthResult, error) {
	var resp api.AuthResponse
	err := r.client.Post(ctx, "", "auth/prijava/", api.LoginRequest{
		Email:    creds.Email,
		Password: creds.Password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.ToEntity(), nil
}

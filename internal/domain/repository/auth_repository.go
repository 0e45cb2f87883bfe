package repository

import (
	"context"

	"bookfast-web/internal/domain/entity"
)

type AuthRepository interface {
	Register(ctx context.Context, reg *entity.Registration) (*entity.AuthResult, error)
	Login(ctx context.Context, creds *entity.Credentials) (*entity.AuthResult, error)
}

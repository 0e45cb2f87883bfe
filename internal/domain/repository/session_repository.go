package repository

import (
	"context"

	"bookfast-web/internal/session"
)

type SessionRepository interface {
	Save(ctx context.Context, s *session.Session) error
	FindByID(ctx context.Context, id string) (*session.Session, error)
	Delete(ctx context.Context, id string) error
}

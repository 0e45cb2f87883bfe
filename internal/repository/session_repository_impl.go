package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	domainRepo "bookfast-web/internal/domain/repository"
	"bookfast-web/internal/session"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

type sessionRepository struct {
	redis  *redis.Client
	expiry time.Duration
}

// NewSessionRepository stores sessions as JSON in Redis. Every save renews the expiry.
func NewSessionRepository(client *redis.Client, expiry time.Duration) domainRepo.SessionRepository {
	return &sessionRepository{redis: client, expiry: expiry}
}

func (r *sessionRepository) Save(ctx context.Context, s *session.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.redis.Set(ctx, sessionKeyPrefix+s.ID, data, r.expiry).Err()
}

func (r *sessionRepository) FindByID(ctx context.Context, id string) (*session.Session, error) {
	data, err := r.redis.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var s session.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	return r.redis.Del(ctx, sessionKeyPrefix+id).Err()
}

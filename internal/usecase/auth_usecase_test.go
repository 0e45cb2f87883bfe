package usecase_test

import (
	"context"
	"testing"
	"time"

	"bookfast-web/config"
	"bookfast-web/internal/delivery/dto"
	"bookfast-web/internal/domain/entity"
	"bookfast-web/internal/infrastructure/api"
	"bookfast-web/internal/repository"
	"bookfast-web/internal/usecase"
	"bookfast-web/pkg/jwt"
	"bookfast-web/pkg/metrics"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthRepo struct {
	registered []entity.Registration
	logins     []entity.Credentials
	err        error
}

func (f *fakeAuthRepo) Register(ctx context.Context, reg *entity.Registration) (*entity.AuthResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.registered = append(f.registered, *reg)
	return &entity.AuthResult{Token: "tok-reg", User: entity.User{ID: 2, Email: reg.Email, FullName: reg.FullName, IsStaff: reg.IsOwner}}, nil
}

func (f *fakeAuthRepo) Login(ctx context.Context, creds *entity.Credentials) (*entity.AuthResult, error) {
	f.logins = append(f.logins, *creds)
	if f.err != nil {
		return nil, f.err
	}
	return &entity.AuthResult{Token: "tok-login", User: entity.User{ID: 1, Email: creds.Email}}, nil
}

func setupAuth(t *testing.T, authRepo *fakeAuthRepo) (usecase.AuthUsecase, *miniredis.Miniredis, *metrics.Metrics) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	log, _ := setupLogger()
	m := metrics.New("bookfast_test")
	jwtService := jwt.NewJWTService(config.SessionConfig{Secret: "secret", Expiry: time.Hour})
	uc := usecase.NewAuthUsecase(log, authRepo, repository.NewSessionRepository(client, time.Hour), jwtService, time.UTC, m)
	return uc, mr, m
}

func TestAuthLoginStartsSession(t *testing.T) {
	t.Parallel()
	uc, mr, m := setupAuth(t, &fakeAuthRepo{})
	ctx := context.Background()

	s, cookie, err := uc.Login(ctx, &dto.LoginRequest{Email: " ana@example.com ", Password: "tajna12"})
	require.NoError(t, err)
	assert.Equal(t, "tok-login", s.Token)
	assert.Equal(t, "ana@example.com", s.User.Email)
	assert.NotEmpty(t, cookie)
	assert.True(t, mr.Exists("session:"+s.ID))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ActiveSessions))

	loaded, err := uc.Authenticate(ctx, cookie)
	require.NoError(t, err)
	assert.Equal(t, s.ID, loaded.ID)

	require.NoError(t, uc.Logout(ctx, loaded))
	assert.False(t, mr.Exists("session:"+s.ID))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.ActiveSessions))

	_, err = uc.Authenticate(ctx, cookie)
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
}

func TestAuthRegisterNormalizesInput(t *testing.T) {
	t.Parallel()
	repo := &fakeAuthRepo{}
	uc, _, _ := setupAuth(t, repo)

	s, _, err := uc.Register(context.Background(), &dto.RegisterRequest{
		FullName: " Ana Anić ",
		Email:    "Ana@Example.com",
		Password: "tajna12",
		IsOwner:  true,
	})
	require.NoError(t, err)
	require.Len(t, repo.registered, 1)
	assert.Equal(t, "ana@example.com", repo.registered[0].Email)
	assert.Equal(t, "Ana Anić", repo.registered[0].FullName)
	assert.Equal(t, entity.RoleAdmin, s.Role())
}

func TestAuthLoginRejected(t *testing.T) {
	t.Parallel()
	uc, _, _ := setupAuth(t, &fakeAuthRepo{err: &api.APIError{Status: 400, Message: "Neispravni podaci za prijavu."}})

	_, cookie, err := uc.Login(context.Background(), &dto.LoginRequest{Email: "ana@example.com", Password: "kriva"})
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Neispravni podaci za prijavu.", apiErr.Message)
	assert.Empty(t, cookie)
}

func TestAuthenticateInvalidCookie(t *testing.T) {
	t.Parallel()
	uc, _, _ := setupAuth(t, &fakeAuthRepo{})

	_, err := uc.Authenticate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, usecase.ErrInvalidToken)
}

func TestAuthLoginNormalizesEmailLikeRegister(t *testing.T) {
	t.Parallel()
	repo := &fakeAuthRepo{}
	uc, _, _ := setupAuth(t, repo)
	ctx := context.Background()

	_, _, err := uc.Register(ctx, &dto.RegisterRequest{FullName: "Ana", Email: "Ana@x.hr", Password: "tajna12"})
	require.NoError(t, err)
	_, _, err = uc.Login(ctx, &dto.LoginRequest{Email: " Ana@x.hr ", Password: "tajna12"})
	require.NoError(t, err)

	require.Len(t, repo.logins, 1)
	assert.Equal(t, repo.registered[0].Email, repo.logins[0].Email)
	assert.Equal(t, "ana@x.hr", repo.logins[0].Email)
}

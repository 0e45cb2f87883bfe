package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"bookfast-web/internal/delivery/dto"
	"bookfast-web/internal/domain/entity"
	"bookfast-web/internal/infrastructure/api"
	"bookfast-web/internal/session"
	"bookfast-web/internal/usecase"
	"bookfast-web/pkg/debounce"
	"bookfast-web/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSalonRequest() *dto.SalonRequest {
	return &dto.SalonRequest{
		Name:         "Studio Ana",
		Address:      "Ilica 1, Zagreb",
		IsActive:     true,
		OpensAt:      "08:00",
		ClosesAt:     "16:00",
		SlotDuration: 30,
	}
}

func TestSalonCreateChecksHours(t *testing.T) {
	t.Parallel()
	log, _ := setupLogger()
	repo := &fakeSalonRepo{}
	uc := usecase.NewSalonUsecase(log, repo, setupAudit())
	ctx := context.Background()

	req := validSalonRequest()
	req.OpensAt, req.ClosesAt = "16:00", "08:00"
	_, err := uc.Create(ctx, newSession(true), req)
	assert.ErrorIs(t, err, usecase.ErrInvalidHours)

	req = validSalonRequest()
	req.SlotDuration = 181
	_, err = uc.Create(ctx, newSession(true), req)
	assert.ErrorIs(t, err, usecase.ErrInvalidDuration)
	assert.Empty(t, repo.salons)

	salon, err := uc.Create(ctx, newSession(true), validSalonRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), salon.ID)
}

func TestSalonListMapsUnauthorized(t *testing.T) {
	t.Parallel()
	log, _ := setupLogger()
	repo := &fakeSalonRepo{err: api.ErrUnauthorized}
	uc := usecase.NewSalonUsecase(log, repo, setupAudit())

	_, err := uc.List(context.Background(), newSession(true), "  ana ")
	assert.ErrorIs(t, err, usecase.ErrSessionExpired)
	assert.Equal(t, []string{"ana"}, repo.queries)
}

func TestSalonRequestDelete(t *testing.T) {
	t.Parallel()
	log, _ := setupLogger()
	repo := &fakeSalonRepo{salons: []entity.Salon{{ID: 4, Name: "Kutak"}}}
	uc := usecase.NewSalonUsecase(log, repo, setupAudit())
	s := newSession(true)

	assert.ErrorIs(t, uc.RequestDelete(context.Background(), s, 5), usecase.ErrSalonNotFound)

	require.NoError(t, uc.RequestDelete(context.Background(), s, 4))
	require.NotNil(t, s.Pending)
	assert.Equal(t, session.ActionDeleteSalon, s.Pending.Kind)
	assert.Empty(t, repo.deleted)
}

func TestSalonSearchDebounce(t *testing.T) {
	t.Parallel()
	log, _ := setupLogger()
	repo := &fakeSalonRepo{salons: []entity.Salon{{ID: 1, Name: "Studio Ana"}}}
	m := metrics.New("bookfast_test")
	uc := usecase.NewSalonSearchUsecase(log, repo, debounce.New(100*time.Millisecond), m)
	s := newSession(false)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 3)
	for i, q := range []string{"s", "st", "stu"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = uc.Search(ctx, s, q)
		}()
		time.Sleep(20 * time.Millisecond)
	}
	wg.Wait()

	assert.ErrorIs(t, errs[0], debounce.ErrSuperseded)
	assert.ErrorIs(t, errs[1], debounce.ErrSuperseded)
	assert.NoError(t, errs[2])
	assert.Equal(t, []string{"stu"}, repo.queries)
	assert.Equal(t, float64(2), testutil.ToFloat64(m.DebouncedSearches.WithLabelValues("superseded")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DebouncedSearches.WithLabelValues("executed")))
}

func TestSalonSearchSessionsAreIndependent(t *testing.T) {
	t.Parallel()
	log, _ := setupLogger()
	repo := &fakeSalonRepo{}
	uc := usecase.NewSalonSearchUsecase(log, repo, debounce.New(30*time.Millisecond), nil)

	var wg sync.WaitGroup
	for _, s := range []*session.Session{newSession(false), newSession(false)} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Search(context.Background(), s, "ana")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Len(t, repo.queries, 2)
}

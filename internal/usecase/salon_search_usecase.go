package usecase

import (
	"context"
	"errors"
	"strings"

	"bookfast-web/internal/domain/entity"
	"bookfast-web/internal/domain/repository"
	"bookfast-web/internal/session"
	"bookfast-web/pkg/debounce"
	"bookfast-web/pkg/metrics"

	"github.com/sirupsen/logrus"
)

// SalonSearchUsecase serves the live salon search. Keystrokes from one
// session are debounced so only the last query of a burst reaches the api.
type SalonSearchUsecase interface {
	Search(ctx context.Context, s *session.Session, query string) ([]entity.Salon, error)
}

type salonSearchUsecase struct {
	log       *logrus.Logger
	salonRepo repository.SalonRepository
	debouncer *debounce.Debouncer
	metrics   *metrics.Metrics
}

func NewSalonSearchUsecase(
	log *logrus.Logger,
	salonRepo repository.SalonRepository,
	debouncer *debounce.Debouncer,
	m *metrics.Metrics,
) SalonSearchUsecase {
	return &salonSearchUsecase{
		log:       log,
		salonRepo: salonRepo,
		debouncer: debouncer,
		metrics:   m,
	}
}

// Search returns debounce.ErrSuperseded when a newer search from the same
// session replaced this one.
func (u *salonSearchUsecase) Search(ctx context.Context, s *session.Session, query string) ([]entity.Salon, error) {
	query = strings.TrimSpace(query)

	var salons []entity.Salon
	err := u.debouncer.Do(ctx, s.ID, func(ctx context.Context) error {
		var err error
		salons, err = u.salonRepo.FindAll(ctx, s.Token, query)
		return err
	})

	switch {
	case err == nil:
		u.observe("executed")
		return salons, nil
	case errors.Is(err, debounce.ErrSuperseded):
		u.observe("superseded")
		return nil, err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		u.observe("cancelled")
		return nil, err
	default:
		u.observe("failed")
		u.log.Warnf("Failed to search salons for %q: %+v", query, err)
		return nil, mapAPIError(err)
	}
}

func (u *salonSearchUsecase) observe(result string) {
	if u.metrics != nil {
		u.metrics.DebouncedSearches.WithLabelValues(result).Inc()
	}
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"bookfast-web/internal/delivery/dto"
	"bookfast-web/internal/domain/entity"
	"bookfast-web/internal/domain/repository"
	"bookfast-web/internal/infrastructure/api"
	"bookfast-web/internal/session"
	"bookfast-web/pkg/jwt"
	"bookfast-web/pkg/metrics"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidToken    = errors.New("invalid or expired session token")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session is no longer accepted by the booking api")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*session.Session, string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*session.Session, string, error)
	Logout(ctx context.Context, s *session.Session) error
	Authenticate(ctx context.Context, cookie string) (*session.Session, error)
	SaveSession(ctx context.Context, s *session.Session) error
}

type authUsecase struct {
	log         *logrus.Logger
	authRepo    repository.AuthRepository
	sessionRepo repository.SessionRepository
	jwtService  *jwt.JWTService
	location    *time.Location
	metrics     *metrics.Metrics
}

func NewAuthUsecase(
	log *logrus.Logger,
	authRepo repository.AuthRepository,
	sessionRepo repository.SessionRepository,
	jwtService *jwt.JWTService,
	location *time.Location,
	m *metrics.Metrics,
) AuthUsecase {
	return &authUsecase{
		log:         log,
		authRepo:    authRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		location:    location,
		metrics:     m,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*session.Session, string, error) {
	result, err := u.authRepo.Register(ctx, &entity.Registration{
		FullName: strings.TrimSpace(req.FullName),
		Email:    normalizeEmail(req.Email),
		Password: req.Password,
		IsOwner:  req.IsOwner,
	})
	if err != nil {
		u.log.Warnf("Failed to register user: %+v", err)
		return nil, "", err
	}

	return u.startSession(ctx, result)
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*session.Session, string, error) {
	result, err := u.authRepo.Login(ctx, &entity.Credentials{
		Email:    normalizeEmail(req.Email),
		Password: req.Password,
	})
	if err != nil {
		u.log.Warnf("Failed to login user: %+v", err)
		return nil, "", err
	}

	return u.startSession(ctx, result)
}

func (u *authUsecase) startSession(ctx context.Context, result *entity.AuthResult) (*session.Session, string, error) {
	s := session.New(result, time.Now(), u.location)

	if err := u.sessionRepo.Save(ctx, s); err != nil {
		u.log.Warnf("Failed to store session: %+v", err)
		return nil, "", err
	}

	cookie, err := u.jwtService.GenerateSessionToken(s.ID)
	if err != nil {
		u.log.Warnf("Failed to sign session token: %+v", err)
		return nil, "", err
	}

	if u.metrics != nil {
		u.metrics.ActiveSessions.Inc()
	}
	u.log.WithFields(logrus.Fields{
		"user_id": result.User.ID,
		"role":    result.User.Role().String(),
	}).Info("Session started")

	return s, cookie, nil
}

func (u *authUsecase) Logout(ctx context.Context, s *session.Session) error {
	if err := u.sessionRepo.Delete(ctx, s.ID); err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}
	if u.metrics != nil {
		u.metrics.ActiveSessions.Dec()
	}
	return nil
}

func (u *authUsecase) Authenticate(ctx context.Context, cookie string) (*session.Session, error) {
	claims, err := u.jwtService.ValidateToken(cookie)
	if err != nil {
		return nil, ErrInvalidToken
	}

	s, err := u.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		u.log.Warnf("Failed to load session: %+v", err)
		return nil, err
	}
	if s == nil {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (u *authUsecase) SaveSession(ctx context.Context, s *session.Session) error {
	if err := u.sessionRepo.Save(ctx, s); err != nil {
		u.log.Warnf("Failed to save session: %+v", err)
		return err
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// mapAPIError turns an upstream rejection of the session token into ErrSessionExpired
func mapAPIError(err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		return ErrSessionExpired
	}
	return err
}

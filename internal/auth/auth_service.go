package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	autherrors "github.com/piyushraj0718/payrollmanagement/internal/auth/errors"
	"github.com/piyushraj0718/payrollmanagement/internal/config"
	"github.com/piyushraj0718/payrollmanagement/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (accessToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type service struct {
	repo   Repository
	jwt    config.JWTConfig
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, jwtCfg config.JWTConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, jwt: jwtCfg, now: time.Now, logger: l}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareDummy spends the same bcrypt work as a real comparison so unknown
// usernames cannot be told apart by response time.
func compareDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("payroll-timing-equalizer"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	organization := strings.TrimSpace(req.Organization)
	if username == "" || organization == "" || req.Password == "" || req.ConfirmPassword == "" {
		return AuthResponse{}, autherrors.ErrMissingFields
	}
	if req.Password != req.ConfirmPassword {
		return AuthResponse{}, autherrors.ErrPasswordMismatch
	}

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		s.logger.Info("signup rejected, username taken", zap.String("username", username))
		return AuthResponse{}, autherrors.ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("signup lookup failed", zap.Error(err))
		return AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	user := &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hashed),
		Organization: organization,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return AuthResponse{}, autherrors.ErrUsernameTaken
		}
		s.logger.Error("signup persist failed", zap.Error(err))
		return AuthResponse{}, err
	}

	s.logger.Info("user signed up",
		zap.String("user_id", user.ID.String()),
		zap.String("organization", organization),
	)
	return toResponse(user), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (string, AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	organization := strings.TrimSpace(req.Organization)

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login lookup failed", zap.Error(err))
		}
		compareDummy(req.Password)
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	pwErr := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if pwErr != nil || user.Organization != organization {
		s.logger.Info("login rejected", zap.String("username", username))
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		s.logger.Error("token signing failed", zap.Error(err))
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return token, toResponse(user), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := toResponse(u)
	return &resp, nil
}

func (s *service) generateToken(user *User) (string, error) {
	now := s.now()
	claims := middleware.AccessClaims{
		UserID:       user.ID.String(),
		Username:     user.Username,
		Organization: user.Organization,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwt.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwt.Secret))
}

func toResponse(u *User) AuthResponse {
	return AuthResponse{
		ID:           u.ID.String(),
		Username:     u.Username,
		Organization: u.Organization,
	}
}

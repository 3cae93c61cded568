package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piyushraj0718/payrollmanagement/internal/auth"
	autherrors "github.com/piyushraj0718/payrollmanagement/internal/auth/errors"
	authMock "github.com/piyushraj0718/payrollmanagement/internal/auth/mock"
	"github.com/piyushraj0718/payrollmanagement/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var testJWT = config.JWTConfig{Secret: "test-secret", TTL: time.Hour}

func setupAuthService(t *testing.T) (auth.Service, *authMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)
	return auth.NewService(repo, testJWT), repo
}

func TestService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("success stores bcrypt hash", func(t *testing.T) {
		svc, repo := setupAuthService(t)
		repo.EXPECT().GetByUsername(ctx, "alice").Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *auth.User) error {
				assert.Equal(t, "alice", u.Username)
				assert.Equal(t, "Acme", u.Organization)
				assert.NotEqual(t, "secret1", u.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
				return nil
			})

		resp, err := svc.Signup(ctx, auth.SignupRequest{
			Username:        " alice ",
			Password:        "secret1",
			ConfirmPassword: "secret1",
			Organization:    "Acme",
		})
		assert.NoError(t, err)
		assert.Equal(t, "alice", resp.Username)
		assert.NotEmpty(t, resp.ID)
	})

	t.Run("password mismatch", func(t *testing.T) {
		svc, _ := setupAuthService(t)
		_, err := svc.Signup(ctx, auth.SignupRequest{
			Username: "alice", Password: "secret1", ConfirmPassword: "secret2", Organization: "Acme",
		})
		assert.ErrorIs(t, err, autherrors.ErrPasswordMismatch)
	})

	t.Run("blank organization", func(t *testing.T) {
		svc, _ := setupAuthService(t)
		_, err := svc.Signup(ctx, auth.SignupRequest{
			Username: "alice", Password: "secret1", ConfirmPassword: "secret1", Organization: "   ",
		})
		assert.ErrorIs(t, err, autherrors.ErrMissingFields)
	})

	t.Run("username taken", func(t *testing.T) {
		svc, repo := setupAuthService(t)
		repo.EXPECT().GetByUsername(ctx, "alice").Return(&auth.User{Username: "alice"}, nil)

		_, err := svc.Signup(ctx, auth.SignupRequest{
			Username: "alice", Password: "secret1", ConfirmPassword: "secret1", Organization: "Other",
		})
		assert.ErrorIs(t, err, autherrors.ErrUsernameTaken)
	})

	t.Run("unique violation on insert", func(t *testing.T) {
		svc, repo := setupAuthService(t)
		repo.EXPECT().GetByUsername(ctx, "alice").Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := svc.Signup(ctx, auth.SignupRequest{
			Username: "alice", Password: "secret1", ConfirmPassword: "secret1", Organization: "Acme",
		})
		assert.ErrorIs(t, err, autherrors.ErrUsernameTaken)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	user := &auth.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: string(hash),
		Organization: "Acme",
	}

	t.Run("success issues token with organization claim", func(t *testing.T) {
		svc, repo := setupAuthService(t)
		repo.EXPECT().GetByUsername(ctx, "alice").Return(user, nil)

		token, resp, err := svc.Login(ctx, auth.LoginRequest{Username: "alice", Password: "secret1", Organization: "Acme"})
		assert.NoError(t, err)
		assert.Equal(t, user.ID.String(), resp.ID)

		parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) { return []byte(testJWT.Secret), nil })
		assert.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, "Acme", claims["organization"])
		assert.Equal(t, "alice", claims["username"])
		assert.Equal(t, user.ID.String(), claims["user_id"])
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := setupAuthService(t)
		repo.EXPECT().GetByUsername(ctx, "alice").Return(user, nil)

		_, _, err := svc.Login(ctx, auth.LoginRequest{Username: "alice", Password: "nope", Organization: "Acme"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("wrong organization", func(t *testing.T) {
		svc, repo := setupAuthService(t)
		repo.EXPECT().GetByUsername(ctx, "alice").Return(user, nil)

		_, _, err := svc.Login(ctx, auth.LoginRequest{Username: "alice", Password: "secret1", Organization: "Globex"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, repo := setupAuthService(t)
		repo.EXPECT().GetByUsername(ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, _, err := svc.Login(ctx, auth.LoginRequest{Username: "ghost", Password: "secret1", Organization: "Acme"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("lookup failure is still reported as invalid credentials", func(t *testing.T) {
		svc, repo := setupAuthService(t)
		repo.EXPECT().GetByUsername(ctx, "alice").Return(nil, errors.New("connection reset"))

		_, _, err := svc.Login(ctx, auth.LoginRequest{Username: "alice", Password: "secret1", Organization: "Acme"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		svc, _ := setupAuthService(t)
		_, err := svc.GetMe(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})

	t.Run("found", func(t *testing.T) {
		svc, repo := setupAuthService(t)
		id := uuid.New()
		repo.EXPECT().GetByID(ctx, id).Return(&auth.User{ID: id, Username: "alice", Organization: "Acme"}, nil)

		resp, err := svc.GetMe(ctx, id.String())
		assert.NoError(t, err)
		assert.Equal(t, "Acme", resp.Organization)
	})
}

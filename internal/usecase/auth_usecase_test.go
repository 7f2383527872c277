package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"shario-backend/internal/domain"
	"shario-backend/internal/usecase"
	"shario-backend/pkg/apperror"
	"shario-backend/pkg/auth"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error) {
	args := m.Called(ctx, email, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func TestRegister(t *testing.T) {
	t.Run("success issues a parseable token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := testTokens()
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		mockRepo.On("GetByEmailOrUsername", mock.Anything, "alice@example.com", "alice").Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = primitive.NewObjectID()
		})

		user, token, err := uc.Register(context.Background(), domain.RegisterInput{
			Email:    " Alice@Example.com ",
			Username: "alice",
			Password: "hunter22",
		})
		assert.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.Equal(t, domain.ProviderEmail, user.Provider)

		// Stored password is a bcrypt hash, not plaintext
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter22")))

		claims, err := tokens.Parse(token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
	})

	t.Run("duplicate email or username", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("GetByEmailOrUsername", mock.Anything, mock.Anything, mock.Anything).
			Return(&domain.User{ID: primitive.NewObjectID()}, nil)

		_, _, err := uc.Register(context.Background(), domain.RegisterInput{
			Email:    "alice@example.com",
			Username: "alice",
			Password: "hunter22",
		})
		assert.True(t, apperror.Is(err, http.StatusConflict))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("short password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		_, _, err := uc.Register(context.Background(), domain.RegisterInput{
			Email:    "alice@example.com",
			Username: "alice",
			Password: "abc",
		})
		assert.True(t, apperror.Is(err, http.StatusBadRequest))
		mockRepo.AssertNotCalled(t, "GetByEmailOrUsername")
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	stored := &domain.User{
		ID:       primitive.NewObjectID(),
		Email:    "alice@example.com",
		Username: "alice",
		Password: string(hash),
	}

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := testTokens()
		uc := usecase.NewAuthUsecase(mockRepo, tokens)
		mockRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(stored, nil)

		user, token, err := uc.Login(context.Background(), "Alice@Example.com", "hunter22")
		assert.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)

		claims, err := tokens.Parse(token)
		assert.NoError(t, err)
		assert.Equal(t, stored.ID.Hex(), claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())
		mockRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(stored, nil)

		_, _, err := uc.Login(context.Background(), "alice@example.com", "wrong")
		assert.True(t, apperror.Is(err, http.StatusUnauthorized))
	})

	t.Run("unknown email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())
		mockRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

		_, _, err := uc.Login(context.Background(), "nobody@example.com", "hunter22")
		assert.True(t, apperror.Is(err, http.StatusUnauthorized))
	})

	t.Run("oauth account without local password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())
		mockRepo.On("GetByEmail", mock.Anything, "gustav@example.com").Return(&domain.User{
			ID:       primitive.NewObjectID(),
			Email:    "gustav@example.com",
			Provider: domain.ProviderGoogle,
		}, nil)

		_, _, err := uc.Login(context.Background(), "gustav@example.com", "anything")
		assert.True(t, apperror.Is(err, http.StatusUnauthorized))
	})
}

func TestGetCurrentUser(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo, testTokens())
	id := primitive.NewObjectID()
	mockRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	_, err := uc.GetCurrentUser(context.Background(), id)
	assert.True(t, apperror.Is(err, http.StatusNotFound))
}

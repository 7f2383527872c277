package usecase

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"shario-backend/internal/domain"
	"shario-backend/pkg/apperror"
	"shario-backend/pkg/auth"
)

const bcryptCost = 10

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, string, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)

	if in.Email == "" || in.Username == "" || in.Password == "" {
		return nil, "", apperror.BadRequest("Email, username and password are required")
	}
	if len(in.Password) < 6 {
		return nil, "", apperror.BadRequest("Password must be at least 6 characters")
	}
	if len(in.Username) < 3 || len(in.Username) > 30 {
		return nil, "", apperror.BadRequest("Username must be between 3 and 30 characters")
	}

	existing, err := u.userRepo.GetByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", apperror.Conflict("User with this email or username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:    in.Email,
		Username: in.Username,
		Password: string(hash),
		Role:     domain.RoleUser,
		Provider: domain.ProviderEmail,
		Skills:   []string{},
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.Generate(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", apperror.BadRequest("Email and password are required")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Unauthorized("Invalid credentials")
		}
		return nil, "", err
	}
	// OAuth accounts have no local password
	if user.Password == "" {
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}

	token, err := u.tokens.Generate(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "User not found")
	}
	return user, nil
}

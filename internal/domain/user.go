package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// Account providers
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email         string             `bson:"email" json:"email"`
	Username      string             `bson:"username" json:"username"`
	Password      string             `bson:"password" json:"-"`
	Avatar        string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Bio           string             `bson:"bio" json:"bio"`
	Skills        []string           `bson:"skills" json:"skills"`
	Role          string             `bson:"role" json:"role"`
	EmailVerified bool               `bson:"email_verified" json:"email_verified"`
	Provider      string             `bson:"provider" json:"provider"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByEmailOrUsername returns the first user matching either field,
	// used for duplicate checks at registration.
	GetByEmailOrUsername(ctx context.Context, email, username string) (*User, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	GetCurrentUser(ctx context.Context, id primitive.ObjectID) (*User, error)
}

package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection is a user-curated named list of resources.
type Collection struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description" json:"description"`
	UserID      primitive.ObjectID   `bson:"user_id" json:"user_id"`
	ResourceIDs []primitive.ObjectID `bson:"resource_ids" json:"resource_ids"`
	IsPublic    bool                 `bson:"is_public" json:"is_public"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updated_at"`
}

type CreateCollectionInput struct {
	Title       string
	Description string
	IsPublic    *bool
}

// CollectionUpdate is a partial patch; nil fields are left untouched.
type CollectionUpdate struct {
	Title       *string
	Description *string
	IsPublic    *bool
}

type CollectionRepository interface {
	Create(ctx context.Context, col *Collection) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Collection, error)
	FetchByUser(ctx context.Context, userID primitive.ObjectID) ([]Collection, error)
	Update(ctx context.Context, id primitive.ObjectID, upd CollectionUpdate) (*Collection, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddResource(ctx context.Context, id, resourceID primitive.ObjectID) (*Collection, error)
	RemoveResource(ctx context.Context, id, resourceID primitive.ObjectID) (*Collection, error)
}

type CollectionUsecase interface {
	Create(ctx context.Context, userID primitive.ObjectID, in CreateCollectionInput) (*Collection, error)
	ListMine(ctx context.Context, userID primitive.ObjectID) ([]Collection, error)
	// Get enforces visibility: private collections are readable by their
	// owner only.
	Get(ctx context.Context, viewerID, id primitive.ObjectID) (*Collection, error)
	Update(ctx context.Context, userID, id primitive.ObjectID, upd CollectionUpdate) (*Collection, error)
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
	AddResource(ctx context.Context, userID, id, resourceID primitive.ObjectID) (*Collection, error)
	RemoveResource(ctx context.Context, userID, id, resourceID primitive.ObjectID) (*Collection, error)
}

package domain

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Resource types
const (
	TypeVideo         = "video"
	TypeArticle       = "article"
	TypeBook          = "book"
	TypeCourse        = "course"
	TypePodcast       = "podcast"
	TypeTool          = "tool"
	TypeDocumentation = "documentation"
	TypeOther         = "other"
)

// Difficulty levels
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Publication status
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

var resourceTypes = map[string]bool{
	TypeVideo:         true,
	TypeArticle:       true,
	TypeBook:          true,
	TypeCourse:        true,
	TypePodcast:       true,
	TypeTool:          true,
	TypeDocumentation: true,
	TypeOther:         true,
}

var difficultyLevels = map[string]bool{
	DifficultyBeginner:     true,
	DifficultyIntermediate: true,
	DifficultyAdvanced:     true,
}

func IsValidResourceType(t string) bool { return resourceTypes[t] }

func IsValidDifficulty(d string) bool { return difficultyLevels[d] }

type Resource struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description" json:"description"`
	URL         string               `bson:"url" json:"url"`
	Type        string               `bson:"type" json:"type"`
	Skills      []string             `bson:"skills" json:"skills"`
	Tags        []string             `bson:"tags" json:"tags"`
	Difficulty  string               `bson:"difficulty" json:"difficulty"`
	Duration    int                  `bson:"duration,omitempty" json:"duration,omitempty"`
	Thumbnail   string               `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	UserID      primitive.ObjectID   `bson:"user_id" json:"user_id"`
	Likes       []primitive.ObjectID `bson:"likes" json:"likes"`
	Status      string               `bson:"status" json:"status"`
	AIEnriched  bool                 `bson:"ai_enriched" json:"ai_enriched"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updated_at"`
}

// ResourceFilter holds the optional list filters, combined with logical AND.
type ResourceFilter struct {
	Skill      string
	Type       string
	Difficulty string
	Search     string
}

// ResourceUpdate is a partial patch; nil fields are left untouched.
type ResourceUpdate struct {
	Title       *string
	Description *string
	URL         *string
	Type        *string
	Skills      []string
	Tags        []string
	Difficulty  *string
	Duration    *int
	Thumbnail   *string
	Status      *string
}

type CreateResourceInput struct {
	Title       string
	Description string
	URL         string
	Type        string
	Skills      []string
	Tags        []string
	Difficulty  string
	Duration    int
	Thumbnail   string
}

// Enrichment is the advisory category/tags pair produced by the AI
// categorization call. Degraded marks a fallback result; the data shape is
// identical either way and callers must treat it as optional input.
type Enrichment struct {
	Category string
	Tags     []string
	Degraded bool
}

// Categorizer classifies a resource from its title and description. It never
// fails: any upstream problem yields a default Enrichment with Degraded set.
type Categorizer interface {
	Categorize(ctx context.Context, title, description string) Enrichment
}

type ResourceRepository interface {
	Create(ctx context.Context, r *Resource) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Resource, error)
	Fetch(ctx context.Context, filter ResourceFilter, limit, offset int64) ([]Resource, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, upd ResourceUpdate) (*Resource, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ToggleLike(ctx context.Context, id, userID primitive.ObjectID) (liked bool, likes int64, err error)
}

type ResourceUsecase interface {
	Create(ctx context.Context, userID primitive.ObjectID, in CreateResourceInput) (*Resource, error)
	List(ctx context.Context, filter ResourceFilter, page, limit int) ([]Resource, int64, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Resource, error)
	Update(ctx context.Context, userID, id primitive.ObjectID, upd ResourceUpdate) (*Resource, error)
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
	ToggleLike(ctx context.Context, userID, id primitive.ObjectID) (liked bool, likes int64, err error)
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shario-backend/internal/domain"
	"shario-backend/pkg/apperror"
	"shario-backend/pkg/logger"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
	defaultPageSize   = 20
	maxPageSize       = 100
)

type resourceUsecase struct {
	resourceRepo domain.ResourceRepository
	categorizer  domain.Categorizer
}

func NewResourceUsecase(resourceRepo domain.ResourceRepository, categorizer domain.Categorizer) domain.ResourceUsecase {
	return &resourceUsecase{
		resourceRepo: resourceRepo,
		categorizer:  categorizer,
	}
}

// Create validates the payload, enriches it with the AI classifier and
// persists the merged record. Enrichment runs on every valid creation and
// its failure never fails the creation.
func (u *resourceUsecase) Create(ctx context.Context, userID primitive.ObjectID, in domain.CreateResourceInput) (*domain.Resource, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.URL = strings.TrimSpace(in.URL)

	if in.Title == "" || in.Description == "" || in.URL == "" || in.Type == "" || len(in.Skills) == 0 {
		return nil, apperror.BadRequest("Title, description, url, type and skills are required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, apperror.BadRequest("Title must be at most 200 characters")
	}
	if len(in.Description) > maxDescriptionLen {
		return nil, apperror.BadRequest("Description must be at most 2000 characters")
	}
	if !domain.IsValidResourceType(in.Type) {
		return nil, apperror.BadRequest("Invalid resource type")
	}
	if in.Difficulty == "" {
		in.Difficulty = domain.DifficultyBeginner
	} else if !domain.IsValidDifficulty(in.Difficulty) {
		return nil, apperror.BadRequest("Invalid difficulty level")
	}
	if in.Duration < 0 {
		return nil, apperror.BadRequest("Duration cannot be negative")
	}

	enrichment := u.categorizer.Categorize(ctx, in.Title, in.Description)
	if enrichment.Degraded {
		logger.Log.Warn("resource enrichment degraded, using default category", "title", in.Title)
	}

	resource := &domain.Resource{
		Title:       in.Title,
		Description: in.Description,
		URL:         in.URL,
		Type:        in.Type,
		Skills:      dedupe(append(append([]string{}, in.Skills...), enrichment.Category)),
		Tags:        dedupe(append(append([]string{}, in.Tags...), enrichment.Tags...)),
		Difficulty:  in.Difficulty,
		Duration:    in.Duration,
		Thumbnail:   in.Thumbnail,
		UserID:      userID,
		Likes:       []primitive.ObjectID{},
		Status:      domain.StatusPublished,
		AIEnriched:  true,
	}

	if err := u.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (u *resourceUsecase) List(ctx context.Context, filter domain.ResourceFilter, page, limit int) ([]domain.Resource, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := int64(page-1) * int64(limit)

	return u.resourceRepo.Fetch(ctx, filter, int64(limit), offset)
}

func (u *resourceUsecase) Get(ctx context.Context, id primitive.ObjectID) (*domain.Resource, error) {
	resource, err := u.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "Resource not found")
	}
	return resource, nil
}

// Update applies a partial patch after the existence and ownership checks.
func (u *resourceUsecase) Update(ctx context.Context, userID, id primitive.ObjectID, upd domain.ResourceUpdate) (*domain.Resource, error) {
	resource, err := u.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "Resource not found")
	}
	if resource.UserID != userID {
		return nil, apperror.Forbidden("You can only update your own resources")
	}

	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" || len(title) > maxTitleLen {
			return nil, apperror.BadRequest("Title must be non-empty and at most 200 characters")
		}
		upd.Title = &title
	}
	if upd.Description != nil {
		desc := strings.TrimSpace(*upd.Description)
		if desc == "" || len(desc) > maxDescriptionLen {
			return nil, apperror.BadRequest("Description must be non-empty and at most 2000 characters")
		}
		upd.Description = &desc
	}
	if upd.URL != nil && strings.TrimSpace(*upd.URL) == "" {
		return nil, apperror.BadRequest("URL cannot be empty")
	}
	if upd.Type != nil && !domain.IsValidResourceType(*upd.Type) {
		return nil, apperror.BadRequest("Invalid resource type")
	}
	if upd.Difficulty != nil && !domain.IsValidDifficulty(*upd.Difficulty) {
		return nil, apperror.BadRequest("Invalid difficulty level")
	}
	if upd.Duration != nil && *upd.Duration < 0 {
		return nil, apperror.BadRequest("Duration cannot be negative")
	}
	if upd.Status != nil && *upd.Status != domain.StatusDraft && *upd.Status != domain.StatusPublished {
		return nil, apperror.BadRequest("Invalid status")
	}
	if upd.Skills != nil {
		skills := dedupe(upd.Skills)
		if len(skills) == 0 {
			return nil, apperror.BadRequest("Skills cannot be empty")
		}
		upd.Skills = skills
	}
	if upd.Tags != nil {
		upd.Tags = dedupe(upd.Tags)
	}

	return u.resourceRepo.Update(ctx, id, upd)
}

func (u *resourceUsecase) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	resource, err := u.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return mapNotFound(err, "Resource not found")
	}
	if resource.UserID != userID {
		return apperror.Forbidden("You can only delete your own resources")
	}
	return u.resourceRepo.Delete(ctx, id)
}

// ToggleLike has no ownership restriction: any authenticated principal may
// like any resource. Membership flipping is atomic at the store.
func (u *resourceUsecase) ToggleLike(ctx context.Context, userID, id primitive.ObjectID) (bool, int64, error) {
	liked, likes, err := u.resourceRepo.ToggleLike(ctx, id, userID)
	if err != nil {
		return false, 0, mapNotFound(err, "Resource not found")
	}
	return liked, likes, nil
}

func mapNotFound(err error, message string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(message)
	}
	return err
}

// dedupe removes duplicates and blank entries, preserving first-seen order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

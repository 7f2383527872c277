package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shario-backend/internal/domain"
	"shario-backend/pkg/apperror"
)

const (
	maxCollectionTitleLen = 100
	maxCollectionDescLen  = 500
)

type collectionUsecase struct {
	collectionRepo domain.CollectionRepository
	resourceRepo   domain.ResourceRepository
}

func NewCollectionUsecase(collectionRepo domain.CollectionRepository, resourceRepo domain.ResourceRepository) domain.CollectionUsecase {
	return &collectionUsecase{
		collectionRepo: collectionRepo,
		resourceRepo:   resourceRepo,
	}
}

func (u *collectionUsecase) Create(ctx context.Context, userID primitive.ObjectID, in domain.CreateCollectionInput) (*domain.Collection, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, apperror.BadRequest("Title is required")
	}
	if len(in.Title) > maxCollectionTitleLen {
		return nil, apperror.BadRequest("Title must be at most 100 characters")
	}
	if len(in.Description) > maxCollectionDescLen {
		return nil, apperror.BadRequest("Description must be at most 500 characters")
	}

	isPublic := true
	if in.IsPublic != nil {
		isPublic = *in.IsPublic
	}

	col := &domain.Collection{
		Title:       in.Title,
		Description: in.Description,
		UserID:      userID,
		ResourceIDs: []primitive.ObjectID{},
		IsPublic:    isPublic,
	}
	if err := u.collectionRepo.Create(ctx, col); err != nil {
		return nil, err
	}
	return col, nil
}

func (u *collectionUsecase) ListMine(ctx context.Context, userID primitive.ObjectID) ([]domain.Collection, error) {
	return u.collectionRepo.FetchByUser(ctx, userID)
}

func (u *collectionUsecase) Get(ctx context.Context, viewerID, id primitive.ObjectID) (*domain.Collection, error) {
	col, err := u.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "Collection not found")
	}
	if !col.IsPublic && col.UserID != viewerID {
		return nil, apperror.Forbidden("This collection is private")
	}
	return col, nil
}

func (u *collectionUsecase) Update(ctx context.Context, userID, id primitive.ObjectID, upd domain.CollectionUpdate) (*domain.Collection, error) {
	if _, err := u.ownedCollection(ctx, userID, id); err != nil {
		return nil, err
	}

	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" || len(title) > maxCollectionTitleLen {
			return nil, apperror.BadRequest("Title must be non-empty and at most 100 characters")
		}
		upd.Title = &title
	}
	if upd.Description != nil && len(*upd.Description) > maxCollectionDescLen {
		return nil, apperror.BadRequest("Description must be at most 500 characters")
	}

	return u.collectionRepo.Update(ctx, id, upd)
}

func (u *collectionUsecase) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	if _, err := u.ownedCollection(ctx, userID, id); err != nil {
		return err
	}
	return u.collectionRepo.Delete(ctx, id)
}

func (u *collectionUsecase) AddResource(ctx context.Context, userID, id, resourceID primitive.ObjectID) (*domain.Collection, error) {
	if _, err := u.ownedCollection(ctx, userID, id); err != nil {
		return nil, err
	}
	if _, err := u.resourceRepo.GetByID(ctx, resourceID); err != nil {
		return nil, mapNotFound(err, "Resource not found")
	}
	return u.collectionRepo.AddResource(ctx, id, resourceID)
}

func (u *collectionUsecase) RemoveResource(ctx context.Context, userID, id, resourceID primitive.ObjectID) (*domain.Collection, error) {
	if _, err := u.ownedCollection(ctx, userID, id); err != nil {
		return nil, err
	}
	return u.collectionRepo.RemoveResource(ctx, id, resourceID)
}

func (u *collectionUsecase) ownedCollection(ctx context.Context, userID, id primitive.ObjectID) (*domain.Collection, error) {
	col, err := u.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "Collection not found")
	}
	if col.UserID != userID {
		return nil, apperror.Forbidden("You can only modify your own collections")
	}
	return col, nil
}

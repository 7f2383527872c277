package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shario-backend/internal/domain"
)

type collectionRepo struct {
	c *mongo.Collection
}

func NewCollectionRepository(db *mongo.Database) domain.CollectionRepository {
	return &collectionRepo{c: db.Collection("collections")}
}

func (r *collectionRepo) Create(ctx context.Context, col *domain.Collection) error {
	now := time.Now().UTC()
	col.ID = primitive.NewObjectID()
	col.CreatedAt = now
	col.UpdatedAt = now
	if col.ResourceIDs == nil {
		col.ResourceIDs = []primitive.ObjectID{}
	}
	_, err := r.c.InsertOne(ctx, col)
	return err
}

func (r *collectionRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Collection, error) {
	var col domain.Collection
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&col)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &col, nil
}

func (r *collectionRepo) FetchByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Collection, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	collections := []domain.Collection{}
	if err := cursor.All(ctx, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

func (r *collectionRepo) Update(ctx context.Context, id primitive.ObjectID, upd domain.CollectionUpdate) (*domain.Collection, error) {
	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.IsPublic != nil {
		set["is_public"] = *upd.IsPublic
	}
	set["updated_at"] = time.Now().UTC()

	return r.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

func (r *collectionRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *collectionRepo) AddResource(ctx context.Context, id, resourceID primitive.ObjectID) (*domain.Collection, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{
		"$addToSet": bson.M{"resource_ids": resourceID},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *collectionRepo) RemoveResource(ctx context.Context, id, resourceID primitive.ObjectID) (*domain.Collection, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{
		"$pull": bson.M{"resource_ids": resourceID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *collectionRepo) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*domain.Collection, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var col domain.Collection
	err := r.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&col)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &col, nil
}

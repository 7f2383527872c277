package mongodb

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shario-backend/internal/domain"
)

type resourceRepo struct {
	c *mongo.Collection
}

func NewResourceRepository(db *mongo.Database) domain.ResourceRepository {
	return &resourceRepo{c: db.Collection("resources")}
}

func (r *resourceRepo) Create(ctx context.Context, res *domain.Resource) error {
	now := time.Now().UTC()
	res.ID = primitive.NewObjectID()
	res.CreatedAt = now
	res.UpdatedAt = now
	if res.Likes == nil {
		res.Likes = []primitive.ObjectID{}
	}
	_, err := r.c.InsertOne(ctx, res)
	return err
}

func (r *resourceRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Resource, error) {
	var res domain.Resource
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

// Fetch lists published resources matching the filter, newest first, plus
// the total matching count irrespective of the pagination window.
func (r *resourceRepo) Fetch(ctx context.Context, filter domain.ResourceFilter, limit, offset int64) ([]domain.Resource, int64, error) {
	query := bson.M{"status": domain.StatusPublished}
	if filter.Skill != "" {
		query["skills"] = filter.Skill
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Difficulty != "" {
		query["difficulty"] = filter.Difficulty
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	total, err := r.c.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := r.c.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	resources := []domain.Resource{}
	if err := cursor.All(ctx, &resources); err != nil {
		return nil, 0, err
	}
	return resources, total, nil
}

func (r *resourceRepo) Update(ctx context.Context, id primitive.ObjectID, upd domain.ResourceUpdate) (*domain.Resource, error) {
	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.URL != nil {
		set["url"] = *upd.URL
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.Skills != nil {
		set["skills"] = upd.Skills
	}
	if upd.Tags != nil {
		set["tags"] = upd.Tags
	}
	if upd.Difficulty != nil {
		set["difficulty"] = *upd.Difficulty
	}
	if upd.Duration != nil {
		set["duration"] = *upd.Duration
	}
	if upd.Thumbnail != nil {
		set["thumbnail"] = *upd.Thumbnail
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var res domain.Resource
	err := r.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&res)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *resourceRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ToggleLike flips the caller's membership in the likes set atomically: a
// $pull keyed on current membership, then a $addToSet when nothing was
// pulled. Set semantics guarantee no duplicate entries under concurrent
// toggles.
func (r *resourceRepo) ToggleLike(ctx context.Context, id, userID primitive.ObjectID) (bool, int64, error) {
	pull, err := r.c.UpdateOne(ctx,
		bson.M{"_id": id, "likes": userID},
		bson.M{"$pull": bson.M{"likes": userID}},
	)
	if err != nil {
		return false, 0, err
	}

	liked := false
	if pull.ModifiedCount == 0 {
		add, err := r.c.UpdateOne(ctx,
			bson.M{"_id": id},
			bson.M{"$addToSet": bson.M{"likes": userID}},
		)
		if err != nil {
			return false, 0, err
		}
		if add.MatchedCount == 0 {
			return false, 0, domain.ErrNotFound
		}
		liked = true
	}

	var res struct {
		Likes []primitive.ObjectID `bson:"likes"`
	}
	opts := options.FindOne().SetProjection(bson.M{"likes": 1})
	if err := r.c.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&res); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, 0, domain.ErrNotFound
		}
		return false, 0, err
	}
	return liked, int64(len(res.Likes)), nil
}

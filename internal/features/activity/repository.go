package activity

import (
	"context"
	"time"

	"yapton-backend/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActivityRepository interface {
	Create(ctx context.Context, record *Record) error
	GetByID(ctx context.Context, id string) (*Record, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID, limit, offset int64) ([]Record, int64, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Record, int64, error)
	ListInWindow(ctx context.Context, from, to time.Time) ([]Record, error)
	Delete(ctx context.Context, id string) error
}

type ActivityRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewActivityRepository(mongodb *database.MongodbDB) ActivityRepository {
	return &ActivityRepositoryImpl{
		Collection: mongodb.DB.Collection("activity_records"),
	}
}

func (r *ActivityRepositoryImpl) Create(ctx context.Context, record *Record) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	record.CreatedAt = time.Now()

	_, err := r.Collection.InsertOne(ctx, record)
	return err
}

func (r *ActivityRepositoryImpl) GetByID(ctx context.Context, id string) (*Record, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var record Record
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *ActivityRepositoryImpl) ListByUser(ctx context.Context, userID primitive.ObjectID, limit, offset int64) ([]Record, int64, error) {
	return r.List(ctx, map[string]interface{}{"user_id": userID}, limit, offset)
}

func (r *ActivityRepositoryImpl) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Record, int64, error) {
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var records []Record
	if err = cursor.All(ctx, &records); err != nil {
		return nil, 0, err
	}
	if records == nil {
		records = []Record{}
	}
	return records, total, nil
}

// ListInWindow returns records with date >= from and < to, oldest first.
// The half-open interval matches the weekly reporting window.
func (r *ActivityRepositoryImpl) ListInWindow(ctx context.Context, from, to time.Time) ([]Record, error) {
	filter := bson.M{
		"date": bson.M{
			"$gte": from,
			"$lt":  to,
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []Record
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

func (r *ActivityRepositoryImpl) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-restaurant/models"
)

// collection is the subset of *mongo.Collection the store uses.
type collection interface {
	Find(ctx context.Context, filter interface{},
		opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{},
		opts ...*options.FindOneOptions) *mongo.SingleResult
	InsertOne(ctx context.Context, document interface{},
		opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	ReplaceOne(ctx context.Context, filter interface{}, replacement interface{},
		opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{},
		opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{},
		opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult
}

const (
	foodsCollection    = "foods"
	countersCollection = "counters"
)

// MongoStore keeps foods in a MongoDB collection. Integer ids come from a
// sequence document in the counters collection.
type MongoStore struct {
	foods    collection
	counters collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		foods:    db.Collection(foodsCollection),
		counters: db.Collection(countersCollection),
	}
}

func (s *MongoStore) List(ctx context.Context) ([]models.Food, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.foods.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	foods := []models.Food{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (s *MongoStore) Get(ctx context.Context, id int64) (models.Food, error) {
	var food models.Food
	err := s.foods.FindOne(ctx, bson.M{"_id": id}).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Food{}, ErrNotFound
	}
	return food, err
}

func (s *MongoStore) Create(ctx context.Context, food models.Food) (models.Food, error) {
	id, err := s.nextID(ctx)
	if err != nil {
		return models.Food{}, fmt.Errorf("allocating food id: %w", err)
	}
	food.ID = id
	if _, err := s.foods.InsertOne(ctx, food); err != nil {
		return models.Food{}, err
	}
	return food, nil
}

func (s *MongoStore) Update(ctx context.Context, id int64, food models.Food) (models.Food, error) {
	food.ID = id
	res, err := s.foods.ReplaceOne(ctx, bson.M{"_id": id}, food)
	if err != nil {
		return models.Food{}, err
	}
	if res.MatchedCount == 0 {
		return models.Food{}, ErrNotFound
	}
	return food, nil
}

func (s *MongoStore) Delete(ctx context.Context, id int64) error {
	res, err := s.foods.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": foodsCollection},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	return counter.Seq, err
}

package store

import (
	"context"
	"encoding/binary"
	"encoding/json"

	bolt "go.etcd.io/bbolt"

	"go-restaurant/models"
)

var foodsBucket = []byte("foods")

// BoltStore keeps foods as JSON values in a bbolt bucket. Keys are
// big-endian ids so a cursor walks them in id order.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore creates the foods bucket if it does not exist yet.
func NewBoltStore(db *bolt.DB) (*BoltStore, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(foodsBucket)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

func idKey(id int64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(id))
	return k
}

func (s *BoltStore) List(ctx context.Context) ([]models.Food, error) {
	foods := []models.Food{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(foodsBucket).ForEach(func(k, v []byte) error {
			var f models.Food
			if err := json.Unmarshal(v, &f); err != nil {
				return err
			}
			foods = append(foods, f)
			return nil
		})
	})
	return foods, err
}

func (s *BoltStore) Get(ctx context.Context, id int64) (models.Food, error) {
	var food models.Food
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(foodsBucket).Get(idKey(id))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &food)
	})
	return food, err
}

func (s *BoltStore) Create(ctx context.Context, food models.Food) (models.Food, error) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(foodsBucket)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		food.ID = int64(seq)
		return put(b, food)
	})
	if err != nil {
		return models.Food{}, err
	}
	return food, nil
}

func (s *BoltStore) Update(ctx context.Context, id int64, food models.Food) (models.Food, error) {
	food.ID = id
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(foodsBucket)
		if b.Get(idKey(id)) == nil {
			return ErrNotFound
		}
		return put(b, food)
	})
	if err != nil {
		return models.Food{}, err
	}
	return food, nil
}

func (s *BoltStore) Delete(ctx context.Context, id int64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(foodsBucket)
		if b.Get(idKey(id)) == nil {
			return ErrNotFound
		}
		return b.Delete(idKey(id))
	})
}

func put(b *bolt.Bucket, food models.Food) error {
	v, err := json.Marshal(food)
	if err != nil {
		return err
	}
	return b.Put(idKey(food.ID), v)
}

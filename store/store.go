// Package store persists the foods collection served by the backend.
package store

import (
	"context"
	"errors"

	"go-restaurant/models"
)

// ErrNotFound is returned when no food has the requested id.
var ErrNotFound = errors.New("food not found")

// FoodStore is the persistence contract of the foods collection. Create
// assigns the id; Update replaces every field of an existing food.
type FoodStore interface {
	List(ctx context.Context) ([]models.Food, error)
	Get(ctx context.Context, id int64) (models.Food, error)
	Create(ctx context.Context, food models.Food) (models.Food, error)
	Update(ctx context.Context, id int64, food models.Food) (models.Food, error)
	Delete(ctx context.Context, id int64) error
}

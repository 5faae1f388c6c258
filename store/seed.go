package store

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"go-restaurant/models"
)

type seedFood struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
	Image       string  `yaml:"image"`
	Available   *bool   `yaml:"available"`
}

// Seed loads a YAML list of foods into s when s is empty and returns how
// many were created. Entries without an available key are available.
func Seed(ctx context.Context, s FoodStore, r io.Reader) (int, error) {
	existing, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	var entries []seedFood
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil && err != io.EOF {
		return 0, fmt.Errorf("decoding seed: %w", err)
	}
	for i, e := range entries {
		food := models.Food{
			Name:        e.Name,
			Description: e.Description,
			Price:       e.Price,
			Image:       e.Image,
			Available:   e.Available == nil || *e.Available,
		}
		if _, err := s.Create(ctx, food); err != nil {
			return i, fmt.Errorf("seeding %q: %w", e.Name, err)
		}
	}
	return len(entries), nil
}

package store

import (
	"context"
	"sort"
	"sync"

	"go-restaurant/models"
)

// MemoryStore keeps foods in a map. The zero value is not usable; call
// NewMemoryStore.
type MemoryStore struct {
	mu     sync.RWMutex
	foods  map[int64]models.Food
	nextID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{foods: make(map[int64]models.Food)}
}

func (s *MemoryStore) List(ctx context.Context) ([]models.Food, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	foods := make([]models.Food, 0, len(s.foods))
	for _, f := range s.foods {
		foods = append(foods, f)
	}
	sort.Slice(foods, func(i, j int) bool { return foods[i].ID < foods[j].ID })
	return foods, nil
}

func (s *MemoryStore) Get(ctx context.Context, id int64) (models.Food, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.foods[id]
	if !ok {
		return models.Food{}, ErrNotFound
	}
	return f, nil
}

func (s *MemoryStore) Create(ctx context.Context, food models.Food) (models.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	food.ID = s.nextID
	s.foods[food.ID] = food
	return food, nil
}

func (s *MemoryStore) Update(ctx context.Context, id int64, food models.Food) (models.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.foods[id]; !ok {
		return models.Food{}, ErrNotFound
	}
	food.ID = id
	s.foods[id] = food
	return food, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.foods[id]; !ok {
		return ErrNotFound
	}
	delete(s.foods, id)
	return nil
}

package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-restaurant/models"
)

type foodRow struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	Name        string
	Description string
	Price       float64
	Image       string
	Available   bool
}

func (foodRow) TableName() string { return "foods" }

func toRow(f models.Food) foodRow {
	return foodRow{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Image:       f.Image,
		Available:   f.Available,
	}
}

func (r foodRow) food() models.Food {
	return models.Food{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		Available:   r.Available,
	}
}

// PostgresStore keeps foods in a Postgres table through gorm.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore migrates the foods table and returns the store.
func NewPostgresStore(db *gorm.DB) (*PostgresStore, error) {
	if err := db.AutoMigrate(&foodRow{}); err != nil {
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]models.Food, error) {
	var rows []foodRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	foods := make([]models.Food, len(rows))
	for i, r := range rows {
		foods[i] = r.food()
	}
	return foods, nil
}

func (s *PostgresStore) Get(ctx context.Context, id int64) (models.Food, error) {
	var row foodRow
	err := s.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Food{}, ErrNotFound
	}
	if err != nil {
		return models.Food{}, err
	}
	return row.food(), nil
}

func (s *PostgresStore) Create(ctx context.Context, food models.Food) (models.Food, error) {
	food.ID = 0
	row := toRow(food)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.Food{}, err
	}
	return row.food(), nil
}

func (s *PostgresStore) Update(ctx context.Context, id int64, food models.Food) (models.Food, error) {
	food.ID = id
	row := toRow(food)
	// Select("*") writes zero values too, so available=false is persisted.
	res := s.db.WithContext(ctx).Model(&foodRow{}).Where("id = ?", id).Select("*").Updates(&row)
	if res.Error != nil {
		return models.Food{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.Food{}, ErrNotFound
	}
	return food, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&foodRow{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

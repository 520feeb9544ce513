package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type CanteenGormRepository struct {
	db *gorm.DB
}

// DI
func NewCanteenGormRepository(db *gorm.DB) *CanteenGormRepository {
	return &CanteenGormRepository{db: db}
}

func (r *CanteenGormRepository) Create(ctx context.Context, canteen model.Canteen) (model.Canteen, error) {
	if err := r.db.WithContext(ctx).Create(&canteen).Error; err != nil {
		return model.Canteen{}, err
	}
	return canteen, nil
}

func (r *CanteenGormRepository) FindByID(ctx context.Context, canteenID int64) (model.Canteen, error) {
	var c model.Canteen
	err := r.db.WithContext(ctx).First(&c, canteenID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Canteen{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Canteen{}, err
	}
	return c, nil
}

func (r *CanteenGormRepository) FindByName(ctx context.Context, name string) (model.Canteen, error) {
	var c model.Canteen
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Canteen{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Canteen{}, err
	}
	return c, nil
}

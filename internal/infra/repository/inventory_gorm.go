package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// 在庫が足りるときだけ減らす。
// read-modify-write ではなく条件付きUPDATE1発で行う。
func (r *InventoryGormRepository) DecreaseAvailableIfEnough(ctx context.Context, menuItemID int64, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.MenuItem{}).
		Where("id = ? AND quantity_available >= ?", menuItemID, qty).
		Update("quantity_available", gorm.Expr("quantity_available - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 在庫戻し（キャンセル）
func (r *InventoryGormRepository) IncreaseAvailable(ctx context.Context, menuItemID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.MenuItem{}).
		Where("id = ?", menuItemID).
		Update("quantity_available", gorm.Expr("quantity_available + ?", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

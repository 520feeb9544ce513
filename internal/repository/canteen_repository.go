package repository

import (
	"app/internal/domain/model"
	"context"
)

// 食堂(Canteen)を保存・取得する窓口
type CanteenRepository interface {
	Create(ctx context.Context, canteen model.Canteen) (model.Canteen, error)
	FindByID(ctx context.Context, canteenID int64) (model.Canteen, error)
	FindByName(ctx context.Context, name string) (model.Canteen, error)
}

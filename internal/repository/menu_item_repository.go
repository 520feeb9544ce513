package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type MenuItemListQuery struct {
	Page      int
	Limit     int
	Q         string
	Category  string
	CanteenID *int64
	Sort      string
}

// メニューの永続化（保存・取得）だけを約束。
type MenuItemRepository interface {
	List(ctx context.Context, q MenuItemListQuery) ([]model.MenuItem, int64, error)
	ListByCanteenID(ctx context.Context, canteenID int64) ([]model.MenuItem, error)
	ListCategories(ctx context.Context) ([]string, error)
	FindByID(ctx context.Context, id int64) (model.MenuItem, error)

	Create(ctx context.Context, m model.MenuItem) (model.MenuItem, error)
	Update(ctx context.Context, m model.MenuItem) error
	SoftDelete(ctx context.Context, id int64) error
}

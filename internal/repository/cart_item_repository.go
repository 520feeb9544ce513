package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartItemRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	// 同一商品はプラス
	UpsertByUserAndItem(ctx context.Context, userID int64, menuItemID int64, addQty int64) error
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	// チェックアウト後のカートクリア
	DeleteByUserID(ctx context.Context, userID int64) error
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
	IsOwnedByUser(ctx context.Context, cartItemID int64, userID int64) (bool, error)
}

package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	// 食堂側ビュー用。注文のうち自食堂の明細だけを返す。
	ListByOrderIDAndCanteen(ctx context.Context, orderID int64, canteenID int64) ([]model.OrderItem, error)
}

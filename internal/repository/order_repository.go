package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error)
	Create(ctx context.Context, order model.Order) (int64, error)

	// 保存済みステータスが from のときだけ to へ更新する。
	// 競合（別セッションが先に更新）なら ErrNotFound。
	UpdateStatusFrom(ctx context.Context, orderID int64, from model.OrderStatus, to model.OrderStatus) error

	//検索（同じキーなら同じ結果を返す）
	FindByIdempotencyKey(ctx context.Context, userID int64, key string) (model.Order, bool, error)

	// 指定食堂の明細を1件以上含む注文を新しい順で返す
	ListByCanteenID(ctx context.Context, canteenID int64, page int, limit int) ([]model.Order, int64, error)
}

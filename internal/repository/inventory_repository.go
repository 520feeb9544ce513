package repository

import "context"

type InventoryRepository interface {
	// 在庫が足りるときだけ減算
	DecreaseAvailableIfEnough(ctx context.Context, menuItemID int64, qty int64) (bool, error)

	// 在庫戻し（キャンセル）
	IncreaseAvailable(ctx context.Context, menuItemID int64, qty int64) error
}

package model

import "time"

// カートの明細。
// (user_id, menu_item_id) につき1行。同じ商品の追加は数量加算。
type CartItem struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64     `gorm:"not null;index:idx_cart_user_item,unique" json:"user_id"`
	MenuItemID int64     `gorm:"not null;index:idx_cart_user_item,unique" json:"menu_item_id"`
	Quantity   int64     `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

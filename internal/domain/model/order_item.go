package model

import "time"

// 注文明細。価格と商品名は注文時点のスナップショット。
// canteen_id は絞り込み用に非正規化して持つ。
type OrderItem struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64     `gorm:"not null;index" json:"order_id"`
	MenuItemID    int64     `gorm:"not null;index" json:"menu_item_id"`
	CanteenID     int64     `gorm:"not null;index" json:"canteen_id"`
	NameSnapshot  string    `gorm:"type:varchar(255);not null" json:"name_snapshot"`
	PriceSnapshot int64     `gorm:"not null" json:"price_snapshot"`
	Quantity      int64     `gorm:"not null" json:"quantity"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	//決済は未連携。作成時に completed 固定。
	PaymentStatusCompleted PaymentStatus = "completed"
)

// pending → processing → ready → completed の一本道。
// cancelled は pending / processing からのみ。
func CanTransition(from OrderStatus, to OrderStatus) bool {
	if to == OrderStatusCancelled {
		return from == OrderStatusPending || from == OrderStatusProcessing
	}

	switch from {
	case OrderStatusPending:
		return to == OrderStatusProcessing
	case OrderStatusProcessing:
		return to == OrderStatusReady
	case OrderStatusReady:
		return to == OrderStatusCompleted
	default:
		// completed / cancelled は終端
		return false
	}
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusReady,
		OrderStatusCompleted, OrderStatusCancelled:
		return OrderStatus(s), true
	default:
		return "", false
	}
}

type Order struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	//利用者向けの注文番号（UUID）
	Reference      string        `gorm:"type:varchar(36);not null;uniqueIndex" json:"reference"`
	UserID         int64         `gorm:"not null;index" json:"user_id"`
	Status         OrderStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentStatus  PaymentStatus `gorm:"type:varchar(20);not null" json:"payment_status"`
	TotalAmount    int64         `gorm:"not null" json:"total_amount"`
	IdempotencyKey string        `gorm:"type:varchar(255);not null;uniqueIndex" json:"-"`
	CreatedAt      time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

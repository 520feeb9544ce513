package model

import (
	"time"

	"gorm.io/gorm"
)

type MenuItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	CanteenID int64 `gorm:"not null;index" json:"canteen_id"`

	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	//最小通貨単位
	Price    int64  `gorm:"not null" json:"price"`
	ImageURL string `gorm:"type:text" json:"image_url"`
	Category string `gorm:"type:varchar(50);not null;index" json:"category"`
	//何人前か
	Serves            int64          `gorm:"not null;default:1" json:"serves"`
	QuantityAvailable int64          `gorm:"not null;default:0" json:"quantity_available"`
	Rating            float64        `gorm:"not null;default:0" json:"rating"`
	CreatedAt         time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

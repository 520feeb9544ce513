package model

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
)

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	FullName     string `gorm:"type:varchar(255);not null" json:"full_name"`
	//学生のみ
	RegistrationNumber string `gorm:"type:varchar(50)" json:"registration_number,omitempty"`
	MobileNumber       string `gorm:"type:varchar(20)" json:"mobile_number,omitempty"`
	//スタッフのみ（所属食堂）
	CanteenID *int64    `gorm:"index" json:"canteen_id,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Review struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	UserID       uint            `json:"user_id" gorm:"not null"`
	User         User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RestaurantID uint            `json:"restaurant_id" gorm:"not null;index"`
	Rating       decimal.Decimal `json:"rating" gorm:"type:decimal(3,2);not null"`
	Comment      string          `json:"comment"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type Coupon struct {
	ID                 uint            `json:"id" gorm:"primaryKey"`
	Code               string          `json:"code" gorm:"uniqueIndex;not null"`
	Description        string          `json:"description"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage" gorm:"type:decimal(5,2);not null"`
	MaxDiscountAmount  decimal.Decimal `json:"max_discount_amount" gorm:"type:decimal(10,2)"`
	ValidFrom          time.Time       `json:"valid_from"`
	ValidTo            time.Time       `json:"valid_to"`
	Active             bool            `json:"active" gorm:"default:true"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Message   string    `json:"message" gorm:"not null"`
	IsRead    bool      `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}

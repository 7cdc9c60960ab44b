package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	OwnerID     uint            `json:"owner_id" gorm:"not null"`
	Owner       User            `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name        string          `json:"name" gorm:"not null"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Description string          `json:"description"`
	GSTNumber   string          `json:"gst_number"`
	Rating      decimal.Decimal `json:"rating" gorm:"type:decimal(3,2);default:0"`
	IsDeleted   bool            `json:"-" gorm:"default:false"`
	MenuItems   []MenuItem      `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type MenuItem struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	RestaurantID    uint            `json:"restaurant_id" gorm:"not null"`
	Name            string          `json:"name" gorm:"not null"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Availability    bool            `json:"availability" gorm:"default:true"`
	Rating          decimal.Decimal `json:"rating" gorm:"type:decimal(3,2);default:0"`
	PreparationTime int             `json:"preparation_time_minutes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MenuItemCategory links menu items to categories (many-to-many)
type MenuItemCategory struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	MenuItemID uint      `json:"menu_item_id" gorm:"not null;index"`
	CategoryID uint      `json:"category_id" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`
}

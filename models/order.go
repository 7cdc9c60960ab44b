package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of a food order
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

type Order struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	UserID           uint            `json:"user_id" gorm:"not null;index"`
	User             User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	DeliveryPersonID *uint           `json:"delivery_person_id"`
	DeliveryPerson   *User           `json:"delivery_person,omitempty" gorm:"foreignKey:DeliveryPersonID"`
	TotalAmount      decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Status           OrderStatus     `json:"status" gorm:"not null;default:'pending'"`
	DeliveryAddress  string          `json:"delivery_address" gorm:"not null"`
	OrderDate        time.Time       `json:"order_date" gorm:"autoCreateTime;index"`
	DeliveryDate     *time.Time      `json:"delivery_date"`
	Items            []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	Payments         []Payment       `json:"payments,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OrderID    uint            `json:"order_id" gorm:"not null;index"`
	MenuItemID uint            `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem        `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"` // snapshot price at time of order
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer        UserRole = "customer"
	RoleRestaurantOwner UserRole = "restaurant_owner"
	RoleDeliveryPerson  UserRole = "delivery_person"
	RoleAdmin           UserRole = "admin"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:'customer'"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	IsDeleted    bool      `json:"-" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CustomerDetail extends a customer account with profile fields
type CustomerDetail struct {
	UserID      uint       `json:"user_id" gorm:"primaryKey"`
	User        User       `json:"-" gorm:"foreignKey:UserID"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	ProfileLogo string     `json:"profile_logo"`
}

// DeliveryPerson extends a delivery_person account with fleet fields
type DeliveryPerson struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	UserID         uint            `json:"user_id" gorm:"uniqueIndex;not null"`
	User           User            `json:"-" gorm:"foreignKey:UserID"`
	VehicleDetails string          `json:"vehicle_details"`
	Available      bool            `json:"available" gorm:"default:true"`
	Rating         decimal.Decimal `json:"rating" gorm:"type:decimal(3,2);default:0"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

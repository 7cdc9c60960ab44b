package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates supported payment methods
type PaymentMethod string

const (
	MethodCreditCard     PaymentMethod = "credit_card"
	MethodDebitCard      PaymentMethod = "debit_card"
	MethodNetBanking     PaymentMethod = "net_banking"
	MethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	MethodUPI            PaymentMethod = "upi"
)

// PaymentStatusPending is the initial status of every payment
const PaymentStatusPending = "pending"

var paymentMethods = map[PaymentMethod]bool{
	MethodCreditCard:     true,
	MethodDebitCard:      true,
	MethodNetBanking:     true,
	MethodCashOnDelivery: true,
	MethodUPI:            true,
}

// Valid reports whether m is one of the defined payment methods
func (m PaymentMethod) Valid() bool {
	return paymentMethods[m]
}

type Payment struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	OrderID       uint            `json:"order_id" gorm:"not null;index"`
	Method        PaymentMethod   `json:"method" gorm:"not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Status        string          `json:"status" gorm:"default:'pending'"`
	TransactionID *string         `json:"transaction_id,omitempty" gorm:"uniqueIndex"`
	PaymentDate   time.Time       `json:"payment_date" gorm:"autoCreateTime"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

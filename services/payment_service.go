package services

import (
	"food-ordering-api/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentOrderStore is the slice of the store the payment recorder needs.
type PaymentOrderStore interface {
	GetOrder(id uint) (*models.Order, error)
	CreatePayment(payment *models.Payment) error
}

// PaymentService records payments against finalized orders.
type PaymentService struct {
	store PaymentOrderStore
}

func NewPaymentService(store PaymentOrderStore) *PaymentService {
	return &PaymentService{store: store}
}

// RecordPayment creates a pending Payment for the order. The amount
// must equal the order total exactly; partial and split payments are
// not supported. Order status is untouched.
func (s *PaymentService) RecordPayment(orderID uint, method models.PaymentMethod, amount decimal.Decimal) (*models.Payment, error) {
	if !method.Valid() {
		return nil, &ValidationError{Reason: "unknown payment method: " + string(method)}
	}

	order, err := s.store.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !amount.Equal(order.TotalAmount) {
		return nil, &AmountMismatchError{Expected: order.TotalAmount, Got: amount}
	}

	payment := &models.Payment{
		OrderID: order.ID,
		Method:  method,
		Amount:  amount,
		Status:  models.PaymentStatusPending,
	}
	// Cash settles on the doorstep; everything else gets a gateway
	// reference up front.
	if method != models.MethodCashOnDelivery {
		txID := uuid.NewString()
		payment.TransactionID = &txID
	}

	if err := s.store.CreatePayment(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

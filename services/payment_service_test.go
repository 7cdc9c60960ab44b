package services_test

import (
	"testing"

	"food-ordering-api/models"
	"food-ordering-api/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPaymentStore struct {
	mock.Mock
}

func (m *mockPaymentStore) GetOrder(id uint) (*models.Order, error) {
	args := m.Called(id)
	if order := args.Get(0); order != nil {
		return order.(*models.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentStore) CreatePayment(payment *models.Payment) error {
	return m.Called(payment).Error(0)
}

func TestRecordPayment(t *testing.T) {
	total := decimal.RequireFromString("10.00")
	order := &models.Order{ID: 7, UserID: 1, TotalAmount: total}

	tests := []struct {
		name       string
		method     models.PaymentMethod
		amount     decimal.Decimal
		wantTxnID  bool
		wantAmtErr bool
	}{
		{"upi with exact amount", models.MethodUPI, decimal.RequireFromString("10.00"), true, false},
		{"credit card with exact amount", models.MethodCreditCard, total, true, false},
		{"cash on delivery has no transaction id", models.MethodCashOnDelivery, total, false, false},
		{"amount one cent short", models.MethodUPI, decimal.RequireFromString("9.99"), false, true},
		{"amount too high", models.MethodUPI, decimal.RequireFromString("10.01"), false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := new(mockPaymentStore)
			svc := services.NewPaymentService(store)
			store.On("GetOrder", uint(7)).Return(order, nil).Once()
			if !tc.wantAmtErr {
				store.On("CreatePayment", mock.AnythingOfType("*models.Payment")).Return(nil).Once()
			}

			payment, err := svc.RecordPayment(7, tc.method, tc.amount)

			if tc.wantAmtErr {
				var amtErr *services.AmountMismatchError
				assert.ErrorAs(t, err, &amtErr)
				assert.True(t, amtErr.Expected.Equal(total))
				assert.True(t, amtErr.Got.Equal(tc.amount))
				store.AssertNotCalled(t, "CreatePayment", mock.Anything)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, uint(7), payment.OrderID)
			assert.Equal(t, tc.method, payment.Method)
			assert.Equal(t, models.PaymentStatusPending, payment.Status)
			assert.True(t, payment.Amount.Equal(tc.amount))
			if tc.wantTxnID {
				assert.NotNil(t, payment.TransactionID)
				assert.NotEmpty(t, *payment.TransactionID)
			} else {
				assert.Nil(t, payment.TransactionID)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestRecordPaymentUnknownMethod(t *testing.T) {
	store := new(mockPaymentStore)
	svc := services.NewPaymentService(store)

	_, err := svc.RecordPayment(1, models.PaymentMethod("bitcoin"), decimal.NewFromInt(10))

	var valErr *services.ValidationError
	assert.ErrorAs(t, err, &valErr)
	store.AssertNotCalled(t, "GetOrder", mock.Anything)
}

func TestRecordPaymentOrderNotFound(t *testing.T) {
	store := new(mockPaymentStore)
	svc := services.NewPaymentService(store)
	store.On("GetOrder", uint(99)).Return(nil, services.ErrNotFound).Once()

	_, err := svc.RecordPayment(99, models.MethodUPI, decimal.NewFromInt(10))

	assert.ErrorIs(t, err, services.ErrNotFound)
	store.AssertNotCalled(t, "CreatePayment", mock.Anything)
}

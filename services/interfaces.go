package services

import (
	"time"

	"food-ordering-api/models"

	"github.com/shopspring/decimal"
)

// CatalogStore reads restaurants and menu items. Soft-deleted
// restaurants are invisible through it.
type CatalogStore interface {
	GetRestaurant(id uint) (*models.Restaurant, error)
	GetMenuItem(id uint) (*models.MenuItem, error)
}

// OrderStore persists orders and their owned line items.
type OrderStore interface {
	CreateOrder(order *models.Order) error
	CreateOrderItem(item *models.OrderItem) error
	UpdateOrderTotal(orderID uint, total decimal.Decimal) error
	UpdateOrderStatus(orderID uint, status models.OrderStatus) error
	AssignDeliveryPerson(orderID, userID uint) error
	MarkDelivered(orderID uint, at time.Time) error
	GetOrder(id uint) (*models.Order, error)
	ListOrdersForUser(userID uint) ([]models.Order, error)
	ListOrdersForRestaurant(restaurantID uint) ([]models.Order, error)
	ListOrdersByStatus(status models.OrderStatus) ([]models.Order, error)
	// DeleteOrder removes the order together with its items and
	// payments in one transaction.
	DeleteOrder(id uint) error
}

// PaymentStore persists payments against orders.
type PaymentStore interface {
	CreatePayment(payment *models.Payment) error
}

// NotificationStore persists user-facing notifications.
type NotificationStore interface {
	CreateNotification(n *models.Notification) error
}

// Store groups every repository the services consume.
type Store interface {
	CatalogStore
	OrderStore
	PaymentStore
	NotificationStore
}

// UnitOfWork runs fn against a transaction-scoped Store. If fn returns
// an error nothing fn wrote is persisted.
type UnitOfWork interface {
	WithinTx(fn func(tx Store) error) error
}

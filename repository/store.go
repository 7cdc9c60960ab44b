package repository

import (
	"errors"
	"fmt"
	"time"

	"food-ordering-api/models"
	"food-ordering-api/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Store is the GORM-backed implementation of the service-side
// repository interfaces. A Store built from a transaction handle scopes
// every call to that transaction.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

var (
	_ services.Store      = (*Store)(nil)
	_ services.UnitOfWork = (*Store)(nil)
)

// WithinTx runs fn against a transaction-scoped Store. A non-nil error
// from fn rolls back everything fn wrote.
func (s *Store) WithinTx(fn func(tx services.Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// ── Catalog ────────────────────────────────────────────────────

func (s *Store) GetRestaurant(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.Where("is_deleted = ?", false).First(&restaurant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("restaurant %d: %w", id, services.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (s *Store) GetMenuItem(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("menu item %d: %w", id, services.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ── Orders ─────────────────────────────────────────────────────

func (s *Store) CreateOrder(order *models.Order) error {
	return s.db.Create(order).Error
}

func (s *Store) CreateOrderItem(item *models.OrderItem) error {
	return s.db.Create(item).Error
}

func (s *Store) UpdateOrderTotal(orderID uint, total decimal.Decimal) error {
	return s.db.Model(&models.Order{}).Where("id = ?", orderID).
		Update("total_amount", total).Error
}

func (s *Store) UpdateOrderStatus(orderID uint, status models.OrderStatus) error {
	return s.db.Model(&models.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}

func (s *Store) AssignDeliveryPerson(orderID, userID uint) error {
	return s.db.Model(&models.Order{}).Where("id = ?", orderID).
		Update("delivery_person_id", userID).Error
}

func (s *Store) MarkDelivered(orderID uint, at time.Time) error {
	return s.db.Model(&models.Order{}).Where("id = ?", orderID).
		Update("delivery_date", at).Error
}

func (s *Store) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").Preload("Payments").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %d: %w", id, services.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) ListOrdersForUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").Preload("Payments").
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (s *Store) ListOrdersForRestaurant(restaurantID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Where("menu_items.restaurant_id = ?", restaurantID).
		Group("orders.id").
		Order("orders.order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (s *Store) ListOrdersByStatus(status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("status = ?", status).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

// DeleteOrder removes the order together with its items and payments.
// The cascade is an application-level invariant: all three deletes run
// in one transaction.
func (s *Store) DeleteOrder(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Order{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("order %d: %w", id, services.ErrNotFound)
		}
		return nil
	})
}

// ── Payments ───────────────────────────────────────────────────

func (s *Store) CreatePayment(payment *models.Payment) error {
	return s.db.Create(payment).Error
}

// ── Notifications ──────────────────────────────────────────────

func (s *Store) CreateNotification(n *models.Notification) error {
	return s.db.Create(n).Error
}

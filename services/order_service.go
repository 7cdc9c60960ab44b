package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"food-ordering-api/models"
	"food-ordering-api/statemachine"

	"github.com/shopspring/decimal"
)

// QuantityResolver decides how many units of a selected menu item go
// into the order.
type QuantityResolver func(menuItemID uint) int

// SingleQuantity is the default policy: one unit per distinct selected
// item, regardless of the item.
func SingleQuantity(uint) int { return 1 }

// OrderService builds order aggregates and answers order queries.
type OrderService struct {
	store Store
	uow   UnitOfWork
}

func NewOrderService(store Store, uow UnitOfWork) *OrderService {
	return &OrderService{store: store, uow: uow}
}

// PlaceOrder creates an Order with one OrderItem per distinct selected
// menu item and a total equal to the sum of the snapshot line prices.
// The whole write is one transaction: if any step fails, neither the
// order nor any of its items persist.
func (s *OrderService) PlaceOrder(userID, restaurantID uint, deliveryAddress string, menuItemIDs []uint, resolve QuantityResolver) (*models.Order, error) {
	if strings.TrimSpace(deliveryAddress) == "" {
		return nil, &ValidationError{Reason: "delivery address must not be empty"}
	}
	if len(menuItemIDs) == 0 {
		return nil, &ValidationError{Reason: "order must contain at least one menu item"}
	}
	if resolve == nil {
		resolve = SingleQuantity
	}

	var placed *models.Order
	err := s.uow.WithinTx(func(tx Store) error {
		restaurant, err := tx.GetRestaurant(restaurantID)
		if err != nil {
			return err
		}

		order := &models.Order{
			UserID:          userID,
			DeliveryAddress: deliveryAddress,
			Status:          models.StatusPending,
			TotalAmount:     decimal.Zero,
		}
		if err := tx.CreateOrder(order); err != nil {
			return err
		}

		total := decimal.Zero
		seen := make(map[uint]bool, len(menuItemIDs))
		for _, itemID := range menuItemIDs {
			if seen[itemID] {
				continue
			}
			seen[itemID] = true

			menuItem, err := tx.GetMenuItem(itemID)
			if errors.Is(err, ErrNotFound) {
				return &InvalidSelectionError{MenuItemID: itemID, Reason: "menu item does not exist"}
			}
			if err != nil {
				return err
			}
			if menuItem.RestaurantID != restaurant.ID {
				return &InvalidSelectionError{MenuItemID: itemID, Reason: "menu item does not belong to this restaurant"}
			}
			if !menuItem.Availability {
				return &InvalidSelectionError{MenuItemID: itemID, Reason: "menu item is not available"}
			}

			quantity := resolve(itemID)
			if quantity < 1 {
				return &ValidationError{Reason: fmt.Sprintf("quantity for menu item %d must be at least 1", itemID)}
			}

			line := &models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: menuItem.ID,
				Quantity:   quantity,
				Price:      menuItem.Price,
			}
			if err := tx.CreateOrderItem(line); err != nil {
				return err
			}
			order.Items = append(order.Items, *line)
			total = total.Add(menuItem.Price.Mul(decimal.NewFromInt(int64(quantity))))
		}

		if err := tx.UpdateOrderTotal(order.ID, total); err != nil {
			return err
		}
		order.TotalAmount = total
		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

// GetOrder returns the order aggregate (items and payments included).
func (s *OrderService) GetOrder(orderID uint) (*models.Order, error) {
	return s.store.GetOrder(orderID)
}

// ListOrdersForUser returns the user's orders, most recent first.
// Re-querying reflects the latest persisted state.
func (s *OrderService) ListOrdersForUser(userID uint) ([]models.Order, error) {
	return s.store.ListOrdersForUser(userID)
}

// ListOrdersForRestaurant returns orders containing at least one of the
// restaurant's menu items, most recent first.
func (s *OrderService) ListOrdersForRestaurant(restaurantID uint) ([]models.Order, error) {
	return s.store.ListOrdersForRestaurant(restaurantID)
}

// ListOrdersByStatus returns all orders currently in the given status.
func (s *OrderService) ListOrdersByStatus(status models.OrderStatus) ([]models.Order, error) {
	return s.store.ListOrdersByStatus(status)
}

// AdvanceStatus moves an order to a new status if the state machine
// allows the transition for the given actor, and notifies the customer.
func (s *OrderService) AdvanceStatus(orderID uint, to models.OrderStatus, actor string) (*models.Order, error) {
	var advanced *models.Order
	err := s.uow.WithinTx(func(tx Store) error {
		order, err := tx.GetOrder(orderID)
		if err != nil {
			return err
		}
		if err := statemachine.CanTransition(order.Status, to, actor); err != nil {
			return &ValidationError{Reason: err.Error()}
		}
		if err := tx.UpdateOrderStatus(order.ID, to); err != nil {
			return err
		}
		if err := tx.CreateNotification(&models.Notification{
			UserID:  order.UserID,
			Message: fmt.Sprintf("Your order #%d is now %s", order.ID, to),
		}); err != nil {
			return err
		}
		order.Status = to
		advanced = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return advanced, nil
}

// Pickup assigns the order to a delivery person and moves it out for
// delivery, atomically.
func (s *OrderService) Pickup(orderID, deliveryUserID uint) (*models.Order, error) {
	var picked *models.Order
	err := s.uow.WithinTx(func(tx Store) error {
		order, err := tx.GetOrder(orderID)
		if err != nil {
			return err
		}
		if order.DeliveryPersonID != nil {
			return &ValidationError{Reason: fmt.Sprintf("order %d is already assigned", orderID)}
		}
		if err := statemachine.CanTransition(order.Status, models.StatusOutForDelivery, statemachine.ActorDelivery); err != nil {
			return &ValidationError{Reason: err.Error()}
		}
		if err := tx.AssignDeliveryPerson(order.ID, deliveryUserID); err != nil {
			return err
		}
		if err := tx.UpdateOrderStatus(order.ID, models.StatusOutForDelivery); err != nil {
			return err
		}
		if err := tx.CreateNotification(&models.Notification{
			UserID:  order.UserID,
			Message: fmt.Sprintf("Your order #%d is out for delivery", order.ID),
		}); err != nil {
			return err
		}
		order.Status = models.StatusOutForDelivery
		order.DeliveryPersonID = &deliveryUserID
		picked = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return picked, nil
}

// Deliver marks an out-for-delivery order as delivered by its assigned
// delivery person and records the delivery time.
func (s *OrderService) Deliver(orderID, deliveryUserID uint) (*models.Order, error) {
	var delivered *models.Order
	err := s.uow.WithinTx(func(tx Store) error {
		order, err := tx.GetOrder(orderID)
		if err != nil {
			return err
		}
		if order.DeliveryPersonID == nil || *order.DeliveryPersonID != deliveryUserID {
			return &ValidationError{Reason: fmt.Sprintf("order %d is not assigned to this delivery person", orderID)}
		}
		if err := statemachine.CanTransition(order.Status, models.StatusDelivered, statemachine.ActorDelivery); err != nil {
			return &ValidationError{Reason: err.Error()}
		}
		now := time.Now()
		if err := tx.UpdateOrderStatus(order.ID, models.StatusDelivered); err != nil {
			return err
		}
		if err := tx.MarkDelivered(order.ID, now); err != nil {
			return err
		}
		if err := tx.CreateNotification(&models.Notification{
			UserID:  order.UserID,
			Message: fmt.Sprintf("Your order #%d has been delivered", order.ID),
		}); err != nil {
			return err
		}
		order.Status = models.StatusDelivered
		order.DeliveryDate = &now
		delivered = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return delivered, nil
}

package handlers

import (
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetRestaurantOrders returns all orders containing the owner's menu items
func GetRestaurantOrders(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ? AND is_deleted = ?", ownerID, false).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return
	}

	orders, err := orderSvc.ListOrdersForRestaurant(restaurant.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if status := c.Query("status"); status != "" {
		filtered := orders[:0]
		for _, o := range orders {
			if string(o.Status) == status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	// Dashboard summary: counts by status
	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant":    restaurant.Name,
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus handles the restaurant's state transitions
func UpdateOrderStatus(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	orderID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ? AND is_deleted = ?", ownerID, false).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return
	}

	order, err := orderSvc.GetOrder(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !orderBelongsToRestaurant(order, restaurant.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to your restaurant"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prevStatus := order.Status
	updated, err := orderSvc.AdvanceStatus(orderID, req.Status, statemachine.ActorRestaurant)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        updated.ID,
		"previous_status": string(prevStatus),
		"current_status":  string(updated.Status),
	})
}

// orderBelongsToRestaurant reports whether any line item of the order
// references one of the restaurant's menu items. Orders carry no
// restaurant reference themselves; ownership flows through the items.
func orderBelongsToRestaurant(order *models.Order, restaurantID uint) bool {
	var count int64
	config.DB.Model(&models.MenuItem{}).
		Joins("JOIN order_items ON order_items.menu_item_id = menu_items.id").
		Where("order_items.order_id = ? AND menu_items.restaurant_id = ?", order.ID, restaurantID).
		Count(&count)
	return count > 0
}

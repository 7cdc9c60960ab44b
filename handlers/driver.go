package handlers

import (
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// SetAvailability toggles the delivery person's availability flag
func SetAvailability(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var dp models.DeliveryPerson
	if err := config.DB.Where("user_id = ?", userID).First(&dp).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No delivery profile found for your account"})
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	config.DB.Model(&dp).Update("available", *req.Available)
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated", "available": *req.Available})
}

// GetAvailableOrders shows prepared orders with no delivery person assigned
func GetAvailableOrders(c *gin.Context) {
	orders, err := orderSvc.ListOrdersByStatus(models.StatusPreparing)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	unassigned := orders[:0]
	for _, o := range orders {
		if o.DeliveryPersonID == nil {
			unassigned = append(unassigned, o)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(unassigned),
		"orders": unassigned,
	})
}

// GetMyDeliveries returns all orders assigned to the logged-in delivery person
func GetMyDeliveries(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Items.MenuItem").
		Where("delivery_person_id = ?", userID).
		Order("updated_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// PickupOrder assigns the order to the delivery person and takes it out
// for delivery
func PickupOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orderID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := orderSvc.Pickup(orderID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order picked up successfully",
		"order_id": order.ID,
		"status":   order.Status,
	})
}

// DeliverOrder completes the delivery
func DeliverOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orderID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := orderSvc.Deliver(orderID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Order delivered successfully! 🎉",
		"order_id":      order.ID,
		"status":        order.Status,
		"delivery_date": order.DeliveryDate,
	})
}

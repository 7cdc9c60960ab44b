package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

type PlaceOrderRequest struct {
	RestaurantID    uint   `json:"restaurant_id" binding:"required"`
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	MenuItemIDs     []uint `json:"menu_item_ids" binding:"required,min=1"`
}

// PlaceOrder creates a new order (customer only). One unit per distinct
// selected menu item.
func PlaceOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orderSvc.PlaceOrder(customerID, req.RestaurantID, req.DeliveryAddress, req.MenuItemIDs, nil)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetMyOrders returns the logged-in customer's order history, most
// recent first
func GetMyOrders(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	orders, err := orderSvc.ListOrdersForUser(customerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order's full detail
func GetOrderDetail(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	orderID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := orderSvc.GetOrder(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if order.UserID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	elapsed := time.Since(order.OrderDate).Minutes()
	c.JSON(http.StatusOK, gin.H{
		"order":           order,
		"minutes_elapsed": int(elapsed),
	})
}

// CancelOrder cancels an order (customer can cancel pending or confirmed)
func CancelOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	orderID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := orderSvc.GetOrder(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if order.UserID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	if _, err := orderSvc.AdvanceStatus(orderID, models.StatusCancelled, statemachine.ActorCustomer); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_id": orderID})
}

type PayOrderRequest struct {
	Method models.PaymentMethod `json:"method" binding:"required,paymentmethod"`
	Amount decimal.Decimal      `json:"amount" binding:"required"`
}

// PayOrder records a payment against the customer's own order. The
// amount must equal the order total exactly.
func PayOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	orderID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orderSvc.GetOrder(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if order.UserID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	payment, err := paymentSvc.RecordPayment(orderID, req.Method, req.Amount)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment recorded",
		"payment": payment,
	})
}

// GetOrderQR returns a PNG QR code linking to the order's tracking page
func GetOrderQR(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	orderID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := orderSvc.GetOrder(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if order.UserID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	png, err := qrcode.Encode(fmt.Sprintf("%s/api/customer/orders/%d", config.BaseURL, order.ID), qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// ListNotifications returns the customer's notifications, newest first
func ListNotifications(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var notifications []models.Notification
	config.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&notifications)
	c.JSON(http.StatusOK, gin.H{"count": len(notifications), "notifications": notifications})
}

// MarkNotificationRead flags a notification as read
func MarkNotificationRead(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var notification models.Notification
	if err := config.DB.Where("user_id = ?", userID).First(&notification, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	config.DB.Model(&notification).Update("is_read", true)
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

type CreateReviewRequest struct {
	RestaurantID uint            `json:"restaurant_id" binding:"required"`
	Rating       decimal.Decimal `json:"rating" binding:"required"`
	Comment      string          `json:"comment"`
}

// CreateReview posts a restaurant review by the logged-in customer
func CreateReview(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Rating.LessThan(decimal.Zero) || req.Rating.GreaterThan(decimal.NewFromInt(5)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 0 and 5"})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.Where("is_deleted = ?", false).First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	review := models.Review{
		UserID:       userID,
		RestaurantID: restaurant.ID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review posted", "review": review})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}

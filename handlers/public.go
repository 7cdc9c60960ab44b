package handlers

import (
	"net/http"
	"time"

	"food-ordering-api/config"
	"food-ordering-api/models"
	"food-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns all restaurants not soft-deleted (public)
func ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := config.DB.Where("is_deleted = ?", false)

	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	query.Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant with its menu and reviews
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.Preload("MenuItems").
		Where("is_deleted = ?", false).
		First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var reviews []models.Review
	config.DB.Where("restaurant_id = ?", restaurant.ID).Order("created_at desc").Find(&reviews)

	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant, "reviews": reviews})
}

// GetMenu returns the menu for a specific restaurant (public). The
// unfiltered listing is served through the redis cache when enabled.
func GetMenu(c *gin.Context) {
	restaurantID := c.Param("id")
	var restaurant models.Restaurant
	if err := config.DB.Where("is_deleted = ?", false).First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	category := c.Query("category")

	if category == "" {
		if items, ok := config.MenuCache.Get(c.Request.Context(), restaurant.ID); ok {
			c.JSON(http.StatusOK, gin.H{
				"restaurant": restaurant.Name,
				"count":      len(items),
				"menu":       items,
			})
			return
		}
	}

	var items []models.MenuItem
	query := config.DB.Where("restaurant_id = ?", restaurant.ID)
	if category != "" {
		query = query.
			Joins("JOIN menu_item_categories ON menu_item_categories.menu_item_id = menu_items.id").
			Joins("JOIN categories ON categories.id = menu_item_categories.category_id").
			Where("categories.name = ?", category)
	}
	query.Find(&items)

	if category == "" {
		config.MenuCache.Set(c.Request.Context(), restaurant.ID, items)
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"count":      len(items),
		"menu":       items,
	})
}

// ListCategories returns the category catalog (public)
func ListCategories(c *gin.Context) {
	var categories []models.Category
	config.DB.Order("name asc").Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

// ListActiveCoupons returns currently valid coupons (public)
func ListActiveCoupons(c *gin.Context) {
	now := time.Now()
	var coupons []models.Coupon
	config.DB.Where("active = ? AND valid_from <= ? AND valid_to >= ?", true, now, now).
		Find(&coupons)
	c.JSON(http.StatusOK, gin.H{"count": len(coupons), "coupons": coupons})
}

// GetStateMachineInfo returns the order lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []models.OrderStatus{models.StatusDelivered, models.StatusCancelled},
		"description":     "Food Order Lifecycle State Machine",
	})
}

package handlers

import (
	"errors"
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/models"
	"food-ordering-api/repository"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	store      *repository.Store
	orderSvc   *services.OrderService
	paymentSvc *services.PaymentService
)

// InitServices wires the service layer onto the shared database. Must
// run after config.InitDB.
func InitServices() {
	store = repository.New(config.DB)
	orderSvc = services.NewOrderService(store, store)
	paymentSvc = services.NewPaymentService(store)
}

// RegisterValidators installs custom binding validators on gin's engine.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
			return models.PaymentMethod(fl.Field().String()).Valid()
		})
	}
}

// respondServiceError maps service-layer errors onto HTTP responses.
func respondServiceError(c *gin.Context, err error) {
	var selErr *services.InvalidSelectionError
	var amtErr *services.AmountMismatchError
	var valErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &selErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": selErr.Error(), "menu_item_id": selErr.MenuItemID})
	case errors.As(err, &amtErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    amtErr.Error(),
			"expected": amtErr.Expected,
			"got":      amtErr.Got,
		})
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

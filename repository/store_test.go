package repository_test

import (
	"errors"
	"testing"

	"food-ordering-api/models"
	"food-ordering-api/repository"
	"food-ordering-api/services"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newStore(t *testing.T) (*gorm.DB, *repository.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Notification{},
	))
	return db, repository.New(db)
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestGetRestaurantHidesSoftDeleted(t *testing.T) {
	db, store := newStore(t)
	restaurant := &models.Restaurant{OwnerID: 1, Name: "Spice Villa"}
	require.NoError(t, db.Create(restaurant).Error)

	got, err := store.GetRestaurant(restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spice Villa", got.Name)

	require.NoError(t, db.Model(restaurant).Update("is_deleted", true).Error)

	_, err = store.GetRestaurant(restaurant.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetMenuItemNotFound(t *testing.T) {
	_, store := newStore(t)
	_, err := store.GetMenuItem(404)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	db, store := newStore(t)

	sentinel := errors.New("boom")
	err := store.WithinTx(func(tx services.Store) error {
		order := &models.Order{UserID: 1, DeliveryAddress: "addr", TotalAmount: decimal.Zero}
		if err := tx.CreateOrder(order); err != nil {
			return err
		}
		if err := tx.CreateOrderItem(&models.OrderItem{OrderID: order.ID, MenuItemID: 1, Quantity: 1, Price: price("5.00")}); err != nil {
			return err
		}
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	var orders, items int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.OrderItem{}).Count(&items)
	assert.EqualValues(t, 0, orders)
	assert.EqualValues(t, 0, items)
}

func TestWithinTxCommits(t *testing.T) {
	db, store := newStore(t)

	err := store.WithinTx(func(tx services.Store) error {
		order := &models.Order{UserID: 1, DeliveryAddress: "addr", TotalAmount: decimal.Zero}
		if err := tx.CreateOrder(order); err != nil {
			return err
		}
		return tx.UpdateOrderTotal(order.ID, price("7.25"))
	})
	require.NoError(t, err)

	var order models.Order
	require.NoError(t, db.First(&order).Error)
	assert.True(t, order.TotalAmount.Equal(price("7.25")))
}

func TestDeleteOrderCascades(t *testing.T) {
	db, store := newStore(t)

	order := &models.Order{UserID: 1, DeliveryAddress: "addr", TotalAmount: price("15.00")}
	require.NoError(t, db.Create(order).Error)
	require.NoError(t, db.Create(&models.OrderItem{OrderID: order.ID, MenuItemID: 1, Quantity: 1, Price: price("10.00")}).Error)
	require.NoError(t, db.Create(&models.OrderItem{OrderID: order.ID, MenuItemID: 2, Quantity: 1, Price: price("5.00")}).Error)
	require.NoError(t, db.Create(&models.Payment{OrderID: order.ID, Method: models.MethodUPI, Amount: price("15.00"), Status: models.PaymentStatusPending}).Error)

	// An unrelated order must survive the cascade
	other := &models.Order{UserID: 2, DeliveryAddress: "elsewhere", TotalAmount: price("3.00")}
	require.NoError(t, db.Create(other).Error)
	require.NoError(t, db.Create(&models.OrderItem{OrderID: other.ID, MenuItemID: 3, Quantity: 1, Price: price("3.00")}).Error)

	require.NoError(t, store.DeleteOrder(order.ID))

	var orders, items, payments int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.OrderItem{}).Count(&items)
	db.Model(&models.Payment{}).Count(&payments)
	assert.EqualValues(t, 1, orders)
	assert.EqualValues(t, 1, items)
	assert.EqualValues(t, 0, payments)
}

func TestDeleteOrderNotFound(t *testing.T) {
	_, store := newStore(t)
	err := store.DeleteOrder(999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetOrderPreloadsAggregate(t *testing.T) {
	db, store := newStore(t)

	order := &models.Order{UserID: 1, DeliveryAddress: "addr", TotalAmount: price("10.00")}
	require.NoError(t, db.Create(order).Error)
	require.NoError(t, db.Create(&models.OrderItem{OrderID: order.ID, MenuItemID: 1, Quantity: 1, Price: price("10.00")}).Error)
	require.NoError(t, db.Create(&models.Payment{OrderID: order.ID, Method: models.MethodCashOnDelivery, Amount: price("10.00"), Status: models.PaymentStatusPending}).Error)

	got, err := store.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
	assert.Len(t, got.Payments, 1)
	assert.Equal(t, models.MethodCashOnDelivery, got.Payments[0].Method)
}

func TestListOrdersForRestaurant(t *testing.T) {
	db, store := newStore(t)

	mine := &models.Restaurant{OwnerID: 1, Name: "Mine"}
	other := &models.Restaurant{OwnerID: 2, Name: "Other"}
	require.NoError(t, db.Create(mine).Error)
	require.NoError(t, db.Create(other).Error)

	myItem := &models.MenuItem{RestaurantID: mine.ID, Name: "Biryani", Price: price("10.00"), Availability: true}
	otherItem := &models.MenuItem{RestaurantID: other.ID, Name: "Sushi", Price: price("20.00"), Availability: true}
	require.NoError(t, db.Create(myItem).Error)
	require.NoError(t, db.Create(otherItem).Error)

	myOrder := &models.Order{UserID: 5, DeliveryAddress: "a", TotalAmount: price("10.00")}
	otherOrder := &models.Order{UserID: 5, DeliveryAddress: "b", TotalAmount: price("20.00")}
	require.NoError(t, db.Create(myOrder).Error)
	require.NoError(t, db.Create(otherOrder).Error)
	require.NoError(t, db.Create(&models.OrderItem{OrderID: myOrder.ID, MenuItemID: myItem.ID, Quantity: 1, Price: price("10.00")}).Error)
	require.NoError(t, db.Create(&models.OrderItem{OrderID: otherOrder.ID, MenuItemID: otherItem.ID, Quantity: 1, Price: price("20.00")}).Error)

	orders, err := store.ListOrdersForRestaurant(mine.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, myOrder.ID, orders[0].ID)
}

func TestListOrdersByStatus(t *testing.T) {
	db, store := newStore(t)

	pending := &models.Order{UserID: 1, DeliveryAddress: "a", TotalAmount: price("1.00"), Status: models.StatusPending}
	preparing := &models.Order{UserID: 1, DeliveryAddress: "b", TotalAmount: price("2.00"), Status: models.StatusPreparing}
	require.NoError(t, db.Create(pending).Error)
	require.NoError(t, db.Create(preparing).Error)

	orders, err := store.ListOrdersByStatus(models.StatusPreparing)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, preparing.ID, orders[0].ID)
}

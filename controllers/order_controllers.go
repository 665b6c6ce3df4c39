package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bellavista/ordering/kds"
	"github.com/bellavista/ordering/models"
	"github.com/bellavista/ordering/utils"
)

type OrderController struct {
	DB  *gorm.DB
	Hub *kds.Hub
}

func NewOrderController(db *gorm.DB, hub *kds.Hub) *OrderController {
	return &OrderController{DB: db, Hub: hub}
}

type orderItemReq struct {
	MenuItemID uint   `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	Notes      string `json:"notes"`
}

type createOrderReq struct {
	CustomerName  string         `json:"customer_name" binding:"required"`
	CustomerEmail string         `json:"customer_email" binding:"required,email"`
	CustomerPhone string         `json:"customer_phone" binding:"required,min=7"`
	Items         []orderItemReq `json:"items" binding:"required,min=1,dive"`
}

// CreateOrder -> place an order with status 'pending'. The total is computed
// server-side from the catalog price at the time of the request; client-sent
// amounts are never trusted. The whole order is rejected if any line
// references an unknown menu item.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body createOrderReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order := models.Order{
		CustomerName:  body.CustomerName,
		CustomerEmail: body.CustomerEmail,
		CustomerPhone: body.CustomerPhone,
		Status:        models.StatusPending,
		TotalAmount:   models.NewMoney(decimal.Zero),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		total := models.NewMoney(decimal.Zero)
		items := make([]models.OrderItem, 0, len(body.Items))

		for _, line := range body.Items {
			var menuItem models.MenuItem
			if err := tx.First(&menuItem, line.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &fieldError{
						code:  http.StatusBadRequest,
						field: "items",
						err:   fmt.Errorf("menu item %d not found", line.MenuItemID),
					}
				}
				return err
			}

			total = total.AddMoney(menuItem.Price.MulInt(line.Quantity))
			items = append(items, models.OrderItem{
				MenuItemID:  menuItem.ID,
				Quantity:    line.Quantity,
				PriceAtTime: menuItem.Price,
				Notes:       line.Notes,
				CreatedAt:   time.Now(),
			})
		}

		order.TotalAmount = total
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		var fe *fieldError
		if errors.As(err, &fe) {
			utils.RespondFieldError(c, fe.code, fe.err, fe.field)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)

	oc.Hub.BroadcastKitchenOrders()
}

// GetKitchenOrders -> full order list with items, oldest first, for the
// kitchen display.
func (oc *OrderController) GetKitchenOrders(c *gin.Context) {
	orders, err := kds.KitchenOrders(oc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Kitchen orders", orders)
}

type customerLookupReq struct {
	Email string `form:"email" binding:"omitempty,email"`
	Phone string `form:"phone" binding:"omitempty,min=7"`
}

// GetCustomerOrders -> order tracking lookup by email and/or phone, exact
// match on whichever fields are supplied. At least one is required.
func (oc *OrderController) GetCustomerOrders(c *gin.Context) {
	var query customerLookupReq
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if query.Email == "" && query.Phone == "" {
		utils.RespondFieldError(c, http.StatusBadRequest,
			errors.New("email or phone is required"), "email")
		return
	}

	q := oc.DB.Preload("OrderItems").Preload("OrderItems.MenuItem")
	if query.Email != "" {
		q = q.Where("customer_email = ?", query.Email)
	}
	if query.Phone != "" {
		q = q.Where("customer_phone = ?", query.Phone)
	}

	var orders []models.Order
	if err := q.Order("created_at desc").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer orders", orders)
}

// UpdateOrderStatus -> move an order forward along the fulfillment flow.
// Backward and no-op transitions are rejected.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	next, err := models.ParseOrderStatus(body.Status)
	if err != nil {
		utils.RespondFieldError(c, http.StatusBadRequest, err, "status")
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if !order.Status.CanAdvanceTo(next) {
		utils.RespondFieldError(c, http.StatusBadRequest,
			fmt.Errorf("cannot move order from %q to %q", order.Status, next), "status")
		return
	}

	order.Status = next
	order.UpdatedAt = time.Now()
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)

	oc.Hub.BroadcastKitchenOrders()
}

// DeleteOrder -> remove an order, allowed only once it is delivered.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if order.Status != models.StatusDelivered {
		utils.RespondFieldError(c, http.StatusBadRequest,
			errors.New("only delivered orders can be deleted"), "status")
		return
	}

	err = oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)

	oc.Hub.BroadcastKitchenOrders()
}

// GetAllOrders -> back-office order list with items.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Preload("OrderItems").Order("created_at desc").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// fieldError carries a validation failure out of a transaction closure.
type fieldError struct {
	code  int
	field string
	err   error
}

func (e *fieldError) Error() string { return e.err.Error() }

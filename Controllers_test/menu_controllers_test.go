package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bellavista/ordering/controllers"
	"github.com/bellavista/ordering/models"
)

func setupTestDBForMenu(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(memoryDSN(t)), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&models.MenuCategory{}, &models.MenuItem{},
		&models.Order{}, &models.OrderItem{})
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupMenuRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	menuCtrl := controllers.NewMenuController(db)
	r.GET("/api/menu", menuCtrl.GetMenu)
	r.POST("/api/admin/categories", menuCtrl.CreateCategory)
	r.DELETE("/api/admin/categories/:cat_id", menuCtrl.DeleteCategory)
	r.POST("/api/admin/menu-items", menuCtrl.CreateMenuItem)
	r.PATCH("/api/admin/menu-items/:item_id", menuCtrl.UpdateMenuItem)
	r.DELETE("/api/admin/menu-items/:item_id", menuCtrl.DeleteMenuItem)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMenuListsCategoriesInSortOrder(t *testing.T) {
	db := setupTestDBForMenu(t)
	r := setupMenuRouter(db)

	price, _ := models.MoneyFromString("15.00")
	drinks := models.MenuCategory{Name: "Drinks", Slug: "drinks", SortOrder: 2}
	pizza := models.MenuCategory{Name: "Pizza", Slug: "pizza", SortOrder: 1}
	db.Create(&drinks)
	db.Create(&pizza)
	db.Create(&models.MenuItem{CategoryID: pizza.ID, Name: "Margherita", Price: price, IsPopular: true})

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var categories []models.MenuCategory
	assert.NoError(t, json.Unmarshal(resp.Data, &categories))
	assert.Len(t, categories, 2)
	assert.Equal(t, "pizza", categories[0].Slug)
	assert.Len(t, categories[0].MenuItems, 1)
	assert.Equal(t, "15.00", categories[0].MenuItems[0].Price.StringFixed(2))
}

func TestCreateAndUpdateMenuItem(t *testing.T) {
	db := setupTestDBForMenu(t)
	r := setupMenuRouter(db)

	w := postJSON(t, r, "/api/admin/categories", map[string]interface{}{
		"name": "Pasta", "slug": "pasta", "sort_order": 1,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/admin/menu-items", map[string]interface{}{
		"category_id": 1,
		"name":        "Carbonara",
		"price":       "17.50",
		"is_popular":  true,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var item models.MenuItem
	assert.NoError(t, json.Unmarshal(resp.Data, &item))
	assert.Equal(t, "17.50", item.Price.StringFixed(2))

	// Bad price string is rejected.
	w = postJSON(t, r, "/api/admin/menu-items", map[string]interface{}{
		"category_id": 1, "name": "Bad", "price": "seventeen",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Partial update changes only the given fields.
	body, _ := json.Marshal(map[string]interface{}{"price": "19.00"})
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/menu-items/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	wu := httptest.NewRecorder()
	r.ServeHTTP(wu, req)
	assert.Equal(t, http.StatusOK, wu.Code)

	var updated models.MenuItem
	assert.NoError(t, db.First(&updated, item.ID).Error)
	assert.Equal(t, "19.00", updated.Price.StringFixed(2))
	assert.Equal(t, "Carbonara", updated.Name)
}

func TestDeleteMenuItemRefusedWhileReferenced(t *testing.T) {
	db := setupTestDBForMenu(t)
	r := setupMenuRouter(db)

	price, _ := models.MoneyFromString("18.00")
	category := models.MenuCategory{Name: "Pizza", Slug: "pizza"}
	db.Create(&category)
	item := models.MenuItem{CategoryID: category.ID, Name: "Diavola", Price: price}
	db.Create(&item)

	order := models.Order{
		CustomerName:  "Mario",
		CustomerEmail: "mario@example.com",
		CustomerPhone: "5551234567",
		Status:        models.StatusPending,
		TotalAmount:   price,
	}
	db.Create(&order)
	db.Create(&models.OrderItem{OrderID: order.ID, MenuItemID: item.ID, Quantity: 1, PriceAtTime: price})

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/menu-items/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Category with items cannot be removed either.
	req = httptest.NewRequest(http.MethodDelete, "/api/admin/categories/1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

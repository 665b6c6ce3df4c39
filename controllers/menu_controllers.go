package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellavista/ordering/models"
	"github.com/bellavista/ordering/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetMenu -> full public menu: categories in sort order, each with its items.
func (mc *MenuController) GetMenu(c *gin.Context) {
	var categories []models.MenuCategory
	if err := mc.DB.Preload("MenuItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("menu_items.id asc")
	}).Order("sort_order asc").Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu", categories)
}

// CreateCategory (admin)
func (mc *MenuController) CreateCategory(c *gin.Context) {
	var body struct {
		Name      string `json:"name" binding:"required"`
		Slug      string `json:"slug" binding:"required"`
		SortOrder int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category := models.MenuCategory{
		Name:      body.Name,
		Slug:      body.Slug,
		SortOrder: body.SortOrder,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := mc.DB.Create(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Category created", category)
}

// UpdateCategory (admin)
func (mc *MenuController) UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	var category models.MenuCategory
	if err := mc.DB.First(&category, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	var body struct {
		Name      *string `json:"name"`
		Slug      *string `json:"slug"`
		SortOrder *int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Name != nil {
		category.Name = *body.Name
	}
	if body.Slug != nil {
		category.Slug = *body.Slug
	}
	if body.SortOrder != nil {
		category.SortOrder = *body.SortOrder
	}
	category.UpdatedAt = time.Now()

	if err := mc.DB.Save(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Category updated", category)
}

// DeleteCategory (admin) -> only when it has no items left.
func (mc *MenuController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	var category models.MenuCategory
	if err := mc.DB.First(&category, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	var itemCount int64
	mc.DB.Model(&models.MenuItem{}).Where("category_id = ?", category.ID).Count(&itemCount)
	if itemCount > 0 {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("category still has menu items"))
		return
	}

	if err := mc.DB.Delete(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"category_id": category.ID})
}

type menuItemReq struct {
	CategoryID   uint   `json:"category_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Price        string `json:"price" binding:"required"`
	ImageURL     string `json:"image_url"`
	IsPopular    bool   `json:"is_popular"`
	IsVegetarian bool   `json:"is_vegetarian"`
	IsSpicy      bool   `json:"is_spicy"`
}

// CreateMenuItem (admin)
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var body menuItemReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	price, err := models.MoneyFromString(body.Price)
	if err != nil {
		utils.RespondFieldError(c, http.StatusBadRequest,
			errors.New("invalid price"), "price")
		return
	}

	var category models.MenuCategory
	if err := mc.DB.First(&category, body.CategoryID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	item := models.MenuItem{
		CategoryID:   category.ID,
		Name:         body.Name,
		Description:  body.Description,
		Price:        price,
		ImageURL:     body.ImageURL,
		IsPopular:    body.IsPopular,
		IsVegetarian: body.IsVegetarian,
		IsSpicy:      body.IsSpicy,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem (admin). Past orders keep their price snapshots, so price
// edits here never touch order history.
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	var body struct {
		CategoryID   *uint   `json:"category_id"`
		Name         *string `json:"name"`
		Description  *string `json:"description"`
		Price        *string `json:"price"`
		ImageURL     *string `json:"image_url"`
		IsPopular    *bool   `json:"is_popular"`
		IsVegetarian *bool   `json:"is_vegetarian"`
		IsSpicy      *bool   `json:"is_spicy"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.CategoryID != nil {
		item.CategoryID = *body.CategoryID
	}
	if body.Name != nil {
		item.Name = *body.Name
	}
	if body.Description != nil {
		item.Description = *body.Description
	}
	if body.Price != nil {
		price, err := models.MoneyFromString(*body.Price)
		if err != nil {
			utils.RespondFieldError(c, http.StatusBadRequest,
				errors.New("invalid price"), "price")
			return
		}
		item.Price = price
	}
	if body.ImageURL != nil {
		item.ImageURL = *body.ImageURL
	}
	if body.IsPopular != nil {
		item.IsPopular = *body.IsPopular
	}
	if body.IsVegetarian != nil {
		item.IsVegetarian = *body.IsVegetarian
	}
	if body.IsSpicy != nil {
		item.IsSpicy = *body.IsSpicy
	}
	item.UpdatedAt = time.Now()

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem (admin) -> refused while any order line still references it.
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	var refCount int64
	mc.DB.Model(&models.OrderItem{}).Where("menu_item_id = ?", item.ID).Count(&refCount)
	if refCount > 0 {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("menu item is referenced by existing orders"))
		return
	}

	if err := mc.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"item_id": item.ID})
}

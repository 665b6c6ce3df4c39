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

type CateringController struct {
	DB *gorm.DB
}

func NewCateringController(db *gorm.DB) *CateringController {
	return &CateringController{DB: db}
}

// CreateInquiry -> public catering inquiry form submission.
func (cc *CateringController) CreateInquiry(c *gin.Context) {
	var body struct {
		Name       string `json:"name" binding:"required"`
		Email      string `json:"email" binding:"required,email"`
		Phone      string `json:"phone" binding:"required,min=7"`
		EventDate  string `json:"event_date" binding:"required"`
		GuestCount int    `json:"guest_count" binding:"required,min=1"`
		Message    string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	eventDate, err := time.Parse("2006-01-02", body.EventDate)
	if err != nil {
		utils.RespondFieldError(c, http.StatusBadRequest,
			errors.New("event_date must be YYYY-MM-DD"), "event_date")
		return
	}

	inquiry := models.CateringInquiry{
		Name:       body.Name,
		Email:      body.Email,
		Phone:      body.Phone,
		EventDate:  eventDate,
		GuestCount: body.GuestCount,
		Message:    body.Message,
		CreatedAt:  time.Now(),
	}
	if err := cc.DB.Create(&inquiry).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Inquiry submitted", inquiry)
}

// GetAllInquiries (admin)
func (cc *CateringController) GetAllInquiries(c *gin.Context) {
	var inquiries []models.CateringInquiry
	if err := cc.DB.Order("created_at desc").Find(&inquiries).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Catering inquiries", inquiries)
}

// DeleteInquiry (admin)
func (cc *CateringController) DeleteInquiry(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("inquiry_id"))

	var inquiry models.CateringInquiry
	if err := cc.DB.First(&inquiry, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("inquiry not found"))
		return
	}

	if err := cc.DB.Delete(&inquiry).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Inquiry deleted", gin.H{"inquiry_id": inquiry.ID})
}

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

type NoticeController struct {
	DB *gorm.DB
}

func NewNoticeController(db *gorm.DB) *NoticeController {
	return &NoticeController{DB: db}
}

// GetActiveNotices -> public announcements, newest first.
func (nc *NoticeController) GetActiveNotices(c *gin.Context) {
	var notices []models.Notice
	if err := nc.DB.Where("active = ?", true).
		Order("published_at desc").
		Find(&notices).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notices", notices)
}

// GetAllNotices (admin)
func (nc *NoticeController) GetAllNotices(c *gin.Context) {
	var notices []models.Notice
	if err := nc.DB.Order("published_at desc").Find(&notices).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All notices", notices)
}

// CreateNotice (admin)
func (nc *NoticeController) CreateNotice(c *gin.Context) {
	var body struct {
		Title  string `json:"title" binding:"required"`
		Body   string `json:"body" binding:"required"`
		Active *bool  `json:"active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	notice := models.Notice{
		Title:       body.Title,
		Body:        body.Body,
		Active:      true,
		PublishedAt: time.Now(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if body.Active != nil {
		notice.Active = *body.Active
	}
	if err := nc.DB.Create(&notice).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Notice created", notice)
}

// UpdateNotice (admin)
func (nc *NoticeController) UpdateNotice(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("notice_id"))

	var notice models.Notice
	if err := nc.DB.First(&notice, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("notice not found"))
		return
	}

	var body struct {
		Title  *string `json:"title"`
		Body   *string `json:"body"`
		Active *bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Title != nil {
		notice.Title = *body.Title
	}
	if body.Body != nil {
		notice.Body = *body.Body
	}
	if body.Active != nil {
		notice.Active = *body.Active
	}
	notice.UpdatedAt = time.Now()

	if err := nc.DB.Save(&notice).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notice updated", notice)
}

// DeleteNotice (admin)
func (nc *NoticeController) DeleteNotice(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("notice_id"))

	var notice models.Notice
	if err := nc.DB.First(&notice, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("notice not found"))
		return
	}

	if err := nc.DB.Delete(&notice).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notice deleted", gin.H{"notice_id": notice.ID})
}

package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bellavista/ordering/controllers"
	"github.com/bellavista/ordering/middlewares"
	"github.com/bellavista/ordering/models"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	db, err := gorm.Open(sqlite.Open(memoryDSN(t)), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	db.Create(&models.User{
		Name:     "Test Admin",
		Email:    "admin@example.com",
		Password: string(hashed),
		Role:     "admin",
	})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	userCtrl := controllers.NewUserController(db)
	r.POST("/api/admin/login", userCtrl.Login)

	admin := r.Group("/api/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRole("admin"))
	admin.GET("/profile", userCtrl.GetProfile)
	return r
}

func TestLoginAndProfile(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, "/api/admin/login", map[string]string{
		"email":    "admin@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var data struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.NotEmpty(t, data.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/profile", nil)
	req.Header.Set("Authorization", "Bearer "+data.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, "/api/admin/login", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(t, r, "/api/admin/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	r := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellavista/ordering/controllers"
	"github.com/bellavista/ordering/kds"
	"github.com/bellavista/ordering/middlewares"
)

func SetupRouter(db *gorm.DB, hub *kds.Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db, hub)
	cateringCtrl := controllers.NewCateringController(db)
	noticeCtrl := controllers.NewNoticeController(db)
	userCtrl := controllers.NewUserController(db)
	kdsCtrl := controllers.NewKDSController(hub)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Kitchen display WebSocket
	r.GET("/ws/kitchen", kdsCtrl.KitchenSocket)

	// Public API
	register(r.Group("/api"), []Route{
		{http.MethodGet, "/menu", menuCtrl.GetMenu},
		{http.MethodGet, "/notices", noticeCtrl.GetActiveNotices},
		{http.MethodPost, "/orders", orderCtrl.CreateOrder},
		{http.MethodGet, "/orders", orderCtrl.GetCustomerOrders},
		{http.MethodGet, "/orders/kitchen", orderCtrl.GetKitchenOrders},
		{http.MethodPatch, "/orders/:order_id/status", orderCtrl.UpdateOrderStatus},
		{http.MethodDelete, "/orders/:order_id", orderCtrl.DeleteOrder},
		{http.MethodPost, "/catering", cateringCtrl.CreateInquiry},
	})

	// Back-office login, throttled
	login := r.Group("/api/admin")
	login.Use(middlewares.NewStrictRateLimiter())
	register(login, []Route{
		{http.MethodPost, "/login", userCtrl.Login},
	})

	// Back-office CRUD
	admin := r.Group("/api/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRole("admin"))
	register(admin, []Route{
		{http.MethodGet, "/profile", userCtrl.GetProfile},
		{http.MethodGet, "/orders", orderCtrl.GetAllOrders},

		{http.MethodPost, "/categories", menuCtrl.CreateCategory},
		{http.MethodPatch, "/categories/:cat_id", menuCtrl.UpdateCategory},
		{http.MethodDelete, "/categories/:cat_id", menuCtrl.DeleteCategory},

		{http.MethodPost, "/menu-items", menuCtrl.CreateMenuItem},
		{http.MethodPatch, "/menu-items/:item_id", menuCtrl.UpdateMenuItem},
		{http.MethodDelete, "/menu-items/:item_id", menuCtrl.DeleteMenuItem},

		{http.MethodGet, "/notices", noticeCtrl.GetAllNotices},
		{http.MethodPost, "/notices", noticeCtrl.CreateNotice},
		{http.MethodPatch, "/notices/:notice_id", noticeCtrl.UpdateNotice},
		{http.MethodDelete, "/notices/:notice_id", noticeCtrl.DeleteNotice},

		{http.MethodGet, "/catering", cateringCtrl.GetAllInquiries},
		{http.MethodDelete, "/catering/:inquiry_id", cateringCtrl.DeleteInquiry},
	})

	return r
}

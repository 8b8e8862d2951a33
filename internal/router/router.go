package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ikkim/baedal-backend/config"
	"github.com/ikkim/baedal-backend/internal/app/controller"
	"github.com/ikkim/baedal-backend/internal/middleware"
)

type Router struct {
	userController     *controller.UserController
	ownerController    *controller.OwnerController
	riderController    *controller.RiderController
	storeController    *controller.StoreController
	customerController *controller.CustomerController
	orderController    *controller.OrderController
	favoriteController *controller.FavoriteController
	reviewController   *controller.ReviewController
	paymentController  *controller.PaymentController
	couponController   *controller.CouponController
	adminController    *controller.AdminController
	sessionMiddleware  *middleware.SessionMiddleware
	config             *config.Config
}

func NewRouter(
	userController *controller.UserController,
	ownerController *controller.OwnerController,
	riderController *controller.RiderController,
	storeController *controller.StoreController,
	customerController *controller.CustomerController,
	orderController *controller.OrderController,
	favoriteController *controller.FavoriteController,
	reviewController *controller.ReviewController,
	paymentController *controller.PaymentController,
	couponController *controller.CouponController,
	adminController *controller.AdminController,
	sessionMiddleware *middleware.SessionMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		userController:     userController,
		ownerController:    ownerController,
		riderController:    riderController,
		storeController:    storeController,
		customerController: customerController,
		orderController:    orderController,
		favoriteController: favoriteController,
		reviewController:   reviewController,
		paymentController:  paymentController,
		couponController:   couponController,
		adminController:    adminController,
		sessionMiddleware:  sessionMiddleware,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))
	router.Use(r.sessionMiddleware.Resolve())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "BAEDAL API is running",
		})
	})

	requireUser := r.sessionMiddleware.RequireUser()
	requireOwner := r.sessionMiddleware.RequireOwner()

	users := router.Group("/users")
	{
		users.POST("/check-id", r.userController.CheckID)
		users.POST("/register", r.userController.Register)
		users.POST("/login", r.userController.Login)
		users.POST("/logout", r.userController.Logout)
		users.GET("/me", requireUser, r.userController.Me)
		users.GET("/:id", r.userController.GetByID)
		users.POST("/modify/address", requireUser, r.userController.ModifyAddress)
	}

	owners := router.Group("/owners")
	{
		owners.POST("/register", r.ownerController.Register)
		owners.POST("/login", r.ownerController.Login)
		owners.POST("/logout", r.ownerController.Logout)
		owners.GET("/me", requireOwner, r.ownerController.Me)
		owners.GET("/:id", r.ownerController.GetByID)
	}

	riders := router.Group("/riders")
	{
		riders.POST("/register", r.riderController.Register)
		riders.GET("/:id", r.riderController.GetByID)
		riders.GET("/by-user-id/:login_id", r.riderController.GetByLoginID)
	}

	stores := router.Group("/stores")
	{
		stores.POST("/register", requireUser, r.storeController.Register)
		stores.GET("/:id", r.storeController.Detail)
		stores.PUT("/:id", requireUser, r.storeController.Update)
		stores.GET("/category/:id", r.storeController.ByCategory)
		stores.GET("/owner/:user_id", r.storeController.ByOwner)
	}

	customer := router.Group("/customer")
	{
		customer.GET("/categories", r.customerController.Categories)
		customer.GET("/payment-methods", r.customerController.PaymentMethods)
		customer.GET("/categories/:id/stores", r.customerController.StoresByCategory)
		customer.GET("/stores/:id/menus", r.customerController.StoreMenus)
		customer.POST("/stores/:id/menus", requireUser, r.customerController.CreateMenu)
		customer.DELETE("/stores/:id/menus/:menu_id", requireUser, r.customerController.DeleteMenu)
		customer.GET("/stores/:id/payments", r.customerController.StorePayments)
		customer.GET("/stores/:id/coupons", r.customerController.StoreCoupons)

		customer.GET("/orders", requireUser, r.orderController.List)
		customer.GET("/orders/waiting", r.orderController.Waiting)
		customer.POST("/orders", requireUser, r.orderController.Create)
		customer.POST("/orders/:id/accept", requireUser, r.orderController.Accept)
	}

	favorites := router.Group("/favorites")
	favorites.Use(requireUser)
	{
		favorites.POST("", r.favoriteController.Add)
		favorites.DELETE("/:store_id", r.favoriteController.Remove)
		favorites.GET("", r.favoriteController.List)
	}

	reviews := router.Group("/reviews")
	{
		reviews.POST("", requireUser, r.reviewController.Create)
		reviews.GET("/store/:store_id", r.reviewController.ListByStore)
		reviews.DELETE("/:review_id", requireUser, r.reviewController.Delete)
	}

	payments := router.Group("/payments")
	{
		payments.POST("/store/:store_id", requireOwner, r.paymentController.Attach)
		payments.DELETE("/store/:store_id/:payment_id", requireOwner, r.paymentController.Detach)
		payments.GET("/store/:store_id", r.paymentController.ListForStore)
	}

	coupons := router.Group("/coupons")
	{
		coupons.POST("/store/:store_id", requireUser, r.couponController.Create)
		coupons.GET("/store/:store_id", r.couponController.ListActive)
		coupons.DELETE("/store/:store_id/:coupon_id", requireUser, r.couponController.Delete)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/categories/seed", r.adminController.SeedCategories)
		admin.POST("/users/seed", r.adminController.SeedUsers)
		admin.POST("/stores/seed", r.adminController.SeedStores)
		admin.POST("/menus/seed", r.adminController.SeedMenus)
		admin.POST("/coupons/seed", r.adminController.SeedCoupons)

		admin.POST("/categories/create", r.adminController.CreateCategories)
		admin.POST("/users/create", r.adminController.CreateUsers)
		admin.POST("/stores/create", r.adminController.CreateStores)
		admin.POST("/menus/create", r.adminController.CreateMenus)
		admin.POST("/coupons/create", r.adminController.CreateCoupons)

		admin.DELETE("/categories/clear", r.adminController.ClearCategories)
		admin.DELETE("/users/clear", r.adminController.ClearUsers)
		admin.DELETE("/stores/clear", r.adminController.ClearStores)
		admin.DELETE("/menus/clear", r.adminController.ClearMenus)
		admin.DELETE("/coupons/clear", r.adminController.ClearCoupons)

		admin.POST("/reset", r.adminController.Reset)

		admin.GET("/categories", r.adminController.ListCategories)
		admin.GET("/stores/list", r.adminController.ListStores)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

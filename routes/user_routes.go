package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/controllers"
	"github.com/haddadin-dev/MazajMart/middleware"
)

// initUserRoutes initializes all storefront routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public routes (no authentication required)
	router.POST("/register", controllers.RegisterUser)
	router.POST("/verify-otp", controllers.VerifyOTP)
	router.POST("/resend-otp", controllers.ResendOTP)
	router.POST("/login", controllers.LoginUser)

	// Catalog
	router.GET("/products", controllers.GetProducts)
	router.GET("/products/:id", controllers.GetProductDetails)
	router.GET("/categories", controllers.ListCategories)
	router.GET("/categories/:id/products", controllers.ListProductsByCategory)
	router.GET("/addons", controllers.ListAddOns)
	router.GET("/news", controllers.ListNews)

	// Contact / careers messages
	router.POST("/contact", controllers.SubmitContactMessage)

	// Session cart, available to guests and signed-in users alike
	cart := router.Group("")
	cart.Use(middleware.OptionalAuthMiddleware())
	{
		cart.POST("/cart/items", controllers.AddCartItem)
		cart.GET("/cart", controllers.GetCart)
		cart.PUT("/cart/items/:id", controllers.UpdateCartItem)
		cart.DELETE("/cart/items/:id", controllers.RemoveCartItem)
		cart.DELETE("/cart", controllers.ClearCart)

		cart.POST("/cart/coupon", controllers.ApplyCartCoupon)
		cart.DELETE("/cart/coupon", controllers.RemoveCartCoupon)

		cart.GET("/checkout", controllers.GetCheckoutSummary)
		cart.POST("/checkout", controllers.PlaceOrder)
	}

	// Protected routes (require authentication)
	protected := router.Group("/user")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/orders", controllers.ListOrders)
		protected.GET("/orders/:id", controllers.GetOrderDetails)
		protected.GET("/orders/:id/invoice", controllers.DownloadInvoice)
	}
}

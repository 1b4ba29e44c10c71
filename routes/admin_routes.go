package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/haddadin-dev/MazajMart/controllers"
	"github.com/haddadin-dev/MazajMart/middleware"
)

// initAdminRoutes initializes all admin back-office routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")

	// Public admin routes
	admin.POST("/login", controllers.AdminLogin)

	// Protected admin routes
	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.POST("/logout", controllers.AdminLogout)

		// User management
		protected.GET("/users", controllers.GetUsers)
		protected.PUT("/users/:id/block", controllers.BlockUser)
		protected.PUT("/users/:id/unblock", controllers.UnblockUser)

		// Category management
		protected.GET("/categories", controllers.ListCategoriesAdmin)
		protected.POST("/categories", controllers.CreateCategory)
		protected.PUT("/categories/:id", controllers.UpdateCategory)
		protected.DELETE("/categories/:id", controllers.DeleteCategory)

		// Add-on management
		protected.GET("/addons", controllers.ListAddOnsAdmin)
		protected.POST("/addons", controllers.CreateAddOn)
		protected.PUT("/addons/:id", controllers.UpdateAddOn)
		protected.DELETE("/addons/:id", controllers.DeleteAddOn)

		// News management
		protected.GET("/news", controllers.ListNewsAdmin)
		protected.POST("/news", controllers.CreateNews)
		protected.PUT("/news/:id", controllers.UpdateNews)
		protected.DELETE("/news/:id", controllers.DeleteNews)

		// Product management
		protected.GET("/products", controllers.ListProductsAdmin)
		protected.POST("/products", controllers.CreateProduct)
		protected.PUT("/products/:id", controllers.UpdateProduct)
		protected.DELETE("/products/:id", controllers.DeleteProduct)

		// Per-option offer editing and bulk apply
		protected.PUT("/products/:id/options/:option_id/offer", controllers.SaveOptionOffer)
		protected.POST("/products/:id/offers/apply", controllers.ApplyProductOffer)
		protected.DELETE("/products/:id/offers", controllers.ClearProductOffer)

		// Catalog export/import
		protected.GET("/catalog/export", controllers.ExportProducts)
		protected.POST("/catalog/import", controllers.ImportProducts)

		// Standalone offers
		protected.GET("/offers", controllers.ListOffers)
		protected.POST("/offers", controllers.CreateOffer)
		protected.PUT("/offers/:id", controllers.UpdateOffer)
		protected.DELETE("/offers/:id", controllers.DeleteOffer)
		protected.PUT("/offers/:id/toggle", controllers.ToggleOffer)

		// Coupons
		protected.GET("/coupons", controllers.ListCoupons)
		protected.POST("/coupons", controllers.CreateCoupon)
		protected.PUT("/coupons/:id", controllers.UpdateCoupon)
		protected.DELETE("/coupons/:id", controllers.DeleteCoupon)
		protected.PUT("/coupons/:id/toggle", controllers.ToggleCoupon)

		// Orders
		protected.GET("/orders", controllers.ListOrdersAdmin)
		protected.GET("/orders/:id", controllers.GetOrderDetailsAdmin)
		protected.PUT("/orders/:id/status", controllers.UpdateOrderStatus)
	}
}

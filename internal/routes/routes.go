package routes

import (
	"campuseats_back_end/internal/handlers/admin"
	"campuseats_back_end/internal/handlers/product"
	"campuseats_back_end/internal/handlers/user"
	"campuseats_back_end/internal/handlers/vendor"
	"campuseats_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint. The cart and checkout handlers are
// injected so the cart store has a single owner.
func RegisterRoutes(r *gin.Engine, carts *user.CartHandler, checkouts *user.CheckoutHandler) {
	api := r.Group("/api")

	// Auth
	api.POST("/auth/register", user.Register)
	api.POST("/auth/login", middleware.LoginRateLimit(), user.Login)

	// Public catalog
	api.GET("/products", product.GetAllProducts)
	api.GET("/products/search", product.SearchProducts)
	api.GET("/products/:id", product.GetProduct)
	api.GET("/categories", product.GetAllCategories)
	api.GET("/vendors", vendor.Directory)

	// Buyer: cart and checkout
	authed := api.Group("")
	authed.Use(middleware.AuthRequired())
	{
		authed.GET("/cart", carts.Get)
		authed.POST("/cart/add", carts.Add)
		authed.PUT("/cart/quantity", carts.UpdateQuantity)
		authed.DELETE("/cart/:productId", carts.Remove)
		authed.DELETE("/cart", carts.Clear)
		authed.GET("/cart/ws", carts.Websocket)

		authed.POST("/checkout", checkouts.Checkout)
		authed.GET("/checkout/confirmation", checkouts.Confirmation)

		authed.POST("/vendors/apply", vendor.Apply)
	}

	// Vendor dashboard
	vendorRoutes := api.Group("/vendor")
	vendorRoutes.Use(middleware.AuthRequired(), middleware.RequireVendor)
	{
		vendorRoutes.GET("/me", vendor.GetMyVendor)
		vendorRoutes.GET("/products", product.GetMyProducts)
		vendorRoutes.POST("/products", product.CreateProduct)
		vendorRoutes.PUT("/products/:id", product.UpdateProduct)
		vendorRoutes.DELETE("/products/:id", product.DeleteProduct)
		vendorRoutes.POST("/categories", product.CreateCategory)
		vendorRoutes.PUT("/orders/:id/status", vendor.UpdateOrderStatus)
	}

	// Admin dashboard
	adminRoutes := api.Group("/admin")
	adminRoutes.Use(middleware.AuthRequired(), middleware.RequireAdmin)
	{
		adminRoutes.GET("/stats", admin.GetStats)
		adminRoutes.GET("/vendors", vendor.ListVendors)
		adminRoutes.POST("/vendors/:id/approve", vendor.ApproveVendor)
		adminRoutes.POST("/vendors/:id/reject", vendor.RejectVendor)
		adminRoutes.POST("/vendors/:id/promote", vendor.PromoteVendor)
		adminRoutes.DELETE("/vendors/:id", vendor.DeleteVendor)
		adminRoutes.POST("/categories", product.CreateCategory)
		adminRoutes.DELETE("/categories/:id", product.DeleteCategory)
		adminRoutes.PUT("/products/:id", product.UpdateProduct)
		adminRoutes.DELETE("/products/:id", product.DeleteProduct)
	}
}

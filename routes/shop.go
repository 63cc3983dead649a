package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/maurozn/storefront-api/controllers/cart"
	productController "github.com/maurozn/storefront-api/controllers/product"
)

// SetupShopRoutes registers the catalog and cart endpoints.
func SetupShopRoutes(r *gin.Engine, deps Deps) {
	r.GET("/", productController.ListProducts(deps.Catalog))

	r.GET("/add-to-cart/:product_id", cartControllers.AddToCart())
	r.GET("/remove-from-cart/:product_id", cartControllers.RemoveFromCart())
	r.GET("/cart", cartControllers.ViewCart(deps.Catalog))
}

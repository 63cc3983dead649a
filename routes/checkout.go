package routes

import (
	"github.com/gin-gonic/gin"
	checkoutControllers "github.com/maurozn/storefront-api/controllers/checkout"
)

// SetupCheckoutRoutes registers the payment-session handoff and its
// return pages.
func SetupCheckoutRoutes(r *gin.Engine, deps Deps) {
	r.GET("/checkout", checkoutControllers.Checkout(deps.Catalog, deps.Provider, deps.Config))
	r.GET("/success", checkoutControllers.Success())
	r.GET("/cancel", checkoutControllers.Cancel())
}

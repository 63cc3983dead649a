package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/maurozn/storefront-api/config"
	"github.com/maurozn/storefront-api/payments"
	"github.com/maurozn/storefront-api/repository"
)

// Deps is the server context handed to every route group: the two stores,
// the payment provider and the configuration, constructed once at startup.
type Deps struct {
	Catalog  repository.CatalogStore
	Accounts repository.AccountStore
	Provider payments.Provider
	Config   *config.Config
}

// SetupRoutes is the single entry-point that wires up the shop, account and
// checkout route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupShopRoutes(r, deps)

	SetupAccountRoutes(r, deps)

	SetupCheckoutRoutes(r, deps)
}

package checkoutControllers

import (
	"math"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/maurozn/storefront-api/config"
	"github.com/maurozn/storefront-api/payments"
	"github.com/maurozn/storefront-api/repository"
	"github.com/maurozn/storefront-api/session"
)

// GET /checkout
//
// Builds a hosted payment session from the cart and redirects the buyer to
// it. An empty cart goes straight back to the catalog without touching the
// provider. Products without a price are skipped; the provider rejects
// zero-amount line items.
func Checkout(catalog repository.CatalogStore, provider payments.Provider, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		ids := session.CartIDs(sess)
		if len(ids) == 0 {
			c.Redirect(http.StatusFound, "/")
			return
		}

		products, err := catalog.ProductsByIDs(ids)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		items := make([]payments.LineItem, 0, len(products))
		for _, p := range products {
			if p.Price == nil {
				continue
			}
			items = append(items, payments.LineItem{
				Currency:   cfg.Currency,
				Name:       p.Name,
				UnitAmount: int64(math.Round(*p.Price * 100)),
				Quantity:   1,
			})
		}
		if len(items) == 0 {
			// Every cart id was stale or priceless.
			c.Redirect(http.StatusFound, "/")
			return
		}

		checkoutURL, err := provider.CreateSession(
			c.Request.Context(),
			items,
			cfg.BaseURL+"/success",
			cfg.BaseURL+"/cancel",
		)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.Redirect(http.StatusSeeOther, checkoutURL)
	}
}

// GET /success
//
// Clears the cart unconditionally. Payment completion is not verified with
// the provider; webhook reconciliation is out of scope.
func Success() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		session.ClearCart(sess)
		if err := sess.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment successful!"})
	}
}

// GET /cancel
func Cancel() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Payment canceled."})
	}
}

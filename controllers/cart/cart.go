package cartControllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/maurozn/storefront-api/models"
	"github.com/maurozn/storefront-api/repository"
	"github.com/maurozn/storefront-api/session"
)

// GET /add-to-cart/:product_id
func AddToCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		sess := sessions.Default(c)
		session.AddToCart(sess, productID)
		if err := sess.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}

// GET /remove-from-cart/:product_id
func RemoveFromCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		sess := sessions.Default(c)
		session.RemoveFromCart(sess, productID)
		if err := sess.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.Redirect(http.StatusFound, "/cart")
	}
}

// GET /cart
//
// Cart ids without a catalog product are silently dropped; a product with no
// price counts as zero toward the total.
func ViewCart(catalog repository.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		ids := session.CartIDs(sess)

		products, err := catalog.ProductsByIDs(ids)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		total := 0.0
		for _, p := range products {
			if p.Price != nil {
				total += *p.Price
			}
		}

		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"total":    math.Round(total*100) / 100,
		})
	}
}

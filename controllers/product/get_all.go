package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maurozn/storefront-api/repository"
)

// GET /
func ListProducts(catalog repository.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.ListProducts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

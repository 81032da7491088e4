package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MOHITH-R2/my-e-commerce-website/session"
	"github.com/MOHITH-R2/my-e-commerce-website/store"
)

// relatedLimit caps the related-products strip on the detail page.
const relatedLimit = 4

// GET /
func ListProducts(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			products interface{}
			err      error
		)
		if category := c.Query("category"); category != "" {
			products, err = catalog.ProductsByCategory(category)
		} else {
			products, err = catalog.Products()
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		categories, err := catalog.Categories()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":   products,
			"categories": categories,
			"flashes":    session.Flashes(c),
		})
	}
}

// GET /products/:id
func GetProductByID(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := catalog.ProductByID(uint(id))
		if err != nil {
			if err == store.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		related, err := catalog.Related(product.ID, relatedLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve related products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"product":          product,
			"related_products": related,
			"flashes":          session.Flashes(c),
		})
	}
}

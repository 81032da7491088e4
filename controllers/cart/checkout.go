package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MOHITH-R2/my-e-commerce-website/session"
	"github.com/MOHITH-R2/my-e-commerce-website/store"
)

// GET /checkout — shows what would be ordered. Reached only through the
// login gate.
func ShowCheckout(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, total, err := PriceCart(catalog, session.Cart(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"confirmed": false,
			"items":     items,
			"total":     total,
			"flashes":   session.Flashes(c),
		})
	}
}

// POST /checkout — empties the cart and confirms. No payment is taken and no
// order row is written; the reference is a one-off receipt for the client.
func Checkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		session.ClearCart(c)

		c.JSON(http.StatusOK, gin.H{
			"confirmed": true,
			"reference": uuid.New().String(),
			"flashes":   session.Flashes(c),
		})
	}
}

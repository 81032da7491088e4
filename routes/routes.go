package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MOHITH-R2/my-e-commerce-website/store"
)

// SetupRoutes is the single entry-point that wires up the shop and account
// route groups over the injected stores.
func SetupRoutes(r *gin.Engine, catalog store.CatalogStore, accounts store.AccountStore) {
	// Public shop routes (catalog + cart), checkout behind the login gate
	SetupShopRoutes(r, catalog)

	// Register / login / logout
	SetupAccountRoutes(r, accounts)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
}

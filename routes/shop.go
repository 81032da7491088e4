package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/MOHITH-R2/my-e-commerce-website/controllers/cart"
	catalogControllers "github.com/MOHITH-R2/my-e-commerce-website/controllers/catalog"
	"github.com/MOHITH-R2/my-e-commerce-website/middleware"
	"github.com/MOHITH-R2/my-e-commerce-website/store"
)

// SetupShopRoutes registers the storefront endpoints.
func SetupShopRoutes(r *gin.Engine, catalog store.CatalogStore) {
	// ──────────────── Catalog ────────────────
	r.GET("/", catalogControllers.ListProducts(catalog))             // GET /?category=Clothing
	r.GET("/products/:id", catalogControllers.GetProductByID(catalog)) // GET /products/3

	// ──────────────── Cart ────────────────
	r.GET("/cart/add/:id", cartControllers.AddToCart(catalog)) // GET /cart/add/3 → 302 back
	r.GET("/cart", cartControllers.ViewCart(catalog))          // GET /cart

	// ──────────────── Checkout (login required) ────────────────
	checkoutGroup := r.Group("/checkout")
	checkoutGroup.Use(middleware.RequireLogin)
	{
		checkoutGroup.GET("", cartControllers.ShowCheckout(catalog)) // GET /checkout
		checkoutGroup.POST("", cartControllers.Checkout())           // POST /checkout
	}
}

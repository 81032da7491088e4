package cartControllers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MOHITH-R2/my-e-commerce-website/models"
	"github.com/MOHITH-R2/my-e-commerce-website/session"
	"github.com/MOHITH-R2/my-e-commerce-website/store"
)

type CartLine struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"qty"`
	Subtotal float64        `json:"subtotal"`
}

// PriceCart joins the session cart mapping against the catalog. Entries with
// a non-positive quantity or an id that no longer resolves are dropped
// silently; the cart view must never fail because the catalog moved on.
func PriceCart(catalog store.CatalogStore, cart map[string]int) ([]CartLine, float64, error) {
	keys := make([]string, 0, len(cart))
	for key := range cart {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.Atoi(keys[i])
		b, _ := strconv.Atoi(keys[j])
		return a < b
	})

	items := []CartLine{}
	total := 0.0
	for _, key := range keys {
		qty := cart[key]
		if qty <= 0 {
			continue
		}
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		product, err := catalog.ProductByID(uint(id))
		if err != nil {
			if err == store.ErrNotFound {
				continue
			}
			return nil, 0, err
		}
		subtotal := product.Price * float64(qty)
		items = append(items, CartLine{Product: product, Quantity: qty, Subtotal: subtotal})
		total += subtotal
	}
	return items, total, nil
}

// GET /cart/add/:id
func AddToCart(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		// Unknown product leaves the session untouched.
		if _, err := catalog.ProductByID(uint(id)); err != nil {
			if err == store.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		cart := session.Cart(c)
		cart[strconv.Itoa(id)]++
		session.SetCart(c, cart)
		session.AddFlash(c, "success", "Added to cart!")

		back := c.Request.Referer()
		if back == "" {
			back = "/"
		}
		c.Redirect(http.StatusFound, back)
	}
}

// GET /cart
func ViewCart(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, total, err := PriceCart(catalog, session.Cart(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":   items,
			"total":   total,
			"flashes": session.Flashes(c),
		})
	}
}

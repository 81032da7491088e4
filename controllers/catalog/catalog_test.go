package catalogControllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MOHITH-R2/my-e-commerce-website/models"
	"github.com/MOHITH-R2/my-e-commerce-website/routes"
	"github.com/MOHITH-R2/my-e-commerce-website/session"
	"github.com/MOHITH-R2/my-e-commerce-website/store"
)

func newCatalogApp(t *testing.T, products ...models.Product) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	r := gin.New()
	r.Use(session.Middleware("test-secret"))
	routes.SetupRoutes(r, store.NewMemoryCatalog(products...), store.NewMemoryAccounts())
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestListProductsWithCategories(t *testing.T) {
	r := newCatalogApp(t, store.DefaultCatalog()...)

	w := doGet(t, r, "/")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Products   []models.Product `json:"products"`
		Categories []string         `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	require.Len(t, body.Products, 5)
	for i, p := range body.Products {
		assert.Equal(t, uint(i+1), p.ID)
	}
	assert.Equal(t, []string{"Accessories", "Clothing", "Footwear", "Gadgets"}, body.Categories)
}

func TestListProductsFilteredByCategory(t *testing.T) {
	r := newCatalogApp(t, store.DefaultCatalog()...)

	w := doGet(t, r, "/?category=Clothing")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Products, 2)
	for _, p := range body.Products {
		assert.Equal(t, "Clothing", p.Category)
	}
}

func TestGetProductDetailWithRelated(t *testing.T) {
	r := newCatalogApp(t, store.DefaultCatalog()...)

	w := doGet(t, r, "/products/3")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Product models.Product   `json:"product"`
		Related []models.Product `json:"related_products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, uint(3), body.Product.ID)
	assert.Equal(t, "Running Shoes", body.Product.Name)
	require.Len(t, body.Related, 4)
	for _, p := range body.Related {
		assert.NotEqual(t, uint(3), p.ID)
	}
}

func TestGetProductNotFound(t *testing.T) {
	r := newCatalogApp(t, store.DefaultCatalog()...)

	w := doGet(t, r, "/products/99")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doGet(t, r, "/products/banana")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	r := newCatalogApp(t)

	w := doGet(t, r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
}

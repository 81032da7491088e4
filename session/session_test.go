package session

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Middleware("test-secret"))

	r.GET("/bump/:id", func(c *gin.Context) {
		cart := Cart(c)
		cart[c.Param("id")]++
		SetCart(c, cart)
		c.Status(http.StatusOK)
	})
	r.GET("/cart", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"cart": Cart(c)})
	})
	r.GET("/flash", func(c *gin.Context) {
		AddFlash(c, "success", "hello")
		c.Status(http.StatusOK)
	})
	r.GET("/render", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"flashes": Flashes(c)})
	})
	r.GET("/reset", func(c *gin.Context) {
		Clear(c)
		c.Status(http.StatusOK)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{Jar: jar}
}

func getJSON(t *testing.T, client *http.Client, url string, out interface{}) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestCartSurvivesAcrossRequests(t *testing.T) {
	srv, client := newSessionServer(t)

	for i := 0; i < 3; i++ {
		resp, err := client.Get(srv.URL + "/bump/3")
		require.NoError(t, err)
		resp.Body.Close()
	}

	var body struct {
		Cart map[string]int `json:"cart"`
	}
	getJSON(t, client, srv.URL+"/cart", &body)
	assert.Equal(t, map[string]int{"3": 3}, body.Cart)
}

func TestFreshSessionHasEmptyCart(t *testing.T) {
	srv, client := newSessionServer(t)

	var body struct {
		Cart map[string]int `json:"cart"`
	}
	getJSON(t, client, srv.URL+"/cart", &body)
	assert.Empty(t, body.Cart)
}

func TestFlashesAreDrainedOnce(t *testing.T) {
	srv, client := newSessionServer(t)

	resp, err := client.Get(srv.URL + "/flash")
	require.NoError(t, err)
	resp.Body.Close()

	var body struct {
		Flashes []Flash `json:"flashes"`
	}
	getJSON(t, client, srv.URL+"/render", &body)
	require.Len(t, body.Flashes, 1)
	assert.Equal(t, Flash{Message: "hello", Level: "success"}, body.Flashes[0])

	// Second render sees nothing.
	getJSON(t, client, srv.URL+"/render", &body)
	assert.Empty(t, body.Flashes)
}

func TestClearDropsCartAndFlashes(t *testing.T) {
	srv, client := newSessionServer(t)

	for _, path := range []string{"/bump/1", "/flash", "/reset"} {
		resp, err := client.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
	}

	var cartBody struct {
		Cart map[string]int `json:"cart"`
	}
	getJSON(t, client, srv.URL+"/cart", &cartBody)
	assert.Empty(t, cartBody.Cart)

	var flashBody struct {
		Flashes []Flash `json:"flashes"`
	}
	getJSON(t, client, srv.URL+"/render", &flashBody)
	assert.Empty(t, flashBody.Flashes)
}

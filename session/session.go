// Package session wraps the cookie session behind typed accessors so handlers
// never touch raw session keys. The cookie carries the cart mapping and the
// flash queue; the authenticated identity travels in its own signed cookie
// (see the auth package).
package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const (
	cookieName = "storefront_session"

	cartKey    = "cart"
	flashesKey = "flashes"
)

// Flash is a one-shot notification: queued by one request, drained by the
// next render, then gone.
type Flash struct {
	Message string `json:"message"`
	Level   string `json:"level"` // success, error, info
}

func init() {
	gob.Register(map[string]int{})
	gob.Register([]Flash{})
}

// Middleware installs the signed cookie store for every route.
func Middleware(secret string) gin.HandlerFunc {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
	})
	return sessions.Sessions(cookieName, store)
}

// Cart returns the visitor's cart mapping (product id → quantity). A fresh
// session is an empty cart.
func Cart(c *gin.Context) map[string]int {
	s := sessions.Default(c)
	if cart, ok := s.Get(cartKey).(map[string]int); ok {
		return cart
	}
	return map[string]int{}
}

func SetCart(c *gin.Context, cart map[string]int) {
	s := sessions.Default(c)
	s.Set(cartKey, cart)
	_ = s.Save()
}

// ClearCart empties the cart wholesale, as checkout does.
func ClearCart(c *gin.Context) {
	SetCart(c, map[string]int{})
}

// AddFlash queues a notification for the next render.
func AddFlash(c *gin.Context, level, message string) {
	s := sessions.Default(c)
	flashes, _ := s.Get(flashesKey).([]Flash)
	s.Set(flashesKey, append(flashes, Flash{Message: message, Level: level}))
	_ = s.Save()
}

// Flashes drains the queue. The messages are gone after this call whether or
// not the caller shows them.
func Flashes(c *gin.Context) []Flash {
	s := sessions.Default(c)
	flashes, ok := s.Get(flashesKey).([]Flash)
	if !ok || len(flashes) == 0 {
		return []Flash{}
	}
	s.Delete(flashesKey)
	_ = s.Save()
	return flashes
}

// Clear drops every session value (cart included). Used by logout.
func Clear(c *gin.Context) {
	s := sessions.Default(c)
	s.Clear()
	_ = s.Save()
}

package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/MOHITH-R2/my-e-commerce-website/auth"
)

// RequireLogin gates a route behind the identity cookie. An anonymous client
// is sent to the login form with a return path so a successful login lands
// back on the page it wanted.
func RequireLogin(c *gin.Context) {
	ident, err := auth.FromRequest(c.Request)
	if err != nil {
		next := url.QueryEscape(c.Request.URL.Path)
		c.Redirect(http.StatusFound, "/login?next="+next)
		c.Abort()
		return
	}

	c.Set("user_id", ident.UserID)
	c.Set("username", ident.Username)
	c.Next()
}

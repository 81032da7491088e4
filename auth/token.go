package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName holds the signed identity token. HttpOnly so scripts cannot
// read the claim.
const CookieName = "auth_token"

const tokenLifetime = 24 * time.Hour

// ErrUnauthorized is the typed outcome for a request with no valid identity.
// Only the middleware turns it into a redirect.
var ErrUnauthorized = errors.New("not authenticated")

// Identity is the authenticated-user claim carried by the cookie.
type Identity struct {
	UserID   uint
	Username string
}

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// IssueCookie signs an identity token and sets it on the response.
func IssueCookie(c *gin.Context, userID uint, username string) error {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret())
	if err != nil {
		return err
	}
	c.SetCookie(CookieName, signed, int(tokenLifetime.Seconds()), "/", "", false, true)
	return nil
}

// ClearCookie expires the identity cookie.
func ClearCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// FromRequest parses the identity cookie. Missing, expired or tampered
// tokens all come back as ErrUnauthorized.
func FromRequest(r *http.Request) (Identity, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return Identity{}, ErrUnauthorized
	}

	token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrUnauthorized
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return Identity{}, ErrUnauthorized
	}
	username, _ := claims["username"].(string)

	return Identity{UserID: uint(userID), Username: username}, nil
}

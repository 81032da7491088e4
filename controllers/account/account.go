package accountControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/MOHITH-R2/my-e-commerce-website/auth"
	"github.com/MOHITH-R2/my-e-commerce-website/models"
	"github.com/MOHITH-R2/my-e-commerce-website/session"
	"github.com/MOHITH-R2/my-e-commerce-website/store"
)

type RegisterInput struct {
	Username        string `form:"username" json:"username"`
	Email           string `form:"email" json:"email"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password"`
}

type LoginInput struct {
	Identifier string `form:"identifier" json:"identifier"`
	Password   string `form:"password" json:"password"`
	Next       string `form:"next" json:"next"`
}

// GET /register
func ShowRegister() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"flashes": session.Flashes(c)})
	}
}

// POST /register — validation runs in a fixed order and the first failure
// wins; every failure flashes and redirects back with no account created.
func Register(accounts store.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		_ = c.ShouldBind(&input)

		username := strings.TrimSpace(input.Username)
		email := strings.TrimSpace(input.Email)

		fail := func(message string) {
			session.AddFlash(c, "error", message)
			c.Redirect(http.StatusFound, "/register")
		}

		if username == "" || input.Password == "" {
			fail("Fill all fields")
			return
		}
		if email == "" {
			fail("Email is required")
			return
		}
		if input.Password != input.ConfirmPassword {
			fail("Passwords do not match")
			return
		}
		if _, err := accounts.UserByUsername(username); err == nil {
			fail("Username or email already registered")
			return
		}
		if _, err := accounts.UserByEmail(email); err == nil {
			fail("Username or email already registered")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		user := models.User{
			Username:     username,
			Email:        email,
			PasswordHash: string(hash),
		}
		if err := accounts.CreateUser(&user); err != nil {
			// The store's own uniqueness check closes the race the
			// lookups above cannot.
			if errors.Is(err, store.ErrDuplicateAccount) {
				fail("Username or email already registered")
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		session.AddFlash(c, "success", "Account created. Login!")
		c.Redirect(http.StatusFound, "/login")
	}
}

// GET /login
func ShowLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"next":    c.Query("next"),
			"flashes": session.Flashes(c),
		})
	}
}

// POST /login — the identifier is a username (case-sensitive) or an email
// (case-insensitive). Unknown identifier and wrong password produce the one
// identical outcome so the response never says which half was wrong.
func Login(accounts store.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		_ = c.ShouldBind(&input)

		identifier := strings.TrimSpace(input.Identifier)

		user, err := accounts.UserByUsername(identifier)
		if err != nil {
			user, err = accounts.UserByEmail(strings.ToLower(identifier))
		}
		if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
			session.AddFlash(c, "error", "Invalid credentials")
			c.Redirect(http.StatusFound, "/login")
			return
		}

		if err := auth.IssueCookie(c, user.ID, user.Username); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish session"})
			return
		}
		session.AddFlash(c, "success", "Welcome back "+user.Username+"!")

		next := input.Next
		if next == "" {
			next = c.Query("next")
		}
		c.Redirect(http.StatusFound, safeNext(next))
	}
}

// GET /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		session.Clear(c)
		auth.ClearCookie(c)
		session.AddFlash(c, "info", "Logged out")
		c.Redirect(http.StatusFound, "/")
	}
}

// safeNext honors only internal same-origin paths, so a crafted next value
// cannot turn the login form into an open redirect.
func safeNext(next string) string {
	if next == "" {
		return "/"
	}
	if !strings.HasPrefix(next, "/") {
		return "/"
	}
	if strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return "/"
	}
	return next
}

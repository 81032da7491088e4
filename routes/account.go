package routes

import (
	"github.com/gin-gonic/gin"

	accountControllers "github.com/MOHITH-R2/my-e-commerce-website/controllers/account"
	"github.com/MOHITH-R2/my-e-commerce-website/store"
)

// SetupAccountRoutes registers registration, login and logout.
func SetupAccountRoutes(r *gin.Engine, accounts store.AccountStore) {
	r.GET("/register", accountControllers.ShowRegister())
	r.POST("/register", accountControllers.Register(accounts))

	r.GET("/login", accountControllers.ShowLogin())
	r.POST("/login", accountControllers.Login(accounts))

	r.GET("/logout", accountControllers.Logout())
}

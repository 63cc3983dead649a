package routes

import (
	"github.com/gin-gonic/gin"
	accountControllers "github.com/maurozn/storefront-api/controllers/account"
	"github.com/maurozn/storefront-api/middleware"
)

// SetupAccountRoutes registers registration, login and logout.
func SetupAccountRoutes(r *gin.Engine, deps Deps) {
	r.GET("/register", accountControllers.ShowRegister())
	r.POST("/register", accountControllers.Register(deps.Accounts))

	r.GET("/login", accountControllers.ShowLogin())
	r.POST("/login", accountControllers.Login(deps.Accounts))

	r.GET("/logout", middleware.RequireLogin, accountControllers.Logout())
}

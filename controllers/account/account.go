package accountControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/maurozn/storefront-api/models"
	"github.com/maurozn/storefront-api/repository"
	"github.com/maurozn/storefront-api/session"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Email           string `form:"email" json:"email" binding:"required,email,max=150"`
	Password        string `form:"password" json:"password" binding:"required,min=6,max=100"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" binding:"required,eqfield=Password"`
}

type LoginInput struct {
	Email    string `form:"email" json:"email" binding:"required,email,max=150"`
	Password string `form:"password" json:"password" binding:"required"`
}

// GET /register
func ShowRegister() gin.HandlerFunc {
	return func(c *gin.Context) {
		if redirectIfAuthenticated(c) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"fields": []string{"email", "password", "confirm_password"}})
	}
}

// POST /register
func Register(accounts repository.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redirectIfAuthenticated(c) {
			return
		}

		var input RegisterInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if _, err := accounts.UserByEmail(input.Email); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered."})
			return
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check account"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		user := models.User{Email: input.Email, Password: string(hash)}
		if err := accounts.CreateUser(&user); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Account created! Please log in."})
	}
}

// GET /login
func ShowLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if redirectIfAuthenticated(c) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"fields": []string{"email", "password"}})
	}
}

// POST /login
func Login(accounts repository.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redirectIfAuthenticated(c) {
			return
		}

		var input LoginInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := accounts.UserByEmail(input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch account"})
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		sess := sessions.Default(c)
		session.SetUserID(sess, user.ID)
		if err := sess.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish session"})
			return
		}

		c.Redirect(http.StatusFound, nextPath(c))
	}
}

// GET /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		session.ClearUser(sess)
		if err := sess.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}

// nextPath returns the post-login redirect target, accepting only local paths.
func nextPath(c *gin.Context) string {
	next := c.Query("next")
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}

func redirectIfAuthenticated(c *gin.Context) bool {
	if _, ok := session.UserID(sessions.Default(c)); ok {
		c.Redirect(http.StatusFound, "/")
		return true
	}
	return false
}

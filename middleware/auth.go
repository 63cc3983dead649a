package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/maurozn/storefront-api/session"
)

// RequireLogin gates a route on an authenticated session. Unauthenticated
// requests are sent to the login page with the requested path preserved for
// the post-login redirect.
func RequireLogin(c *gin.Context) {
	sess := sessions.Default(c)
	userID, ok := session.UserID(sess)
	if !ok {
		c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.Path))
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}

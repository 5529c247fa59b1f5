package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lazaroperez207/agro-en-casa/internal/auth"
	"github.com/lazaroperez207/agro-en-casa/internal/models"
	"github.com/lazaroperez207/agro-en-casa/internal/service"
	"github.com/lazaroperez207/agro-en-casa/internal/util"
)

const userContextKey = "currentUser"

// authRequired verifies the Bearer token and loads the acting user into
// the request context. A token for a deleted account is rejected.
func authRequired(tokens *auth.TokenManager, accounts *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing credentials"})
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		user, err := accounts.GetUser(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// roleRequired gates a route group to the given roles
func roleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	}
}

// currentUser returns the user loaded by authRequired
func currentUser(c *gin.Context) models.User {
	user, _ := c.Get(userContextKey)
	u, _ := user.(models.User)
	return u
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"tripdesk/internal/models/db_models"
	"tripdesk/pkg/utils"
)

// SessionAuthMiddleware authenticates the request from the session cookie,
// falling back to a Bearer Authorization header for non-browser clients.
func SessionAuthMiddleware(cookieName string) gin.HandlerFunc {

	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cookieName)
		if err != nil || tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondError(c, http.StatusUnauthorized, "Session cookie or Authorization header missing")
				c.Abort()
				return
			}
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Pass user information to the next handler
		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("permissions", claims.Permissions)
		c.Next()
	}
}

// SessionPermissions returns the effective permission set the session
// token carries, including per-account grants. Tokens issued before
// grants were embedded fall back to the role's fixed set.
func SessionPermissions(c *gin.Context) []db_models.Permission {
	perms := db_models.PermissionsFromNames(c.GetStringSlice("permissions"))
	if len(perms) == 0 {
		perms = db_models.PermissionsForRole(db_models.Role(c.GetString("role")))
	}
	return perms
}

// RequirePermission gates a route on a capability from the closed
// permission set.
func RequirePermission(required db_models.Permission) gin.HandlerFunc {

	return func(c *gin.Context) {
		if !db_models.HasPermission(SessionPermissions(c), required) {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireAdmin expects RequireAuth to have run first. Dashboard requests
// also carry the X-Admin-Request marker header; calls without it are
// rejected even with an admin token.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetHeader("X-Admin-Request") != "true" {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin request marker missing"})
			return
		}

		userClaims, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		claims := userClaims.(jwt.MapClaims)
		role, ok := claims["role"].(string)
		if !ok || (role != "admin" && role != "manager") {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}

		ctx.Next()
	}
}

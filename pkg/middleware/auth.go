package middleware

import (
	"net/http"
	"strings"

	"cliptube/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// ClaimsKey is the context key under which the decoded token claims are
// attached for downstream handlers.
const ClaimsKey = "claims"

// AuthMiddleware extracts a bearer token from the Authorization header,
// verifies it and attaches the decoded identity to the request context.
// Handlers behind it trust the attached identity without re-verification.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized access"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized access"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized access", "error": err.Error()})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

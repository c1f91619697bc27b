package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"legalcase/internal/utils"
)

// AdminIDKey is the gin context key under which the verified admin identity
// is injected for downstream handlers.
const AdminIDKey = "adminID"

// Authenticate wraps protected handlers. It extracts the bearer token,
// verifies it, and short-circuits with 401 before the handler runs on any
// failure. Absent, expired, malformed and badly signed tokens all produce
// the same response body.
func Authenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing Authorization header"})
			return
		}

		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid Authorization format"})
			return
		}

		adminID, err := utils.VerifyJWT(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(AdminIDKey, adminID)
		c.Next()
	}
}

// AdminID returns the verified identity injected by Authenticate.
func AdminID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(AdminIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

package middlewares

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RequireOwner enforces the owner check on routes whose path embeds the
// resource-owning admin id. Must run after Authenticate. Both sides of the
// comparison are int64: the verified identity from the token and the parsed
// path parameter, so no string/number ambiguity crosses the boundary.
func RequireOwner(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := AdminID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		requested, err := strconv.ParseInt(c.Param(param), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid admin ID format"})
			return
		}

		if requested != adminID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "You are not allowed to access this resource"})
			return
		}

		c.Next()
	}
}

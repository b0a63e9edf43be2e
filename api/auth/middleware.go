package auth

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/maze-world/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextOwnerClaims is the key used to store owner token claims in the Gin context.
	ContextOwnerClaims = "ownerClaims"
)

// Authoriz rejects requests without a valid Bearer owner token and stores the
// token's claims in the context.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized) // No token found in the header.
			c.Abort()
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ContextOwnerClaims, claims)
		c.Next()
	}
}

// Claims returns the owner claims Authoriz stored in the context.
func Claims(c *gin.Context) (map[string]interface{}, bool) {
	v, ok := c.Get(ContextOwnerClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(map[string]interface{})
	return claims, ok
}

// README: Bearer-token auth middleware backed by the Firebase verifier.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"atlas/internal/infra"
)

// ContextUIDKey is where Auth stores the verified account UID.
const ContextUIDKey = "uid"

// Auth verifies the Authorization bearer token and stores the account UID
// in the request context. Requests without a valid token are rejected.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token, err := verifier.VerifyIDToken(c.Request.Context(), strings.TrimPrefix(header, prefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUIDKey, token.UID)
		c.Next()
	}
}

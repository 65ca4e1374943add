// Package token provides bearer-token authentication for the HTTP layer:
// a gin middleware that resolves opaque tokens to identities, and an
// optional redis read-through cache in front of the token store.
package token

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/feature/identity/domain/entity"
)

// ContextIdentity is the gin context key under which the authenticated
// identity is stored.
const ContextIdentity = "identity"

// Resolver resolves an opaque token value to the stored token record.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (adapters).
type Resolver interface {
	FindByID(ctx context.Context, id string) (*entity.Token, error)
}

// IdentityReader loads the identity a resolved token is bound to.
type IdentityReader interface {
	FindByID(ctx context.Context, id uint) (*entity.Identity, error)
}

// AuthRequired returns a Gin middleware function that validates bearer
// tokens and restricts access to authenticated, active identities.
func AuthRequired(tokens Resolver, identities IdentityReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		value := strings.TrimPrefix(auth, "Bearer ")

		// 2. Resolve the opaque token against the store
		token, err := tokens.FindByID(c.Request.Context(), value)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 3. Load the bound identity and reject deactivated accounts
		id, err := identities.FindByID(c.Request.Context(), token.IdentityID)
		if err != nil || !id.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 4. Expose the identity to downstream handlers
		c.Set(ContextIdentity, id)
		c.Next()
	}
}

// IdentityFromContext returns the authenticated identity set by
// AuthRequired, or nil when the request was not authenticated.
func IdentityFromContext(c *gin.Context) *entity.Identity {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return nil
	}
	id, ok := v.(*entity.Identity)
	if !ok {
		return nil
	}
	return id
}

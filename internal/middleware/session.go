package middleware

import (
	"errors"
	"net/http"
	"strings"

	jwtsvc "buyerleads/internal/pkg/jwt"
	"buyerleads/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Session resolves the caller identity and stores it in the request
// context. A JWT bearer token is accepted first; otherwise the legacy
// "user" cookie is parsed. No store call happens before this passes.
func Session(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			claims, err := jwt.ValidateToken(tokenStr)
			if err != nil {
				abortUnauthorized(c, "invalid token")
				return
			}
			c.Set(identityKey, session.Identity{Name: claims.Name, OwnerExternalID: claims.OwnerID})
			c.Next()
			return
		}

		token, err := c.Cookie(session.CookieName)
		if err != nil {
			abortUnauthorized(c, session.ErrNotLoggedIn.Error())
			return
		}

		identity, err := session.Parse(token)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, session.ErrNotLoggedIn) {
				msg = session.ErrNotLoggedIn.Error()
			}
			abortUnauthorized(c, msg)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// Identity returns the resolved session identity, if any.
func Identity(c *gin.Context) (session.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return session.Identity{}, false
	}
	identity, ok := v.(session.Identity)
	return identity, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}

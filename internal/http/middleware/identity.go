package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"syncarea.app/api-server/internal/authz"
	"syncarea.app/api-server/internal/model"
)

const (
	userIDHeader   = "X-User-ID"
	userRoleHeader = "X-User-Role"

	principalKey = "principal"
)

// Identity translates the identity provider's trusted headers into a
// Principal. Requests without a parseable identity never reach a handler.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.GetHeader(userIDHeader)
		if idStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}
		userID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || userID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid identity"})
			return
		}

		role := model.Role(c.GetHeader(userRoleHeader))
		if role == "" {
			role = model.RoleUser
		}
		if !role.Valid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid role"})
			return
		}

		c.Set(principalKey, authz.Principal{UserID: userID, Role: role})
		c.Next()
	}
}

// PrincipalFrom returns the Principal attached by Identity.
func PrincipalFrom(c *gin.Context) (authz.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return authz.Principal{}, false
	}
	p, ok := v.(authz.Principal)
	return p, ok
}

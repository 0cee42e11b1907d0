package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"syncarea.app/api-server/internal/authz"
)

// WorkspaceMember gates a route group on the access evaluator. The workspace
// is taken from the :workspace_id path parameter; a denial reports its reason
// and nothing else.
func WorkspaceMember(evaluator *authz.Evaluator) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		workspaceID, err := strconv.ParseInt(c.Param("workspace_id"), 10, 64)
		if err != nil {
			workspaceID = 0
		}

		decision := evaluator.Evaluate(c.Request.Context(), p, workspaceID)
		if !decision.Allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": decision.Reason})
			return
		}
		c.Next()
	}
}

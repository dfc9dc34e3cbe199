package authz

import (
	"net/http"

	"worknest/internal/shared/apperror"
	"worknest/internal/shared/response"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequirePermission enforces a route-level (object, action) permission for
// the role placed in the gin context by middleware.AuthContext.
func RequirePermission(e *casbin.Enforcer, obj, act string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusBadRequest, apperror.CodeMissingAuthContext,
				"Missing authentication context", nil)
			c.Abort()
			return
		}

		allowed, err := e.Enforce(role, obj, act)
		if err != nil {
			zap.L().Named("authz").Error("enforce failed",
				zap.String("role", role),
				zap.String("obj", obj),
				zap.String("act", act),
				zap.Error(err),
			)
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError,
				apperror.ErrInternal.Message, nil)
			c.Abort()
			return
		}
		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
				apperror.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

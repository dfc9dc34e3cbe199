package approval

import (
	"worknest/internal/authz"
	"worknest/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.Engine, handler *Handler, enforcer *casbin.Enforcer, jwtSecret string, rdb *redis.Client) {
	decisions := r.Group("/requests/:id")
	decisions.Use(middleware.Idempotency(rdb))

	decisions.POST("/approve", handler.Approve)
	decisions.POST("/reject", handler.Reject)

	authed := r.Group("/requests/:id")
	authed.Use(middleware.AuthContext(jwtSecret))

	authed.PUT("/withdraw",
		authz.RequirePermission(enforcer, "request", "withdraw"), handler.Withdraw)
	authed.PUT("/cancel",
		authz.RequirePermission(enforcer, "request", "cancel"), handler.Cancel)
	authed.PUT("",
		authz.RequirePermission(enforcer, "request", "update"), handler.Update)
}

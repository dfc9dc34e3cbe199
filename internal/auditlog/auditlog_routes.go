package auditlog

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/audit_log", handler.GetAll)
	r.GET("/requests/:id/audit_log", handler.GetByRequest)
}

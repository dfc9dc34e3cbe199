package profile

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.POST("/login", handler.Login)
	r.GET("/profiles", handler.GetAll)
	r.GET("/profiles/:staff_id", handler.GetByID)
	r.GET("/profiles/:staff_id/manager", handler.GetReportingManager)
	r.GET("/managers/:manager_id/team", handler.GetTeam)
}

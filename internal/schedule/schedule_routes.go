package schedule

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.POST("/schedules", handler.Upsert)
	r.GET("/schedules", handler.GetAll)
	r.GET("/schedules/:staff_id", handler.GetByStaff)
}

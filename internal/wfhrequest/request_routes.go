package wfhrequest

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	requests := r.Group("/requests")
	{
		requests.POST("", handler.Create)
		requests.GET("", handler.GetAll)
		requests.GET("/:id", handler.GetById)
	}

	r.GET("/staff/:staff_id/requests", handler.GetByStaff)
	r.GET("/managers/:manager_id/requests", handler.GetByManager)
}

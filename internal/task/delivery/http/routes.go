package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the task routes on the given group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/task", h.HandleTask)
}

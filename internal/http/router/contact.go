package router

import (
	"github.com/gin-gonic/gin"

	"github.com/0tsuro/SparkCar/internal/http/handler"
)

func ContactRouter(rg *gin.RouterGroup, h *handler.ContactHandler) {
	rg.POST("", h.Submit)
}

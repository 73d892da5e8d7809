package router

import (
	"github.com/gin-gonic/gin"

	"github.com/0tsuro/SparkCar/internal/http/handler"
)

func SiteRouter(rg *gin.RouterGroup, h *handler.SiteHandler) {
	rg.GET("/slides", h.Slides)
	rg.GET("/pricing", h.Pricing)
	rg.GET("/contact-info", h.ContactInfo)
}

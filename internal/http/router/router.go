package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0tsuro/SparkCar/internal/http/handler"
	"github.com/0tsuro/SparkCar/internal/service"
)

type RouterConfig struct {
	ContactService service.ContactService
	Content        handler.SiteContent
}

func SetupRoutes(router *gin.Engine, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		ContactRouter(api.Group("/contact"), handler.NewContactHandler(cfg.ContactService))
		SiteRouter(api, handler.NewSiteHandler(cfg.Content))
	}
}

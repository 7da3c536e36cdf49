package approuters

import (
	"github.com/jmario91/GeneracionWidget-Back/internal/configuration"

	"github.com/gin-gonic/gin"
)

func CatalogRouters(router *gin.Engine, container *configuration.Container) {
	catalogRoute := router.Group("/api/catalogos")
	{
		catalogRoute.GET("", container.CatalogHandler.GetCatalogs)
	}
}

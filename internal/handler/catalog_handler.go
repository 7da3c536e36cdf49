package handler

import (
	"net/http"

	"github.com/jmario91/GeneracionWidget-Back/internal/catalog"

	"github.com/gin-gonic/gin"
)

type CatalogHandler interface {
	GetCatalogs(c *gin.Context)
}

type catalogHandler struct {
	catalogs *catalog.Catalogs
}

func NewCatalogHandler(catalogs *catalog.Catalogs) CatalogHandler {
	return &catalogHandler{
		catalogs: catalogs,
	}
}

// GetCatalogs exposes the static enum catalogs verbatim. The catalogs never
// change after startup, so the response is identical across calls.
func (h *catalogHandler) GetCatalogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.catalogs,
	})
}

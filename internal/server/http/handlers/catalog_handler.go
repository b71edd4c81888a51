package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/sweetorders/internal/server/http/dto"
)

// CatalogHandler serves the product catalog.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Get handles GET /api/catalog.
func (h *CatalogHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewCatalogResponse(h.facade.Catalog()))
}

package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adiweb12/Devwatsee/internal/api/response"
	"github.com/adiweb12/Devwatsee/internal/service"
	"github.com/adiweb12/Devwatsee/pkg/logger"
)

type VideoHandler struct {
	catalogService *service.CatalogService
	searchService  *service.SearchService
}

func NewVideoHandler(catalogService *service.CatalogService, searchService *service.SearchService) *VideoHandler {
	return &VideoHandler{catalogService: catalogService, searchService: searchService}
}

// List GET /videos
func (h *VideoHandler) List(c *gin.Context) {
	items, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		logger.Error("List videos failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	c.JSON(200, items)
}

// Search GET /videos/search?q=
func (h *VideoHandler) Search(c *gin.Context) {
	keyword := c.Query("q")

	items, err := h.searchService.SearchVideos(c.Request.Context(), keyword)
	if err != nil {
		logger.Error("Search videos failed", zap.String("keyword", keyword), zap.Error(err))
		response.InternalError(c)
		return
	}

	c.JSON(200, items)
}

package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adiweb12/Devwatsee/internal/api/dto"
	"github.com/adiweb12/Devwatsee/internal/api/middleware"
	"github.com/adiweb12/Devwatsee/internal/api/response"
	"github.com/adiweb12/Devwatsee/internal/service"
	"github.com/adiweb12/Devwatsee/pkg/logger"
)

type BookmarkHandler struct {
	bookmarkService *service.BookmarkService
}

func NewBookmarkHandler(bookmarkService *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

// Save bookmarks a video for the caller.
// @Summary Save a video
// @Description Adds the video to the member's saved list; saving twice is a no-op
// @Tags bookmarks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveVideoRequest true "video to save"
// @Success 200 {object} dto.SaveStateResponse "saved"
// @Failure 400 {object} response.Body "missing or invalid fields"
// @Failure 401 {object} response.Body "missing or invalid token"
// @Router /save [post]
func (h *BookmarkHandler) Save(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req dto.SaveVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	if err := h.bookmarkService.Save(userID, req.VideoID); err != nil {
		logger.Error("Save video failed",
			zap.Int64("user_id", userID),
			zap.Int64("video_id", req.VideoID),
			zap.Error(err),
		)
		response.InternalError(c)
		return
	}

	c.JSON(200, dto.SaveStateResponse{Saved: true})
}

// Unsave removes a video from the caller's saved list.
// @Summary Unsave a video
// @Description Removes the video from the member's saved list; unsaving an unsaved video succeeds
// @Tags bookmarks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveVideoRequest true "video to unsave"
// @Success 200 {object} dto.SaveStateResponse "not saved"
// @Failure 400 {object} response.Body "missing or invalid fields"
// @Failure 401 {object} response.Body "missing or invalid token"
// @Router /unsave [post]
func (h *BookmarkHandler) Unsave(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req dto.SaveVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	if err := h.bookmarkService.Unsave(userID, req.VideoID); err != nil {
		logger.Error("Unsave video failed",
			zap.Int64("user_id", userID),
			zap.Int64("video_id", req.VideoID),
			zap.Error(err),
		)
		response.InternalError(c)
		return
	}

	c.JSON(200, dto.SaveStateResponse{Saved: false})
}

// ListSaved returns the caller's saved videos.
// @Summary List saved videos
// @Description Returns the member's saved videos, most recently saved first
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SavedVideoItem "saved videos"
// @Failure 401 {object} response.Body "missing or invalid token"
// @Router /saved [get]
func (h *BookmarkHandler) ListSaved(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Missing or invalid token")
		return
	}

	items, err := h.bookmarkService.ListSaved(userID)
	if err != nil {
		logger.Error("List saved videos failed", zap.Int64("user_id", userID), zap.Error(err))
		response.InternalError(c)
		return
	}

	c.JSON(200, items)
}

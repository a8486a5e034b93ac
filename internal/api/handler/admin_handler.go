package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adiweb12/Devwatsee/internal/api/dto"
	"github.com/adiweb12/Devwatsee/internal/api/response"
	"github.com/adiweb12/Devwatsee/internal/service"
	"github.com/adiweb12/Devwatsee/pkg/logger"
)

type AdminHandler struct {
	adminService   *service.AdminService
	catalogService *service.CatalogService
}

func NewAdminHandler(adminService *service.AdminService, catalogService *service.CatalogService) *AdminHandler {
	return &AdminHandler{adminService: adminService, catalogService: catalogService}
}

// Login POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	token, err := h.adminService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredential) {
			response.Unauthorized(c, "Invalid credentials")
			return
		}
		logger.Error("Admin login failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	c.JSON(200, dto.AdminLoginResponse{Success: true, Token: token})
}

// ListUsers GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	items, err := h.adminService.ListUsers()
	if err != nil {
		logger.Error("List users failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	c.JSON(200, items)
}

// ListVideos GET /admin/videos
func (h *AdminHandler) ListVideos(c *gin.Context) {
	items, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		logger.Error("List videos failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	c.JSON(200, items)
}

// CreateVideo POST /admin/videos (multipart form: title, category, section,
// video, thumbnail)
func (h *AdminHandler) CreateVideo(c *gin.Context) {
	title := c.PostForm("title")
	category := c.PostForm("category")
	section := c.PostForm("section")

	videoFile, videoErr := c.FormFile("video")
	thumbFile, thumbErr := c.FormFile("thumbnail")

	if title == "" || category == "" || videoErr != nil || thumbErr != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	video, err := videoFile.Open()
	if err != nil {
		logger.Error("Open uploaded video failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	defer video.Close()

	thumbnail, err := thumbFile.Open()
	if err != nil {
		logger.Error("Open uploaded thumbnail failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	defer thumbnail.Close()

	_, err = h.catalogService.Create(c.Request.Context(), title, category, section,
		&service.Blob{
			Reader:      video,
			Size:        videoFile.Size,
			Filename:    videoFile.Filename,
			ContentType: videoFile.Header.Get("Content-Type"),
		},
		&service.Blob{
			Reader:      thumbnail,
			Size:        thumbFile.Size,
			Filename:    thumbFile.Filename,
			ContentType: thumbFile.Header.Get("Content-Type"),
		},
	)
	if err != nil {
		logger.Error("Create video failed", zap.String("title", title), zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OKMessage(c, "Video uploaded successfully")
}

// UpdateVideo PUT /admin/videos/:id
func (h *AdminHandler) UpdateVideo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// a non-numeric id behaves like an unknown path
		response.NotFound(c, "Not found")
		return
	}

	// an absent body means an empty update
	var req dto.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "Missing required fields")
		return
	}

	if _, err := h.catalogService.Update(c.Request.Context(), id, &req); err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, "Not found")
			return
		}
		logger.Error("Update video failed", zap.Int64("video_id", id), zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OKMessage(c, "Updated successfully")
}

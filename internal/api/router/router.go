package router

import (
	"github.com/gin-gonic/gin"

	"github.com/adiweb12/Devwatsee/internal/api/handler"
	"github.com/adiweb12/Devwatsee/internal/api/middleware"
	"github.com/adiweb12/Devwatsee/pkg/utils"
)

// Setup registers every route. Member routes require a member token; the
// /admin group requires the admin token. Both run through the same bearer
// validation first.
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	videoHandler *handler.VideoHandler,
	bookmarkHandler *handler.BookmarkHandler,
	adminHandler *handler.AdminHandler,
	tokens *utils.TokenManager,
) {
	// open endpoints
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.POST("/forgot-password", authHandler.ForgotPassword)
	r.POST("/admin/login", adminHandler.Login)

	// member endpoints
	member := r.Group("", middleware.AuthRequired(tokens), middleware.UserRequired())
	{
		member.GET("/profile", userHandler.GetProfile)
		member.POST("/profile/update", userHandler.UpdateProfile)
		member.POST("/change-password", userHandler.ChangePassword)

		member.GET("/videos", videoHandler.List)
		member.GET("/videos/search", videoHandler.Search)

		member.POST("/save", bookmarkHandler.Save)
		member.POST("/unsave", bookmarkHandler.Unsave)
		member.GET("/saved", bookmarkHandler.ListSaved)
	}

	// admin endpoints
	admin := r.Group("/admin", middleware.AuthRequired(tokens), middleware.AdminRequired())
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/videos", adminHandler.ListVideos)
		admin.POST("/videos", adminHandler.CreateVideo)
		admin.PUT("/videos/:id", adminHandler.UpdateVideo)
	}
}

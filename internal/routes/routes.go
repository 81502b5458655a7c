package routes

import (
	"github.com/agoraboard/agora-backend/internal/handler"
	"github.com/agoraboard/agora-backend/internal/middleware"
	"github.com/agoraboard/agora-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	forumHandler *handler.ForumHandler,
	threadHandler *handler.ThreadHandler,
	messageHandler *handler.MessageHandler,
	moderationHandler *handler.ModerationHandler,
	ratingHandler *handler.RatingHandler,
	statisticsHandler *handler.StatisticsHandler,
	adminHandler *handler.AdminHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api/v1")

	// Authentication endpoints (no auth required)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Forum registry
	forums := api.Group("/forums")
	forums.GET("", forumHandler.ListForums)
	forums.GET("/:forum_id", forumHandler.GetForum)
	forums.POST("", middleware.JWTAuth(jwtManager), forumHandler.CreateForum)
	forums.PATCH("/:forum_id", middleware.JWTAuth(jwtManager), forumHandler.UpdateForum)

	// Threads
	forums.POST("/:forum_id/threads", middleware.JWTAuth(jwtManager), threadHandler.CreateThread)

	threads := api.Group("/threads")
	threads.GET("/:thread_id", threadHandler.GetThread)
	threads.PATCH("/:thread_id/priority", middleware.JWTAuth(jwtManager), threadHandler.ChangePriority)

	// Messages and comments
	messages := api.Group("/messages")
	messages.GET("/:message_id/history", messageHandler.GetHistory)
	messages.POST("/:message_id/comments", middleware.JWTAuth(jwtManager), messageHandler.AddComment)
	messages.PUT("/:message_id", middleware.JWTAuth(jwtManager), messageHandler.EditMessage)
	messages.DELETE("/:message_id", middleware.JWTAuth(jwtManager), messageHandler.DeleteMessage)
	messages.POST("/:message_id/split", middleware.JWTAuth(jwtManager), messageHandler.SplitBranch)

	// Moderation
	messages.POST("/:message_id/decision", middleware.JWTAuth(jwtManager), moderationHandler.Decide)

	// Ratings
	messages.GET("/:message_id/rating", ratingHandler.GetRating)
	messages.PUT("/:message_id/rating", middleware.JWTAuth(jwtManager), ratingHandler.Rate)
	messages.DELETE("/:message_id/rating", middleware.JWTAuth(jwtManager), ratingHandler.Unrate)

	// Statistics
	stats := api.Group("/statistics")
	stats.GET("/messages", statisticsHandler.MessagesRatings)
	stats.GET("/users", statisticsHandler.UsersRatings)

	// Admin
	admin := api.Group("/admin", middleware.JWTAuth(jwtManager))
	admin.POST("/users/:user_id/ban", adminHandler.BanUser)
}

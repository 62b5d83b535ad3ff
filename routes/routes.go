package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ddebortoli/social-media-api/controllers"
	"github.com/ddebortoli/social-media-api/middleware"
	"github.com/ddebortoli/social-media-api/repository"
	"github.com/ddebortoli/social-media-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo, userRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, userRepo, postRepo)

	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(userService)
	postController := controllers.NewPostController(postService, commentService)
	commentController := controllers.NewCommentController(commentService)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/token", authController.Token)
		public.POST("/token/refresh", authController.RefreshToken)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)

		SetupUserRoutes(protected, userController)
		SetupPostRoutes(protected, postController)
		SetupCommentRoutes(protected, commentController)
	}
}

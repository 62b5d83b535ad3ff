package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ddebortoli/social-media-api/controllers"
)

func SetupCommentRoutes(protected *gin.RouterGroup, commentController *controllers.CommentController) {
	comments := protected.Group("/comments")
	{
		comments.GET("/:id", commentController.GetComment)
		comments.PUT("/:id", commentController.UpdateComment)
		comments.DELETE("/:id", commentController.DeleteComment)
	}
}

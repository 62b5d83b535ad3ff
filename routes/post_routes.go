package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ddebortoli/social-media-api/controllers"
)

func SetupPostRoutes(protected *gin.RouterGroup, postController *controllers.PostController) {
	posts := protected.Group("/posts")
	{
		posts.POST("", postController.CreatePost)
		posts.GET("", postController.ListPosts)
		posts.GET("/:id", postController.GetPost)
		posts.PUT("/:id", postController.UpdatePost)
		posts.DELETE("/:id", postController.DeletePost)
		posts.GET("/:id/extended", postController.GetPostExtended)

		posts.POST("/:id/comments", postController.CreateComment)
		posts.GET("/:id/comments", postController.GetPostComments)
	}
}

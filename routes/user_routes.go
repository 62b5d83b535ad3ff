package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ddebortoli/social-media-api/controllers"
)

func SetupUserRoutes(protected *gin.RouterGroup, userController *controllers.UserController) {
	users := protected.Group("/users")
	{
		users.POST("", userController.CreateUser)
		users.GET("", userController.ListUsers)
		users.GET("/:id", userController.GetUser)
		users.PUT("/:id", userController.UpdateUser)
		users.DELETE("/:id", userController.DeleteUser)
		users.GET("/:id/stats", userController.GetUserStats)

		users.POST("/:id/follow/:targetId", userController.FollowUser)
		users.DELETE("/:id/follow/:targetId", userController.UnfollowUser)
		users.GET("/:id/followers", userController.GetFollowers)
		users.GET("/:id/following", userController.GetFollowing)
	}
}

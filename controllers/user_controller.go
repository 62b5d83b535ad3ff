package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ddebortoli/social-media-api/serializers"
	"github.com/ddebortoli/social-media-api/services"
)

type UserController struct {
	Users services.UserService
}

func NewUserController(users services.UserService) *UserController {
	return &UserController{Users: users}
}

// CreateUser handles POST /users.
func (uc *UserController) CreateUser(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username, err := serializers.ValidateUsername(input.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	email, err := serializers.ValidateEmail(input.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := uc.Users.CreateUser(c.Request.Context(), services.CreateUserRequest{
		Username: username,
		Email:    email,
		Password: input.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"created_at": user.CreatedAt,
	})
}

// ListUsers handles GET /users, returning every user with derived stats.
func (uc *UserController) ListUsers(c *gin.Context) {
	stats, err := uc.Users.ListUsersWithStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	users := make([]serializers.UserResponse, 0, len(stats))
	for i := range stats {
		users = append(users, serializers.NewUserResponse(&stats[i]))
	}

	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /users/:id, the detailed variant with follower and
// following lists.
func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := uc.Users.GetUserDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.NewUserDetailResponse(detail))
}

// GetUserStats handles GET /users/:id/stats.
func (uc *UserController) GetUserStats(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	stats, err := uc.Users.GetUserWithStats(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":         stats.User.ID,
		"username":        stats.User.Username,
		"total_posts":     stats.TotalPosts,
		"total_comments":  stats.TotalComments,
		"followers_count": stats.FollowersCount,
		"following_count": stats.FollowingCount,
	})
}

// UpdateUser handles PUT /users/:id.
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Username != "" {
		username, err := serializers.ValidateUsername(input.Username)
		if err != nil {
			respondError(c, err)
			return
		}
		input.Username = username
	}
	if input.Email != "" {
		email, err := serializers.ValidateEmail(input.Email)
		if err != nil {
			respondError(c, err)
			return
		}
		input.Email = email
	}

	user, err := uc.Users.UpdateUser(c.Request.Context(), id, services.UpdateUserRequest{
		Username: input.Username,
		Email:    input.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

// DeleteUser handles DELETE /users/:id. Removal cascades to the user's
// posts, comments and follow edges in both directions.
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := uc.Users.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// FollowUser handles POST /users/:id/follow/:targetId.
func (uc *UserController) FollowUser(c *gin.Context) {
	followerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	targetID, ok := parseIDParam(c, "targetId")
	if !ok {
		return
	}

	// Boundary check; the service re-validates and is the authority.
	alreadyFollowing, err := uc.Users.IsFollowing(c.Request.Context(), followerID, targetID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := serializers.ValidateFollowRequest(followerID, targetID, alreadyFollowing); err != nil {
		respondError(c, err)
		return
	}

	message, err := uc.Users.FollowUser(c.Request.Context(), followerID, targetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// UnfollowUser handles DELETE /users/:id/follow/:targetId.
func (uc *UserController) UnfollowUser(c *gin.Context) {
	followerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	targetID, ok := parseIDParam(c, "targetId")
	if !ok {
		return
	}

	message, err := uc.Users.UnfollowUser(c.Request.Context(), followerID, targetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// GetFollowers handles GET /users/:id/followers.
func (uc *UserController) GetFollowers(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	followers, err := uc.Users.GetFollowers(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"followers": serializers.NewUserRefs(followers)})
}

// GetFollowing handles GET /users/:id/following.
func (uc *UserController) GetFollowing(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	following, err := uc.Users.GetFollowing(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": serializers.NewUserRefs(following)})
}

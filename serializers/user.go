package serializers

import (
	"github.com/ddebortoli/social-media-api/models"
	"github.com/ddebortoli/social-media-api/services"
)

// UserRef is the minimal user record nested in other representations.
type UserRef struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type UserResponse struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	TotalPosts     int64     `json:"total_posts"`
	TotalComments  int64     `json:"total_comments"`
	FollowersCount int64     `json:"followers_count"`
	FollowingCount int64     `json:"following_count"`
	Followers      []UserRef `json:"followers,omitempty"`
	Following      []UserRef `json:"following,omitempty"`
}

func NewUserRef(user *models.User) UserRef {
	return UserRef{ID: user.ID, Username: user.Username}
}

func NewUserRefs(users []models.User) []UserRef {
	refs := make([]UserRef, 0, len(users))
	for i := range users {
		refs = append(refs, NewUserRef(&users[i]))
	}
	return refs
}

func NewUserResponse(stats *services.UserStats) UserResponse {
	return UserResponse{
		ID:             stats.User.ID,
		Username:       stats.User.Username,
		Email:          stats.User.Email,
		TotalPosts:     stats.TotalPosts,
		TotalComments:  stats.TotalComments,
		FollowersCount: stats.FollowersCount,
		FollowingCount: stats.FollowingCount,
	}
}

// NewUserDetailResponse is the base representation plus the full follower and
// following lists.
func NewUserDetailResponse(detail *services.UserDetail) UserResponse {
	resp := NewUserResponse(&detail.UserStats)
	resp.Followers = NewUserRefs(detail.Followers)
	resp.Following = NewUserRefs(detail.Following)
	return resp
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ddebortoli/social-media-api/models"
	"github.com/ddebortoli/social-media-api/repository"
)

type CreateUserRequest struct {
	Username string
	Email    string
	Password string
}

type UpdateUserRequest struct {
	Username string
	Email    string
}

// UserStats is a user together with counts derived from stored relations,
// computed at read time and never persisted.
type UserStats struct {
	User           models.User
	TotalPosts     int64
	TotalComments  int64
	FollowersCount int64
	FollowingCount int64
}

type UserDetail struct {
	UserStats
	Followers []models.User
	Following []models.User
}

type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error)
	ListUsersWithStats(ctx context.Context) ([]UserStats, error)
	GetUserWithStats(ctx context.Context, id uint) (*UserStats, error)
	GetUserDetail(ctx context.Context, id uint) (*UserDetail, error)
	UpdateUser(ctx context.Context, id uint, req UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error
	GetFollowers(ctx context.Context, id uint) ([]models.User, error)
	GetFollowing(ctx context.Context, id uint) ([]models.User, error)
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	FollowUser(ctx context.Context, followerID, targetID uint) (string, error)
	UnfollowUser(ctx context.Context, followerID, targetID uint) (string, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if username == "" || email == "" || req.Password == "" {
		return nil, NewValidationError("Username, email, and password are required")
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewValidationError("Username already exists")
	}

	existing, err = s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewValidationError("Email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.users.Create(ctx, &user); err != nil {
		// A concurrent create can slip past the pre-checks; the unique
		// constraint is the arbiter.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewValidationError("Username or email already exists")
		}
		return nil, err
	}
	return &user, nil
}

func (s *userService) statsFor(ctx context.Context, user models.User) (*UserStats, error) {
	totalPosts, err := s.users.CountPostsByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	totalComments, err := s.users.CountCommentsByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	followers, err := s.users.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.users.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &UserStats{
		User:           user,
		TotalPosts:     totalPosts,
		TotalComments:  totalComments,
		FollowersCount: followers,
		FollowingCount: following,
	}, nil
}

func (s *userService) ListUsersWithStats(ctx context.Context) ([]UserStats, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	stats := make([]UserStats, 0, len(users))
	for _, user := range users {
		st, err := s.statsFor(ctx, user)
		if err != nil {
			return nil, err
		}
		stats = append(stats, *st)
	}
	return stats, nil
}

func (s *userService) GetUserWithStats(ctx context.Context, id uint) (*UserStats, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewNotFoundError("User not found")
	}
	return s.statsFor(ctx, *user)
}

func (s *userService) GetUserDetail(ctx context.Context, id uint) (*UserDetail, error) {
	stats, err := s.GetUserWithStats(ctx, id)
	if err != nil {
		return nil, err
	}
	followers, err := s.users.GetFollowers(ctx, id)
	if err != nil {
		return nil, err
	}
	following, err := s.users.GetFollowing(ctx, id)
	if err != nil {
		return nil, err
	}
	return &UserDetail{
		UserStats: *stats,
		Followers: followers,
		Following: following,
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, req UpdateUserRequest) (*models.User, error) {
	updates := map[string]interface{}{}

	if username := strings.TrimSpace(req.Username); username != "" {
		taken, err := s.users.GetByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		if taken != nil && taken.ID != id {
			return nil, NewValidationError("Username already exists")
		}
		updates["username"] = username
	}
	if email := strings.ToLower(strings.TrimSpace(req.Email)); email != "" {
		taken, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if taken != nil && taken.ID != id {
			return nil, NewValidationError("Email already exists")
		}
		updates["email"] = email
	}
	if len(updates) == 0 {
		return nil, NewValidationError("Nothing to update")
	}

	user, err := s.users.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewValidationError("Username or email already exists")
		}
		return nil, err
	}
	if user == nil {
		return nil, NewNotFoundError("User not found")
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return NewNotFoundError("User not found")
	}
	return nil
}

func (s *userService) GetFollowers(ctx context.Context, id uint) ([]models.User, error) {
	return s.users.GetFollowers(ctx, id)
}

func (s *userService) GetFollowing(ctx context.Context, id uint) ([]models.User, error) {
	return s.users.GetFollowing(ctx, id)
}

func (s *userService) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.users.IsFollowing(ctx, followerID, followingID)
}

func (s *userService) FollowUser(ctx context.Context, followerID, targetID uint) (string, error) {
	follower, err := s.users.GetByID(ctx, followerID)
	if err != nil {
		return "", err
	}
	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return "", err
	}
	if follower == nil || target == nil {
		return "", NewNotFoundError("One or both users not found")
	}

	if followerID == targetID {
		return "", NewValidationError("Users cannot follow themselves")
	}

	following, err := s.users.IsFollowing(ctx, followerID, targetID)
	if err != nil {
		return "", err
	}
	if following {
		return "", NewValidationError("Already following this user")
	}

	if err := s.users.CreateFollow(ctx, followerID, targetID); err != nil {
		// Two concurrent follows race past the pre-check; the unique index
		// on the pair decides, and the loser gets the same validation error.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", NewValidationError("Already following this user")
		}
		return "", err
	}

	return fmt.Sprintf("%s is now following %s", follower.Username, target.Username), nil
}

func (s *userService) UnfollowUser(ctx context.Context, followerID, targetID uint) (string, error) {
	follower, err := s.users.GetByID(ctx, followerID)
	if err != nil {
		return "", err
	}
	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return "", err
	}
	if follower == nil || target == nil {
		return "", NewNotFoundError("One or both users not found")
	}

	removed, err := s.users.DeleteFollow(ctx, followerID, targetID)
	if err != nil {
		return "", err
	}
	if !removed {
		return "", NewValidationError("Not following this user")
	}

	return fmt.Sprintf("%s unfollowed %s", follower.Username, target.Username), nil
}

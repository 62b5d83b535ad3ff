package repository

import (
	"context"
	"time"

	"github.com/ddebortoli/social-media-api/models"
)

// All lookups report a missing row as (nil, nil) rather than an error, so
// callers branch on the value instead of unwrapping sentinel errors.

type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.User, error)
	Delete(ctx context.Context, id uint) (bool, error)

	GetFollowers(ctx context.Context, userID uint) ([]models.User, error)
	GetFollowing(ctx context.Context, userID uint) ([]models.User, error)
	CountFollowers(ctx context.Context, userID uint) (int64, error)
	CountFollowing(ctx context.Context, userID uint) (int64, error)
	CountPostsByAuthor(ctx context.Context, userID uint) (int64, error)
	CountCommentsByAuthor(ctx context.Context, userID uint) (int64, error)

	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	CreateFollow(ctx context.Context, followerID, followingID uint) error
	DeleteFollow(ctx context.Context, followerID, followingID uint) (bool, error)
}

type PostFilters struct {
	AuthorID *uint
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

type PostRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetFiltered(ctx context.Context, filters PostFilters) ([]models.Post, error)
	GetRecent(ctx context.Context, limit int) ([]models.Post, error)
	GetByAuthor(ctx context.Context, authorID uint) ([]models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, id uint, content string) (*models.Post, error)
	Delete(ctx context.Context, id uint) (bool, error)

	CountComments(ctx context.Context, postID uint) (int64, error)
	GetRecentComments(ctx context.Context, postID uint, limit int) ([]models.Comment, error)
}

type CommentRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	GetAll(ctx context.Context) ([]models.Comment, error)
	GetByPost(ctx context.Context, postID uint) ([]models.Comment, error)
	GetByAuthor(ctx context.Context, authorID uint) ([]models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	Update(ctx context.Context, id uint, content string) (*models.Comment, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

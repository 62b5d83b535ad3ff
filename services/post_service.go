package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/ddebortoli/social-media-api/models"
	"github.com/ddebortoli/social-media-api/repository"
)

const (
	// Content beyond this many characters is rejected, never truncated.
	MaxPostContentLength = 5000

	DefaultPostPageSize = 20
	MaxPostPageSize     = 100

	DefaultRecentCommentsLimit = 3
)

// PostDetail is a post with its most recent comments and the total comment
// count, which is independent of the recent-comments limit.
type PostDetail struct {
	Post           models.Post
	RecentComments []models.Comment
	TotalComments  int64
}

// PostExtended additionally carries the complete comment list and the
// author's full stats.
type PostExtended struct {
	PostDetail
	Comments []models.Comment
	Author   UserStats
}

type PostService interface {
	CreatePost(ctx context.Context, authorID uint, content string) (*models.Post, error)
	ListPosts(ctx context.Context, filters repository.PostFilters) ([]PostDetail, error)
	GetPostWithComments(ctx context.Context, postID uint, commentsLimit int) (*PostDetail, error)
	GetPostExtended(ctx context.Context, postID uint) (*PostExtended, error)
	UpdatePost(ctx context.Context, postID uint, content string) (*models.Post, error)
	DeletePost(ctx context.Context, postID uint) error
}

type postService struct {
	posts    repository.PostRepository
	users    repository.UserRepository
	comments repository.CommentRepository
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository, comments repository.CommentRepository) PostService {
	return &postService{posts: posts, users: users, comments: comments}
}

func validatePostContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return NewValidationError("Post content cannot be empty")
	}
	if utf8.RuneCountInString(content) > MaxPostContentLength {
		return NewValidationError("Post content cannot exceed 5000 characters")
	}
	return nil
}

func (s *postService) CreatePost(ctx context.Context, authorID uint, content string) (*models.Post, error) {
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, NewNotFoundError("Author not found")
	}

	if err := validatePostContent(content); err != nil {
		return nil, err
	}

	post := models.Post{
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.posts.Create(ctx, &post); err != nil {
		return nil, err
	}
	post.Author = *author
	return &post, nil
}

func (s *postService) detailFor(ctx context.Context, post models.Post, commentsLimit int) (*PostDetail, error) {
	if commentsLimit <= 0 {
		commentsLimit = DefaultRecentCommentsLimit
	}
	recent, err := s.posts.GetRecentComments(ctx, post.ID, commentsLimit)
	if err != nil {
		return nil, err
	}
	total, err := s.posts.CountComments(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return &PostDetail{
		Post:           post,
		RecentComments: recent,
		TotalComments:  total,
	}, nil
}

func (s *postService) ListPosts(ctx context.Context, filters repository.PostFilters) ([]PostDetail, error) {
	if filters.Limit <= 0 {
		filters.Limit = DefaultPostPageSize
	}
	if filters.Limit > MaxPostPageSize {
		filters.Limit = MaxPostPageSize
	}

	posts, err := s.posts.GetFiltered(ctx, filters)
	if err != nil {
		return nil, err
	}

	details := make([]PostDetail, 0, len(posts))
	for _, post := range posts {
		detail, err := s.detailFor(ctx, post, DefaultRecentCommentsLimit)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *postService) GetPostWithComments(ctx context.Context, postID uint, commentsLimit int) (*PostDetail, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, NewNotFoundError("Post not found")
	}
	return s.detailFor(ctx, *post, commentsLimit)
}

func (s *postService) GetPostExtended(ctx context.Context, postID uint) (*PostExtended, error) {
	detail, err := s.GetPostWithComments(ctx, postID, DefaultRecentCommentsLimit)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.GetByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	totalPosts, err := s.users.CountPostsByAuthor(ctx, detail.Post.AuthorID)
	if err != nil {
		return nil, err
	}
	totalComments, err := s.users.CountCommentsByAuthor(ctx, detail.Post.AuthorID)
	if err != nil {
		return nil, err
	}
	followers, err := s.users.CountFollowers(ctx, detail.Post.AuthorID)
	if err != nil {
		return nil, err
	}
	following, err := s.users.CountFollowing(ctx, detail.Post.AuthorID)
	if err != nil {
		return nil, err
	}

	return &PostExtended{
		PostDetail: *detail,
		Comments:   comments,
		Author: UserStats{
			User:           detail.Post.Author,
			TotalPosts:     totalPosts,
			TotalComments:  totalComments,
			FollowersCount: followers,
			FollowingCount: following,
		},
	}, nil
}

func (s *postService) UpdatePost(ctx context.Context, postID uint, content string) (*models.Post, error) {
	if err := validatePostContent(content); err != nil {
		return nil, err
	}
	post, err := s.posts.Update(ctx, postID, content)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, NewNotFoundError("Post not found")
	}
	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, postID uint) error {
	deleted, err := s.posts.Delete(ctx, postID)
	if err != nil {
		return err
	}
	if !deleted {
		return NewNotFoundError("Post not found")
	}
	return nil
}

package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/ddebortoli/social-media-api/models"
	"github.com/ddebortoli/social-media-api/repository"
)

const MaxCommentContentLength = 1000

type CommentService interface {
	CreateComment(ctx context.Context, authorID, postID uint, content string) (*models.Comment, error)
	GetCommentsForPost(ctx context.Context, postID uint) ([]models.Comment, error)
	GetComment(ctx context.Context, id uint) (*models.Comment, error)
	UpdateComment(ctx context.Context, id uint, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, id uint) error
}

type commentService struct {
	comments repository.CommentRepository
	users    repository.UserRepository
	posts    repository.PostRepository
}

func NewCommentService(comments repository.CommentRepository, users repository.UserRepository, posts repository.PostRepository) CommentService {
	return &commentService{comments: comments, users: users, posts: posts}
}

func validateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return NewValidationError("Comment content cannot be empty")
	}
	if utf8.RuneCountInString(content) > MaxCommentContentLength {
		return NewValidationError("Comment content cannot exceed 1000 characters")
	}
	return nil
}

func (s *commentService) CreateComment(ctx context.Context, authorID, postID uint, content string) (*models.Comment, error) {
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, NewNotFoundError("Author not found")
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, NewNotFoundError("Post not found")
	}

	if err := validateCommentContent(content); err != nil {
		return nil, err
	}

	comment := models.Comment{
		AuthorID: authorID,
		PostID:   postID,
		Content:  content,
	}
	if err := s.comments.Create(ctx, &comment); err != nil {
		return nil, err
	}
	comment.Author = *author
	return &comment, nil
}

// GetCommentsForPost returns newest-first comments. An unknown post yields an
// empty slice, not an error.
func (s *commentService) GetCommentsForPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.comments.GetByPost(ctx, postID)
}

func (s *commentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, NewNotFoundError("Comment not found")
	}
	return comment, nil
}

func (s *commentService) UpdateComment(ctx context.Context, id uint, content string) (*models.Comment, error) {
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}
	comment, err := s.comments.Update(ctx, id, content)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, NewNotFoundError("Comment not found")
	}
	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, id uint) error {
	deleted, err := s.comments.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return NewNotFoundError("Comment not found")
	}
	return nil
}

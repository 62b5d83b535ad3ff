package serializers

import (
	"time"

	"github.com/ddebortoli/social-media-api/models"
)

type CommentResponse struct {
	ID        uint      `json:"id"`
	Author    UserRef   `json:"author"`
	Post      uint      `json:"post"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCommentResponse(comment *models.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		Author:    NewUserRef(&comment.Author),
		Post:      comment.PostID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

func NewCommentResponses(comments []models.Comment) []CommentResponse {
	resps := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		resps = append(resps, NewCommentResponse(&comments[i]))
	}
	return resps
}

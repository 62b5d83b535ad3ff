package serializers

import (
	"time"

	"github.com/ddebortoli/social-media-api/services"
)

type PostResponse struct {
	ID                uint              `json:"id"`
	Author            uint              `json:"author"`
	Content           string            `json:"content"`
	CreatedAt         time.Time         `json:"created_at"`
	CreatorInfo       UserRef           `json:"creator_info"`
	CommentsCount     int64             `json:"comments_count"`
	LastThreeComments []CommentResponse `json:"last_three_comments"`
	Comments          []CommentResponse `json:"comments,omitempty"`
	AuthorDetail      *UserResponse     `json:"author_detail,omitempty"`
}

func NewPostResponse(detail *services.PostDetail) PostResponse {
	return PostResponse{
		ID:                detail.Post.ID,
		Author:            detail.Post.AuthorID,
		Content:           detail.Post.Content,
		CreatedAt:         detail.Post.CreatedAt,
		CreatorInfo:       NewUserRef(&detail.Post.Author),
		CommentsCount:     detail.TotalComments,
		LastThreeComments: NewCommentResponses(detail.RecentComments),
	}
}

func NewPostResponses(details []services.PostDetail) []PostResponse {
	resps := make([]PostResponse, 0, len(details))
	for i := range details {
		resps = append(resps, NewPostResponse(&details[i]))
	}
	return resps
}

// NewPostExtendedResponse is the base representation plus the complete
// comment list and the author's full representation.
func NewPostExtendedResponse(extended *services.PostExtended) PostResponse {
	resp := NewPostResponse(&extended.PostDetail)
	resp.Comments = NewCommentResponses(extended.Comments)
	author := NewUserResponse(&extended.Author)
	resp.AuthorDetail = &author
	return resp
}

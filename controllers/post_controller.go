package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ddebortoli/social-media-api/repository"
	"github.com/ddebortoli/social-media-api/serializers"
	"github.com/ddebortoli/social-media-api/services"
	"github.com/ddebortoli/social-media-api/utils"
)

type PostController struct {
	Posts    services.PostService
	Comments services.CommentService
}

func NewPostController(posts services.PostService, comments services.CommentService) *PostController {
	return &PostController{Posts: posts, Comments: comments}
}

// CreatePost handles POST /posts. The author is the authenticated user.
func (pc *PostController) CreatePost(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := serializers.ValidatePostContent(input.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	post, err := pc.Posts.CreatePost(c.Request.Context(), currentUser.UserID, content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         post.ID,
		"author":     post.AuthorID,
		"content":    post.Content,
		"created_at": post.CreatedAt,
	})
}

func parseTimeQuery(value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, true
		}
	}
	return nil, false
}

// ListPosts handles GET /posts with optional author_id, from_date and
// to_date filters, newest-first, paginated.
func (pc *PostController) ListPosts(c *gin.Context) {
	filters := repository.PostFilters{}

	if raw := c.Query("author_id"); raw != "" {
		authorID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid author_id parameter"})
			return
		}
		id := uint(authorID)
		filters.AuthorID = &id
	}

	from, ok := parseTimeQuery(c.Query("from_date"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from_date parameter"})
		return
	}
	filters.From = from

	to, ok := parseTimeQuery(c.Query("to_date"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to_date parameter"})
		return
	}
	filters.To = to

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(services.DefaultPostPageSize)))
	if pageSize < 1 {
		pageSize = services.DefaultPostPageSize
	}
	if pageSize > services.MaxPostPageSize {
		pageSize = services.MaxPostPageSize
	}
	filters.Limit = pageSize
	filters.Offset = (page - 1) * pageSize

	details, err := pc.Posts.ListPosts(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results":   serializers.NewPostResponses(details),
		"page":      page,
		"page_size": pageSize,
	})
}

// GetPost handles GET /posts/:id: the post, its three most recent comments
// and the total comment count.
func (pc *PostController) GetPost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := pc.Posts.GetPostWithComments(c.Request.Context(), id, services.DefaultRecentCommentsLimit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.NewPostResponse(detail))
}

// GetPostExtended handles GET /posts/:id/extended, adding the complete
// comment list and the author's full representation.
func (pc *PostController) GetPostExtended(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	extended, err := pc.Posts.GetPostExtended(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.NewPostExtendedResponse(extended))
}

// UpdatePost handles PUT /posts/:id (full content replace).
func (pc *PostController) UpdatePost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := serializers.ValidatePostContent(input.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	post, err := pc.Posts.UpdatePost(c.Request.Context(), id, content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         post.ID,
		"author":     post.AuthorID,
		"content":    post.Content,
		"created_at": post.CreatedAt,
	})
}

// DeletePost handles DELETE /posts/:id. Comments are removed with the post.
func (pc *PostController) DeletePost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := pc.Posts.DeletePost(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// CreateComment handles POST /posts/:id/comments. The author is the
// authenticated user.
func (pc *PostController) CreateComment(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := serializers.ValidateCommentContent(input.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	comment, err := pc.Comments.CreateComment(c.Request.Context(), currentUser.UserID, postID, content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializers.NewCommentResponse(comment))
}

// GetPostComments handles GET /posts/:id/comments, newest-first. A post
// with no comments yields an empty list, not an error.
func (pc *PostController) GetPostComments(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := pc.Comments.GetCommentsForPost(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": serializers.NewCommentResponses(comments)})
}

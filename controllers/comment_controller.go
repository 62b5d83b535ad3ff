package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ddebortoli/social-media-api/serializers"
	"github.com/ddebortoli/social-media-api/services"
)

type CommentController struct {
	Comments services.CommentService
}

func NewCommentController(comments services.CommentService) *CommentController {
	return &CommentController{Comments: comments}
}

// GetComment handles GET /comments/:id.
func (cc *CommentController) GetComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comment, err := cc.Comments.GetComment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.NewCommentResponse(comment))
}

// UpdateComment handles PUT /comments/:id (full content replace).
func (cc *CommentController) UpdateComment(c *gin.Context) {
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

	content, err := serializers.ValidateCommentContent(input.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	comment, err := cc.Comments.UpdateComment(c.Request.Context(), id, content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.NewCommentResponse(comment))
}

// DeleteComment handles DELETE /comments/:id.
func (cc *CommentController) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := cc.Comments.DeleteComment(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

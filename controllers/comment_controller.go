package controllers

import (
	"net/http"
	"strconv"

	"blogapi/middleware"
	"blogapi/models"
	"blogapi/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentController struct {
	commentService *services.CommentService
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{
		commentService: services.NewCommentService(db),
	}
}

// CreateComment accepts a comment from anyone; it stays hidden until an
// admin approves it.
func (cc *CommentController) CreateComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	comment, err := cc.commentService.CreateComment(c.Param("slug"), &req)
	if err != nil {
		fail(c, err, "Post")
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (cc *CommentController) ApproveComment(c *gin.Context) {
	if middleware.RequireAdmin(c) == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	comment, err := cc.commentService.ApproveComment(uint(id))
	if err != nil {
		fail(c, err, "Comment")
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	if middleware.RequireAdmin(c) == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	if err := cc.commentService.DeleteComment(uint(id)); err != nil {
		fail(c, err, "Comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

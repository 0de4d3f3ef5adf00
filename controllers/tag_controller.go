package controllers

import (
	"net/http"

	"blogapi/cache"
	"blogapi/middleware"
	"blogapi/models"
	"blogapi/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TagController struct {
	tagService *services.TagService
	cache      *cache.Cache
}

func NewTagController(db *gorm.DB, c *cache.Cache) *TagController {
	return &TagController{
		tagService: services.NewTagService(db),
		cache:      c,
	}
}

func (tc *TagController) ListTags(c *gin.Context) {
	if cached, ok := tc.cache.Get(cache.KeyTags); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	tags, err := tc.tagService.ListTags()
	if err != nil {
		fail(c, err, "Tags")
		return
	}

	tc.cache.Set(cache.KeyTags, tags)
	c.JSON(http.StatusOK, tags)
}

func (tc *TagController) CreateTag(c *gin.Context) {
	if middleware.RequireAdmin(c) == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	tag, err := tc.tagService.CreateTag(&req)
	if err != nil {
		fail(c, err, "Tag")
		return
	}

	tc.cache.Invalidate(cache.KeyTags)
	c.JSON(http.StatusCreated, tag)
}

func (tc *TagController) DeleteTag(c *gin.Context) {
	if middleware.RequireAdmin(c) == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tag ID is required"})
		return
	}

	if err := tc.tagService.DeleteTag(req.ID); err != nil {
		fail(c, err, "Tag")
		return
	}

	tc.cache.Invalidate(cache.KeyTags)
	tc.cache.Invalidate(cache.KeyPosts)
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted successfully"})
}

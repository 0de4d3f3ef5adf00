package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"blogapi/cache"
	"blogapi/middleware"
	"blogapi/models"
	"blogapi/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	postService *services.PostService
	cache       *cache.Cache
}

func NewPostController(db *gorm.DB, c *cache.Cache) *PostController {
	return &PostController{
		postService: services.NewPostService(db),
		cache:       c,
	}
}

// ListPosts answers GET /posts with one page of summaries. Query params:
// page, limit, category, tag, search, published.
func (pc *PostController) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := models.PostFilter{
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Search:   c.Query("search"),
	}
	if published := c.Query("published"); published != "" {
		v := published == "true"
		filter.Published = &v
	}

	key := fmt.Sprintf("%s:%s", cache.KeyPosts, c.Request.URL.RawQuery)
	if cached, ok := pc.cache.Get(key); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	list, err := pc.postService.ListPosts(filter, page, limit)
	if err != nil {
		fail(c, err, "Posts")
		return
	}

	pc.cache.Set(key, list)
	c.JSON(http.StatusOK, list)
}

// GetPost answers GET /posts/:slug with the full published post, approved
// comments included.
func (pc *PostController) GetPost(c *gin.Context) {
	post, err := pc.postService.GetPostBySlug(c.Param("slug"))
	if err != nil {
		fail(c, err, "Post")
		return
	}

	c.JSON(http.StatusOK, post)
}

func (pc *PostController) CreatePost(c *gin.Context) {
	claims := middleware.RequireAdmin(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	post, err := pc.postService.CreatePost(claims.UserID, &req)
	if err != nil {
		fail(c, err, "A post with this title")
		return
	}

	pc.cache.Invalidate(cache.KeyPosts)
	c.JSON(http.StatusCreated, post)
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	if middleware.RequireAdmin(c) == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post ID is required"})
		return
	}

	post, err := pc.postService.UpdatePost(&req)
	if err != nil {
		fail(c, err, "Post")
		return
	}

	pc.cache.Invalidate(cache.KeyPosts)
	c.JSON(http.StatusOK, post)
}

func (pc *PostController) DeletePost(c *gin.Context) {
	if middleware.RequireAdmin(c) == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post ID is required"})
		return
	}

	if err := pc.postService.DeletePost(req.ID); err != nil {
		fail(c, err, "Post")
		return
	}

	pc.cache.Invalidate(cache.KeyPosts)
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

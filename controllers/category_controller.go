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

type CategoryController struct {
	categoryService *services.CategoryService
	cache           *cache.Cache
}

func NewCategoryController(db *gorm.DB, c *cache.Cache) *CategoryController {
	return &CategoryController{
		categoryService: services.NewCategoryService(db),
		cache:           c,
	}
}

func (cc *CategoryController) ListCategories(c *gin.Context) {
	if cached, ok := cc.cache.Get(cache.KeyCategories); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	cats, err := cc.categoryService.ListCategories()
	if err != nil {
		fail(c, err, "Categories")
		return
	}

	cc.cache.Set(cache.KeyCategories, cats)
	c.JSON(http.StatusOK, cats)
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	if middleware.RequireAdmin(c) == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	cat, err := cc.categoryService.CreateCategory(&req)
	if err != nil {
		fail(c, err, "Category")
		return
	}

	cc.cache.Invalidate(cache.KeyCategories)
	c.JSON(http.StatusCreated, cat)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	if middleware.RequireAdmin(c) == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category ID is required"})
		return
	}

	cat, err := cc.categoryService.UpdateCategory(&req)
	if err != nil {
		fail(c, err, "Category")
		return
	}

	cc.cache.Invalidate(cache.KeyCategories)
	c.JSON(http.StatusOK, cat)
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	if middleware.RequireAdmin(c) == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category ID is required"})
		return
	}

	if err := cc.categoryService.DeleteCategory(req.ID); err != nil {
		fail(c, err, "Category")
		return
	}

	cc.cache.Invalidate(cache.KeyCategories)
	cc.cache.Invalidate(cache.KeyPosts)
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

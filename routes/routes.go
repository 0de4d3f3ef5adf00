package routes

import (
	"blogapi/controllers"
	"blogapi/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	authController *controllers.AuthController,
	postController *controllers.PostController,
	categoryController *controllers.CategoryController,
	tagController *controllers.TagController,
	commentController *controllers.CommentController,
	healthController *controllers.HealthController,
) {
	r.GET("/health", healthController.Health)

	api := r.Group("/api/v1")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/login", authController.Login)
			admin.POST("/logout", authController.Logout)
		}

		api.GET("/auth/session", authController.Session)

		posts := api.Group("/posts")
		{
			posts.GET("", postController.ListPosts)
			posts.GET("/:slug", postController.GetPost)
			posts.POST("/:slug/comments", commentController.CreateComment)

			// Mutations re-check the admin guard inside each handler too;
			// the group middleware only covers requests routed through it.
			posts.POST("", middleware.AdminRequired(), postController.CreatePost)
			posts.PUT("", middleware.AdminRequired(), postController.UpdatePost)
			posts.DELETE("", middleware.AdminRequired(), postController.DeletePost)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryController.ListCategories)
			categories.POST("", middleware.AdminRequired(), categoryController.CreateCategory)
			categories.PUT("", middleware.AdminRequired(), categoryController.UpdateCategory)
			categories.DELETE("", middleware.AdminRequired(), categoryController.DeleteCategory)
		}

		tags := api.Group("/tags")
		{
			tags.GET("", tagController.ListTags)
			tags.POST("", middleware.AdminRequired(), tagController.CreateTag)
			tags.DELETE("", middleware.AdminRequired(), tagController.DeleteTag)
		}

		comments := api.Group("/comments")
		comments.Use(middleware.AdminRequired())
		{
			comments.PUT("/:id/approve", commentController.ApproveComment)
			comments.DELETE("/:id", commentController.DeleteComment)
		}
	}
}

package routes

import (
	"net/http"

	"siteapi/controllers"
	"siteapi/handlers"
	"siteapi/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	jwtSecret string,
	blogController *controllers.BlogController,
	aiController *controllers.AIController,
	projectController *controllers.ProjectController,
	adminController *controllers.AdminController,
	w *handlers.WebSocketHandler,
) {
	auth := middleware.AuthRequired(jwtSecret)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		blog := api.Group("/blog")
		{
			blog.GET("/posts", blogController.ListPosts)
			blog.GET("/posts/:id", blogController.GetPost)
			blog.GET("/posts/:id/ai-results", blogController.GetAIResults)
			blog.GET("/tags", blogController.GetTags)

			blog.POST("/posts", auth, blogController.CreatePost)
			blog.PUT("/posts/:id", auth, blogController.UpdatePost)
			blog.DELETE("/posts/:id", auth, blogController.DeletePost)

			blog.POST("/ai/:operation", auth, aiController.Run)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectController.ListProjects)
			projects.GET("/:id", projectController.GetProject)

			projects.POST("", auth, projectController.CreateProject)
			projects.PUT("/:id", auth, projectController.UpdateProject)
			projects.DELETE("/:id", auth, projectController.DeleteProject)
			projects.POST("/upload-image", auth, projectController.UploadImage)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", adminController.Login)
			admin.POST("/register", adminController.Register)
			admin.GET("/dashboard", auth, adminController.Dashboard)
			admin.GET("/ws", auth, w.HandleWebSocket)
		}
	}
}

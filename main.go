package main

import (
	"context"
	"log"

	"siteapi/config"
	"siteapi/controllers"
	"siteapi/database"
	"siteapi/handlers"
	"siteapi/middleware"
	"siteapi/routes"
	"siteapi/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
	}()

	r := gin.Default()

	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Logger())
	r.Use(middleware.ErrorHandler())

	hubService := services.NewHubService()
	mediaService := services.NewMediaService(cfg.MediaRoot)
	blogService := services.NewBlogService(db.BlogPosts())
	projectService := services.NewProjectService(db.Projects(), mediaService)
	adminService := services.NewAdminService(db.Admins(), db.Projects(), db.Services(), db.Testimonials(), db.ContactMessages())
	aiService := services.NewAIService(services.NewOpenAIClient(cfg.OpenAIKey), blogService)

	blogController := controllers.NewBlogController(blogService, hubService)
	aiController := controllers.NewAIController(aiService)
	projectController := controllers.NewProjectController(projectService, mediaService, hubService)
	adminController := controllers.NewAdminController(adminService, cfg.JWTSecret)
	wsHandler := handlers.NewWebSocketHandler(hubService)

	routes.SetupRoutes(r, cfg.JWTSecret, blogController, aiController, projectController, adminController, wsHandler)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

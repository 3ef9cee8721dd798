package main

import (
	"log"
	"net/http"
	"time"

	"campus-news-api/config"
	"campus-news-api/handlers"
	"campus-news-api/helper"
	"campus-news-api/middleware"
	"campus-news-api/models"
	"campus-news-api/repositories"
	"campus-news-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	db := config.InitDB(cfg)

	httpHelper := helper.NewHTTPHelper(cfg.Diagnostic())

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	adRepo := repositories.NewAdRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	storyRepo := repositories.NewStoryRepository(db)
	contactRepo := repositories.NewContactRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWT)
	articleService := services.NewArticleService(articleRepo)
	searchService := services.NewSearchService(articleRepo, userRepo)
	gateway := services.NewPaystackGateway(cfg.Payment)
	adService := services.NewAdService(adRepo, settingsRepo, gateway)
	commentService := services.NewCommentService(commentRepo, articleRepo, settingsRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	storyService := services.NewStoryService(storyRepo, settingsRepo)
	contactService := services.NewContactService(contactRepo)
	uploadService := services.NewUploadService(cfg.Upload)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	articleHandler := handlers.NewArticleHandler(articleService, httpHelper)
	searchHandler := handlers.NewSearchHandler(searchService, httpHelper)
	adHandler := handlers.NewAdHandler(adService, httpHelper)
	commentHandler := handlers.NewCommentHandler(commentService, httpHelper)
	settingsHandler := handlers.NewSettingsHandler(settingsService, httpHelper)
	storyHandler := handlers.NewStoryHandler(storyService, httpHelper)
	contactHandler := handlers.NewContactHandler(contactService, httpHelper)
	securityHandler := handlers.NewSecurityHandler()
	uploadHandler := handlers.NewUploadHandler(uploadService, httpHelper)
	userHandler := handlers.NewUserHandler(userRepo, httpHelper)

	mw := middleware.New(httpHelper, userRepo, cfg.JWT)

	// Setup router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(mw.Recovery())
	router.Use(middleware.RequestTimeout(15 * time.Second))

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		httpHelper.SendAPIError(c, models.NewAPIError(models.ErrMethodNotAllowed, "method not allowed"))
	})
	router.NoRoute(func(c *gin.Context) {
		httpHelper.SendAPIError(c, models.NotFound("route not found"))
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/user", mw.Auth(), authHandler.GetUser)
		}

		// Public article routes
		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.GetPublishedArticles)
			articles.GET("/search/suggestions", searchHandler.Suggestions)
			articles.GET("/:slug", articleHandler.GetPublishedArticle)
			articles.GET("/:slug/comments", commentHandler.ListByArticle)
			articles.POST("/:slug/comments", mw.Auth(), commentHandler.Create)
		}

		// Public ad routes
		ads := v1.Group("/ads")
		{
			ads.POST("/submit", adHandler.Submit)
			ads.POST("/submit-simple", adHandler.SubmitSimple)
			ads.GET("/my-submissions", adHandler.MySubmissions)
			ads.POST("/payment/initialize", adHandler.InitializePayment)
			ads.GET("/payment/verify", adHandler.VerifyPayment)
			ads.GET("/:id", adHandler.GetPublicAd)
		}

		// Public intake routes
		v1.POST("/stories/submit", storyHandler.Submit)
		v1.POST("/contact", contactHandler.Submit)
		v1.POST("/security/csp-report", securityHandler.CSPReport)
		v1.POST("/uploads/sign", uploadHandler.Sign)

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(mw.Auth(), mw.RequireRole(models.RoleAdmin))
		{
			admin.GET("/users", userHandler.AdminList)
			admin.PUT("/users/:id", userHandler.AdminUpdate)
			admin.DELETE("/users/:id", userHandler.AdminDelete)

			admin.GET("/comments", commentHandler.AdminList)
			admin.DELETE("/comments/:id", commentHandler.AdminDelete)

			admin.GET("/ads", adHandler.AdminList)
			admin.GET("/ads/:id", adHandler.AdminGet)
			admin.PUT("/ads/:id/status", adHandler.AdminUpdateStatus)

			admin.GET("/stories", storyHandler.AdminList)
			admin.PUT("/stories/:id/status", storyHandler.AdminUpdateStatus)
			admin.DELETE("/stories/:id", storyHandler.AdminDelete)

			admin.GET("/messages", contactHandler.AdminList)
			admin.PUT("/messages/:id/read", contactHandler.AdminMarkRead)
			admin.DELETE("/messages/:id", contactHandler.AdminDelete)

			admin.GET("/settings", settingsHandler.Get)
			admin.PUT("/settings", settingsHandler.Update)
			admin.POST("/settings-table", settingsHandler.Bootstrap)
		}

		// Editorial routes (admins and editors)
		editorial := v1.Group("/admin/articles")
		editorial.Use(mw.Auth(), mw.RequireRole(models.RoleAdmin, models.RoleEditor))
		{
			editorial.POST("", articleHandler.CreateArticle)
			editorial.PUT("/:id", articleHandler.UpdateArticle)
			editorial.PUT("/:id/status", articleHandler.UpdateArticleStatus)
			editorial.DELETE("/:id", articleHandler.DeleteArticle)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}

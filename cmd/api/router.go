package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

// SetupRouter wires the HTTP surface. All book and comment routes are
// session-scoped; category mutations additionally require the admin role.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.RateLimit(50, 100),
	)

	router.GET("/health", healthCheckHandler(c))

	api := router.Group("/api")
	{
		setupUserRoutes(api, c)
		setupBookRoutes(api, c)
		setupCategoryRoutes(api, c)
	}

	return router
}

func setupUserRoutes(api *gin.RouterGroup, c *container.Container) {
	users := api.Group("/user")
	{
		users.POST("/register", c.UserHandler.Register)
		users.POST("/login", c.UserHandler.Login)

		current := users.Group("/current", middleware.Auth(c.VerifyToken))
		{
			current.GET("", c.UserHandler.Get)
			current.PATCH("", c.UserHandler.Update)
			current.DELETE("", c.UserHandler.Logout)
		}
	}
}

func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	books := api.Group("/books", middleware.Auth(c.VerifyToken))
	{
		books.POST("", c.BookHandler.Create)
		books.GET("", c.BookHandler.List)
		books.GET("/search", c.BookHandler.Search)
		books.GET("/:bookId", c.BookHandler.GetOne)
		books.PATCH("/:bookId", c.BookHandler.Update)
		books.DELETE("/:bookId", c.BookHandler.Remove)

		comments := books.Group("/:bookId/comments")
		{
			comments.POST("", c.CommentHandler.Post)
			comments.GET("", c.CommentHandler.GetAll)
			comments.GET("/:commentId", c.CommentHandler.GetOne)
			comments.PATCH("/:commentId", c.CommentHandler.Update)
			comments.DELETE("/:commentId", c.CommentHandler.Remove)
		}
	}
}

func setupCategoryRoutes(api *gin.RouterGroup, c *container.Container) {
	categories := api.Group("/category")
	{
		// Reads are open; mutations are admin-only.
		categories.GET("", c.CategoryHandler.GetAll)
		categories.GET("/:categoryId", c.CategoryHandler.Get)
		categories.GET("/:categoryId/books", c.CategoryHandler.GetBooks)

		admin := categories.Group("", middleware.Auth(c.VerifyToken), middleware.Admin())
		{
			admin.POST("", c.CategoryHandler.Create)
			admin.PATCH("/:categoryId", c.CategoryHandler.Update)
		}
	}
}

// healthCheckHandler reports liveness of the server and its backing
// services. A degraded cache does not fail the endpoint.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "up"
		status := http.StatusOK

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "down"
			status = http.StatusServiceUnavailable
		}

		redisStatus := "up"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			redisStatus = "down"
		}

		ctx.JSON(status, gin.H{
			"status":      "ok",
			"environment": c.Config.App.Environment,
			"version":     c.Config.App.Version,
			"database":    dbStatus,
			"redis":       redisStatus,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}

package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"library-backend/internal/config"
	infraCache "library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/cache"
	"library-backend/pkg/jwt"

	"library-backend/internal/domains/book"
	bookHandler "library-backend/internal/domains/book/handler"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"
	"library-backend/internal/domains/category"
	categoryHandler "library-backend/internal/domains/category/handler"
	categoryRepo "library-backend/internal/domains/category/repository"
	categoryService "library-backend/internal/domains/category/service"
	"library-backend/internal/domains/comment"
	commentHandler "library-backend/internal/domains/comment/handler"
	commentRepo "library-backend/internal/domains/comment/repository"
	commentService "library-backend/internal/domains/comment/service"
	"library-backend/internal/domains/user"
	userHandler "library-backend/internal/domains/user/handler"
	userRepo "library-backend/internal/domains/user/repository"
	userService "library-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in layer order: config, then
// infrastructure, then repositories, services and handlers.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config     *config.Config
	DB         *database.PostgresDB
	Redis      *infraCache.RedisClient
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER
	// ========================================

	UserRepo     user.Repository
	CategoryRepo category.Repository
	BookRepo     book.Repository
	CommentRepo  comment.Repository

	// ========================================
	// SERVICE LAYER
	// ========================================

	UserService     user.Service
	CategoryService category.Service
	BookService     book.Service
	CommentService  comment.Service

	// ========================================
	// HANDLER LAYER
	// ========================================

	UserHandler     *userHandler.UserHandler
	CategoryHandler *categoryHandler.CategoryHandler
	BookHandler     *bookHandler.BookHandler
	CommentHandler  *commentHandler.CommentHandler
}

// NewContainer builds and wires the whole dependency graph.
func NewContainer() (*Container, error) {
	c := &Container{}

	// Config first, nothing depends on it being lazy.
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("[CONTAINER] Config loaded (environment: %s)", cfg.App.Environment)

	// Database.
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// Redis. A cache failure is not fatal: repositories fall through to
	// the database when the cache errors.
	redisClient := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(context.Background()); err != nil {
		log.Printf("[CONTAINER] Redis connection failed (non-critical): %v", err)
	}
	c.Redis = redisClient
	c.Cache = redisClient

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TokenExpiry)*time.Hour)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Println("[CONTAINER] Dependency graph initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool, c.Cache)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	// Category first: the book service resolves category names through it.
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.BookRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.CategoryService, c.CommentService)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
}

// VerifyToken is the middleware hook for authenticating requests.
func (c *Container) VerifyToken(ctx context.Context, token string) (string, string, error) {
	return c.UserService.VerifyToken(ctx, token)
}

// Cleanup releases infrastructure resources. Called on shutdown in
// reverse initialization order.
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("[CONTAINER] Redis close failed: %v", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Printf("[CONTAINER] Database close failed: %v", err)
		}
	}
}

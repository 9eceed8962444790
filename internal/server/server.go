// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Matija334/RecipeWorld/internal/cache"
	"github.com/Matija334/RecipeWorld/internal/config"
	"github.com/Matija334/RecipeWorld/internal/database"
	"github.com/Matija334/RecipeWorld/internal/middleware"
	"github.com/Matija334/RecipeWorld/internal/models"
	"github.com/Matija334/RecipeWorld/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	tokenIssuer   = "recipeworld-api"
	tokenAudience = "recipeworld-client"
)

// identity is the per-request view of the authenticated user, derived solely
// from verified token claims.
type identity struct {
	ID       uint
	Email    string
	Username string
}

// Server holds all dependencies and provides handlers
type Server struct {
	config       *config.Config
	db           *gorm.DB
	redis        *redis.Client
	userRepo     repository.UserRepository
	recipeRepo   repository.RecipeRepository
	commentRepo  repository.CommentRepository
	bookmarkRepo repository.BookmarkRepository
	followRepo   repository.FollowRepository
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return &Server{
		config:       cfg,
		db:           db,
		redis:        cache.GetClient(),
		userRepo:     repository.NewUserRepository(db),
		recipeRepo:   repository.NewRecipeRepository(db),
		commentRepo:  repository.NewCommentRepository(db),
		bookmarkRepo: repository.NewBookmarkRepository(db),
		followRepo:   repository.NewFollowRepository(db),
	}, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Request ID for tracing
	app.Use(requestid.New())

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware
	app.Use(middleware.StructuredLogger())

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health check
	api.Get("/health", s.HealthCheck)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Get("/me", s.AuthRequired(), s.Me)

	// Public recipe routes (browse/search)
	public := api.Group("/recipes/public")
	public.Get("/", middleware.RateLimit(s.redis, 30, time.Minute, "public_search"), s.ListPublicRecipes)
	public.Get("/:id/comments", s.ListComments)
	public.Get("/:id", s.GetPublicRecipe)

	// Public author profile
	api.Get("/authors/:username", s.GetAuthorProfile)

	// Protected routes
	protected := api.Group("", s.AuthRequired())

	protected.Get("/profile", s.GetMyProfile)
	protected.Delete("/users/me", s.DeleteAccount)

	recipes := protected.Group("/recipes")
	recipes.Get("/", s.ListMyRecipes)
	recipes.Post("/", s.CreateRecipe)
	recipes.Post("/:id/comments", middleware.RateLimit(s.redis, 10, time.Minute, "create_comment"), s.AddComment)
	recipes.Put("/:id", s.UpdateRecipe)
	recipes.Delete("/:id", s.DeleteRecipe)

	bookmarks := protected.Group("/bookmarks")
	bookmarks.Get("/", s.ListBookmarks)
	bookmarks.Get("/:recipeId", s.IsBookmarked)
	bookmarks.Post("/:recipeId", s.AddBookmark)
	bookmarks.Delete("/:recipeId", s.RemoveBookmark)

	follows := protected.Group("/follows")
	follows.Get("/", s.ListMyFollowGraph)
	follows.Get("/status/:username", s.GetFollowStatus)
	follows.Post("/:username", s.FollowUser)
	follows.Delete("/:username", s.UnfollowUser)
}

// HealthCheck handles health check requests
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"ok":  status == fiber.StatusOK,
		"app": "Recipe World",
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware. A missing, malformed or
// expired token fails closed with 401.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		ident, err := s.parseToken(tokenString)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		c.Locals("userID", ident.ID)
		c.Locals("email", ident.Email)
		c.Locals("username", ident.Username)

		return c.Next()
	}
}

// parseToken validates a bearer token and extracts the identity claims.
func (s *Server) parseToken(tokenString string) (*identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid subject claim")
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	email, _ := claims["email"].(string)
	username, _ := claims["username"].(string)

	return &identity{ID: uint(userID), Email: email, Username: username}, nil
}

// currentIdentity reads the identity the auth middleware attached to the request.
func (s *Server) currentIdentity(c *fiber.Ctx) identity {
	ident := identity{}
	if v, ok := c.Locals("userID").(uint); ok {
		ident.ID = v
	}
	if v, ok := c.Locals("email").(string); ok {
		ident.Email = v
	}
	if v, ok := c.Locals("username").(string); ok {
		ident.Username = v
	}
	return ident
}

// Shutdown gracefully releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", "error", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", "error", rerr)
		}
	}

	middleware.Logger.InfoContext(ctx, "server shutdown complete")
	return nil
}

// api/routes/router.go
package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"taskhub/internal/auth"
	"taskhub/internal/employees"
	"taskhub/internal/notifications"
	"taskhub/internal/objects"
	"taskhub/internal/shared/config"
	"taskhub/internal/shared/database"
	"taskhub/internal/shared/middleware"
	"taskhub/internal/shared/utils/response"
	"taskhub/internal/tasks"
	"taskhub/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config      *config.Config
	db          *database.DB
	producer    notifications.Producer
	authService auth.Service
	empService  employees.Service // kept for startup seeding
}

// NewRouter creates a new router instance. producer may be nil when the
// notification pipeline is disabled.
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) (*Router, error) {
	store, err := auth.NewMemoryStore(auth.DefaultSeedPrincipals())
	if err != nil {
		return nil, fmt.Errorf("credential store: %w", err)
	}

	return &Router{
		config:      cfg,
		db:          db,
		producer:    producer,
		authService: auth.NewService(store, cfg),
	}, nil
}

// SetupRoutes configures all application routes. The request gate runs on the
// whole engine; everything not on the public allowlist needs a verified token.
func (r *Router) SetupRoutes(engine *gin.Engine) {
	base := r.config.GetAPIBasePath()
	publicPaths := []string{
		"/",
		"/health",
		"/ping",
		"/echo",
		base + "/auth/login",
		base + "/auth/refresh",
	}
	engine.Use(middleware.RequestGate(r.authService, publicPaths))

	// Public utility endpoints
	r.setupUtilityRoutes(engine)

	// API routes
	api := engine.Group(base)
	{
		r.setupAuthRoutes(api)
		r.setupObjectRoutes(api)
		r.setupEmployeeRoutes(api)
		r.setupTaskRoutes(api)
	}
}

// SeedEmployees loads the default roster when the table is empty. Call after
// SetupRoutes so the employee service exists.
func (r *Router) SeedEmployees(ctx context.Context) (int, error) {
	return r.empService.SeedIfEmpty(ctx)
}

// setupUtilityRoutes sets up the public hello, health and echo endpoints
func (r *Router) setupUtilityRoutes(engine *gin.Engine) {
	engine.GET("/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, nil, "Hello world!")
	})

	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "taskhub-backend",
			})
			return
		}

		response.Success(c, http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "taskhub-backend",
		}, "Service is healthy")
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.POST("/echo", func(c *gin.Context) {
		var payload interface{}
		if err := c.ShouldBindJSON(&payload); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		response.Success(c, http.StatusOK, payload, "Echo successful")
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authController := auth.NewController(r.authService)
	authRouter := auth.NewRouter(authController)
	authRouter.SetupRoutes(rg)
}

// setupObjectRoutes configures object management routes
func (r *Router) setupObjectRoutes(rg *gin.RouterGroup) {
	var cacheSvc cache.Service
	if r.db.Redis != nil {
		cacheSvc = cache.NewService(r.db.GetRedis())
	}

	objectRepo := objects.NewRepository(r.db.GetPostgreSQL())
	objectService := objects.NewService(objectRepo, cacheSvc, r.config.Redis.CacheTTL)
	objectController := objects.NewController(objectService)

	objects.SetupObjectRoutes(rg, objectController)
}

// setupEmployeeRoutes configures the read-only employee routes
func (r *Router) setupEmployeeRoutes(rg *gin.RouterGroup) {
	empRepo := employees.NewRepository(r.db.GetPostgreSQL())
	r.empService = employees.NewService(empRepo)
	empController := employees.NewController(r.empService)

	employees.SetupEmployeeRoutes(rg, empController)
}

// setupTaskRoutes configures task management routes
func (r *Router) setupTaskRoutes(rg *gin.RouterGroup) {
	taskRepo := tasks.NewRepository(r.db.GetPostgreSQL())
	taskService := tasks.NewService(taskRepo, r.producer, nil)
	taskController := tasks.NewController(taskService)

	tasks.SetupTaskRoutes(rg, taskController)
}

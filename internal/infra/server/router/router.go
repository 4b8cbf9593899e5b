// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marcus-savings/backend/internal/integration/entrypoint/controller"
	"github.com/marcus-savings/backend/internal/integration/entrypoint/middleware"
)

// StaticConfig describes the optional frontend bundle to serve.
type StaticConfig struct {
	Enabled bool
	Dir     string
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	goalController    *controller.GoalController
	statsController   *controller.StatsController
	profileController *controller.ProfileController
	friendController  *controller.FriendController
	inviteRateLimiter *middleware.RateLimiter
	static            StaticConfig
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	goalController *controller.GoalController,
	statsController *controller.StatsController,
	profileController *controller.ProfileController,
	friendController *controller.FriendController,
	inviteRateLimiter *middleware.RateLimiter,
	static StaticConfig,
) *Router {
	return &Router{
		healthController:  healthController,
		goalController:    goalController,
		statsController:   statsController,
		profileController: profileController,
		friendController:  friendController,
		inviteRateLimiter: inviteRateLimiter,
		static:            static,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()
	r.setupStaticRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		goals := v1.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.GET("/:id", r.goalController.Get)
			goals.PATCH("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
			goals.POST("/:id/progress", r.goalController.AddProgress)
		}

		v1.GET("/stats", r.statsController.GetStats)
		v1.GET("/achievements", r.statsController.GetAchievements)

		profile := v1.Group("/profile")
		{
			profile.GET("", r.profileController.GetProfile)
			profile.GET("/stats", r.profileController.GetProfileStats)
			profile.PATCH("/settings", r.profileController.UpdateSettings)
			profile.GET("/export", r.profileController.ExportData)
			profile.POST("/import", r.profileController.ImportData)
			profile.DELETE("/data", r.profileController.ClearData)
		}

		friends := v1.Group("/friends")
		{
			friends.GET("", r.friendController.List)
			friends.GET("/stats", r.friendController.GetStats)
			if r.inviteRateLimiter != nil {
				friends.POST("/invite", r.inviteRateLimiter.Middleware(), r.friendController.CreateInvite)
			} else {
				friends.POST("/invite", r.friendController.CreateInvite)
			}
		}
	}
}

// setupStaticRoutes serves the frontend bundle when enabled. Files are served
// with no-cache headers so a redeploy takes effect immediately, and unknown
// paths fall back to index.html for client-side routing.
func (r *Router) setupStaticRoutes() {
	if !r.static.Enabled {
		return
	}

	root, err := filepath.Abs(r.static.Dir)
	if err != nil {
		return
	}

	r.engine.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		requested := filepath.Join(root, filepath.Clean("/"+c.Request.URL.Path))
		// Clean above anchors the path at the root, but keep the guard
		// in case the join behavior ever changes.
		if !strings.HasPrefix(requested, root) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		setNoCacheHeaders(c)

		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}

		c.File(filepath.Join(root, "index.html"))
	})
}

func setNoCacheHeaders(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecolake/ecolake-backend-go/internal/config"
	"github.com/ecolake/ecolake-backend-go/internal/handler"
	"github.com/ecolake/ecolake-backend-go/internal/middleware"
)

// Handlers bundles the resource handlers wired into the router
type Handlers struct {
	Lakes   *handler.LakeHandler
	Reports *handler.ReportHandler
	Badges  *handler.BadgeHandler
	Points  *handler.PointsHandler
	Rewards *handler.RewardHandler
	Users   *handler.UserHandler
}

// SetupRouter configures all routes
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS for the mobile client
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "EcoLake Backend API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		// Nearby-lake discovery sits in front of a public geodata
		// service; keep its rate limit tight
		lakes := api.Group("/lakes")
		lakes.Use(middleware.RateLimit(30, time.Minute))
		{
			lakes.GET("/nearby", h.Lakes.NearbyLakes)
		}

		reports := api.Group("/reports")
		reports.Use(middleware.Auth(cfg.JWTSecret))
		{
			reports.POST("", h.Reports.SubmitReport)
			reports.GET("", h.Reports.ListReports)
			reports.GET("/:id", h.Reports.GetReport)
			reports.PATCH("/:id/status", h.Reports.UpdateStatus)
			reports.POST("/:id/cleanup", h.Reports.CompleteCleanup)
		}

		api.GET("/badges", h.Badges.Catalog)

		users := api.Group("/users", middleware.Auth(cfg.JWTSecret))
		{
			users.GET("/me", h.Users.Me)
			users.PUT("/me", h.Users.SyncMe)
			users.GET("/me/badges", h.Badges.MyBadges)
		}

		points := api.Group("/points")
		{
			points.GET("/me", middleware.Auth(cfg.JWTSecret), h.Points.MyPoints)
			points.GET("/leaderboard", h.Points.Leaderboard)
		}

		rewards := api.Group("/rewards")
		{
			rewards.GET("", h.Rewards.Catalog)
			rewards.POST("/:id/redeem", middleware.Auth(cfg.JWTSecret), h.Rewards.Redeem)
		}
	}

	return r
}

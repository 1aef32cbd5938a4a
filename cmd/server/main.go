package main

import (
	"github.com/joho/godotenv"

	"github.com/ecolake/ecolake-backend-go/internal/api"
	"github.com/ecolake/ecolake-backend-go/internal/badges"
	"github.com/ecolake/ecolake-backend-go/internal/config"
	"github.com/ecolake/ecolake-backend-go/internal/database"
	"github.com/ecolake/ecolake-backend-go/internal/handler"
	"github.com/ecolake/ecolake-backend-go/internal/lakes"
	"github.com/ecolake/ecolake-backend-go/internal/repository"
	"github.com/ecolake/ecolake-backend-go/internal/service"
	"github.com/ecolake/ecolake-backend-go/pkg/logger"
)

func main() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.GetLogger("main")

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()
	db := database.GetDB()

	// Repositories
	reportRepo := repository.NewReportRepository(db)
	badgeRepo := repository.NewBadgeRepository(db)
	pointsRepo := repository.NewPointsRepository(db)
	rewardRepo := repository.NewRewardRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Core components: one resolver (and its cache) per process
	resolver := lakes.NewResolver(cfg.OverpassURL, cfg.LakeCacheTTL)
	evaluator := badges.NewEvaluator(badgeRepo)

	// Services
	lakeService := service.NewLakeService(resolver, cfg.DefaultRadiusKm)
	reportService := service.NewReportService(reportRepo, badgeRepo, pointsRepo, evaluator,
		cfg.ReportPoints, cfg.CleanupPoints)
	badgeService := service.NewBadgeService(badgeRepo)
	pointsService := service.NewPointsService(pointsRepo)
	rewardService := service.NewRewardService(rewardRepo)
	userService := service.NewUserService(userRepo, pointsRepo)

	router := api.SetupRouter(cfg, api.Handlers{
		Lakes:   handler.NewLakeHandler(lakeService),
		Reports: handler.NewReportHandler(reportService),
		Badges:  handler.NewBadgeHandler(badgeService),
		Points:  handler.NewPointsHandler(pointsService),
		Rewards: handler.NewRewardHandler(rewardService),
		Users:   handler.NewUserHandler(userService),
	})

	log.Infof("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

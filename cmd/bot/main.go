package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/nonmagicfly/bot-ai-cursor/internal/bot"
	"github.com/nonmagicfly/bot-ai-cursor/internal/database"
	"github.com/nonmagicfly/bot-ai-cursor/internal/metrics"
	"github.com/nonmagicfly/bot-ai-cursor/internal/models"
	"github.com/nonmagicfly/bot-ai-cursor/internal/repository"
	"github.com/nonmagicfly/bot-ai-cursor/internal/service"
	"github.com/nonmagicfly/bot-ai-cursor/pkg/utils"
)

func main() {
	// -----------------------
	// ENV
	if err := godotenv.Load(); err != nil {
		utils.Log.Info("No .env file found")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		utils.Log.Error("DATABASE_URL not set")
		os.Exit(1)
	}

	// -----------------------
	// DATABASE
	db, err := database.NewPostgres(dsn)
	if err != nil {
		utils.Log.Error("Failed to connect to database: " + err.Error())
		os.Exit(1)
	}
	utils.Log.Info("Database connected")

	if err := database.AutoMigrateTables(db,
		&models.User{},
		&models.Program{},
		&models.Exercise{},
		&models.Record{},
		&models.Operation{},
	); err != nil {
		utils.Log.Error("Failed to migrate database: " + err.Error())
		os.Exit(1)
	}

	// -----------------------
	// REPOSITORIES
	programRepo := repository.NewProgramRepo(db)
	recordRepo := repository.NewRecordRepo(db)
	userRepo := repository.NewUserRepo(db)
	operationRepo := repository.NewOperationRepo(db)

	// -----------------------
	// SERVICES
	programService := service.NewProgramService(programRepo)
	workoutService := service.NewWorkoutService(programRepo, recordRepo)
	reportService := service.NewReportService(recordRepo)
	userService := service.NewUserService(userRepo, operationRepo)
	statsService := service.NewStatsService(programRepo, recordRepo, userRepo, operationRepo)

	// -----------------------
	// METRICS
	updater := metrics.NewUpdater(statsService)
	go updater.Run(context.Background())

	metricsPort := os.Getenv("METRICS_PORT")
	if metricsPort == "" {
		metricsPort = "8000"
	}
	go func() {
		utils.Log.Info("Метрики Prometheus доступны на http://0.0.0.0:" + metricsPort + "/metrics")
		if err := metrics.NewServer().Run(":" + metricsPort); err != nil {
			utils.Log.Error("Сервер метрик остановился: " + err.Error())
		}
	}()

	// -----------------------
	// BOT
	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		utils.Log.Error("BOT_TOKEN not set")
		os.Exit(1)
	}

	botApp, err := bot.NewBotApp(token, programService, workoutService, reportService, userService)
	if err != nil {
		utils.Log.Error("Failed to create bot: " + err.Error())
		os.Exit(1)
	}

	utils.Log.Info("Telegram bot starting...")
	botApp.Run()
}

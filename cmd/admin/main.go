package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/joho/godotenv"
	"github.com/nonmagicfly/bot-ai-cursor/internal/admin"
	"github.com/nonmagicfly/bot-ai-cursor/internal/database"
	"github.com/nonmagicfly/bot-ai-cursor/internal/models"
	"github.com/nonmagicfly/bot-ai-cursor/internal/repository"
	"github.com/nonmagicfly/bot-ai-cursor/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	// Подключение к базе
	db, err := database.NewPostgres(dsn)
	if err != nil {
		log.Fatal(err)
	}

	// Авто-миграция
	if err := database.AutoMigrateTables(db,
		&models.User{},
		&models.Program{},
		&models.Exercise{},
		&models.Record{},
		&models.Operation{},
	); err != nil {
		log.Fatal("Failed to migrate tables:", err)
	}

	// Репозитории
	programRepo := repository.NewProgramRepo(db)
	recordRepo := repository.NewRecordRepo(db)
	userRepo := repository.NewUserRepo(db)
	operationRepo := repository.NewOperationRepo(db)

	// Сервисы
	programService := service.NewProgramService(programRepo)
	reportService := service.NewReportService(recordRepo)
	userService := service.NewUserService(userRepo, operationRepo)
	statsService := service.NewStatsService(programRepo, recordRepo, userRepo, operationRepo)

	// Gin router
	router := gin.Default()

	adminKey := os.Getenv("ADMIN_KEY")
	if adminKey == "" {
		log.Println("ADMIN_KEY not set, admin panel is locked")
	}
	admin.SetupRoutes(router, adminKey, programService, reportService, userService, statsService)

	port := os.Getenv("ADMIN_PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Admin panel starting on :" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to run admin panel:", err)
	}
}

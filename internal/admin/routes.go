package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nonmagicfly/bot-ai-cursor/internal/repository"
	"github.com/nonmagicfly/bot-ai-cursor/internal/service"
)

// SetupRoutes вешает read-only админ-панель поверх хранилища плюс две
// массовые операции: архивирование и полное удаление программ.
func SetupRoutes(r *gin.Engine,
	adminKey string,
	programService *service.ProgramService,
	reportService *service.ReportService,
	userService *service.UserService,
	statsService *service.StatsService,
) {
	adminGroup := r.Group("/admin", AuthMiddleware(adminKey))

	// Программы
	adminGroup.GET("/programs", func(c *gin.Context) {
		programs, err := programService.ListAll()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, programs)
	})

	// Упражнения программы
	adminGroup.GET("/programs/:id/exercises", func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid program id"})
			return
		}
		exercises, err := programService.ListExercises(uint(id))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, exercises)
	})

	// Записи тренировок за окно: ?period=day|week|all (по умолчанию all)
	adminGroup.GET("/records", func(c *gin.Context) {
		var period repository.Period
		switch c.DefaultQuery("period", "all") {
		case "day":
			period = repository.PeriodDay
		case "week":
			period = repository.PeriodWeek
		case "all":
			period = repository.PeriodAll
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "period must be day, week or all"})
			return
		}

		rows, err := reportService.Rows(period)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rows)
	})

	// Пользователи
	adminGroup.GET("/users", func(c *gin.Context) {
		users, err := userService.ListUsers()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, users)
	})

	// Счётчики хранилища
	adminGroup.GET("/stats", func(c *gin.Context) {
		stats, err := statsService.Collect()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// Массовое архивирование: строки остаются, флаг active снимается
	adminGroup.POST("/programs/archive", func(c *gin.Context) {
		if err := programService.ArchiveAll(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "archived"})
	})

	// Полное удаление программ, упражнений и записей
	adminGroup.DELETE("/programs", func(c *gin.Context) {
		if err := programService.DeleteAll(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	})
}

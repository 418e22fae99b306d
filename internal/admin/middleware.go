package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware проверяет ключ админ-панели из заголовка X-Admin-Key.
// Ключ задаётся переменной окружения ADMIN_KEY; без него панель закрыта.
func AuthMiddleware(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" || c.GetHeader("X-Admin-Key") != adminKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

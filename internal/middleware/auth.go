package middleware

import (
	"net/http"
	"strings"

	"haatbazar_admin/internal/auth"
	"haatbazar_admin/internal/logger"
	"haatbazar_admin/internal/models"
	"haatbazar_admin/internal/repositories"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - проверка JWT и загрузка учетной записи админа.
// Токен несет только id; сама запись перечитывается из хранилища,
// чтобы удаленный админ не мог пользоваться живым токеном.
func AuthMiddleware(adminRepo repositories.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "token verification failed", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}

		admin, err := adminRepo.FindByID(c.Request.Context(), claims.AdminID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			return
		}

		// Сохраняем админа в контекст запроса
		ctx := logger.WithAdminID(c.Request.Context(), admin.ID.Hex())
		c.Request = c.Request.WithContext(ctx)
		c.Set("adminID", admin.ID.Hex())
		c.Set("admin", admin)
		c.Next()
	}
}

// AdminMiddleware - ограничение по роли admin.
// Сейчас других ролей в adminInfo нет, но поле role в документе есть
// и проверяется, как проверялось всегда.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminVal, exists := c.Get("admin")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Not authorized as admin"})
			return
		}

		admin, ok := adminVal.(*models.AdminInfo)
		if !ok || admin.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Not authorized as admin"})
			return
		}

		c.Next()
	}
}

// GetAdminID извлекает ID админа из контекста
func GetAdminID(c *gin.Context) string {
	adminID, exists := c.Get("adminID")
	if !exists {
		return ""
	}

	id, ok := adminID.(string)
	if !ok {
		return ""
	}
	return id
}

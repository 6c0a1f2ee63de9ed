package routes

import (
	"net/http"

	"haatbazar_admin/internal/handlers"
	"haatbazar_admin/internal/middleware"
	"haatbazar_admin/internal/repositories"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты админ-панели.
// Все маршруты, кроме health check и логина, закрыты токеном;
// все, кроме создания вакансии, требуют роль admin.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	adminRepo repositories.AdminRepository,
) {
	authMW := middleware.AuthMiddleware(adminRepo)
	adminMW := middleware.AdminMiddleware()

	api := ginRouter.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Backend is running"})
		})

		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api, authMW, adminMW)
		appHandlers.UserHandler.RegisterRoutes(api, authMW, adminMW)
		appHandlers.BookingHandler.RegisterRoutes(api, authMW, adminMW)
	}
}

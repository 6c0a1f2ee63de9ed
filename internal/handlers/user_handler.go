package handlers

import (
	"net/http"

	"haatbazar_admin/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes регистрирует маршруты управления пользователями
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	users := rg.Group("/users")
	users.Use(authMW, adminMW)
	{
		users.GET("", h.ListVerified)
		users.GET("/pending", h.ListPending)
		users.PUT("/:id/approve", h.Approve)
		users.PUT("/:id/suspend", h.Suspend)
		users.PUT("/:id/activate", h.Activate)
		users.DELETE("/:id", h.Delete)
	}
}

func (h *UserHandler) ListVerified(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context(), true)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) ListPending(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context(), false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Approve(c *gin.Context) {
	if err := h.userService.Approve(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User approved successfully"})
}

func (h *UserHandler) Suspend(c *gin.Context) {
	if err := h.userService.Suspend(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User suspended successfully"})
}

func (h *UserHandler) Activate(c *gin.Context) {
	if err := h.userService.Activate(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User activated successfully"})
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

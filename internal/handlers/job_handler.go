package handlers

import (
	"net/http"

	"haatbazar_admin/internal/middleware"
	"haatbazar_admin/internal/services"
	"haatbazar_admin/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// RegisterRoutes регистрирует маршруты вакансий.
// Создание доступно любому аутентифицированному вызову,
// остальное - только админу.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	jobs := rg.Group("/jobs")
	jobs.Use(authMW)
	{
		jobs.POST("", h.Create)

		admin := jobs.Group("")
		admin.Use(adminMW)
		{
			admin.GET("", h.ListApproved)
			admin.GET("/pending", h.ListPending)
			admin.GET("/all", h.ListAll)
			admin.PUT("/:id/approve", h.Approve)
			admin.PUT("/:id/status", h.UpdateStatus)
			admin.DELETE("/:id", h.Delete)
		}
	}
}

func (h *JobHandler) ListApproved(c *gin.Context) {
	jobs, err := h.jobService.ListByApproval(c.Request.Context(), true)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) ListPending(c *gin.Context) {
	jobs, err := h.jobService.ListByApproval(c.Request.Context(), false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) ListAll(c *gin.Context) {
	jobs, err := h.jobService.ListAllGeneric(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), middleware.GetAdminID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Approve(c *gin.Context) {
	// Тело опционально: без collection работаем с общей коллекцией jobs
	var req dto.ApproveJobRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.jobService.Approve(c.Request.Context(), c.Param("id"), req.Collection); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job approved successfully"})
}

func (h *JobHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateJobStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.jobService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job status updated successfully"})
}

func (h *JobHandler) Delete(c *gin.Context) {
	collection := c.Query("collection")

	if err := h.jobService.Delete(c.Request.Context(), c.Param("id"), collection); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

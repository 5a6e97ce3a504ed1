package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NaomiMeseret/Employee-shift-management/internal/domain/services/container"
	"github.com/NaomiMeseret/Employee-shift-management/internal/error/code"
	"github.com/NaomiMeseret/Employee-shift-management/internal/error/response"
)

// HealthCheckController exposes liveness and readiness endpoints
type HealthCheckController struct {
	DB *gorm.DB
}

// NewHealthCheckController creates a health check controller
func NewHealthCheckController(db *gorm.DB) *HealthCheckController {
	return &HealthCheckController{DB: db}
}

// Ping is the liveness endpoint
// @Summary      Liveness probe
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /ping [get]
func (h *HealthCheckController) Ping(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Health is the readiness endpoint, it checks the database connection
// @Summary      Readiness probe
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *HealthCheckController) Health(c *gin.Context) {
	sqlDB, err := h.DB.DB()
	if err != nil {
		response.FailWithMessage(c, code.ErrDatabase, "database unavailable", nil)
		return
	}
	if err := sqlDB.Ping(); err != nil {
		response.FailWithMessage(c, code.ErrDatabase, "database unavailable", nil)
		return
	}

	response.Success(c, gin.H{
		"status":   "healthy",
		"database": "up",
	})
}

// HandleHealthFunc returns a Gin handler dispatching to the health controller
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthCheckController(container.GetDB())

		switch method {
		case "ping":
			controller.Ping(ctx)
		case "status":
			controller.Health(ctx)
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

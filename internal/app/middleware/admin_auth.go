package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NaomiMeseret/Employee-shift-management/internal/domain/services"
	"github.com/NaomiMeseret/Employee-shift-management/internal/infrastructure/config"
)

var authService services.InterfaceAuthService

// InitAuthMiddleware wires the middleware to the auth service
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	authService = services.NewAuthService(db, cfg)
}

// RequireAdmin gates the approval workflow behind the admin capability.
// There is no token mechanism in this system; the caller identifies itself
// with the X-Admin-ID header and must be an existing employee holding
// is_admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID := c.GetHeader("X-Admin-ID")
		if adminID == "" {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "X-Admin-ID header is required",
				"data":    nil,
			})
			c.Abort()
			return
		}

		isAdmin, err := authService.IsAdmin(adminID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "admin check failed: " + err.Error(),
				"data":    nil,
			})
			c.Abort()
			return
		}
		if !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires admin capability",
				"data":    nil,
			})
			c.Abort()
			return
		}

		c.Set("adminID", adminID)
		c.Next()
	}
}

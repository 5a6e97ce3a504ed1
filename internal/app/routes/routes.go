package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/NaomiMeseret/Employee-shift-management/docs"
	"github.com/NaomiMeseret/Employee-shift-management/internal/app/controllers"
	"github.com/NaomiMeseret/Employee-shift-management/internal/app/middleware"
	"github.com/NaomiMeseret/Employee-shift-management/internal/domain/services/container"
	"github.com/NaomiMeseret/Employee-shift-management/internal/infrastructure/config"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, X-Admin-ID, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// Force UTF-8 JSON responses
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// Create the service container
	serviceContainer := container.NewServiceContainer(db, cfg)
	// Initialize middleware
	middleware.InitAuthMiddleware(cfg, db)
	// Swagger documentation route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAdminRoutes(api, container)
}

// registerPublicRoutes registers routes that carry no admin gate
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// IP rate limiting - 10 requests per second, bursts up to 20
	api.Use(middleware.IPRateLimiter(10, 20))

	// Health check routes
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "status"))

	// Account routes
	api.POST("/register", controllers.HandleAuthFunc(container, "register"))
	api.POST("/login", controllers.HandleAuthFunc(container, "login"))
	api.POST("/logout", controllers.HandleAuthFunc(container, "logout"))
	api.POST("/changePassword/:id", controllers.HandleAuthFunc(container, "changePassword"))
	api.POST("/createAdmin", controllers.HandleAdminFunc(container, "createAdmin"))

	// Employee routes
	api.GET("/employees", controllers.HandleEmployeeFunc(container, "getEmployees"))
	api.GET("/employees/:id", controllers.HandleEmployeeFunc(container, "getEmployee"))
	api.PUT("/updateEmployee/:id", controllers.HandleEmployeeFunc(container, "updateEmployee"))
	api.DELETE("/deleteEmployee/:id", controllers.HandleEmployeeFunc(container, "deleteEmployee"))

	// Status routes
	api.GET("/status", controllers.HandleEmployeeFunc(container, "getAllStatuses"))
	api.GET("/status/:id", controllers.HandleEmployeeFunc(container, "getStatus"))

	// Attendance routes
	api.POST("/clockin/:id", controllers.HandleAttendanceFunc(container, "clockIn"))
	api.POST("/clockout/:id", controllers.HandleAttendanceFunc(container, "clockOut"))
	api.GET("/attendance", controllers.HandleEmployeeFunc(container, "getAllAttendance"))
	api.GET("/attendance/:id", controllers.HandleEmployeeFunc(container, "getAttendance"))

	// Shift routes
	api.POST("/assignShift/:id", controllers.HandleShiftFunc(container, "assignShift"))
	api.GET("/assignedShift/:id", controllers.HandleShiftFunc(container, "getAssignedShifts"))
	api.GET("/assignedShift", controllers.HandleShiftFunc(container, "getAllShifts"))
	api.PUT("/shift/:id", controllers.HandleShiftFunc(container, "updateShift"))
	api.DELETE("/shift/:id", controllers.HandleShiftFunc(container, "deleteShift"))
}

// registerAdminRoutes registers the approval workflow behind the admin gate
func registerAdminRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	admin := api.Group("/")
	admin.Use(middleware.RequireAdmin())

	admin.GET("/pending", controllers.HandleAdminFunc(container, "getPendingEmployees"))
	admin.PUT("/approve/:id", controllers.HandleAdminFunc(container, "approveEmployee"))
	admin.DELETE("/reject/:id", controllers.HandleAdminFunc(container, "rejectEmployee"))
}

package container

import (
	"sync"

	"gorm.io/gorm"

	"github.com/NaomiMeseret/Employee-shift-management/internal/domain/services"
	"github.com/NaomiMeseret/Employee-shift-management/internal/infrastructure/config"
	"github.com/NaomiMeseret/Employee-shift-management/pkg/logger"
)

// ServiceContainer wires the services together for dependency injection
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	employeeService   services.InterfaceEmployeeService
	shiftService      services.InterfaceShiftService
	attendanceService services.InterfaceAttendanceService
	authService       services.InterfaceAuthService
	eventPublisher    services.InterfaceEventPublisher

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices builds every service
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Optional attendance event publisher, nil when MQTT is not configured
	c.eventPublisher = services.NewEventPublisher(c.config)
	if c.eventPublisher != nil {
		if err := c.eventPublisher.Connect(); err != nil {
			logger.Warning("MQTT connection failed: %v, attendance events disabled", err)
			c.eventPublisher = nil
		}
	}

	c.employeeService = services.NewEmployeeService(c.db, c.config)
	c.shiftService = services.NewShiftService(c.db, c.config)
	c.attendanceService = services.NewAttendanceService(c.db, c.config, c.eventPublisher)
	c.authService = services.NewAuthService(c.db, c.config)
}

// GetService returns the service registered under name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "employee":
		return c.employeeService
	case "shift":
		return c.shiftService
	case "attendance":
		return c.attendanceService
	case "auth":
		return c.authService
	case "events":
		return c.eventPublisher
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

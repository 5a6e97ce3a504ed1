package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/NaomiMeseret/Employee-shift-management/internal/domain/models"
	"github.com/NaomiMeseret/Employee-shift-management/internal/infrastructure/config"
)

// newTestDB opens an isolated in-memory database and migrates the schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Employee{}, &models.Shift{}, &models.AttendanceRecord{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{}
}

// seedEmployee inserts an employee with the given id and status
func seedEmployee(t *testing.T, db *gorm.DB, employeeID, status string) *models.Employee {
	t.Helper()

	employee := &models.Employee{
		EmployeeID: employeeID,
		Name:       "Test Employee " + employeeID,
		Email:      employeeID + "@example.com",
		Password:   "secret123",
		Status:     status,
	}
	if err := db.Create(employee).Error; err != nil {
		t.Fatalf("failed to seed employee %s: %v", employeeID, err)
	}
	return employee
}

// seedShift inserts a shift assigned to an employee
func seedShift(t *testing.T, db *gorm.DB, shiftID, employeeID string) *models.Shift {
	t.Helper()

	shift := &models.Shift{
		ShiftID:    shiftID,
		EmployeeID: employeeID,
		Date:       "2025-01-15",
		ShiftType:  models.ShiftMorning,
	}
	if err := db.Create(shift).Error; err != nil {
		t.Fatalf("failed to seed shift %s: %v", shiftID, err)
	}
	return shift
}

package services

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/NaomiMeseret/Employee-shift-management/internal/domain/models"
	"github.com/NaomiMeseret/Employee-shift-management/internal/infrastructure/config"
	"github.com/NaomiMeseret/Employee-shift-management/pkg/logger"
	"github.com/NaomiMeseret/Employee-shift-management/pkg/utils"
)

// InterfaceEmployeeService defines the employee directory interface
type InterfaceEmployeeService interface {
	CreateEmployee(employee *models.Employee) error
	GetEmployeeByID(employeeID string) (*models.Employee, error)
	GetAllEmployees() ([]models.Employee, error)
	UpdateEmployee(employeeID string, updates map[string]interface{}) (*models.Employee, error)
	DeleteEmployee(employeeID string) error
	GetStatus(employeeID string) (*models.StatusView, error)
	GetAllStatuses() ([]models.StatusView, error)
	GetAttendance(employeeID string) (*models.AttendanceView, error)
	GetAllAttendance() ([]models.AttendanceView, error)
}

// EmployeeService provides employee directory operations
type EmployeeService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(db *gorm.DB, cfg *config.Config) InterfaceEmployeeService {
	return &EmployeeService{
		DB:     db,
		Config: cfg,
	}
}

// 1 CreateEmployee inserts a new employee after checking id and email uniqueness
func (s *EmployeeService) CreateEmployee(employee *models.Employee) error {
	var count int64
	if err := s.DB.Model(&models.Employee{}).
		Where("employee_id = ? OR email = ?", employee.EmployeeID, employee.Email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmployeeExists
	}

	if employee.ProfilePicture == "" {
		employee.ProfilePicture = "default.jpg"
	}
	if employee.Status == "" {
		employee.Status = models.StatusPending
	}

	return s.DB.Create(employee).Error
}

// 2 GetEmployeeByID fetches an employee by the externally assigned id
func (s *EmployeeService) GetEmployeeByID(employeeID string) (*models.Employee, error) {
	var employee models.Employee
	if err := s.DB.Where("employee_id = ?", employeeID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// 3 GetAllEmployees lists every employee. An empty directory is an error,
// matching the shift ledger convention.
func (s *EmployeeService) GetAllEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.DB.Find(&employees).Error; err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, ErrNoEmployees
	}
	return employees, nil
}

// 4 UpdateEmployee applies a partial field update keyed by employee id
func (s *EmployeeService) UpdateEmployee(employeeID string, updates map[string]interface{}) (*models.Employee, error) {
	employee, err := s.GetEmployeeByID(employeeID)
	if err != nil {
		return nil, err
	}

	// A changed email must stay unique
	if email, ok := updates["email"].(string); ok && email != employee.Email {
		var count int64
		if err := s.DB.Model(&models.Employee{}).
			Where("email = ? AND employee_id != ?", email, employeeID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmployeeExists
		}
	}

	// The BeforeSave hook never sees a map update, so the hash happens here
	if password, ok := updates["password"].(string); ok && password != "" {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}

	if err := s.DB.Model(employee).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetEmployeeByID(employeeID)
}

// 5 DeleteEmployee removes an employee and cascades to the shift ledger.
// Shift cleanup is best effort: an employee must never outlive its deletion
// because dependent shifts could not be removed.
func (s *EmployeeService) DeleteEmployee(employeeID string) error {
	employee, err := s.GetEmployeeByID(employeeID)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(employee).Error; err != nil {
		return err
	}

	if err := s.deleteShiftsFor(employeeID); err != nil {
		logger.Warning("could not delete shifts for employee %s: %v", employeeID, err)
	}

	return nil
}

// deleteShiftsFor removes every shift referencing the employee. Historic
// records stored the reference in numeric form, so the normalized number is
// matched alongside the raw id.
func (s *EmployeeService) deleteShiftsFor(employeeID string) error {
	ids := []string{employeeID}
	if n, err := strconv.Atoi(employeeID); err == nil {
		normalized := strconv.Itoa(n)
		if normalized != employeeID {
			ids = append(ids, normalized)
		}
	}

	var shifts []models.Shift
	if err := s.DB.Where("employee_id IN ?", ids).Find(&shifts).Error; err != nil {
		return err
	}

	for _, shift := range shifts {
		if err := s.DB.Where("shift_ref = ?", shift.ID).Delete(&models.AttendanceRecord{}).Error; err != nil {
			return err
		}
	}

	return s.DB.Where("employee_id IN ?", ids).Delete(&models.Shift{}).Error
}

// 6 GetStatus returns the status projection for one employee
func (s *EmployeeService) GetStatus(employeeID string) (*models.StatusView, error) {
	employee, err := s.GetEmployeeByID(employeeID)
	if err != nil {
		return nil, err
	}
	view := employee.StatusView()
	return &view, nil
}

// 7 GetAllStatuses returns the status projection for every employee
func (s *EmployeeService) GetAllStatuses() ([]models.StatusView, error) {
	employees, err := s.GetAllEmployees()
	if err != nil {
		return nil, err
	}

	views := make([]models.StatusView, 0, len(employees))
	for _, employee := range employees {
		views = append(views, employee.StatusView())
	}
	return views, nil
}

// 8 GetAttendance returns the employee's attendance collected from all shifts
func (s *EmployeeService) GetAttendance(employeeID string) (*models.AttendanceView, error) {
	employee, err := s.GetEmployeeByID(employeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceFor(employeeID)
	if err != nil {
		return nil, err
	}

	return &models.AttendanceView{
		Name:       employee.Name,
		ID:         employee.EmployeeID,
		Attendance: records,
	}, nil
}

// 9 GetAllAttendance returns the attendance projection for every employee
func (s *EmployeeService) GetAllAttendance() ([]models.AttendanceView, error) {
	employees, err := s.GetAllEmployees()
	if err != nil {
		return nil, err
	}

	views := make([]models.AttendanceView, 0, len(employees))
	for _, employee := range employees {
		records, err := s.attendanceFor(employee.EmployeeID)
		if err != nil {
			return nil, err
		}
		views = append(views, models.AttendanceView{
			Name:       employee.Name,
			ID:         employee.EmployeeID,
			Attendance: records,
		})
	}
	return views, nil
}

// attendanceFor loads every attendance record across the employee's shifts
func (s *EmployeeService) attendanceFor(employeeID string) ([]models.AttendanceRecord, error) {
	var shifts []models.Shift
	if err := s.DB.Preload("Attendance").Where("employee_id = ?", employeeID).Find(&shifts).Error; err != nil {
		return nil, err
	}

	records := make([]models.AttendanceRecord, 0)
	for _, shift := range shifts {
		records = append(records, shift.Attendance...)
	}
	return records, nil
}

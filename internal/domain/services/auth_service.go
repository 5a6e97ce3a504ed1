package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/NaomiMeseret/Employee-shift-management/internal/domain/models"
	"github.com/NaomiMeseret/Employee-shift-management/internal/infrastructure/config"
	"github.com/NaomiMeseret/Employee-shift-management/pkg/utils"
)

// InterfaceAuthService defines the access control interface
type InterfaceAuthService interface {
	Register(employee *models.Employee) error
	Login(email, password string) (*models.Employee, error)
	ChangePassword(employeeID, currentPassword, newPassword string) error
	GetPendingEmployees() ([]models.Employee, error)
	ApproveEmployee(employeeID string) (*models.Employee, error)
	RejectEmployee(employeeID string) error
	CreateAdmin(admin *models.Employee) error
	IsAdmin(employeeID string) (bool, error)
}

// AuthService provides registration, login gating and the admin approval
// workflow
type AuthService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(db *gorm.DB, cfg *config.Config) InterfaceAuthService {
	return &AuthService{
		DB:     db,
		Config: cfg,
	}
}

// Register creates a new employee awaiting admin approval
func (s *AuthService) Register(employee *models.Employee) error {
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

	// Password is hashed by the model's BeforeSave hook
	return s.DB.Create(employee).Error
}

// Login looks the employee up by email and checks the lifecycle status before
// the password: pending and deactivated accounts are refused even with valid
// credentials.
func (s *AuthService) Login(email, password string) (*models.Employee, error) {
	var employee models.Employee
	if err := s.DB.Where("email = ?", email).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	if employee.Status == models.StatusPending {
		return nil, ErrAccountPending
	}
	if employee.Status == models.StatusInactive {
		return nil, ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(password)); err != nil {
		return nil, ErrPasswordIncorrect
	}

	return &employee, nil
}

// ChangePassword verifies the current password before storing a new hash
func (s *AuthService) ChangePassword(employeeID, currentPassword, newPassword string) error {
	var employee models.Employee
	if err := s.DB.Where("employee_id = ?", employeeID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return err
	}

	if !utils.CheckPasswordHash(currentPassword, employee.Password) {
		return ErrPasswordIncorrect
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.DB.Model(&employee).Update("password", hashed).Error
}

// GetPendingEmployees lists every employee awaiting approval
func (s *AuthService) GetPendingEmployees() ([]models.Employee, error) {
	var pending []models.Employee
	if err := s.DB.Where("status = ?", models.StatusPending).Find(&pending).Error; err != nil {
		return nil, err
	}
	return pending, nil
}

// ApproveEmployee transitions a pending employee to active
func (s *AuthService) ApproveEmployee(employeeID string) (*models.Employee, error) {
	var employee models.Employee
	if err := s.DB.Where("employee_id = ?", employeeID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	if err := s.DB.Model(&employee).Update("status", models.StatusActive).Error; err != nil {
		return nil, err
	}

	return &employee, nil
}

// RejectEmployee deletes a registration outright
func (s *AuthService) RejectEmployee(employeeID string) error {
	result := s.DB.Where("employee_id = ?", employeeID).Delete(&models.Employee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// CreateAdmin is the one-time bootstrap path. It refuses once any admin
// account exists, then applies the same uniqueness rules as registration.
func (s *AuthService) CreateAdmin(admin *models.Employee) error {
	var count int64
	if err := s.DB.Model(&models.Employee{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAdminExists
	}

	if err := s.DB.Model(&models.Employee{}).
		Where("employee_id = ? OR email = ?", admin.EmployeeID, admin.Email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmployeeExists
	}

	if admin.Position == "" {
		admin.Position = "Administrator"
	}
	admin.ProfilePicture = "default.jpg"
	admin.Status = models.StatusActive
	admin.IsAdmin = true

	return s.DB.Create(admin).Error
}

// IsAdmin reports whether the employee holds the admin capability
func (s *AuthService) IsAdmin(employeeID string) (bool, error) {
	var employee models.Employee
	if err := s.DB.Where("employee_id = ?", employeeID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return employee.IsAdmin, nil
}

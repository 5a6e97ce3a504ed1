package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NaomiMeseret/Employee-shift-management/internal/domain/models"
	"github.com/NaomiMeseret/Employee-shift-management/internal/infrastructure/config"
)

// InterfaceShiftService defines the shift ledger interface
type InterfaceShiftService interface {
	AssignShift(shift *models.Shift) error
	GetShiftsByEmployee(employeeID string) ([]models.Shift, error)
	GetAllShifts() ([]models.Shift, error)
	UpdateShift(shiftID string, updates map[string]interface{}, attendance []models.AttendanceRecord) (*models.Shift, error)
	DeleteShift(shiftID string) error
}

// ShiftService provides shift ledger operations
type ShiftService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewShiftService creates a new shift service
func NewShiftService(db *gorm.DB, cfg *config.Config) InterfaceShiftService {
	return &ShiftService{
		DB:     db,
		Config: cfg,
	}
}

// AssignShift records a new shift for an employee. A missing shift id gets a
// generated one; duplicate ids are rejected.
func (s *ShiftService) AssignShift(shift *models.Shift) error {
	if shift.ShiftID == "" {
		shift.ShiftID = uuid.NewString()
	}

	var count int64
	if err := s.DB.Model(&models.Shift{}).Where("shift_id = ?", shift.ShiftID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrShiftExists
	}

	return s.DB.Create(shift).Error
}

// GetShiftsByEmployee lists every shift assigned to an employee
func (s *ShiftService) GetShiftsByEmployee(employeeID string) ([]models.Shift, error) {
	var shifts []models.Shift
	if err := s.DB.Preload("Attendance").Where("employee_id = ?", employeeID).Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

// GetAllShifts lists every shift in the ledger
func (s *ShiftService) GetAllShifts() ([]models.Shift, error) {
	var shifts []models.Shift
	if err := s.DB.Preload("Attendance").Find(&shifts).Error; err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		return nil, ErrNoShifts
	}
	return shifts, nil
}

// UpdateShift applies a partial field update by shift id and optionally
// appends externally supplied attendance entries. The append path does not
// run the clock in/out transition checks; the unique (shift, date, action)
// index still rejects duplicates.
func (s *ShiftService) UpdateShift(shiftID string, updates map[string]interface{}, attendance []models.AttendanceRecord) (*models.Shift, error) {
	var shift models.Shift
	if err := s.DB.Where("shift_id = ?", shiftID).First(&shift).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&shift).Updates(updates).Error; err != nil {
				return err
			}
		}

		for i := range attendance {
			attendance[i].ShiftRef = shift.ID
			if err := tx.Create(&attendance[i]).Error; err != nil {
				if isDuplicateKey(err) {
					return ErrAlreadyClockedIn
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Attendance").Where("shift_id = ?", shiftID).First(&shift).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

// DeleteShift removes a shift and its attendance log by shift id
func (s *ShiftService) DeleteShift(shiftID string) error {
	var shift models.Shift
	if err := s.DB.Where("shift_id = ?", shiftID).First(&shift).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShiftNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shift_ref = ?", shift.ID).Delete(&models.AttendanceRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&shift).Error
	})
}

// isDuplicateKey reports whether the error comes from a unique index
// violation. MySQL reports error 1062, SQLite mentions the constraint.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

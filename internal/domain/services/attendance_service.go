package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/NaomiMeseret/Employee-shift-management/internal/domain/models"
	"github.com/NaomiMeseret/Employee-shift-management/internal/infrastructure/config"
	"github.com/NaomiMeseret/Employee-shift-management/pkg/logger"
)

// InterfaceAttendanceService defines the clock in/out interface
type InterfaceAttendanceService interface {
	ClockIn(employeeID, shiftID string) (*models.Shift, error)
	ClockOut(employeeID, shiftID string) (*models.Shift, error)
}

// AttendanceService owns the clock in/out transition rules. For each
// (shift, date) the attendance log moves NoEvent -> ClockedIn -> ClockedOut;
// a new calendar date starts over at NoEvent.
type AttendanceService struct {
	DB        *gorm.DB
	Config    *config.Config
	Publisher InterfaceEventPublisher

	// now is replaceable in tests
	now func() time.Time
}

// NewAttendanceService creates a new attendance service. publisher may be nil.
func NewAttendanceService(db *gorm.DB, cfg *config.Config, publisher InterfaceEventPublisher) InterfaceAttendanceService {
	return &AttendanceService{
		DB:        db,
		Config:    cfg,
		Publisher: publisher,
		now:       time.Now,
	}
}

// checkTransition decides whether an action is valid given the shift's
// attendance log for the day
func checkTransition(records []models.AttendanceRecord, date, action string) error {
	var clockedIn, clockedOut bool
	for _, r := range records {
		if r.Date != date {
			continue
		}
		switch r.ActionType {
		case models.ActionClockIn:
			clockedIn = true
		case models.ActionClockOut:
			clockedOut = true
		}
	}

	switch action {
	case models.ActionClockIn:
		if clockedIn {
			return ErrAlreadyClockedIn
		}
	case models.ActionClockOut:
		if !clockedIn {
			return ErrNotClockedIn
		}
		if clockedOut {
			return ErrAlreadyClockedOut
		}
	}
	return nil
}

// ClockIn records a Clock In event for today and marks the employee active
func (s *AttendanceService) ClockIn(employeeID, shiftID string) (*models.Shift, error) {
	return s.apply(employeeID, shiftID, models.ActionClockIn, models.StatusActive)
}

// ClockOut records a Clock Out event for today and marks the employee on leave
func (s *AttendanceService) ClockOut(employeeID, shiftID string) (*models.Shift, error) {
	return s.apply(employeeID, shiftID, models.ActionClockOut, models.StatusOnLeave)
}

// apply runs one transition: look up employee and shift, validate against the
// day's log, then append the event and flip the employee status in a single
// transaction. The unique (shift, date, action) index turns a concurrent
// duplicate into a conflict instead of a second record.
func (s *AttendanceService) apply(employeeID, shiftID, action, newStatus string) (*models.Shift, error) {
	now := s.now()
	today := now.Format("2006-01-02")
	clock := now.Format("3:04:05 PM")

	var employee models.Employee
	if err := s.DB.Where("employee_id = ?", employeeID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	var shift models.Shift
	if err := s.DB.Preload("Attendance").
		Where("shift_id = ? AND employee_id = ?", shiftID, employeeID).
		First(&shift).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}

	if err := checkTransition(shift.Attendance, today, action); err != nil {
		return nil, err
	}

	record := models.AttendanceRecord{
		ShiftRef:   shift.ID,
		ActionType: action,
		Time:       clock,
		Date:       today,
		Status:     newStatus,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			if isDuplicateKey(err) {
				if action == models.ActionClockIn {
					return ErrAlreadyClockedIn
				}
				return ErrAlreadyClockedOut
			}
			return err
		}
		return tx.Model(&employee).Update("status", newStatus).Error
	})
	if err != nil {
		return nil, err
	}

	shift.Attendance = append(shift.Attendance, record)

	if s.Publisher != nil {
		if err := s.Publisher.PublishAttendanceEvent(AttendanceEvent{
			EmployeeID: employeeID,
			ShiftID:    shiftID,
			Action:     action,
			Time:       clock,
			Date:       today,
			Status:     newStatus,
		}); err != nil {
			logger.Warning("attendance event publish failed: %v", err)
		}
	}

	return &shift, nil
}

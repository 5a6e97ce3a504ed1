package models

import "time"

// Shift types
const (
	ShiftMorning   = "morning"
	ShiftAfternoon = "afternoon"
	ShiftNight     = "night"
)

// Attendance action types
const (
	ActionClockIn  = "Clock In"
	ActionClockOut = "Clock Out"
)

// Shift is an assignment of a work period to an employee. ShiftID is the
// externally supplied identifier; EmployeeID references Employee.EmployeeID.
type Shift struct {
	ID         uint               `gorm:"primaryKey" json:"-"`
	ShiftID    string             `gorm:"type:varchar(50);uniqueIndex;not null" json:"id"`
	EmployeeID string             `gorm:"type:varchar(50);index;not null" json:"employeeId"`
	Date       string             `gorm:"type:varchar(20);not null" json:"date"`
	ShiftType  string             `gorm:"type:varchar(20);not null" json:"shiftType"`
	Attendance []AttendanceRecord `gorm:"foreignKey:ShiftRef;constraint:OnDelete:CASCADE" json:"attendance"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// AttendanceRecord is a single Clock In / Clock Out event inside a shift's
// attendance log. The composite unique index guarantees at most one record
// per (shift, date, action), so a concurrent duplicate write fails in the
// database instead of slipping past the read-then-append check.
type AttendanceRecord struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	ShiftRef   uint      `gorm:"uniqueIndex:idx_shift_date_action;not null" json:"-"`
	ActionType string    `gorm:"type:varchar(20);uniqueIndex:idx_shift_date_action;not null" json:"actionType"`
	Time       string    `gorm:"type:varchar(20)" json:"time"`
	Date       string    `gorm:"type:varchar(20);uniqueIndex:idx_shift_date_action" json:"date"`
	Status     string    `gorm:"type:varchar(20)" json:"status"`
	CreatedAt  time.Time `json:"-"`
}

// AttendanceView is the projection served by the /attendance endpoints
type AttendanceView struct {
	Name       string             `json:"name"`
	ID         string             `json:"id"`
	Attendance []AttendanceRecord `json:"attendance"`
}

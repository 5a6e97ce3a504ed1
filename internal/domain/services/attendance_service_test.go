package services

import (
	"errors"
	"testing"
	"time"

	"github.com/NaomiMeseret/Employee-shift-management/internal/domain/models"
)

func TestCheckTransition(t *testing.T) {
	const day = "2025-01-15"
	in := models.AttendanceRecord{ActionType: models.ActionClockIn, Date: day}
	out := models.AttendanceRecord{ActionType: models.ActionClockOut, Date: day}
	otherDayIn := models.AttendanceRecord{ActionType: models.ActionClockIn, Date: "2025-01-14"}

	cases := []struct {
		name    string
		records []models.AttendanceRecord
		action  string
		want    error
	}{
		{"clock in on empty log", nil, models.ActionClockIn, nil},
		{"duplicate clock in", []models.AttendanceRecord{in}, models.ActionClockIn, ErrAlreadyClockedIn},
		{"clock out after clock in", []models.AttendanceRecord{in}, models.ActionClockOut, nil},
		{"clock out without clock in", nil, models.ActionClockOut, ErrNotClockedIn},
		{"duplicate clock out", []models.AttendanceRecord{in, out}, models.ActionClockOut, ErrAlreadyClockedOut},
		{"clock in after full day", []models.AttendanceRecord{in, out}, models.ActionClockIn, ErrAlreadyClockedIn},
		{"yesterday does not carry over", []models.AttendanceRecord{otherDayIn}, models.ActionClockIn, nil},
		{"yesterday does not allow clock out", []models.AttendanceRecord{otherDayIn}, models.ActionClockOut, ErrNotClockedIn},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := checkTransition(tc.records, day, tc.action); !errors.Is(got, tc.want) {
				t.Errorf("checkTransition() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClockInThenOut(t *testing.T) {
	db := newTestDB(t)
	ts := time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)
	svc := &AttendanceService{DB: db, Config: newTestConfig(), now: func() time.Time { return ts }}

	seedEmployee(t, db, "E1", models.StatusActive)
	seedShift(t, db, "S1", "E1")

	shift, err := svc.ClockIn("E1", "S1")
	if err != nil {
		t.Fatalf("ClockIn failed: %v", err)
	}
	if len(shift.Attendance) != 1 {
		t.Fatalf("attendance length = %d, want 1", len(shift.Attendance))
	}
	record := shift.Attendance[0]
	if record.ActionType != models.ActionClockIn {
		t.Errorf("action = %q, want %q", record.ActionType, models.ActionClockIn)
	}
	if record.Date != "2025-01-15" {
		t.Errorf("date = %q, want 2025-01-15", record.Date)
	}
	if record.Time != "9:30:00 AM" {
		t.Errorf("time = %q, want 9:30:00 AM", record.Time)
	}

	var employee models.Employee
	db.Where("employee_id = ?", "E1").First(&employee)
	if employee.Status != models.StatusActive {
		t.Errorf("status after clock in = %q, want active", employee.Status)
	}

	shift, err = svc.ClockOut("E1", "S1")
	if err != nil {
		t.Fatalf("ClockOut failed: %v", err)
	}
	if len(shift.Attendance) != 2 {
		t.Fatalf("attendance length = %d, want 2", len(shift.Attendance))
	}

	db.Where("employee_id = ?", "E1").First(&employee)
	if employee.Status != models.StatusOnLeave {
		t.Errorf("status after clock out = %q, want on leave", employee.Status)
	}
}

func TestClockInTwiceSameDay(t *testing.T) {
	db := newTestDB(t)
	ts := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	svc := &AttendanceService{DB: db, Config: newTestConfig(), now: func() time.Time { return ts }}

	seedEmployee(t, db, "E1", models.StatusActive)
	seedShift(t, db, "S1", "E1")

	if _, err := svc.ClockIn("E1", "S1"); err != nil {
		t.Fatalf("first ClockIn failed: %v", err)
	}
	if _, err := svc.ClockIn("E1", "S1"); !errors.Is(err, ErrAlreadyClockedIn) {
		t.Fatalf("second ClockIn = %v, want ErrAlreadyClockedIn", err)
	}

	// The rejected attempt must not leave a second record behind
	var count int64
	db.Model(&models.AttendanceRecord{}).Count(&count)
	if count != 1 {
		t.Errorf("attendance record count = %d, want 1", count)
	}
}

func TestClockOutRules(t *testing.T) {
	db := newTestDB(t)
	ts := time.Date(2025, 1, 15, 17, 0, 0, 0, time.UTC)
	svc := &AttendanceService{DB: db, Config: newTestConfig(), now: func() time.Time { return ts }}

	seedEmployee(t, db, "E1", models.StatusActive)
	seedShift(t, db, "S1", "E1")

	if _, err := svc.ClockOut("E1", "S1"); !errors.Is(err, ErrNotClockedIn) {
		t.Fatalf("ClockOut before ClockIn = %v, want ErrNotClockedIn", err)
	}

	if _, err := svc.ClockIn("E1", "S1"); err != nil {
		t.Fatalf("ClockIn failed: %v", err)
	}
	if _, err := svc.ClockOut("E1", "S1"); err != nil {
		t.Fatalf("ClockOut failed: %v", err)
	}
	if _, err := svc.ClockOut("E1", "S1"); !errors.Is(err, ErrAlreadyClockedOut) {
		t.Fatalf("second ClockOut = %v, want ErrAlreadyClockedOut", err)
	}
}

func TestClockInNewDayStartsOver(t *testing.T) {
	db := newTestDB(t)
	current := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	svc := &AttendanceService{DB: db, Config: newTestConfig(), now: func() time.Time { return current }}

	seedEmployee(t, db, "E1", models.StatusActive)
	seedShift(t, db, "S1", "E1")

	if _, err := svc.ClockIn("E1", "S1"); err != nil {
		t.Fatalf("day one ClockIn failed: %v", err)
	}
	if _, err := svc.ClockOut("E1", "S1"); err != nil {
		t.Fatalf("day one ClockOut failed: %v", err)
	}

	current = current.AddDate(0, 0, 1)

	shift, err := svc.ClockIn("E1", "S1")
	if err != nil {
		t.Fatalf("day two ClockIn failed: %v", err)
	}
	if len(shift.Attendance) != 3 {
		t.Errorf("attendance length = %d, want 3", len(shift.Attendance))
	}
}

func TestClockLookupErrors(t *testing.T) {
	db := newTestDB(t)
	svc := &AttendanceService{DB: db, Config: newTestConfig(), now: time.Now}

	seedEmployee(t, db, "E1", models.StatusActive)
	seedEmployee(t, db, "E2", models.StatusActive)
	seedShift(t, db, "S1", "E1")

	if _, err := svc.ClockIn("missing", "S1"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("ClockIn(unknown employee) = %v, want ErrEmployeeNotFound", err)
	}
	if _, err := svc.ClockIn("E1", "missing"); !errors.Is(err, ErrShiftNotFound) {
		t.Errorf("ClockIn(unknown shift) = %v, want ErrShiftNotFound", err)
	}
	// A shift belonging to another employee is treated as not found
	if _, err := svc.ClockIn("E2", "S1"); !errors.Is(err, ErrShiftNotFound) {
		t.Errorf("ClockIn(foreign shift) = %v, want ErrShiftNotFound", err)
	}
}

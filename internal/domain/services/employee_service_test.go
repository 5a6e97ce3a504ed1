package services

import (
	"errors"
	"testing"

	"github.com/NaomiMeseret/Employee-shift-management/internal/domain/models"
	"github.com/NaomiMeseret/Employee-shift-management/pkg/utils"
)

func TestCreateEmployeeUniqueness(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db, newTestConfig())
	seedEmployee(t, db, "E1", models.StatusActive)

	dup := &models.Employee{
		EmployeeID: "E1",
		Name:       "Someone Else",
		Email:      "else@example.com",
		Password:   "pw123456",
	}
	if err := svc.CreateEmployee(dup); !errors.Is(err, ErrEmployeeExists) {
		t.Errorf("CreateEmployee(duplicate id) = %v, want ErrEmployeeExists", err)
	}
}

func TestUpdateEmployee(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db, newTestConfig())
	seedEmployee(t, db, "E1", models.StatusActive)
	seedEmployee(t, db, "E2", models.StatusActive)

	updated, err := svc.UpdateEmployee("E1", map[string]interface{}{
		"name":     "Renamed",
		"position": "Manager",
	})
	if err != nil {
		t.Fatalf("UpdateEmployee failed: %v", err)
	}
	if updated.Name != "Renamed" || updated.Position != "Manager" {
		t.Errorf("update not applied: name=%q position=%q", updated.Name, updated.Position)
	}

	// Cannot take another employee's email
	if _, err := svc.UpdateEmployee("E1", map[string]interface{}{"email": "E2@example.com"}); !errors.Is(err, ErrEmployeeExists) {
		t.Errorf("UpdateEmployee(taken email) = %v, want ErrEmployeeExists", err)
	}

	if _, err := svc.UpdateEmployee("missing", map[string]interface{}{"name": "x"}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("UpdateEmployee(missing) = %v, want ErrEmployeeNotFound", err)
	}
}

func TestUpdateEmployeeRehashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db, newTestConfig())
	auth := NewAuthService(db, newTestConfig())
	seedEmployee(t, db, "E1", models.StatusActive)

	if _, err := svc.UpdateEmployee("E1", map[string]interface{}{"password": "newSecret456"}); err != nil {
		t.Fatalf("UpdateEmployee failed: %v", err)
	}

	var stored models.Employee
	if err := db.Where("employee_id = ?", "E1").First(&stored).Error; err != nil {
		t.Fatalf("employee not found: %v", err)
	}
	if stored.Password == "newSecret456" {
		t.Fatal("password stored in plain text")
	}
	if !utils.IsHashed(stored.Password) {
		t.Errorf("stored password is not a bcrypt hash: %q", stored.Password)
	}

	if _, err := auth.Login("E1@example.com", "newSecret456"); err != nil {
		t.Errorf("login with updated password failed: %v", err)
	}
	if _, err := auth.Login("E1@example.com", "secret123"); !errors.Is(err, ErrPasswordIncorrect) {
		t.Errorf("old password still accepted: %v", err)
	}
}

func TestGetAllEmployeesEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db, newTestConfig())

	if _, err := svc.GetAllEmployees(); !errors.Is(err, ErrNoEmployees) {
		t.Errorf("GetAllEmployees(empty) = %v, want ErrNoEmployees", err)
	}
	if _, err := svc.GetAllStatuses(); !errors.Is(err, ErrNoEmployees) {
		t.Errorf("GetAllStatuses(empty) = %v, want ErrNoEmployees", err)
	}
	if _, err := svc.GetAllAttendance(); !errors.Is(err, ErrNoEmployees) {
		t.Errorf("GetAllAttendance(empty) = %v, want ErrNoEmployees", err)
	}
}

func TestDeleteEmployeeCascadesShifts(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db, newTestConfig())
	seedEmployee(t, db, "E1", models.StatusActive)
	seedEmployee(t, db, "E2", models.StatusActive)
	shift := seedShift(t, db, "S1", "E1")
	seedShift(t, db, "S2", "E2")

	record := models.AttendanceRecord{
		ShiftRef:   shift.ID,
		ActionType: models.ActionClockIn,
		Date:       "2025-01-15",
		Status:     models.StatusActive,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("failed to seed attendance: %v", err)
	}

	if err := svc.DeleteEmployee("E1"); err != nil {
		t.Fatalf("DeleteEmployee failed: %v", err)
	}

	var employeeCount, shiftCount, recordCount int64
	db.Model(&models.Employee{}).Where("employee_id = ?", "E1").Count(&employeeCount)
	db.Model(&models.Shift{}).Where("employee_id = ?", "E1").Count(&shiftCount)
	db.Model(&models.AttendanceRecord{}).Count(&recordCount)
	if employeeCount != 0 {
		t.Error("employee still present after delete")
	}
	if shiftCount != 0 {
		t.Error("shifts still present after delete")
	}
	if recordCount != 0 {
		t.Error("attendance records still present after delete")
	}

	// The other employee's shift survives
	db.Model(&models.Shift{}).Where("employee_id = ?", "E2").Count(&shiftCount)
	if shiftCount != 1 {
		t.Errorf("unrelated shift count = %d, want 1", shiftCount)
	}
}

func TestDeleteEmployeeCascadesNormalizedID(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db, newTestConfig())
	seedEmployee(t, db, "007", models.StatusActive)

	// Historic shift rows stored the reference without leading zeros
	seedShift(t, db, "S1", "7")
	seedShift(t, db, "S2", "007")

	if err := svc.DeleteEmployee("007"); err != nil {
		t.Fatalf("DeleteEmployee failed: %v", err)
	}

	var count int64
	db.Model(&models.Shift{}).Count(&count)
	if count != 0 {
		t.Errorf("shift count = %d, want 0", count)
	}
}

func TestStatusProjections(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db, newTestConfig())
	seedEmployee(t, db, "E1", models.StatusActive)
	seedEmployee(t, db, "E2", models.StatusOnLeave)

	status, err := svc.GetStatus("E1")
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if status.ID != "E1" || status.Status != models.StatusActive {
		t.Errorf("status = %+v", status)
	}

	all, err := svc.GetAllStatuses()
	if err != nil {
		t.Fatalf("GetAllStatuses failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("status count = %d, want 2", len(all))
	}

	if _, err := svc.GetStatus("missing"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("GetStatus(missing) = %v, want ErrEmployeeNotFound", err)
	}
}

func TestAttendanceCollectedAcrossShifts(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db, newTestConfig())
	seedEmployee(t, db, "E1", models.StatusActive)
	s1 := seedShift(t, db, "S1", "E1")
	s2 := seedShift(t, db, "S2", "E1")

	for _, r := range []models.AttendanceRecord{
		{ShiftRef: s1.ID, ActionType: models.ActionClockIn, Date: "2025-01-15", Status: models.StatusActive},
		{ShiftRef: s1.ID, ActionType: models.ActionClockOut, Date: "2025-01-15", Status: models.StatusOnLeave},
		{ShiftRef: s2.ID, ActionType: models.ActionClockIn, Date: "2025-01-16", Status: models.StatusActive},
	} {
		record := r
		if err := db.Create(&record).Error; err != nil {
			t.Fatalf("failed to seed attendance: %v", err)
		}
	}

	view, err := svc.GetAttendance("E1")
	if err != nil {
		t.Fatalf("GetAttendance failed: %v", err)
	}
	if view.ID != "E1" || len(view.Attendance) != 3 {
		t.Errorf("attendance view = id %q with %d records, want E1 with 3", view.ID, len(view.Attendance))
	}

	all, err := svc.GetAllAttendance()
	if err != nil {
		t.Fatalf("GetAllAttendance failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("view count = %d, want 1", len(all))
	}
	if len(all[0].Attendance) != 3 {
		t.Errorf("record count = %d, want 3", len(all[0].Attendance))
	}
}

package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/NaomiMeseret/Employee-shift-management/internal/domain/models"
	"github.com/NaomiMeseret/Employee-shift-management/internal/infrastructure/config"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	return SetupRouter(db, &config.Config{ServerPort: "3000"})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: invalid response body %q: %v", method, path, w.Body.String(), err)
	}
	return w, env
}

// TestRegistrationApprovalAttendanceFlow walks one employee through the whole
// lifecycle: register, blocked login, admin approval, login, shift assignment
// and a full clock in / clock out day.
func TestRegistrationApprovalAttendanceFlow(t *testing.T) {
	r := newTestRouter(t)

	// Register a new employee
	w, env := doJSON(t, r, http.MethodPost, "/api/register", gin.H{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"id":       "E1",
		"password": "secret123",
		"position": "Cashier",
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status = %d, body = %s", w.Code, w.Body.String())
	}
	if env.Message != "User created successfully" {
		t.Errorf("register message = %q", env.Message)
	}

	// Login is refused while the account is pending
	w, env = doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email":    "jane@example.com",
		"password": "secret123",
	}, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("pending login: status = %d, want 403", w.Code)
	}

	// Bootstrap the admin account
	w, _ = doJSON(t, r, http.MethodPost, "/api/createAdmin", gin.H{
		"name":     "Root Admin",
		"email":    "admin@example.com",
		"id":       "A1",
		"password": "admin123",
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("createAdmin: status = %d, body = %s", w.Code, w.Body.String())
	}

	// The approval endpoints demand the admin header
	w, _ = doJSON(t, r, http.MethodGet, "/api/pending", nil, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("pending without header: status = %d, want 403", w.Code)
	}

	admin := map[string]string{"X-Admin-ID": "A1"}
	w, _ = doJSON(t, r, http.MethodPut, "/api/approve/E1", nil, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("approve: status = %d, body = %s", w.Code, w.Body.String())
	}

	// Approved employees can log in
	w, env = doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email":    "jane@example.com",
		"password": "secret123",
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login after approval: status = %d, body = %s", w.Code, w.Body.String())
	}
	if env.Message != "Login successful" {
		t.Errorf("login message = %q", env.Message)
	}

	// Assign a shift
	w, env = doJSON(t, r, http.MethodPost, "/api/assignShift/E1", gin.H{
		"date":      "2025-01-15",
		"shiftType": "morning",
		"shiftId":   "S1",
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("assignShift: status = %d, body = %s", w.Code, w.Body.String())
	}
	if env.Message != "Shift assigned successfully" {
		t.Errorf("assignShift message = %q", env.Message)
	}

	// Clock in once, the repeat is rejected
	w, _ = doJSON(t, r, http.MethodPost, "/api/clockin/E1", gin.H{"shiftId": "S1"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("clockin: status = %d, body = %s", w.Code, w.Body.String())
	}
	w, env = doJSON(t, r, http.MethodPost, "/api/clockin/E1", gin.H{"shiftId": "S1"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate clockin: status = %d, want 400", w.Code)
	}
	if env.Message != "Already clocked in today" {
		t.Errorf("duplicate clockin message = %q", env.Message)
	}

	// Clock out once, the repeat is rejected
	w, _ = doJSON(t, r, http.MethodPost, "/api/clockout/E1", gin.H{"shiftId": "S1"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("clockout: status = %d, body = %s", w.Code, w.Body.String())
	}
	w, env = doJSON(t, r, http.MethodPost, "/api/clockout/E1", gin.H{"shiftId": "S1"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate clockout: status = %d, want 400", w.Code)
	}
	if env.Message != "Already clocked out today" {
		t.Errorf("duplicate clockout message = %q", env.Message)
	}

	// After clock out the status projection reports on leave
	w, env = doJSON(t, r, http.MethodGet, "/api/status/E1", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: status = %d, body = %s", w.Code, w.Body.String())
	}
	var view models.StatusView
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("status data: %v", err)
	}
	if view.Status != models.StatusOnLeave {
		t.Errorf("status after clock out = %q, want on leave", view.Status)
	}
}

func TestClockRequiresAssignedShift(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/createAdmin", gin.H{
		"name": "Root Admin", "email": "admin@example.com", "id": "A1", "password": "admin123",
	}, nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/clockin/A1", gin.H{"shiftId": "missing"}, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("clockin without shift: status = %d, want 404", w.Code)
	}
	if env.Message != "Shift not found for this employee" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/ping", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ping: status = %d", w.Code)
	}
	if env.Code != 0 && env.Message == "" {
		t.Errorf("ping envelope = %+v", env)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/api/health", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health: status = %d", w.Code)
	}
}

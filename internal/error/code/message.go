package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Generic
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "invalid request body",
	ErrValidation:      "request validation failed",
	ErrTooManyRequests: "too many requests",

	// Employee
	ErrEmployeeNotFound:     "Employee not found",
	ErrEmployeeAlreadyExist: "Email or ID already in use",
	ErrNoEmployeesFound:     "No employees found",

	// Shift
	ErrShiftNotFound:     "Shift not found",
	ErrShiftAlreadyExist: "ID already in use",
	ErrNoShiftsFound:     "No assigned shifts found",

	// Attendance
	ErrAlreadyClockedIn:  "Already clocked in today",
	ErrNotClockedIn:      "You haven't clocked in today",
	ErrAlreadyClockedOut: "Already clocked out today",

	// Access control
	ErrPasswordIncorrect: "Invalid credentials",
	ErrAccountPending:    "Your account is pending admin approval. Please contact your administrator.",
	ErrAccountInactive:   "Your account has been deactivated. Please contact your administrator.",
	ErrAdminAlreadyExist: "Admin user already exists",
	ErrAdminRequired:     "Insufficient permissions: requires admin capability",

	// Database
	ErrDatabase: "database error",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Generic
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTooManyRequests: StatusTooManyRequests,

	// Employee
	ErrEmployeeNotFound:     StatusNotFound,
	ErrEmployeeAlreadyExist: StatusBadRequest,
	ErrNoEmployeesFound:     StatusNotFound,

	// Shift
	ErrShiftNotFound:     StatusNotFound,
	ErrShiftAlreadyExist: StatusBadRequest,
	ErrNoShiftsFound:     StatusNotFound,

	// Attendance
	ErrAlreadyClockedIn:  StatusBadRequest,
	ErrNotClockedIn:      StatusBadRequest,
	ErrAlreadyClockedOut: StatusBadRequest,

	// Access control
	ErrPasswordIncorrect: StatusUnauthorized,
	ErrAccountPending:    StatusForbidden,
	ErrAccountInactive:   StatusForbidden,
	ErrAdminAlreadyExist: StatusBadRequest,
	ErrAdminRequired:     StatusForbidden,

	// Database
	ErrDatabase: StatusInternalServerError,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}

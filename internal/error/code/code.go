package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusCreated - 201: resource created.
	StatusCreated = 201
	// StatusBadRequest - 400: bad request / conflict.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthorized.
	StatusUnauthorized = 401
	// StatusForbidden - 403: forbidden.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding error.
	ErrBind
	// ErrValidation - 400: request validation error.
	ErrValidation
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Employee error codes (101xxx).
const (
	// ErrEmployeeNotFound - 404: employee does not exist.
	ErrEmployeeNotFound int = iota + 101000
	// ErrEmployeeAlreadyExist - 400: employee id or email already in use.
	ErrEmployeeAlreadyExist
	// ErrNoEmployeesFound - 404: the directory is empty.
	ErrNoEmployeesFound
)

// Shift error codes (102xxx).
const (
	// ErrShiftNotFound - 404: shift does not exist.
	ErrShiftNotFound int = iota + 102000
	// ErrShiftAlreadyExist - 400: shift id already in use.
	ErrShiftAlreadyExist
	// ErrNoShiftsFound - 404: no assigned shifts.
	ErrNoShiftsFound
)

// Attendance error codes (103xxx).
const (
	// ErrAlreadyClockedIn - 400: duplicate clock in for the day.
	ErrAlreadyClockedIn int = iota + 103000
	// ErrNotClockedIn - 400: clock out without a prior clock in.
	ErrNotClockedIn
	// ErrAlreadyClockedOut - 400: duplicate clock out for the day.
	ErrAlreadyClockedOut
)

// Access control error codes (104xxx).
const (
	// ErrPasswordIncorrect - 401: wrong password.
	ErrPasswordIncorrect int = iota + 104000
	// ErrAccountPending - 403: account awaiting admin approval.
	ErrAccountPending
	// ErrAccountInactive - 403: account deactivated.
	ErrAccountInactive
	// ErrAdminAlreadyExist - 400: an admin account already exists.
	ErrAdminAlreadyExist
	// ErrAdminRequired - 403: caller lacks the admin capability.
	ErrAdminRequired
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
)

package services

import "errors"

// Sentinel errors shared by the domain services. Controllers translate these
// into business codes; anything else is treated as a database failure.
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeExists   = errors.New("email or id already in use")
	ErrNoEmployees      = errors.New("no employees found")

	ErrShiftNotFound = errors.New("shift not found for this employee")
	ErrShiftExists   = errors.New("shift id already in use")
	ErrNoShifts      = errors.New("no assigned shifts found")

	ErrAlreadyClockedIn  = errors.New("already clocked in today")
	ErrNotClockedIn      = errors.New("not clocked in today")
	ErrAlreadyClockedOut = errors.New("already clocked out today")

	ErrPasswordIncorrect = errors.New("invalid credentials")
	ErrAccountPending    = errors.New("account pending admin approval")
	ErrAccountInactive   = errors.New("account deactivated")
	ErrAdminExists       = errors.New("admin user already exists")
)

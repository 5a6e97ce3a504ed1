package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NaomiMeseret/Employee-shift-management/internal/domain/services"
	"github.com/NaomiMeseret/Employee-shift-management/internal/domain/services/container"
	"github.com/NaomiMeseret/Employee-shift-management/internal/error/code"
	"github.com/NaomiMeseret/Employee-shift-management/internal/error/response"
)

// InterfaceAttendanceController defines the clock in/out controller interface
type InterfaceAttendanceController interface {
	ClockIn()
	ClockOut()
}

// AttendanceController handles clock in and clock out requests
type AttendanceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAttendanceController creates a new attendance controller
func NewAttendanceController(ctx *gin.Context, container *container.ServiceContainer) *AttendanceController {
	return &AttendanceController{
		Ctx:       ctx,
		Container: container,
	}
}

// ClockRequest is the request body for clock in and clock out
type ClockRequest struct {
	ShiftID string `json:"shiftId" binding:"required" example:"S1"`
}

// ClockIn records a Clock In event for today on the given shift
// @Summary      Clock in
// @Description  Valid only once per shift per day; marks the employee active
// @Tags         Attendance
// @Accept       json
// @Produce      json
// @Param        id path string true "employee id"
// @Param        request body ClockRequest true "shift reference"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /clockin/{id} [post]
func (c *AttendanceController) ClockIn() {
	employeeID := c.Ctx.Param("id")

	var req ClockRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	attendanceService := c.Container.GetService("attendance").(services.InterfaceAttendanceService)
	shift, err := attendanceService.ClockIn(employeeID, req.ShiftID)
	if err != nil {
		c.failClock(err, "Clock-in failed")
		return
	}

	response.SuccessWithMessage(c.Ctx, "Clock-in successful", gin.H{"shift": shift})
}

// ClockOut records a Clock Out event for today on the given shift
// @Summary      Clock out
// @Description  Requires a prior Clock In today; marks the employee on leave
// @Tags         Attendance
// @Accept       json
// @Produce      json
// @Param        id path string true "employee id"
// @Param        request body ClockRequest true "shift reference"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /clockout/{id} [post]
func (c *AttendanceController) ClockOut() {
	employeeID := c.Ctx.Param("id")

	var req ClockRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	attendanceService := c.Container.GetService("attendance").(services.InterfaceAttendanceService)
	shift, err := attendanceService.ClockOut(employeeID, req.ShiftID)
	if err != nil {
		c.failClock(err, "Clock-out failed")
		return
	}

	response.SuccessWithMessage(c.Ctx, "Clock-out successful", gin.H{"shift": shift})
}

// failClock maps attendance errors onto the response envelope
func (c *AttendanceController) failClock(err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrEmployeeNotFound):
		response.Fail(c.Ctx, code.ErrEmployeeNotFound, nil)
	case errors.Is(err, services.ErrShiftNotFound):
		response.FailWithMessage(c.Ctx, code.ErrShiftNotFound, "Shift not found for this employee", nil)
	case errors.Is(err, services.ErrAlreadyClockedIn):
		response.Fail(c.Ctx, code.ErrAlreadyClockedIn, nil)
	case errors.Is(err, services.ErrNotClockedIn):
		response.Fail(c.Ctx, code.ErrNotClockedIn, nil)
	case errors.Is(err, services.ErrAlreadyClockedOut):
		response.Fail(c.Ctx, code.ErrAlreadyClockedOut, nil)
	default:
		response.FailWithMessage(c.Ctx, code.ErrDatabase, fallback+": "+err.Error(), nil)
	}
}

// HandleAttendanceFunc returns a Gin handler dispatching to the attendance controller
func HandleAttendanceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAttendanceController(ctx, container)

		switch method {
		case "clockIn":
			controller.ClockIn()
		case "clockOut":
			controller.ClockOut()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

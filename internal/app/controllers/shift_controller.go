package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NaomiMeseret/Employee-shift-management/internal/domain/models"
	"github.com/NaomiMeseret/Employee-shift-management/internal/domain/services"
	"github.com/NaomiMeseret/Employee-shift-management/internal/domain/services/container"
	"github.com/NaomiMeseret/Employee-shift-management/internal/error/code"
	"github.com/NaomiMeseret/Employee-shift-management/internal/error/response"
)

// InterfaceShiftController defines the shift ledger controller interface
type InterfaceShiftController interface {
	AssignShift()
	GetAssignedShifts()
	GetAllShifts()
	UpdateShift()
	DeleteShift()
}

// ShiftController handles shift ledger requests
type ShiftController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewShiftController creates a new shift controller
func NewShiftController(ctx *gin.Context, container *container.ServiceContainer) *ShiftController {
	return &ShiftController{
		Ctx:       ctx,
		Container: container,
	}
}

// AssignShiftRequest is the request body for a shift assignment
type AssignShiftRequest struct {
	Date      string `json:"date" binding:"required" example:"2024-01-01"`
	ShiftType string `json:"shiftType" binding:"required" example:"morning"` // morning, afternoon, night
	ShiftID   string `json:"shiftId" example:"S1"`
}

// AssignShift assigns a shift to the employee in the path
// @Summary      Assign shift
// @Description  Creates a shift for the employee; a missing shiftId gets a generated one
// @Tags         Shift
// @Accept       json
// @Produce      json
// @Param        id path string true "employee id"
// @Param        request body AssignShiftRequest true "shift details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /assignShift/{id} [post]
func (c *ShiftController) AssignShift() {
	employeeID := c.Ctx.Param("id")

	var req AssignShiftRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	// The shift must reference an existing employee
	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)
	if _, err := employeeService.GetEmployeeByID(employeeID); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			response.Fail(c.Ctx, code.ErrEmployeeNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error assigning shift: "+err.Error(), nil)
		return
	}

	shift := &models.Shift{
		ShiftID:    req.ShiftID,
		EmployeeID: employeeID,
		Date:       req.Date,
		ShiftType:  req.ShiftType,
	}

	shiftService := c.Container.GetService("shift").(services.InterfaceShiftService)
	if err := shiftService.AssignShift(shift); err != nil {
		if errors.Is(err, services.ErrShiftExists) {
			response.Fail(c.Ctx, code.ErrShiftAlreadyExist, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error assigning shift: "+err.Error(), nil)
		return
	}

	response.Created(c.Ctx, "Shift assigned successfully", gin.H{"shift": shift})
}

// GetAssignedShifts lists the shifts assigned to one employee
// @Summary      Get assigned shifts
// @Tags         Shift
// @Produce      json
// @Param        id path string true "employee id"
// @Success      200  {object}  response.Response
// @Router       /assignedShift/{id} [get]
func (c *ShiftController) GetAssignedShifts() {
	employeeID := c.Ctx.Param("id")

	shiftService := c.Container.GetService("shift").(services.InterfaceShiftService)
	shifts, err := shiftService.GetShiftsByEmployee(employeeID)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error retrieving shift: "+err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "Shift(s) found successfully", gin.H{"shifts": shifts})
}

// GetAllShifts lists every shift in the ledger
// @Summary      List shifts
// @Tags         Shift
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /assignedShift [get]
func (c *ShiftController) GetAllShifts() {
	shiftService := c.Container.GetService("shift").(services.InterfaceShiftService)

	shifts, err := shiftService.GetAllShifts()
	if err != nil {
		if errors.Is(err, services.ErrNoShifts) {
			response.Fail(c.Ctx, code.ErrNoShiftsFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error retrieving shifts: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, shifts)
}

// UpdateShiftRequest is the request body for a shift update
type UpdateShiftRequest struct {
	Date       string                    `json:"date" example:"2024-01-02"`
	ShiftType  string                    `json:"shiftType" example:"night"`
	Attendance []models.AttendanceRecord `json:"attendance"`
}

// UpdateShift applies a partial update and optionally appends attendance entries
// @Summary      Update shift
// @Tags         Shift
// @Accept       json
// @Produce      json
// @Param        id path string true "shift id"
// @Param        request body UpdateShiftRequest true "fields to update"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /shift/{id} [put]
func (c *ShiftController) UpdateShift() {
	shiftID := c.Ctx.Param("id")

	var req UpdateShiftRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if req.Date != "" {
		updates["date"] = req.Date
	}
	if req.ShiftType != "" {
		updates["shift_type"] = req.ShiftType
	}

	shiftService := c.Container.GetService("shift").(services.InterfaceShiftService)
	shift, err := shiftService.UpdateShift(shiftID, updates, req.Attendance)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrShiftNotFound):
			response.FailWithMessage(c.Ctx, code.ErrShiftNotFound, "Shift not found", nil)
		case errors.Is(err, services.ErrAlreadyClockedIn):
			response.FailWithMessage(c.Ctx, code.ErrAlreadyClockedIn, "Duplicate attendance entry for that date", nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error updating shift: "+err.Error(), nil)
		}
		return
	}

	response.SuccessWithMessage(c.Ctx, "Shift updated", gin.H{"shift": shift})
}

// DeleteShift removes a shift by id
// @Summary      Delete shift
// @Tags         Shift
// @Produce      json
// @Param        id path string true "shift id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /shift/{id} [delete]
func (c *ShiftController) DeleteShift() {
	shiftID := c.Ctx.Param("id")

	shiftService := c.Container.GetService("shift").(services.InterfaceShiftService)
	if err := shiftService.DeleteShift(shiftID); err != nil {
		if errors.Is(err, services.ErrShiftNotFound) {
			response.FailWithMessage(c.Ctx, code.ErrShiftNotFound, "Shift not found", nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error deleting shift: "+err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "Shift deleted successfully", nil)
}

// HandleShiftFunc returns a Gin handler dispatching to the shift controller
func HandleShiftFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewShiftController(ctx, container)

		switch method {
		case "assignShift":
			controller.AssignShift()
		case "getAssignedShifts":
			controller.GetAssignedShifts()
		case "getAllShifts":
			controller.GetAllShifts()
		case "updateShift":
			controller.UpdateShift()
		case "deleteShift":
			controller.DeleteShift()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

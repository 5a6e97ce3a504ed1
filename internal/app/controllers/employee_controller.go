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

// InterfaceEmployeeController defines the employee directory controller interface
type InterfaceEmployeeController interface {
	GetEmployees()
	GetEmployee()
	UpdateEmployee()
	DeleteEmployee()
	GetStatus()
	GetAllStatuses()
	GetAttendance()
	GetAllAttendance()
}

// EmployeeController handles employee directory requests
type EmployeeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEmployeeController creates a new employee controller
func NewEmployeeController(ctx *gin.Context, container *container.ServiceContainer) *EmployeeController {
	return &EmployeeController{
		Ctx:       ctx,
		Container: container,
	}
}

// GetEmployees lists all employees
// @Summary      List employees
// @Tags         Employee
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employees [get]
func (c *EmployeeController) GetEmployees() {
	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)

	employees, err := employeeService.GetAllEmployees()
	if err != nil {
		if errors.Is(err, services.ErrNoEmployees) {
			response.Fail(c.Ctx, code.ErrNoEmployeesFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error fetching employees: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, employees)
}

// GetEmployee fetches one employee by id
// @Summary      Get employee
// @Tags         Employee
// @Produce      json
// @Param        id path string true "employee id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employees/{id} [get]
func (c *EmployeeController) GetEmployee() {
	id := c.Ctx.Param("id")

	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)
	employee, err := employeeService.GetEmployeeByID(id)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			response.Fail(c.Ctx, code.ErrEmployeeNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error fetching employee: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, employee)
}

// UpdateEmployeeRequest is the request body for an employee update
type UpdateEmployeeRequest struct {
	Name           string `json:"name" example:"Abel Tesfaye"`
	Email          string `json:"email" example:"abel@example.com"`
	Password       string `json:"password" example:"newSecret"`
	ProfilePicture string `json:"profilePicture" example:"abel.jpg"`
	Phone          string `json:"phone" example:"0911000000"`
	Position       string `json:"position" example:"Supervisor"`
	Status         string `json:"status" example:"active"` // pending, active, inactive, on leave
}

// UpdateEmployee applies a partial update to an employee
// @Summary      Update employee
// @Tags         Employee
// @Accept       json
// @Produce      json
// @Param        id path string true "employee id"
// @Param        request body UpdateEmployeeRequest true "fields to update"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /updateEmployee/{id} [put]
func (c *EmployeeController) UpdateEmployee() {
	id := c.Ctx.Param("id")

	var req UpdateEmployeeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Password != "" {
		updates["password"] = req.Password
	}
	if req.ProfilePicture != "" {
		updates["profile_picture"] = req.ProfilePicture
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Position != "" {
		updates["position"] = req.Position
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}

	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)
	employee, err := employeeService.UpdateEmployee(id, updates)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound):
			response.Fail(c.Ctx, code.ErrEmployeeNotFound, nil)
		case errors.Is(err, services.ErrEmployeeExists):
			response.Fail(c.Ctx, code.ErrEmployeeAlreadyExist, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error updating employee: "+err.Error(), nil)
		}
		return
	}

	response.Success(c.Ctx, employee)
}

// DeleteEmployee removes an employee and all shifts assigned to it
// @Summary      Delete employee
// @Tags         Employee
// @Produce      json
// @Param        id path string true "employee id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /deleteEmployee/{id} [delete]
func (c *EmployeeController) DeleteEmployee() {
	id := c.Ctx.Param("id")

	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)
	if err := employeeService.DeleteEmployee(id); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			response.Fail(c.Ctx, code.ErrEmployeeNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error deleting employee: "+err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "Employee deleted successfully", nil)
}

// GetStatus returns the status projection for one employee
// @Summary      Get employee status
// @Tags         Employee
// @Produce      json
// @Param        id path string true "employee id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /status/{id} [get]
func (c *EmployeeController) GetStatus() {
	id := c.Ctx.Param("id")

	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)
	view, err := employeeService.GetStatus(id)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			response.Fail(c.Ctx, code.ErrEmployeeNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error retrieving employee: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, view)
}

// GetAllStatuses returns the status projection for every employee
// @Summary      List employee statuses
// @Tags         Employee
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /status [get]
func (c *EmployeeController) GetAllStatuses() {
	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)

	views, err := employeeService.GetAllStatuses()
	if err != nil {
		if errors.Is(err, services.ErrNoEmployees) {
			response.Fail(c.Ctx, code.ErrNoEmployeesFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error retrieving employees: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, views)
}

// GetAttendance returns the attendance log collected from one employee's shifts
// @Summary      Get employee attendance
// @Tags         Employee
// @Produce      json
// @Param        id path string true "employee id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /attendance/{id} [get]
func (c *EmployeeController) GetAttendance() {
	id := c.Ctx.Param("id")

	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)
	view, err := employeeService.GetAttendance(id)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			response.Fail(c.Ctx, code.ErrEmployeeNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error retrieving employee: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, view)
}

// GetAllAttendance returns the attendance projection for every employee
// @Summary      List employee attendance
// @Tags         Employee
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /attendance [get]
func (c *EmployeeController) GetAllAttendance() {
	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)

	views, err := employeeService.GetAllAttendance()
	if err != nil {
		if errors.Is(err, services.ErrNoEmployees) {
			response.Fail(c.Ctx, code.ErrNoEmployeesFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error retrieving employees: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, views)
}

// HandleEmployeeFunc returns a Gin handler dispatching to the employee controller
func HandleEmployeeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEmployeeController(ctx, container)

		switch method {
		case "getEmployees":
			controller.GetEmployees()
		case "getEmployee":
			controller.GetEmployee()
		case "updateEmployee":
			controller.UpdateEmployee()
		case "deleteEmployee":
			controller.DeleteEmployee()
		case "getStatus":
			controller.GetStatus()
		case "getAllStatuses":
			controller.GetAllStatuses()
		case "getAttendance":
			controller.GetAttendance()
		case "getAllAttendance":
			controller.GetAllAttendance()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

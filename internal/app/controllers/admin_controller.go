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

// InterfaceAdminController defines the approval workflow controller interface
type InterfaceAdminController interface {
	GetPendingEmployees()
	ApproveEmployee()
	RejectEmployee()
	CreateAdmin()
}

// AdminController handles the admin approval workflow
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new admin controller
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// GetPendingEmployees lists registrations awaiting approval
// @Summary      List pending employees
// @Tags         Admin
// @Produce      json
// @Param        X-Admin-ID header string true "admin employee id"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /pending [get]
func (c *AdminController) GetPendingEmployees() {
	authService := c.Container.GetService("auth").(services.InterfaceAuthService)

	pending, err := authService.GetPendingEmployees()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error fetching pending users: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, pending)
}

// ApproveEmployee activates a pending registration
// @Summary      Approve employee
// @Tags         Admin
// @Produce      json
// @Param        id path string true "employee id"
// @Param        X-Admin-ID header string true "admin employee id"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /approve/{id} [put]
func (c *AdminController) ApproveEmployee() {
	id := c.Ctx.Param("id")

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	employee, err := authService.ApproveEmployee(id)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			response.Fail(c.Ctx, code.ErrEmployeeNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error approving user: "+err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "User approved successfully", gin.H{"employee": employee})
}

// RejectEmployee deletes a registration outright
// @Summary      Reject employee
// @Tags         Admin
// @Produce      json
// @Param        id path string true "employee id"
// @Param        X-Admin-ID header string true "admin employee id"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /reject/{id} [delete]
func (c *AdminController) RejectEmployee() {
	id := c.Ctx.Param("id")

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	if err := authService.RejectEmployee(id); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			response.Fail(c.Ctx, code.ErrEmployeeNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error rejecting user: "+err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "User rejected and removed successfully", nil)
}

// CreateAdminRequest is the request body for the admin bootstrap
type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required" example:"Admin"`
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	ID       string `json:"id" binding:"required" example:"A1"`
	Password string `json:"password" binding:"required" example:"admin123"`
	Phone    string `json:"phone" example:"0911000000"`
	Position string `json:"position" example:"Administrator"`
}

// CreateAdmin is the one-time admin bootstrap
// @Summary      Create first admin
// @Description  Refused once any admin account exists
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body CreateAdminRequest true "admin details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /createAdmin [post]
func (c *AdminController) CreateAdmin() {
	var req CreateAdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	admin := &models.Employee{
		Name:       req.Name,
		Email:      req.Email,
		EmployeeID: req.ID,
		Password:   req.Password,
		Phone:      req.Phone,
		Position:   req.Position,
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	if err := authService.CreateAdmin(admin); err != nil {
		switch {
		case errors.Is(err, services.ErrAdminExists):
			response.Fail(c.Ctx, code.ErrAdminAlreadyExist, nil)
		case errors.Is(err, services.ErrEmployeeExists):
			response.Fail(c.Ctx, code.ErrEmployeeAlreadyExist, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error creating admin user: "+err.Error(), nil)
		}
		return
	}

	response.Created(c.Ctx, "Admin user created successfully", gin.H{"employee": admin})
}

// HandleAdminFunc returns a Gin handler dispatching to the admin controller
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "getPendingEmployees":
			controller.GetPendingEmployees()
		case "approveEmployee":
			controller.ApproveEmployee()
		case "rejectEmployee":
			controller.RejectEmployee()
		case "createAdmin":
			controller.CreateAdmin()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

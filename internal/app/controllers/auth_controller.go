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

// InterfaceAuthController defines the access control controller interface
type InterfaceAuthController interface {
	Register()
	Login()
	Logout()
	ChangePassword()
}

// AuthController handles registration, login and password changes
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterRequest is the request body for registration
type RegisterRequest struct {
	Name           string `json:"name" binding:"required" example:"Abel Tesfaye"`
	Email          string `json:"email" binding:"required,email" example:"abel@example.com"`
	ID             string `json:"id" binding:"required" example:"E1"`
	Password       string `json:"password" binding:"required" example:"secret123"`
	ProfilePicture string `json:"profilePicture" example:"abel.jpg"`
	Phone          string `json:"phone" example:"0911000000"`
	Position       string `json:"position" example:"Cashier"`
}

// Register creates a new employee pending admin approval
// @Summary      Register an employee
// @Description  Creates an employee account with status pending until an admin approves it
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "employee details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	employee := &models.Employee{
		Name:           req.Name,
		Email:          req.Email,
		EmployeeID:     req.ID,
		Password:       req.Password,
		ProfilePicture: req.ProfilePicture,
		Phone:          req.Phone,
		Position:       req.Position,
		Status:         models.StatusPending, // new users need admin approval
		IsAdmin:        false,
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	if err := authService.Register(employee); err != nil {
		if errors.Is(err, services.ErrEmployeeExists) {
			response.Fail(c.Ctx, code.ErrEmployeeAlreadyExist, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error creating user: "+err.Error(), nil)
		return
	}

	response.Created(c.Ctx, "User created successfully", gin.H{"employee": employee})
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"abel@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// Login authenticates an employee by email and password
// @Summary      Login
// @Description  Rejects pending and deactivated accounts before checking the password
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "credentials"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	employee, err := authService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound):
			response.FailWithMessage(c.Ctx, code.ErrEmployeeNotFound, "User not found", nil)
		case errors.Is(err, services.ErrAccountPending):
			response.Fail(c.Ctx, code.ErrAccountPending, nil)
		case errors.Is(err, services.ErrAccountInactive):
			response.Fail(c.Ctx, code.ErrAccountInactive, nil)
		case errors.Is(err, services.ErrPasswordIncorrect):
			response.Fail(c.Ctx, code.ErrPasswordIncorrect, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "Login error: "+err.Error(), nil)
		}
		return
	}

	response.SuccessWithMessage(c.Ctx, "Login successful", gin.H{"employee": employee})
}

// Logout ends the client session
// @Summary      Logout
// @Description  Stateless acknowledgement, there is no server side session to invalidate
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /logout [post]
func (c *AuthController) Logout() {
	// No token/session mechanism exists; logout is client handled
	response.SuccessWithMessage(c.Ctx, "Logout successful", nil)
}

// ChangePasswordRequest is the request body for a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required" example:"secret123"`
	NewPassword     string `json:"newPassword" binding:"required" example:"evenMoreSecret456"`
}

// ChangePassword verifies the current password before storing a new one
// @Summary      Change password
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        id path string true "employee id"
// @Param        request body ChangePasswordRequest true "current and new password"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /changePassword/{id} [post]
func (c *AuthController) ChangePassword() {
	id := c.Ctx.Param("id")

	var req ChangePasswordRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	if err := authService.ChangePassword(id, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound):
			response.Fail(c.Ctx, code.ErrEmployeeNotFound, nil)
		case errors.Is(err, services.ErrPasswordIncorrect):
			response.FailWithMessage(c.Ctx, code.ErrPasswordIncorrect, "Incorrect current password", nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "Error changing password: "+err.Error(), nil)
		}
		return
	}

	response.SuccessWithMessage(c.Ctx, "Password changed successfully", nil)
}

// HandleAuthFunc returns a Gin handler dispatching to the auth controller
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		case "changePassword":
			controller.ChangePassword()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

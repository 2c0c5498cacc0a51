package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"employee-manager-api/internal/application/ports"
	"employee-manager-api/internal/application/services"
	domain "employee-manager-api/internal/domain/employee"
	employeeDB "employee-manager-api/internal/infrastructure/db/postgres/employee"
	"employee-manager-api/internal/interface/api/rest/dto/auth"
	"employee-manager-api/internal/interface/api/rest/dto/employee"
	"employee-manager-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger          *zap.Logger
	employeeService ports.EmployeeService
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	employeeService ports.EmployeeService,
) *AuthController {
	ac := &AuthController{
		logger:          logger,
		employeeService: employeeService,
	}

	r.POST(RouteRegister, ac.RegisterHandler)
	r.POST(RouteLogin, ac.LoginHandler)

	return ac
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req employee.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateRegister(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	e, err := ac.employeeService.Register(c.Request.Context(), domain.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Mobile:    req.Mobile,
	}, req.Password)
	if err != nil {
		if errors.Is(err, employeeDB.ErrEmailAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to register employee"},
		)
		ac.logger.Error("Register() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, employee.ToResponseEmployeeWithTokens(*e))
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	e, err := ac.employeeService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// wrong email and wrong password look the same to the caller
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to login"},
		)
		ac.logger.Error("Login() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, employee.ToResponseEmployeeWithTokens(*e))
}

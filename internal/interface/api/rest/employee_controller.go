package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"employee-manager-api/internal/application/ports"
	employeeDB "employee-manager-api/internal/infrastructure/db/postgres/employee"
	"employee-manager-api/internal/infrastructure/jwt"
	"employee-manager-api/internal/interface/api/rest/dto/employee"
	"employee-manager-api/internal/interface/api/rest/middleware"
	"employee-manager-api/internal/interface/api/rest/validator"
)

type EmployeeController struct {
	employeeService ports.EmployeeService
	logger          *zap.Logger
}

func NewEmployeeController(
	r *gin.Engine,
	employeeService ports.EmployeeService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *EmployeeController {
	ec := &EmployeeController{
		employeeService: employeeService,
		logger:          logger,
	}

	authed := middleware.AuthMiddleware(jwtService, employeeService)
	r.GET(RouteDetails, authed, ec.DetailsHandler)
	r.PUT(RouteUpdate, authed, ec.UpdateHandler)
	r.PUT(RouteScheduleDelete, authed, ec.ScheduleDeleteHandler)
	r.PUT(RouteRemoveSchedule, authed, ec.RemoveScheduleHandler)

	return ec
}

func (ec *EmployeeController) DetailsHandler(c *gin.Context) {
	e, ok := middleware.EmployeeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	resp := employee.ToResponseEmployeeWithTokens(*e)
	// the token object echoes the presented access token alongside the
	// stored refresh token
	if tok, ok := middleware.TokenFromContext(c); ok {
		resp.Token.AccessToken = tok
	}

	c.JSON(http.StatusOK, resp)
}

func (ec *EmployeeController) UpdateHandler(c *gin.Context) {
	e, ok := middleware.EmployeeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req employee.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	eRet, err := ec.employeeService.UpdateProfile(c.Request.Context(), e.ID, employee.ToDomainUpdate(req))
	if err != nil {
		if errors.Is(err, employeeDB.ErrEmailAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update employee"},
		)
		ec.logger.Error("UpdateProfile() error", zap.Error(err))
		return
	}

	if eRet == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "employee not found"},
		)
		return
	}

	c.JSON(http.StatusOK, employee.ToResponseEmployee(*eRet))
}

func (ec *EmployeeController) ScheduleDeleteHandler(c *gin.Context) {
	e, ok := middleware.EmployeeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	// the timestamp may arrive as a query parameter or in the JSON body
	raw := c.Query("scheduled_deletion_date")
	if raw == "" {
		var req employee.ScheduleDeletionRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			raw = req.ScheduledDeletionDate
		}
	}

	at, err := validator.ParseScheduleDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eRet, err := ec.employeeService.ScheduleDeletion(c.Request.Context(), e.ID, at)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to schedule deletion"},
		)
		ec.logger.Error("ScheduleDeletion() error", zap.Error(err))
		return
	}

	if eRet == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "employee not found"},
		)
		return
	}

	c.JSON(http.StatusOK, employee.ToResponseEmployee(*eRet))
}

func (ec *EmployeeController) RemoveScheduleHandler(c *gin.Context) {
	e, ok := middleware.EmployeeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	eRet, err := ec.employeeService.RemoveScheduledDeletion(c.Request.Context(), e.ID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to remove deletion schedule"},
		)
		ec.logger.Error("RemoveScheduledDeletion() error", zap.Error(err))
		return
	}

	if eRet == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "employee not found"},
		)
		return
	}

	c.JSON(http.StatusOK, employee.ToResponseEmployee(*eRet))
}

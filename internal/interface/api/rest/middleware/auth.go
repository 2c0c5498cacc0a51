package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"employee-manager-api/internal/application/ports"
	domain "employee-manager-api/internal/domain/employee"
	"employee-manager-api/internal/infrastructure/jwt"
)

const (
	CtxEmployee = "employee"
	CtxToken    = "token"
)

// AuthMiddleware is the gate on protected routes: verify the bearer token,
// resolve the employee, attach both to the context, in that order. An
// expired token is rejected distinctly so clients know to re-authenticate;
// a valid token for a since-deleted employee is plain unauthorized.
func AuthMiddleware(jwtService *jwt.Service, employeeService ports.EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(
					http.StatusUnauthorized,
					gin.H{"error": "token expired"},
				)
				return
			}
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				gin.H{"error": "forbidden"},
			)
			return
		}

		id, err := uuid.Parse(claims.EmployeeID)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				gin.H{"error": "forbidden"},
			)
			return
		}

		e, err := employeeService.FindEmployeeByID(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to resolve employee"},
			)
			return
		}
		if e == nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "unauthorized"},
			)
			return
		}

		c.Set(CtxEmployee, e)
		c.Set(CtxToken, tokenStr)

		c.Next()
	}
}

// EmployeeFromContext returns the employee attached by AuthMiddleware.
func EmployeeFromContext(c *gin.Context) (*domain.Employee, bool) {
	v, ok := c.Get(CtxEmployee)
	if !ok {
		return nil, false
	}
	e, ok := v.(*domain.Employee)
	return e, ok
}

// TokenFromContext returns the raw bearer token attached by AuthMiddleware.
func TokenFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(CtxToken)
	if !ok {
		return "", false
	}
	tok, ok := v.(string)
	return tok, ok
}

package ports

import (
	"employee-manager-api/internal/domain/employee"
	"employee-manager-api/internal/infrastructure/jwt"
)

type Auth interface {
	// IssuePair mints a fresh token pair for an employee identity.
	IssuePair(id employee.ID) (jwt.Pair, error)
	// Authenticate checks the password against the stored hash and, on
	// success, mints a fresh pair.
	Authenticate(e *employee.Employee, requestPassword string) (jwt.Pair, error)
}

package employee

import (
	"time"

	"github.com/google/uuid"
)

type (
	TokenPair struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}

	// Employee is the sanitized representation: the password hash never
	// leaves the service.
	Employee struct {
		ID                  uuid.UUID  `json:"emp_id"`
		FirstName           string     `json:"first_name"`
		LastName            string     `json:"last_name"`
		Email               string     `json:"email"`
		Mobile              string     `json:"mobile"`
		CreatedAt           time.Time  `json:"created_at"`
		UpdatedAt           time.Time  `json:"updated_at"`
		ScheduledDeletionAt *time.Time `json:"scheduled_deletion_at,omitempty"`
	}

	EmployeeWithTokens struct {
		Employee
		Token TokenPair `json:"token"`
	}
)

package employee

import (
	"time"

	"github.com/google/uuid"
)

type (
	Employee struct {
		ID           uint64
		UUID         uuid.UUID
		FirstName    string
		LastName     string
		Email        string
		Mobile       string
		PasswordHash *string

		CreatedAt time.Time
		UpdatedAt time.Time

		ScheduledDeletionAt *time.Time

		AccessToken  string
		RefreshToken string
	}
	Employees []*Employee
)

package employee

import (
	"time"

	"github.com/google/uuid"
)

type (
	// ID is the external identity carried in tokens. It is assigned in
	// application code at registration and is independent of the storage
	// engine's own primary key.
	ID = uuid.UUID

	Employee struct {
		ID           ID
		FirstName    string
		LastName     string
		Email        string
		Mobile       string
		PasswordHash *string

		CreatedAt time.Time
		UpdatedAt time.Time

		// nil means the record is not scheduled for deletion.
		ScheduledDeletionAt *time.Time

		// latest issued pair, overwritten on each register/login;
		// kept as a record of issuance, never consulted during verification.
		AccessToken  string
		RefreshToken string
	}
	Employees []*Employee
)

// ProfileUpdate carries a partial profile mutation; nil fields are left
// unchanged.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Mobile    *string
}

// Apply merges the non-nil fields onto e.
func (p ProfileUpdate) Apply(e *Employee) {
	if p.FirstName != nil {
		e.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		e.LastName = *p.LastName
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Mobile != nil {
		e.Mobile = *p.Mobile
	}
}

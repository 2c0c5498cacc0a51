package ports

import (
	"context"
	"time"

	"employee-manager-api/internal/domain/employee"
)

type EmployeeService interface {
	Register(ctx context.Context, e employee.Employee, password string) (*employee.Employee, error)
	Login(ctx context.Context, email, password string) (*employee.Employee, error)
	FindEmployeeByID(ctx context.Context, id employee.ID) (*employee.Employee, error)
	UpdateProfile(ctx context.Context, id employee.ID, upd employee.ProfileUpdate) (*employee.Employee, error)
	ScheduleDeletion(ctx context.Context, id employee.ID, at time.Time) (*employee.Employee, error)
	RemoveScheduledDeletion(ctx context.Context, id employee.ID) (*employee.Employee, error)
	SweepOverdue(ctx context.Context, asOf time.Time) (int, error)
}

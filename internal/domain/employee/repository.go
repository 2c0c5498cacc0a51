package employee

import (
	"context"
	"time"
)

type Repository interface {
	FetchEmployeeByID(ctx context.Context, id ID) (*Employee, error)
	FetchEmployeeByEmail(ctx context.Context, email string) (*Employee, error)
	CreateEmployee(ctx context.Context, req Employee) (*Employee, error)
	UpdateEmployee(ctx context.Context, req Employee) (*Employee, error)
	UpdateTokens(ctx context.Context, id ID, accessToken, refreshToken string) (*Employee, error)
	SetScheduledDeletion(ctx context.Context, id ID, at *time.Time) (*Employee, error)
	FetchOverdueDeletions(ctx context.Context, asOf time.Time) (Employees, error)
	DeleteEmployee(ctx context.Context, id ID) (*Employee, error)
}

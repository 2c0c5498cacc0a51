package employee

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domain "employee-manager-api/internal/domain/employee"
	"employee-manager-api/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("employee with this email already exists")

// DB is the subset of pgxpool.Pool the repository needs; pgxmock satisfies it
// in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repository struct {
	db DB
}

func NewRepository(db DB) domain.Repository {
	return &Repository{db: db}
}

func scanEmployee(row pgx.Row) (*Employee, error) {
	e := new(Employee)
	err := row.Scan(
		&e.ID,
		&e.UUID,
		&e.FirstName,
		&e.LastName,
		&e.Email,
		&e.Mobile,
		&e.PasswordHash,

		&e.CreatedAt,
		&e.UpdatedAt,

		&e.ScheduledDeletionAt,

		&e.AccessToken,
		&e.RefreshToken,
	)
	if err != nil {
		return nil, err
	}

	return e, nil
}

func (r *Repository) FetchEmployeeByID(ctx context.Context, id domain.ID) (*domain.Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(ctx, SelectEmployeeByUUID, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(e), nil
}

func (r *Repository) FetchEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(ctx, SelectEmployeeByEmail, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(e), nil
}

func (r *Repository) CreateEmployee(ctx context.Context, req domain.Employee) (*domain.Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(
		ctx,
		InsertEmployee,
		req.ID, req.FirstName, req.LastName, req.Email, req.Mobile, req.PasswordHash, req.AccessToken, req.RefreshToken,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(e), nil
}

func (r *Repository) UpdateEmployee(ctx context.Context, req domain.Employee) (*domain.Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(ctx, UpdateEmployeeByUUID,
		req.FirstName, req.LastName, req.Email, req.Mobile, req.ID,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(e), nil
}

func (r *Repository) UpdateTokens(ctx context.Context, id domain.ID, accessToken, refreshToken string) (*domain.Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(ctx, UpdateTokensByUUID, accessToken, refreshToken, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(e), nil
}

func (r *Repository) SetScheduledDeletion(ctx context.Context, id domain.ID, at *time.Time) (*domain.Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(ctx, UpdateScheduledDeletionByUUID, at, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(e), nil
}

func (r *Repository) FetchOverdueDeletions(ctx context.Context, asOf time.Time) (domain.Employees, error) {
	rows, err := r.db.Query(ctx, SelectOverdueDeletions, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var es Employees
	for rows.Next() {
		e := new(Employee)

		if err = rows.Scan(
			&e.ID,
			&e.UUID,
			&e.FirstName,
			&e.LastName,
			&e.Email,
			&e.Mobile,
			&e.PasswordHash,

			&e.CreatedAt,
			&e.UpdatedAt,

			&e.ScheduledDeletionAt,

			&e.AccessToken,
			&e.RefreshToken,
		); err != nil {
			return nil, err
		}

		es = append(es, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&es), nil
}

func (r *Repository) DeleteEmployee(ctx context.Context, id domain.ID) (*domain.Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(ctx, DeleteEmployeeByUUID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(e), nil
}

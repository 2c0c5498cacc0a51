package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"employee-manager-api/internal/application/ports"
	domain "employee-manager-api/internal/domain/employee"
	"employee-manager-api/internal/infrastructure/mq"
	"employee-manager-api/internal/interface/api/rest/dto/employee"
)

const passwordHashCost = bcrypt.DefaultCost

type EmployeeService struct {
	employeeRepository domain.Repository
	auth               ports.Auth
	mq                 ports.RabbitMQ
	mCounter           *prometheus.CounterVec
}

func NewEmployeeService(
	employeeRepository domain.Repository,
	auth ports.Auth,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.EmployeeService {
	return &EmployeeService{
		employeeRepository: employeeRepository,
		auth:               auth,
		mq:                 mq,
		mCounter:           mCounter,
	}
}

// Register assigns the external identity, hashes the password and persists
// the record together with its first token pair.
func (es *EmployeeService) Register(ctx context.Context, e domain.Employee, password string) (*domain.Employee, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	e.ID = uuid.New()
	e.PasswordHash = &hashStr

	pair, err := es.auth.IssuePair(e.ID)
	if err != nil {
		return nil, err
	}
	e.AccessToken = pair.AccessToken
	e.RefreshToken = pair.RefreshToken

	eRet, err := es.employeeRepository.CreateEmployee(ctx, e)
	if err != nil {
		return nil, err
	}

	es.publish(eRet, mq.ActionRegistered)
	es.mCounter.WithLabelValues("employee_registered_total").Inc()

	return eRet, nil
}

// Login verifies credentials and overwrites the stored pair with a fresh one.
// A missing employee and a wrong password are indistinguishable to the caller.
func (es *EmployeeService) Login(ctx context.Context, email, password string) (*domain.Employee, error) {
	e, err := es.employeeRepository.FetchEmployeeByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := es.auth.Authenticate(e, password)
	if err != nil {
		return nil, err
	}

	eRet, err := es.employeeRepository.UpdateTokens(ctx, e.ID, pair.AccessToken, pair.RefreshToken)
	if err != nil {
		return nil, err
	}
	if eRet == nil {
		// deleted between lookup and token write
		return nil, ErrInvalidCredentials
	}

	es.publish(eRet, mq.ActionLoggedIn)
	es.mCounter.WithLabelValues("employee_login_total").Inc()

	return eRet, nil
}

func (es *EmployeeService) FindEmployeeByID(ctx context.Context, id domain.ID) (*domain.Employee, error) {
	e, err := es.employeeRepository.FetchEmployeeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return e, nil
}

func (es *EmployeeService) UpdateProfile(ctx context.Context, id domain.ID, upd domain.ProfileUpdate) (*domain.Employee, error) {
	e, err := es.employeeRepository.FetchEmployeeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}

	upd.Apply(e)

	eRet, err := es.employeeRepository.UpdateEmployee(ctx, *e)
	if err != nil {
		return nil, err
	}

	if eRet != nil {
		es.publish(eRet, mq.ActionUpdated)
		es.mCounter.WithLabelValues("employee_updated_total").Inc()
	}

	return eRet, nil
}

func (es *EmployeeService) ScheduleDeletion(ctx context.Context, id domain.ID, at time.Time) (*domain.Employee, error) {
	eRet, err := es.employeeRepository.SetScheduledDeletion(ctx, id, &at)
	if err != nil {
		return nil, err
	}

	if eRet != nil {
		es.publish(eRet, mq.ActionDeletionScheduled)
	}

	return eRet, nil
}

func (es *EmployeeService) RemoveScheduledDeletion(ctx context.Context, id domain.ID) (*domain.Employee, error) {
	eRet, err := es.employeeRepository.SetScheduledDeletion(ctx, id, nil)
	if err != nil {
		return nil, err
	}

	if eRet != nil {
		es.publish(eRet, mq.ActionScheduleRemoved)
	}

	return eRet, nil
}

// SweepOverdue removes every record whose scheduled deletion is strictly
// before asOf. Each deletion is independent: a failing record is reported in
// the joined error and the sweep moves on.
func (es *EmployeeService) SweepOverdue(ctx context.Context, asOf time.Time) (int, error) {
	overdue, err := es.employeeRepository.FetchOverdueDeletions(ctx, asOf)
	if err != nil {
		return 0, err
	}

	var (
		deleted int
		errs    []error
	)
	for _, e := range overdue {
		eRet, err := es.employeeRepository.DeleteEmployee(ctx, e.ID)
		if err != nil {
			es.mCounter.WithLabelValues("sweep_failures_total").Inc()
			errs = append(errs, err)
			continue
		}
		if eRet == nil {
			// already gone, a benign race with a concurrent sweep
			continue
		}

		deleted++
		es.publish(eRet, mq.ActionDeleted)
		es.mCounter.WithLabelValues("employee_deleted_total").Inc()
	}

	return deleted, errors.Join(errs...)
}

func (es *EmployeeService) publish(e *domain.Employee, action string) {
	es.mq.GetInputChan() <- mq.Event{
		Id:         uuid.New(),
		TS:         time.Now(),
		Action:     action,
		EmployeeID: e.ID.String(),
		Payload:    employee.ToResponseEmployee(*e),
	}
}

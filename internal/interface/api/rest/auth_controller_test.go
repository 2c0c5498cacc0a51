// auth_controller_test.go
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"employee-manager-api/internal/application/ports"
	"employee-manager-api/internal/application/services"
	domain "employee-manager-api/internal/domain/employee"
	employeeDB "employee-manager-api/internal/infrastructure/db/postgres/employee"
	"employee-manager-api/internal/interface/api/rest/dto/auth"
	"employee-manager-api/internal/interface/api/rest/dto/employee"
)

type FakeEmployeeService struct {
	RegisterFunc                func(ctx context.Context, e domain.Employee, password string) (*domain.Employee, error)
	LoginFunc                   func(ctx context.Context, email, password string) (*domain.Employee, error)
	FindEmployeeByIDFunc        func(ctx context.Context, id domain.ID) (*domain.Employee, error)
	UpdateProfileFunc           func(ctx context.Context, id domain.ID, upd domain.ProfileUpdate) (*domain.Employee, error)
	ScheduleDeletionFunc        func(ctx context.Context, id domain.ID, at time.Time) (*domain.Employee, error)
	RemoveScheduledDeletionFunc func(ctx context.Context, id domain.ID) (*domain.Employee, error)
	SweepOverdueFunc            func(ctx context.Context, asOf time.Time) (int, error)
}

func (f *FakeEmployeeService) Register(ctx context.Context, e domain.Employee, password string) (*domain.Employee, error) {
	if f.RegisterFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RegisterFunc(ctx, e, password)
}
func (f *FakeEmployeeService) Login(ctx context.Context, email, password string) (*domain.Employee, error) {
	if f.LoginFunc == nil {
		return nil, errors.New("not used")
	}
	return f.LoginFunc(ctx, email, password)
}
func (f *FakeEmployeeService) FindEmployeeByID(ctx context.Context, id domain.ID) (*domain.Employee, error) {
	if f.FindEmployeeByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindEmployeeByIDFunc(ctx, id)
}
func (f *FakeEmployeeService) UpdateProfile(ctx context.Context, id domain.ID, upd domain.ProfileUpdate) (*domain.Employee, error) {
	if f.UpdateProfileFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateProfileFunc(ctx, id, upd)
}
func (f *FakeEmployeeService) ScheduleDeletion(ctx context.Context, id domain.ID, at time.Time) (*domain.Employee, error) {
	if f.ScheduleDeletionFunc == nil {
		return nil, errors.New("not used")
	}
	return f.ScheduleDeletionFunc(ctx, id, at)
}
func (f *FakeEmployeeService) RemoveScheduledDeletion(ctx context.Context, id domain.ID) (*domain.Employee, error) {
	if f.RemoveScheduledDeletionFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RemoveScheduledDeletionFunc(ctx, id)
}
func (f *FakeEmployeeService) SweepOverdue(ctx context.Context, asOf time.Time) (int, error) {
	if f.SweepOverdueFunc == nil {
		return 0, errors.New("not used")
	}
	return f.SweepOverdueFunc(ctx, asOf)
}

func newAuthRouter(t *testing.T, es ports.EmployeeService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	ac := &AuthController{
		logger:          zap.NewNop(),
		employeeService: es,
	}
	r.POST(RouteRegister, ac.RegisterHandler)
	r.POST(RouteLogin, ac.LoginHandler)
	return r
}

func doPOST(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var b []byte
	switch v := body.(type) {
	case string:
		b = []byte(v)
	default:
		var err error
		b, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func validRegister() employee.RegisterRequest {
	return employee.RegisterRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Mobile:    "+33612345678",
		Password:  "VeryStrongPassw0rd!",
	}
}

func validLogin() auth.LoginRequest {
	return auth.LoginRequest{
		Email:    "john.doe@example.com",
		Password: "VeryStrongPassw0rd!",
	}
}

func registeredEmployee() *domain.Employee {
	hash := "$2a$10$abcdefghijklmnopqrstuv"
	now := time.Now().UTC()
	return &domain.Employee{
		ID:           uuid.New(),
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john.doe@example.com",
		Mobile:       "+33612345678",
		PasswordHash: &hash,
		CreatedAt:    now,
		UpdatedAt:    now,
		AccessToken:  "fresh-access",
		RefreshToken: "fresh-refresh",
	}
}

func TestAuthController_RegisterHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		register func(ctx context.Context, e domain.Employee, password string) (*domain.Employee, error)
		wantCode int
		check    func(t *testing.T, body map[string]any)
	}{
		{
			name:     "invalid JSON",
			body:     "{bad json",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "validation error",
			body: employee.RegisterRequest{Email: "not-an-email", Password: "short"},
			wantCode: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.Contains(t, body, "details")
			},
		},
		{
			name: "duplicate email -> 400",
			body: validRegister(),
			register: func(context.Context, domain.Employee, string) (*domain.Employee, error) {
				return nil, employeeDB.ErrEmailAlreadyExists
			},
			wantCode: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, employeeDB.ErrEmailAlreadyExists.Error(), body["error"])
			},
		},
		{
			name: "storage fault -> 500 without internals",
			body: validRegister(),
			register: func(context.Context, domain.Employee, string) (*domain.Employee, error) {
				return nil, errors.New("pq: connection refused at 10.0.0.12")
			},
			wantCode: http.StatusInternalServerError,
			check: func(t *testing.T, body map[string]any) {
				assert.NotContains(t, body["error"], "10.0.0.12")
			},
		},
		{
			name: "success -> 201 sanitized with token pair",
			body: validRegister(),
			register: func(_ context.Context, e domain.Employee, password string) (*domain.Employee, error) {
				assert.Equal(t, "VeryStrongPassw0rd!", password)
				return registeredEmployee(), nil
			},
			wantCode: http.StatusCreated,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "john.doe@example.com", body["email"])
				assert.NotContains(t, body, "password_hash")
				token, ok := body["token"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "fresh-access", token["access_token"])
				assert.Equal(t, "fresh-refresh", token["refresh_token"])
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(t, &FakeEmployeeService{RegisterFunc: tt.register})

			rr := doPOST(t, r, RouteRegister, tt.body)
			require.Equal(t, tt.wantCode, rr.Code)

			if tt.check != nil {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				tt.check(t, body)
			}
		})
	}
}

func TestAuthController_LoginHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		login    func(ctx context.Context, email, password string) (*domain.Employee, error)
		wantCode int
		check    func(t *testing.T, body map[string]any)
	}{
		{
			name:     "invalid JSON",
			body:     "{bad json",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "validation error",
			body:     auth.LoginRequest{Email: "not-an-email", Password: ""},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "wrong password -> 401",
			body: validLogin(),
			login: func(context.Context, string, string) (*domain.Employee, error) {
				return nil, services.ErrInvalidCredentials
			},
			wantCode: http.StatusUnauthorized,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "invalid credentials", body["error"])
			},
		},
		{
			name: "unknown email -> same 401",
			body: auth.LoginRequest{Email: "nobody@example.com", Password: "VeryStrongPassw0rd!"},
			login: func(context.Context, string, string) (*domain.Employee, error) {
				return nil, services.ErrInvalidCredentials
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "storage fault -> 500",
			body: validLogin(),
			login: func(context.Context, string, string) (*domain.Employee, error) {
				return nil, errors.New("db down")
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "success -> 200 with fresh pair",
			body: validLogin(),
			login: func(_ context.Context, email, password string) (*domain.Employee, error) {
				assert.Equal(t, "john.doe@example.com", email)
				return registeredEmployee(), nil
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "John", body["first_name"])
				token, ok := body["token"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "fresh-access", token["access_token"])
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(t, &FakeEmployeeService{LoginFunc: tt.login})

			rr := doPOST(t, r, RouteLogin, tt.body)
			require.Equal(t, tt.wantCode, rr.Code)

			if tt.check != nil {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				tt.check(t, body)
			}
		})
	}
}

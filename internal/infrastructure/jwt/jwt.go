package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTokenTTL  = time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

type Service struct {
	jwtSecret string
	now       func() time.Time
}

func New(jwtSecret string) *Service {
	return &Service{jwtSecret: jwtSecret, now: time.Now}
}

type Claims struct {
	EmployeeID string `json:"emp_id"`
	jwt.RegisteredClaims
}

type Pair struct {
	AccessToken  string
	RefreshToken string
}

// GeneratePair mints the access/refresh pair for an employee identity.
// Both tokens are self-contained: signature plus expiry is all verification
// needs, no store lookup.
func (s *Service) GeneratePair(employeeID string) (Pair, error) {
	access, err := s.generate(employeeID, AccessTokenTTL)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := s.generate(employeeID, RefreshTokenTTL)
	if err != nil {
		return Pair{}, err
	}

	return Pair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Service) generate(employeeID string, expiresIn time.Duration) (string, error) {
	claims := Claims{
		EmployeeID: employeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.now().Add(expiresIn)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken returns ErrTokenExpired for a structurally valid but expired
// token, so callers can tell a stale session from a forged one.
func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

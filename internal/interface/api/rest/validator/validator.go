package validator

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"employee-manager-api/internal/interface/api/rest/dto/auth"
	"employee-manager-api/internal/interface/api/rest/dto/employee"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
)

var (
	e164Re = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)
)

func ValidateRegister(r employee.RegisterRequest) map[string]string {
	errs := make(map[string]string)

	// Normalize
	email := strings.ToLower(strings.TrimSpace(r.Email))
	first := strings.TrimSpace(r.FirstName)
	last := strings.TrimSpace(r.LastName)
	mobile := strings.TrimSpace(r.Mobile)

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if msg := checkHumanName(first); msg != "" {
		errs["first_name"] = msg
	}
	if msg := checkHumanName(last); msg != "" {
		errs["last_name"] = msg
	}

	if mobile == "" {
		errs["mobile"] = "mobile is required"
	} else if !e164Re.MatchString(mobile) {
		errs["mobile"] = "must be in E.164 format (e.g., +33788888888)"
	}

	if msg := checkPassword(r.Password); msg != "" {
		errs["password"] = msg
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if msg := checkPassword(r.Password); msg != "" {
		errs["password"] = msg
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateUpdate checks only the fields present in the partial request.
func ValidateUpdate(r employee.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		if email == "" {
			errs["email"] = "email must not be empty"
		} else if _, err := mail.ParseAddress(email); err != nil {
			errs["email"] = "invalid email format"
		}
	}
	if r.FirstName != nil {
		if msg := checkHumanName(strings.TrimSpace(*r.FirstName)); msg != "" {
			errs["first_name"] = msg
		}
	}
	if r.LastName != nil {
		if msg := checkHumanName(strings.TrimSpace(*r.LastName)); msg != "" {
			errs["last_name"] = msg
		}
	}
	if r.Mobile != nil {
		if !e164Re.MatchString(strings.TrimSpace(*r.Mobile)) {
			errs["mobile"] = "must be in E.164 format (e.g., +33788888888)"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ParseScheduleDate accepts any parseable RFC3339 timestamp, including past
// values: a past schedule simply becomes eligible on the next sweep.
func ParseScheduleDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("scheduled_deletion_date is required")
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.New("scheduled_deletion_date must be RFC3339 (e.g., 2024-05-01T12:00:00Z)")
	}
	return t, nil
}

func checkHumanName(name string) string {
	if name == "" {
		return "name is required"
	}
	if l := utf8.RuneCountInString(name); l < 2 || l > 64 {
		return "name length must be 2–64 characters"
	}
	if !isHumanName(name) {
		return "allowed characters: letters, space, '-', '''"
	}
	return ""
}

func checkPassword(password string) string {
	if strings.TrimSpace(password) == "" {
		return "password is required"
	}
	if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		return "password length must be 8–72 characters"
	}
	return ""
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}

package employee

import (
	domain "employee-manager-api/internal/domain/employee"
)

func ToResponseEmployee(eDomain domain.Employee) Employee {
	var e = Employee{
		ID:                  eDomain.ID,
		FirstName:           eDomain.FirstName,
		LastName:            eDomain.LastName,
		Email:               eDomain.Email,
		Mobile:              eDomain.Mobile,
		CreatedAt:           eDomain.CreatedAt,
		UpdatedAt:           eDomain.UpdatedAt,
		ScheduledDeletionAt: eDomain.ScheduledDeletionAt,
	}

	return e
}

// ToResponseEmployeeWithTokens attaches the pair recorded on the entity.
func ToResponseEmployeeWithTokens(eDomain domain.Employee) EmployeeWithTokens {
	return EmployeeWithTokens{
		Employee: ToResponseEmployee(eDomain),
		Token: TokenPair{
			AccessToken:  eDomain.AccessToken,
			RefreshToken: eDomain.RefreshToken,
		},
	}
}

func ToDomainUpdate(req UpdateRequest) domain.ProfileUpdate {
	return domain.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Mobile:    req.Mobile,
	}
}

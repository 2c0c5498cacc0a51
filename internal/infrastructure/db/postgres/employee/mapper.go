package employee

import (
	domain "employee-manager-api/internal/domain/employee"
)

func fromDBModel(model *Employee) *domain.Employee {
	var e = &domain.Employee{
		ID:           model.UUID,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		Email:        model.Email,
		Mobile:       model.Mobile,
		PasswordHash: model.PasswordHash,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		ScheduledDeletionAt: model.ScheduledDeletionAt,

		AccessToken:  model.AccessToken,
		RefreshToken: model.RefreshToken,
	}

	return e
}

func fromDBModels(models *Employees) domain.Employees {
	es := make(domain.Employees, len(*models))
	for idx, e := range *models {
		es[idx] = fromDBModel(e)
	}

	return es
}

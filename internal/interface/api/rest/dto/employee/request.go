package employee

type (
	RegisterRequest struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Mobile    string `json:"mobile"`
		Password  string `json:"password"`
	}

	// UpdateRequest carries a partial profile mutation; absent fields are
	// left unchanged.
	UpdateRequest struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Email     *string `json:"email"`
		Mobile    *string `json:"mobile"`
	}

	ScheduleDeletionRequest struct {
		ScheduledDeletionDate string `json:"scheduled_deletion_date"`
	}
)

package employee

const (
	SelectEmployeeByUUID = `
		SELECT id, uuid, first_name, last_name, email, mobile, password_hash, created_at, updated_at, scheduled_deletion_at, access_token, refresh_token
		FROM employees
		WHERE uuid = $1
	`
	SelectEmployeeByEmail = `
		SELECT id, uuid, first_name, last_name, email, mobile, password_hash, created_at, updated_at, scheduled_deletion_at, access_token, refresh_token
		FROM employees
		WHERE email = $1
	`
	InsertEmployee = `
		INSERT INTO employees (uuid, first_name, last_name, email, mobile, password_hash, access_token, refresh_token)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING
		  id, uuid, first_name, last_name, email, mobile, password_hash, created_at, updated_at, scheduled_deletion_at, access_token, refresh_token
	`
	UpdateEmployeeByUUID = `
		UPDATE employees
		SET first_name = $1,
		    last_name = $2,
		    email = $3,
		    mobile = $4,
		    updated_at = now()
		WHERE uuid = $5
		RETURNING
		  id, uuid, first_name, last_name, email, mobile, password_hash, created_at, updated_at, scheduled_deletion_at, access_token, refresh_token
	`
	UpdateTokensByUUID = `
		UPDATE employees
		SET access_token = $1,
		    refresh_token = $2,
		    updated_at = now()
		WHERE uuid = $3
		RETURNING
		  id, uuid, first_name, last_name, email, mobile, password_hash, created_at, updated_at, scheduled_deletion_at, access_token, refresh_token
	`
	UpdateScheduledDeletionByUUID = `
		UPDATE employees
		SET scheduled_deletion_at = $1,
		    updated_at = now()
		WHERE uuid = $2
		RETURNING
		  id, uuid, first_name, last_name, email, mobile, password_hash, created_at, updated_at, scheduled_deletion_at, access_token, refresh_token
	`
	SelectOverdueDeletions = `
		SELECT id, uuid, first_name, last_name, email, mobile, password_hash, created_at, updated_at, scheduled_deletion_at, access_token, refresh_token
		FROM employees
		WHERE scheduled_deletion_at IS NOT NULL AND scheduled_deletion_at < $1
	`
	DeleteEmployeeByUUID = `
		DELETE FROM employees
		WHERE uuid = $1
		RETURNING
		  id, uuid, first_name, last_name, email, mobile, password_hash, created_at, updated_at, scheduled_deletion_at, access_token, refresh_token
	`
)

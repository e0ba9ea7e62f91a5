package models

import "time"

// User is a row of the users table. Deleted users keep their row so that
// historical invoices can still name their cashier.
type User struct {
	UserID         string     `db:"user_id"`
	OrganizationID string     `db:"organization_id"`
	Username       string     `db:"username"`
	PasswordHash   string     `db:"password_hash"`
	Role           string     `db:"role"`
	DeletedAt      *time.Time `db:"deleted_at"`
	AuditFields
}

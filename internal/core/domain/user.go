package domain

import "time"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User belongs to exactly one organization. Soft deleted users keep their row
// with DeletedAt set and are excluded from every "active user" lookup.
type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	PasswordHash   string     `json:"-"`
	Role           Role       `json:"role"`
	OrganizationID string     `json:"organizationId"`
	DeletedAt      *time.Time `json:"deletedAt,omitempty"`
	AuditFields
}

func (u User) IsActive() bool {
	return u.DeletedAt == nil
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Summary returns the public projection embedded in invoices and expenses.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Role: u.Role}
}

// UserSummary is the cashier relation attached to invoices and expenses.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

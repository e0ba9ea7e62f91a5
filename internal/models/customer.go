package models

type Customer struct {
	CustomerID     string  `db:"customer_id"`
	OrganizationID string  `db:"organization_id"`
	Name           string  `db:"name"`
	Address        *string `db:"address"`
	Phone          *string `db:"phone"`
	AuditFields
}

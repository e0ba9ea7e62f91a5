package models

import "github.com/shopspring/decimal"

type Organization struct {
	OrganizationID string          `db:"organization_id"`
	Name           string          `db:"name"`
	Slug           string          `db:"slug"`
	Balance        decimal.Decimal `db:"balance"`
	AuditFields
}

package pgsql

import (
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
)

// NewRepositoryProvider binds every repository to db, which is either the
// pool or an open transaction.
func NewRepositoryProvider(db DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		OrganizationRepo: newPgxOrganizationRepository(db),
		UserRepo:         newPgxUserRepository(db),
		CustomerRepo:     newPgxCustomerRepository(db),
		ProductRepo:      newPgxProductRepository(db),
		InvoiceRepo:      newPgxInvoiceRepository(db),
		TransactionRepo:  newPgxTransactionRepository(db),
		ExpenseRepo:      newPgxExpenseRepository(db),
	}
}

package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Outside a unit of work the repositories use the shared pool; inside one they
// share the transaction.
type RepositoryProvider struct {
	OrganizationRepo OrganizationRepositoryFacade
	UserRepo         UserRepositoryFacade
	CustomerRepo     CustomerRepositoryFacade
	ProductRepo      ProductRepositoryFacade
	InvoiceRepo      InvoiceRepositoryFacade
	TransactionRepo  TransactionRepositoryFacade
	ExpenseRepo      ExpenseRepositoryFacade
}

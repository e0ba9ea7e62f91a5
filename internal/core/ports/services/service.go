package services

// ServiceContainer holds instances of all the application services.
// Handlers depend on these facades only.
type ServiceContainer struct {
	Organization OrganizationSvcFacade
	User         UserSvcFacade
	Customer     CustomerSvcFacade
	Product      ProductSvcFacade
	Invoice      InvoiceSvcFacade
	Expense      ExpenseSvcFacade
}

package services

import (
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/platform/metrics"
)

// NewServiceContainer wires every service against one repository provider
// and transaction manager.
func NewServiceContainer(repos portsrepo.RepositoryProvider, txManager portsrepo.TransactionManager, m *metrics.Metrics) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Organization: NewOrganizationService(repos, txManager, m),
		User:         NewUserService(txManager, m),
		Customer:     NewCustomerService(repos, txManager, m),
		Product:      NewProductService(repos, m),
		Invoice:      NewInvoiceService(repos, txManager, m),
		Expense:      NewExpenseService(txManager, m),
	}
}

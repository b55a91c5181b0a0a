package services

import (
	portsrepo "github.com/kash-money/kash_backend/internal/core/ports/repositories"
	portssvc "github.com/kash-money/kash_backend/internal/core/ports/services"
	"github.com/kash-money/kash_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.UserSvc = NewUserService(repos.UserRepo)
	container.AccountSvc = NewAccountService(repos.AccountRepo)
	container.CategorySvc = NewCategoryService(repos.CategoryRepo)
	container.LedgerSvc = NewLedgerService(repos.TransactionRepo, repos.CategoryRepo)
	container.BudgetSvc = NewBudgetService(repos.BudgetRepo, repos.CategoryRepo, repos.ReportingRepo)
	container.ReportingSvc = NewReportingService(repos.ReportingRepo, repos.BudgetRepo)
	container.AuthSvc = NewAuthService(cfg, container.UserSvc)

	return container
}

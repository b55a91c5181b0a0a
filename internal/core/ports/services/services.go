package services

// ServiceContainer bundles all service facades for injection into the
// handler layer.
type ServiceContainer struct {
	AuthSvc      AuthSvcFacade
	UserSvc      UserSvcFacade
	AccountSvc   AccountSvcFacade
	CategorySvc  CategorySvcFacade
	LedgerSvc    LedgerSvcFacade
	BudgetSvc    BudgetSvcFacade
	ReportingSvc ReportingSvcFacade
}

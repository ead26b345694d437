// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/ekajy/backend/config"
	"github.com/ekajy/backend/internal/application/usecase/admin"
	"github.com/ekajy/backend/internal/application/usecase/budget"
	"github.com/ekajy/backend/internal/application/usecase/client"
	"github.com/ekajy/backend/internal/application/usecase/dashboard"
	"github.com/ekajy/backend/internal/application/usecase/debt"
	"github.com/ekajy/backend/internal/application/usecase/expense"
	"github.com/ekajy/backend/internal/application/usecase/repayment"
	"github.com/ekajy/backend/internal/infra/server/router"
	"github.com/ekajy/backend/internal/integration/adapters"
	"github.com/ekajy/backend/internal/integration/entrypoint/controller"
	"github.com/ekajy/backend/internal/integration/entrypoint/middleware"
	"github.com/ekajy/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	clientRepo := persistence.NewClientRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	debtRepo := persistence.NewDebtRepository(db)
	repaymentRepo := persistence.NewRepaymentRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)
	ledgerAdmin := persistence.NewLedgerAdmin(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AdminTokenExpiry)

	// Create client use cases
	createClientUseCase := client.NewCreateClientUseCase(clientRepo)
	listClientsUseCase := client.NewListClientsUseCase(clientRepo)
	updateClientUseCase := client.NewUpdateClientUseCase(clientRepo)
	deleteClientUseCase := client.NewDeleteClientUseCase(clientRepo)

	// Create budget use cases
	addBudgetUseCase := budget.NewAddBudgetUseCase(budgetRepo, clientRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, clientRepo)

	// Create expense use cases
	addExpenseUseCase := expense.NewAddExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Create debt use cases
	addDebtUseCase := debt.NewAddDebtUseCase(debtRepo, clientRepo)
	updateDebtUseCase := debt.NewUpdateDebtUseCase(debtRepo)
	deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo)
	listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo, clientRepo)

	// Create repayment use cases
	createRepaymentUseCase := repayment.NewCreateRepaymentUseCase(repaymentRepo, clientRepo)
	deleteRepaymentUseCase := repayment.NewDeleteRepaymentUseCase(repaymentRepo)
	listRepaymentsUseCase := repayment.NewListRepaymentsUseCase(repaymentRepo, clientRepo)

	// Create dashboard use cases
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(dashboardRepo)
	getEventsUseCase := dashboard.NewGetEventsForDateUseCase(dashboardRepo)

	// Create admin use cases
	loginUseCase := admin.NewLoginUseCase(cfg.Admin.PasswordHash, passwordService, tokenService)
	resetUseCase := admin.NewResetAllDataUseCase(ledgerAdmin)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	clientController := controller.NewClientController(
		createClientUseCase,
		listClientsUseCase,
		updateClientUseCase,
		deleteClientUseCase,
	)

	budgetController := controller.NewBudgetController(
		addBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		listBudgetsUseCase,
	)

	expenseController := controller.NewExpenseController(
		addExpenseUseCase,
		deleteExpenseUseCase,
	)

	debtController := controller.NewDebtController(
		addDebtUseCase,
		updateDebtUseCase,
		deleteDebtUseCase,
		listDebtsUseCase,
	)

	repaymentController := controller.NewRepaymentController(
		createRepaymentUseCase,
		deleteRepaymentUseCase,
		listRepaymentsUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getDashboardUseCase,
		getEventsUseCase,
	)

	adminController := controller.NewAdminController(
		loginUseCase,
		resetUseCase,
	)

	// Create middleware
	// Use higher rate limits in test environments to keep suites from tripping it.
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		clientController,
		budgetController,
		expenseController,
		debtController,
		repaymentController,
		dashboardController,
		adminController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}

// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ekajy/backend/internal/integration/entrypoint/controller"
	"github.com/ekajy/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	clientController    *controller.ClientController
	budgetController    *controller.BudgetController
	expenseController   *controller.ExpenseController
	debtController      *controller.DebtController
	repaymentController *controller.RepaymentController
	dashboardController *controller.DashboardController
	adminController     *controller.AdminController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	clientController *controller.ClientController,
	budgetController *controller.BudgetController,
	expenseController *controller.ExpenseController,
	debtController *controller.DebtController,
	repaymentController *controller.RepaymentController,
	dashboardController *controller.DashboardController,
	adminController *controller.AdminController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		clientController:    clientController,
		budgetController:    budgetController,
		expenseController:   expenseController,
		debtController:      debtController,
		repaymentController: repaymentController,
		dashboardController: dashboardController,
		adminController:     adminController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		clients := v1.Group("/clients")
		{
			clients.POST("", r.clientController.Create)
			clients.GET("", r.clientController.List)
			clients.PATCH("/:id", r.clientController.Update)
			clients.DELETE("/:id", r.clientController.Delete)

			// Per-client record listings
			clients.GET("/:id/budgets", r.budgetController.ListByClient)
			clients.GET("/:id/debts", r.debtController.ListByClient)
			clients.GET("/:id/repayments", r.repaymentController.ListByClient)
		}

		budgets := v1.Group("/budgets")
		{
			budgets.POST("", r.budgetController.Add)
			budgets.PATCH("/:id", r.budgetController.Update)
			budgets.DELETE("/:id", r.budgetController.Delete)
		}

		expenses := v1.Group("/expenses")
		{
			expenses.POST("", r.expenseController.Add)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}

		debts := v1.Group("/debts")
		{
			debts.POST("", r.debtController.Add)
			debts.PATCH("/:id", r.debtController.Update)
			debts.DELETE("/:id", r.debtController.Delete)
		}

		repayments := v1.Group("/repayments")
		{
			repayments.POST("", r.repaymentController.Create)
			repayments.DELETE("/:id", r.repaymentController.Delete)
		}

		v1.GET("/dashboard", r.dashboardController.Get)
		v1.GET("/events", r.dashboardController.Events)

		adminGroup := v1.Group("/admin")
		{
			adminGroup.POST("/login", r.loginRateLimiter.Middleware(), r.adminController.Login)
			adminGroup.POST("/reset", r.authMiddleware.RequireAdmin(), r.adminController.Reset)
		}
	}
}

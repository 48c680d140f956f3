package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/pocketledger/internal/handlers"
	"github.com/GregMSThompson/pocketledger/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)

	auth := middleware.NewMiddleware(deps.Firebase)

	tsh := handlers.NewTransactionHandlers(deps)
	gsh := handlers.NewGoalHandlers(deps)
	bsh := handlers.NewBudgetHandlers(deps)
	ash := handlers.NewAccountHandlers(deps)
	csh := handlers.NewCategoryHandlers(deps)
	ansh := handlers.NewAnalyticsHandlers(deps)
	dsh := handlers.NewDashboardHandlers(deps)
	ush := handlers.NewUserHandlers(deps)
	psh := handlers.NewPreferencesHandlers(deps)
	ssh := handlers.NewSeedHandlers(deps)

	r.Group(func(r chi.Router) {
		r.Use(auth.FirebaseAuth)

		r.Mount("/transactions", tsh.TransactionRoutes())
		r.Mount("/goals", gsh.GoalRoutes())
		r.Mount("/budgets", bsh.BudgetRoutes())
		r.Mount("/accounts", ash.AccountRoutes())
		r.Mount("/categories", csh.CategoryRoutes())
		r.Mount("/analytics", ansh.AnalyticsRoutes())
		r.Mount("/dashboard", dsh.DashboardRoutes())
		r.Mount("/users", ush.UserRoutes())
		r.Mount("/preferences", psh.PreferencesRoutes())
		r.Mount("/seed", ssh.SeedRoutes())
	})

	return r
}

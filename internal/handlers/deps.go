package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/GregMSThompson/pocketledger/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client

	TransactionSvc TransactionService
	GoalSvc        GoalService
	BudgetSvc      BudgetService
	AccountSvc     AccountService
	CategorySvc    CategoryService
	AnalyticsSvc   AnalyticsService
	DashboardSvc   DashboardService
	UserSvc        UserService
	PreferencesSvc PreferencesService
	SeedSvc        SeedService
}

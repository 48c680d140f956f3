package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/GregMSThompson/pocketledger/internal/bootstrap"
	"github.com/GregMSThompson/pocketledger/internal/config"
	"github.com/GregMSThompson/pocketledger/internal/handlers"
	"github.com/GregMSThompson/pocketledger/internal/response"
	"github.com/GregMSThompson/pocketledger/internal/router"
	"github.com/GregMSThompson/pocketledger/internal/services"
	"github.com/GregMSThompson/pocketledger/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	tstore := store.NewTransactionStore(bs.Firestore)
	gstore := store.NewGoalStore(bs.Firestore)
	bstore := store.NewBudgetStore(bs.Firestore)
	astore := store.NewAccountStore(bs.Firestore)
	cstore := store.NewCategoryStore(bs.Firestore)
	pstore := store.NewPreferencesStore(bs.Firestore)

	// services
	tserv := services.NewTransactionService(tstore)
	gserv := services.NewGoalService(gstore)
	bserv := services.NewBudgetService(bstore)
	aserv := services.NewAccountService(astore)
	cserv := services.NewCategoryService(cstore)
	anserv := services.NewAnalyticsService(tstore)
	dserv := services.NewDashboardService(tstore, astore, gstore)
	userv := services.NewUserService(ustore, tstore, gstore, bstore, astore, bs.Firebase)
	pserv := services.NewPreferencesService(pstore)
	sserv := services.NewSeedService(cstore, astore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.TransactionSvc = tserv
	deps.GoalSvc = gserv
	deps.BudgetSvc = bserv
	deps.AccountSvc = aserv
	deps.CategorySvc = cserv
	deps.AnalyticsSvc = anserv
	deps.DashboardSvc = dserv
	deps.UserSvc = userv
	deps.PreferencesSvc = pserv
	deps.SeedSvc = sserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}

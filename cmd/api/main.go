package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sharedtab/billsplit/docs"
	"github.com/sharedtab/billsplit/internal/balance"
	"github.com/sharedtab/billsplit/internal/bill"
	billsplit "github.com/sharedtab/billsplit/internal/bill/split"
	"github.com/sharedtab/billsplit/internal/config"
	"github.com/sharedtab/billsplit/internal/database"
	"github.com/sharedtab/billsplit/internal/group"
	"github.com/sharedtab/billsplit/internal/invitation"
	"github.com/sharedtab/billsplit/internal/payment"
	"github.com/sharedtab/billsplit/internal/user"
	"github.com/sharedtab/billsplit/pkg/logging"
	mw "github.com/sharedtab/billsplit/pkg/middleware"
)

// @title        Billsplit API
// @version      1.0
// @description  Shared-expense ledger: groups, bills, payments, balances, and settlements.
// @BasePath     /api/v1
func main() {
	logging.Setup()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("connected to database")

	// Split strategy factory
	splitFactory := billsplit.NewFactory()

	// User feature
	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	// Group feature
	groupRepo := group.NewRepository(db)
	groupService := group.NewService(groupRepo)
	groupHandler := group.NewHandler(groupService)

	// Bill feature (with split factory injected)
	billRepo := bill.NewRepository(db)
	billService := bill.NewService(billRepo, groupService, splitFactory)
	billHandler := bill.NewHandler(billService)

	// Invitation feature
	invitationRepo := invitation.NewRepository(db)
	invitationService := invitation.NewService(invitationRepo, groupService, userService)
	invitationHandler := invitation.NewHandler(invitationService)

	// Payment feature
	paymentRepo := payment.NewRepository(db)
	paymentService := payment.NewService(paymentRepo, groupService)
	paymentHandler := payment.NewHandler(paymentService)

	// Balance feature reads through the other services.
	balanceService := balance.NewService(groupService, billService, paymentService, userService, slog.Default())
	balanceHandler := balance.NewHandler(balanceService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(mw.DevUserMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Balance endpoints hang off the group subtree.
	groupRoutes := groupHandler.Routes()
	balanceHandler.Register(groupRoutes)

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/users", userHandler.Routes())
		r.Mount("/groups", groupRoutes)
		r.Mount("/invitations", invitationHandler.Routes())
		r.Mount("/bills", billHandler.Routes())
		r.Mount("/payments", paymentHandler.Routes())
	})

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

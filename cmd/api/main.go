package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/mvalderrama/travel-service/internal/config"
	"github.com/mvalderrama/travel-service/internal/handler"
	"github.com/mvalderrama/travel-service/internal/integrations/ecb"
	"github.com/mvalderrama/travel-service/internal/middleware"
	"github.com/mvalderrama/travel-service/internal/repository"
	"github.com/mvalderrama/travel-service/internal/service"
	"github.com/mvalderrama/travel-service/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	sender := email.NewSender(cfg, logger)
	svc := service.NewService(repo, sender, logger, cfg)
	h := handler.NewHandler(svc)
	ecbClient := ecb.NewClient(cfg, logger)

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/clients", h.CreateClient).Methods("POST")
	authRouter.HandleFunc("/clients", h.ListClients).Methods("GET")
	authRouter.HandleFunc("/clients/{id:[0-9]+}", h.GetClient).Methods("GET")
	authRouter.HandleFunc("/clients/{id:[0-9]+}", h.UpdateClient).Methods("PUT")
	authRouter.HandleFunc("/clients/{id:[0-9]+}", h.DeleteClient).Methods("DELETE")
	authRouter.HandleFunc("/trips", h.CreateTrip).Methods("POST")
	authRouter.HandleFunc("/trips", h.ListTrips).Methods("GET")
	authRouter.HandleFunc("/trips/{id:[0-9]+}", h.GetTrip).Methods("GET")
	authRouter.HandleFunc("/trips/{id:[0-9]+}", h.UpdateTrip).Methods("PUT")
	authRouter.HandleFunc("/trips/{id:[0-9]+}", h.DeleteTrip).Methods("DELETE")
	authRouter.HandleFunc("/quotations", h.CreateQuotation).Methods("POST")
	authRouter.HandleFunc("/quotations", h.ListQuotations).Methods("GET")
	authRouter.HandleFunc("/quotations/{id:[0-9]+}", h.GetQuotation).Methods("GET")
	authRouter.HandleFunc("/quotations/{id:[0-9]+}", h.UpdateQuotation).Methods("PUT")
	authRouter.HandleFunc("/quotations/{id:[0-9]+}", h.DeleteQuotation).Methods("DELETE")
	authRouter.HandleFunc("/quotations/{id:[0-9]+}/payment-plan", h.GeneratePaymentPlan).Methods("POST")
	authRouter.HandleFunc("/quotations/{id:[0-9]+}/send", h.SendPaymentPlan).Methods("POST")
	authRouter.HandleFunc("/settings", h.GetSettings).Methods("GET")
	authRouter.HandleFunc("/settings", h.UpdateSettings).Methods("PUT")
	// ECB reference rates endpoint
	r.HandleFunc("/exchange-rates", func(w http.ResponseWriter, r *http.Request) {
		rates, err := ecbClient.Rates()
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to get exchange rates: %v", err), http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(rates)
	}).Methods("GET")

	// Daily jobs: refresh the rate cache and send upcoming-trip reminders
	jobs := cron.New()
	jobs.AddFunc("0 7 * * *", func() {
		if err := ecbClient.Refresh(); err != nil {
			logger.Errorf("Failed to refresh exchange rates: %v", err)
		}
		svc.SendTripReminders(7)
	})
	jobs.Start()
	defer jobs.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}

package main

import (
	"log"

	"powerbank-rental/api/config"
	"powerbank-rental/api/handlers"
	"powerbank-rental/api/jobs"
	"powerbank-rental/api/logger"
	"powerbank-rental/api/mail"
	"powerbank-rental/api/mongodb"
	"powerbank-rental/api/scheduler"

	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v82"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg := config.Load()

	if err := logger.Init(cfg.Development, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	stripe.Key = cfg.StripeSecretKey

	if err := mongodb.InitMongoDB(cfg.MongoURI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongodb.CloseMongoDB()

	stations := mongodb.NewStationRepo(cfg.MongoDatabase)
	powerBanks := mongodb.NewPowerBankRepo(cfg.MongoDatabase)
	users := mongodb.NewUserRepo(cfg.MongoDatabase)
	payments := mongodb.NewPaymentRepo(cfg.MongoDatabase)

	mailer := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)

	jobRunner := jobs.NewJobRunner(powerBanks, users, mailer, cfg.OverdueThreshold, cfg.ReservationTTL, cfg.MaxReminders)
	sched := scheduler.NewScheduler(jobRunner, cfg.SweepInterval)
	sched.Start()
	defer sched.Stop()

	api := handlers.New(cfg, stations, powerBanks, users, payments)
	router := handlers.NewRouter(api)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

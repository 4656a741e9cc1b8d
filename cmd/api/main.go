package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/napoleonai/waitlist-api/internal/infra/database"
	"github.com/napoleonai/waitlist-api/internal/infra/http/handlers"
	"github.com/napoleonai/waitlist-api/internal/infra/http/middleware"
	"github.com/napoleonai/waitlist-api/internal/infra/integration/slack"
	"github.com/napoleonai/waitlist-api/internal/infra/mail"
	"github.com/napoleonai/waitlist-api/internal/infra/queue"
	"github.com/napoleonai/waitlist-api/internal/infra/tracking"
	"github.com/napoleonai/waitlist-api/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"),
		os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"),
		os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	waitlistRepo := database.NewWaitlistRepository(db)
	analyticsRepo := database.NewAnalyticsRepository(db)

	// 2. Collaborators
	tracker := tracking.NewAnalyticsTracker(analyticsRepo)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
	)
	slackClient := slack.NewClient(os.Getenv("SLACK_WEBHOOK_URL"))

	// 3. Worker consuming signup alerts (welcome email + sales pings)
	threshold := 15000
	if t, err := strconv.Atoi(os.Getenv("HIGH_VALUE_THRESHOLD")); err == nil && t > 0 {
		threshold = t
	}
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender, slackClient, threshold)
	go worker.Start(queue.QueueName)

	// 4. Use cases
	signupUC := usecase.NewSignupWaitlistUseCase(waitlistRepo, tracker, producer)
	statsUC := usecase.NewGetWaitlistStatsUseCase(waitlistRepo)

	// 5. Handlers
	waitlistHandler := handlers.NewWaitlistHandler(signupUC, statsUC)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	allowedOrigin := os.Getenv("ALLOWED_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{allowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         86400,
	}))

	r.Post("/api/waitlist", waitlistHandler.HandleSignup)
	r.Get("/api/waitlist", waitlistHandler.HandleStats)
	r.Post("/api/analytics/events", analyticsHandler.HandleIngest)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 Napoleon AI waitlist API running on port %s", port)
	http.ListenAndServe(":"+port, r)
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/growthdesk/crm-backend/internal/infra/database"
	"github.com/growthdesk/crm-backend/internal/infra/http/handlers"
	"github.com/growthdesk/crm-backend/internal/infra/http/middleware"
	"github.com/growthdesk/crm-backend/internal/infra/integration/supabase"
	"github.com/growthdesk/crm-backend/internal/infra/mail"
	"github.com/growthdesk/crm-backend/internal/infra/queue"
	"github.com/growthdesk/crm-backend/internal/infra/worker"
	"github.com/growthdesk/crm-backend/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// 1. Data API client + repositories
	dataAPI := supabase.NewClient(os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_SERVICE_KEY"))
	overlayRepo := database.NewLeadOverlayRepository(db)

	// 2. UseCases
	unifyUC := usecase.NewUnifyLeadsUseCase(dataAPI, overlayRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(dataAPI)

	// 3. Reminder pipeline (optional: skipped when RabbitMQ is not configured)
	var rabbitMQ *queue.RabbitMQ
	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitMQ, err = queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
			host, os.Getenv("RABBITMQ_PORT"),
		)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		)

		consumer := queue.NewWorker(rabbitMQ.Ch, mailSender)
		go consumer.Start(queue.QueueName)

		producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
		reminderWorker := worker.NewExpiryReminderWorker(analyticsUC, producer)
		go reminderWorker.Start(context.Background())
	} else {
		log.Println("RABBITMQ_HOST not set, expiry reminders disabled")
	}

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(unifyUC, overlayRepo)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUC)
	annotationHandler := handlers.NewAnnotationHandler(dataAPI)
	sessionHandler := handlers.NewSessionSlotHandler(dataAPI)

	var healthHandler *handlers.HealthHandler
	if rabbitMQ != nil {
		healthHandler = handlers.NewHealthHandler(db, rabbitMQ.Conn)
	} else {
		healthHandler = handlers.NewHealthHandler(db, nil)
	}

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{corsOrigin(), "http://localhost:5173"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/leads", leadHandler.HandleList)
		r.Patch("/leads/{id}", leadHandler.HandleUpdate)

		r.Get("/leads/{id}/notes", annotationHandler.HandleListNotes)
		r.Post("/leads/{id}/notes", annotationHandler.HandleCreateNote)
		r.Delete("/notes/{id}", annotationHandler.HandleDeleteNote)

		r.Get("/leads/{id}/tasks", annotationHandler.HandleListTasks)
		r.Post("/leads/{id}/tasks", annotationHandler.HandleCreateTask)
		r.Patch("/tasks/{id}", annotationHandler.HandleUpdateTask)

		r.Get("/analytics/summary", analyticsHandler.HandleSummary)
		r.Get("/analytics/subscriptions", analyticsHandler.HandleSubscriptions)

		r.Get("/session-slots", sessionHandler.HandleList)
		r.Post("/session-slots", sessionHandler.HandleCreate)
		r.Delete("/session-slots/{id}", sessionHandler.HandleDelete)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("GrowthDesk CRM backend listening on :%s", port)
	http.ListenAndServe(":"+port, r)
}

func corsOrigin() string {
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		return origin
	}
	return "http://localhost:3000"
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aicomply/internal/cache"
	"aicomply/internal/config"
	"aicomply/internal/engine"
	"aicomply/internal/repository"
	"aicomply/internal/service"
	"aicomply/internal/transport/rest"
	"aicomply/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Classification engines: full catalogue for authenticated assessments,
	// short catalogue for the public demo. Both share the policy tables.
	prodEngine := engine.MustNew(engine.ProductionBundle())
	demoEngine := engine.MustNew(engine.DemoBundle())
	log.Println("Classification engines loaded")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	systemRepo := repository.NewSystemRepo(db)
	assessmentRepo := repository.NewAssessmentRepo(db)
	taskRepo := repository.NewTaskRepo(db)

	// Initialize caches
	draftCache := cache.NewDraftCache(rdb)
	summaryCache := cache.NewSummaryCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg)
	systemSvc := service.NewSystemService(systemRepo, summaryCache)
	assessmentSvc := service.NewAssessmentService(prodEngine, assessmentRepo, systemRepo, taskRepo, draftCache, summaryCache)
	reportSvc := service.NewReportService(systemRepo, assessmentRepo, taskRepo, summaryCache)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	systemSvc.SetBroadcaster(wsHub)
	assessmentSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		SystemService:     systemSvc,
		AssessmentService: assessmentSvc,
		ReportService:     reportSvc,
		DemoEngine:        demoEngine,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/demo/questions")
		log.Println("  POST /v1/demo/classify")
		log.Println("  POST/GET /v1/systems")
		log.Println("  POST /v1/systems/{systemId}/assessments")
		log.Println("  PUT  /v1/assessments/{assessmentId}/answers/{questionId}")
		log.Println("  POST /v1/assessments/{assessmentId}/classify")
		log.Println("  GET  /v1/reports/summary")
		log.Println("  WS   /v1/ws/dashboard")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"aicomply/internal/engine"
	"aicomply/internal/service"
	"aicomply/internal/transport/rest/handler"
	"aicomply/internal/transport/rest/middleware"
	"aicomply/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	SystemService     *service.SystemService
	AssessmentService *service.AssessmentService
	ReportService     *service.ReportService
	DemoEngine        *engine.Engine
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	systemHandler := handler.NewSystemHandler(c.SystemService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	reportHandler := handler.NewReportHandler(c.ReportService)
	demoHandler := handler.NewDemoHandler(c.DemoEngine)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/demo/questions", demoHandler.Questions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/demo/classify", demoHandler.Classify).Methods("POST", "OPTIONS")

	// WebSocket route (public with token in query param)
	v1.HandleFunc("/ws/dashboard", wsHandler.DashboardWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Admin routes (inventory management)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/auth/member-tokens", authHandler.IssueMemberToken).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/systems", systemHandler.Register).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/systems/{systemId}", systemHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/systems/{systemId}/retire", systemHandler.Retire).Methods("POST", "OPTIONS")

	// Member routes (admins pass too)
	memberRoutes := v1.NewRoute().Subrouter()
	memberRoutes.Use(authMW.RequireMember)

	memberRoutes.HandleFunc("/systems", systemHandler.List).Methods("GET", "OPTIONS")
	memberRoutes.HandleFunc("/systems/{systemId}", systemHandler.Get).Methods("GET", "OPTIONS")
	memberRoutes.HandleFunc("/questionnaire", assessmentHandler.Questions).Methods("GET", "OPTIONS")
	memberRoutes.HandleFunc("/systems/{systemId}/assessments", assessmentHandler.Start).Methods("POST", "OPTIONS")
	memberRoutes.HandleFunc("/systems/{systemId}/assessments", assessmentHandler.History).Methods("GET", "OPTIONS")
	memberRoutes.HandleFunc("/assessments/{assessmentId}", assessmentHandler.GetState).Methods("GET", "OPTIONS")
	memberRoutes.HandleFunc("/assessments/{assessmentId}/answers/{questionId}", assessmentHandler.SaveAnswer).Methods("PUT", "OPTIONS")
	memberRoutes.HandleFunc("/assessments/{assessmentId}/classify", assessmentHandler.Classify).Methods("POST", "OPTIONS")
	memberRoutes.HandleFunc("/systems/{systemId}/tasks", assessmentHandler.ListTasks).Methods("GET", "OPTIONS")
	memberRoutes.HandleFunc("/tasks", assessmentHandler.ListOrgTasks).Methods("GET", "OPTIONS")
	memberRoutes.HandleFunc("/tasks/{taskId}/complete", assessmentHandler.CompleteTask).Methods("POST", "OPTIONS")

	// Report routes
	memberRoutes.HandleFunc("/reports/summary", reportHandler.Summary).Methods("GET", "OPTIONS")
	memberRoutes.HandleFunc("/reports/systems/{systemId}", reportHandler.SystemReport).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

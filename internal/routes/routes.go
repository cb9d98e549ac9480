package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jobdeck/jobdeck-api/internal/handlers"
)

// NewRouter sets up the API routes.
func NewRouter(
	auth *handlers.AuthHandler,
	jobs *handlers.JobHandler,
	stats *handlers.StatsHandler,
	activities *handlers.ActivityHandler,
	importer *handlers.ImportHandler,
) *mux.Router {
	router := mux.NewRouter()

	// Health check route
	router.HandleFunc("/health", handlers.HealthCheck).Methods(http.MethodGet)

	// Public auth endpoints
	router.HandleFunc("/api/signup", auth.SignUp).Methods(http.MethodPost)
	router.HandleFunc("/api/login", auth.Login).Methods(http.MethodPost)

	// Everything below requires an authenticated session.
	api := router.PathPrefix("/api").Subrouter()
	api.Use(auth.JWTMiddleware)

	api.HandleFunc("/jobs", jobs.List).Methods(http.MethodGet)
	api.HandleFunc("/jobs", jobs.Create).Methods(http.MethodPost)
	api.HandleFunc("/jobs/import", importer.Import).Methods(http.MethodPost)
	api.HandleFunc("/jobs/{id}", jobs.Get).Methods(http.MethodGet)
	api.HandleFunc("/jobs/{id}", jobs.Update).Methods(http.MethodPut)
	api.HandleFunc("/jobs/{id}", jobs.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/jobs/{id}/status", jobs.UpdateStatus).Methods(http.MethodPut)
	api.HandleFunc("/jobs/{id}/notes", jobs.AddNote).Methods(http.MethodPost)

	api.HandleFunc("/dashboard/stats", stats.Dashboard).Methods(http.MethodGet)
	api.HandleFunc("/activities", activities.List).Methods(http.MethodGet)

	return router
}

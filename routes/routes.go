package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"fuelstations/handlers"
	"fuelstations/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/", handlers.Root).Methods("GET")

	// =====================================================
	// Protected Routes (require JWT authentication)
	// =====================================================
	stations := r.PathPrefix("/stations").Subrouter()
	stations.Use(middleware.JWTMiddleware)
	stations.HandleFunc("", handlers.GetAllStations).Methods("GET")
	stations.HandleFunc("", handlers.CreateStation).Methods("POST")
	stations.HandleFunc("/{id}", handlers.GetStation).Methods("GET")
	stations.HandleFunc("/{id}", handlers.UpdateStation).Methods("PUT")
	stations.HandleFunc("/{id}", handlers.DeleteStation).Methods("DELETE")

	pumps := r.PathPrefix("/pumps").Subrouter()
	pumps.Use(middleware.JWTMiddleware)
	pumps.HandleFunc("", handlers.CreatePump).Methods("POST")
	pumps.HandleFunc("/{id}", handlers.UpdatePump).Methods("PUT")
	pumps.HandleFunc("/{id}", handlers.DeletePump).Methods("DELETE")

	r.NotFoundHandler = http.HandlerFunc(handleNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handleNotFound)

	return r
}

// handleNotFound answers every unmatched route with a JSON 404 body.
func handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   "Not Found",
		"message": r.Method + " " + r.URL.Path + " does not exist",
	})
}

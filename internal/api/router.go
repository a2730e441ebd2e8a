package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hml69/thanbaitet/internal/api/handler"
	"github.com/hml69/thanbaitet/internal/api/middleware"
	"github.com/hml69/thanbaitet/internal/services/scoring"
	"github.com/hml69/thanbaitet/internal/services/table"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	TableController *table.Controller
	ScoringService  *scoring.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	tableHandler := handler.NewTableHandler(cfg.TableController, cfg.ScoringService)
	roundHandler := handler.NewRoundHandler(cfg.TableController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Table routes
	api.HandleFunc("/tables", tableHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/tables", tableHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/tables/{id}", tableHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/tables/{id}", tableHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/tables/{id}/scores", tableHandler.Scores).Methods(http.MethodGet)
	api.HandleFunc("/tables/{id}/history", tableHandler.History).Methods(http.MethodGet)

	// Round ledger routes
	api.HandleFunc("/tables/{id}/rounds", roundHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/tables/{id}/rounds/{round_id}", roundHandler.Edit).Methods(http.MethodPatch)
	api.HandleFunc("/tables/{id}/rounds/{round_id}", roundHandler.Delete).Methods(http.MethodDelete)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

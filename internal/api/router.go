package api

import (
	"airlift-load-service/internal/api/handlers"
	"airlift-load-service/internal/domain"
	"airlift-load-service/internal/planstore"
	"airlift-load-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(
	repo ports.CargoRepository,
	store *planstore.Store,
	cache ports.PlanCache,
	profile domain.AircraftProfile,
) http.Handler {
	mux := http.NewServeMux()

	reqHandler := &handlers.RequestHandler{Repo: repo}
	planHandler := &handlers.PlanHandler{
		Repo:    repo,
		Store:   store,
		Cache:   cache,
		Profile: profile,
	}
	presetHandler := &handlers.PresetHandler{Profile: profile}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/requests", reqHandler.Requests)
	mux.HandleFunc("/requests/clear", reqHandler.Clear)
	mux.HandleFunc("/plans/generate", planHandler.Generate)
	mux.HandleFunc("/plans/current", planHandler.Current)
	mux.HandleFunc("/plans/current/pdf", planHandler.ExportPDF)
	mux.HandleFunc("/plans/current/scad", planHandler.ExportSCAD)
	mux.HandleFunc("/presets/items", presetHandler.Items)
	mux.HandleFunc("/presets/aircraft", presetHandler.Aircraft)

	return loggingMiddleware(mux)
}

package rest

import (
	"net/http"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Search   *SearchHandler
	Interest *InterestHandler
	Admin    *AdminHandler
	Health   *HealthHandler
}

// NewRouter builds the HTTP route table. Middleware is applied by the caller
// around the returned mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/search/fallback", h.Search.Fallback)
	mux.HandleFunc("POST /api/v1/search/selection", h.Search.Selection)

	mux.HandleFunc("POST /api/v1/interest", h.Interest.Register)
	mux.HandleFunc("GET /api/v1/interest/{id}", h.Interest.Get)

	mux.HandleFunc("POST /internal/v1/items/created", h.Interest.ItemCreated)

	mux.HandleFunc("POST /admin/v1/catalog/seed", h.Admin.Seed)
	mux.HandleFunc("GET /admin/v1/catalog/terms", h.Admin.Terms)
	mux.HandleFunc("GET /admin/v1/edges/top", h.Admin.TopEdges)
	mux.HandleFunc("GET /admin/v1/interest/pending", h.Admin.PendingInterest)

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	return mux
}

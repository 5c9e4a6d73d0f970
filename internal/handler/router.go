package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	historyHandler "github.com/harborchat/backend/internal/handler/history"
	"github.com/harborchat/backend/internal/handler/ws"
	middlewarePkg "github.com/harborchat/backend/internal/middleware"
	historyService "github.com/harborchat/backend/internal/service/history"
	"github.com/harborchat/backend/internal/service/session"
	"github.com/harborchat/backend/pkg/utils"
)

// NewRouter wires HTTP routes to the relay's core services.
func NewRouter(registry session.Registry, store historyService.Store, pool *ws.Pool, opts ws.Options, broadcastEnabled bool) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	wsHandler := ws.NewHandler(registry, store, pool, opts)
	wsHandler.RegisterRoutes(r)

	h := historyHandler.New(store)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		h.RegisterRoutes(api)

		if broadcastEnabled {
			api.Post("/broadcast", func(w http.ResponseWriter, r *http.Request) {
				var payload struct {
					Message json.RawMessage `json:"message"`
				}
				if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || len(payload.Message) == 0 {
					utils.RespondError(w, http.StatusBadRequest, "message is required")
					return
				}

				delivered := pool.Broadcast(payload.Message)
				utils.RespondJSON(w, http.StatusAccepted, map[string]int{"delivered": delivered})
			})
		}
	})

	return r
}

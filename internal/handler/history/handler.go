package history

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	historyservice "github.com/harborchat/backend/internal/service/history"
	"github.com/harborchat/backend/pkg/utils"
)

// Handler exposes stored device transcripts over REST, mirroring what the
// websocket handshake replays on connect.
type Handler struct {
	store historyservice.Store
}

// New creates the history handler.
func New(store historyservice.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the history routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/history/{deviceID}", h.handleHistory)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "deviceID")
	if deviceID == "" {
		utils.RespondError(w, http.StatusBadRequest, "deviceID is required")
		return
	}

	messages, err := h.store.History(r.Context(), deviceID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "history unavailable")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"deviceId": deviceID,
		"messages": messages,
	})
}

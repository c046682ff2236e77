package handlers

import (
	"encoding/json"
	"net/http"

	"construction-tracker/backend/models"
	"construction-tracker/backend/services"

	"github.com/gorilla/mux"
)

type LogHandler struct {
	LogService *services.LogService
}

func NewLogHandler(service *services.LogService) *LogHandler {
	return &LogHandler{LogService: service}
}

func (h *LogHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.LogService.Search(query))
}

func (h *LogHandler) CreateLog(w http.ResponseWriter, r *http.Request) {
	var entry models.ConstructionLog
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}
	if entry.Date == "" || entry.WorkItems == "" {
		http.Error(w, "Date and work items are required", http.StatusBadRequest)
		return
	}

	created, err := h.LogService.Create(r.Context(), entry)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *LogHandler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.LogService.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"construction-tracker/backend/models"
	"construction-tracker/backend/services"

	"github.com/gorilla/mux"
)

type SOPHandler struct {
	SOPService *services.SOPService
}

func NewSOPHandler(service *services.SOPService) *SOPHandler {
	return &SOPHandler{SOPService: service}
}

// ListSOPs narrows by ?category= first (exact match unless "all"), then by
// ?query= on title or version.
func (h *SOPHandler) ListSOPs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	category := r.URL.Query().Get("category")
	if category == "" {
		category = models.SOPCategoryAll
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.SOPService.Search(query, category))
}

func (h *SOPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.SOPService.Categories())
}

func (h *SOPHandler) CreateSOP(w http.ResponseWriter, r *http.Request) {
	var sop models.SOP
	if err := json.NewDecoder(r.Body).Decode(&sop); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}
	if sop.Title == "" || sop.Category == "" {
		http.Error(w, "Title and category are required", http.StatusBadRequest)
		return
	}

	created, err := h.SOPService.Create(r.Context(), sop)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *SOPHandler) UpdateSOP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var patch models.SOPPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}

	updated, err := h.SOPService.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, "SOP not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *SOPHandler) DeleteSOP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.SOPService.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

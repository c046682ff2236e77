package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"construction-tracker/backend/models"
	"construction-tracker/backend/services"

	"github.com/gorilla/mux"
)

type ProjectHandler struct {
	ProjectService *services.ProjectService
}

func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{ProjectService: service}
}

// ListProjects returns the collection, optionally narrowed by ?query=.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.ProjectService.Search(query))
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}
	if project.Name == "" || project.StartDate == "" || project.ContractDuration == "" {
		http.Error(w, "Name, start date and contract duration are required", http.StatusBadRequest)
		return
	}
	if project.Status == "" {
		project.Status = models.ProjectNotStarted
	}

	created, err := h.ProjectService.Create(r.Context(), project)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var patch models.ProjectPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}

	updated, err := h.ProjectService.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.ProjectService.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSchedule reports the derived schedule figures for one project. The
// projected completion date is empty when it cannot be computed from the
// stored fields.
func (h *ProjectHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	for _, project := range h.ProjectService.Projects() {
		if project.ID != id {
			continue
		}

		response := struct {
			TotalExtensionDays      int    `json:"totalExtensionDays"`
			ProjectedCompletionDate string `json:"projectedCompletionDate"`
		}{
			TotalExtensionDays: services.TotalExtensionDays(project.Extensions),
		}
		if end, ok := services.ProjectedCompletionDate(project); ok {
			response.ProjectedCompletionDate = end.Format("2006-01-02")
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
		return
	}

	http.Error(w, "Project not found", http.StatusNotFound)
}

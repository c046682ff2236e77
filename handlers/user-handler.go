package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"construction-tracker/backend/models"
	"construction-tracker/backend/services"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	UserService *services.UserService
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "Name, email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.UserService.Users())
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.UserService.CurrentUser()
	if !ok {
		http.Error(w, "No active session", http.StatusUnauthorized)
		return
	}

	type profile struct {
		models.User
		YearsOfService int `json:"yearsOfService"`
	}
	years, _ := services.YearsOfService(user)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile{User: user, YearsOfService: years})
}

func (h *UserHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.UserService.Approve(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.UserService.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}
	if req.NewPassword == "" {
		http.Error(w, "New password is required", http.StatusBadRequest)
		return
	}

	if err := h.UserService.ChangePassword(r.Context(), req.NewPassword); err != nil {
		if errors.Is(err, services.ErrNoSession) {
			http.Error(w, "No active session", http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// UpdateProfile applies a partial profile update to the logged-in account.
// Title and start date are restricted fields only an admin may set.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch models.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}

	if r.Header.Get("Role") != models.RoleAdmin && (patch.Title != nil || patch.StartDate != nil) {
		http.Error(w, "Access forbidden: title and start date are admin-managed", http.StatusForbidden)
		return
	}

	user, err := h.UserService.UpdateProfile(r.Context(), patch)
	if err != nil {
		if errors.Is(err, services.ErrNoSession) {
			http.Error(w, "No active session", http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

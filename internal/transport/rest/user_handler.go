package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rahuljangu01/NEXUS/internal/user"
	userRepository "github.com/rahuljangu01/NEXUS/internal/user/repository"
	"github.com/rahuljangu01/NEXUS/pkg/logger"
)

const defaultSearchLimit = 20

type UserHandler struct {
	users  user.UserRepository
	logger logger.Logger
}

func NewUserHandler(users user.UserRepository, log logger.Logger) *UserHandler {
	return &UserHandler{users: users, logger: log}
}

func (h *UserHandler) Register(r *mux.Router) {
	r.HandleFunc("/users/search", h.Search).Methods("GET")
	r.HandleFunc("/users/{id}", h.GetByID).Methods("GET")
}

func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	if _, ok := callerID(r); !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "missing query", http.StatusBadRequest)
		return
	}
	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	found, err := h.users.SearchUsers(r.Context(), query, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]*user.ProfileDTO, 0, len(found))
	for _, u := range found {
		out = append(out, user.ToProfileDTO(u))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if _, ok := callerID(r); !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}
	id, ok := pathID(mux.Vars(r), "id")
	if !ok {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	u, err := h.users.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, userRepository.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user.ToProfileDTO(u))
}

package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/rahuljangu01/NEXUS/internal/connection"
	"github.com/rahuljangu01/NEXUS/pkg/logger"
)

type ConnectionHandler struct {
	connections connection.ConnectionUsecase
	logger      logger.Logger
}

func NewConnectionHandler(connections connection.ConnectionUsecase, log logger.Logger) *ConnectionHandler {
	return &ConnectionHandler{connections: connections, logger: log}
}

func (h *ConnectionHandler) Register(r *mux.Router) {
	r.HandleFunc("/connections", h.Request).Methods("POST")
	r.HandleFunc("/connections", h.ListMine).Methods("GET")
	r.HandleFunc("/connections/{id}/accept", h.Accept).Methods("POST")
	r.HandleFunc("/connections/{id}/reject", h.Reject).Methods("POST")
	r.HandleFunc("/connections/{id}/block", h.Block).Methods("POST")
	r.HandleFunc("/connections/{id}", h.Remove).Methods("DELETE")
}

func (h *ConnectionHandler) Request(w http.ResponseWriter, r *http.Request) {
	actor, ok := callerID(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	var req struct {
		TargetID uuid.UUID `json:"targetId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TargetID == uuid.Nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	dto, err := h.connections.Request(r.Context(), actor, req.TargetID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto)
}

func (h *ConnectionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := callerID(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	entries, err := h.connections.ListMine(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *ConnectionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.answer(w, r, h.connections.Accept)
}

func (h *ConnectionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.answer(w, r, h.connections.Reject)
}

func (h *ConnectionHandler) Block(w http.ResponseWriter, r *http.Request) {
	h.answer(w, r, h.connections.Block)
}

func (h *ConnectionHandler) Remove(w http.ResponseWriter, r *http.Request) {
	actor, ok := callerID(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}
	id, ok := pathID(mux.Vars(r), "id")
	if !ok {
		http.Error(w, "invalid connection id", http.StatusBadRequest)
		return
	}

	if err := h.connections.Remove(r.Context(), id, actor); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type answerFunc func(ctx context.Context, connectionID, actor uuid.UUID) (*connection.ConnectionDTO, error)

func (h *ConnectionHandler) answer(w http.ResponseWriter, r *http.Request, fn answerFunc) {
	actor, ok := callerID(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}
	id, ok := pathID(mux.Vars(r), "id")
	if !ok {
		http.Error(w, "invalid connection id", http.StatusBadRequest)
		return
	}

	dto, err := fn(r.Context(), id, actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

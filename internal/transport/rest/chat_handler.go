package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/rahuljangu01/NEXUS/internal/chat"
	"github.com/rahuljangu01/NEXUS/pkg/logger"
)

const defaultHistoryLimit = 50

type ChatHandler struct {
	messages chat.ChatUsecase
	logger   logger.Logger
}

func NewChatHandler(messages chat.ChatUsecase, log logger.Logger) *ChatHandler {
	return &ChatHandler{messages: messages, logger: log}
}

func (h *ChatHandler) Register(r *mux.Router) {
	r.HandleFunc("/connections/{id}/messages", h.Send).Methods("POST")
	r.HandleFunc("/connections/{id}/messages", h.History).Methods("GET")
	r.HandleFunc("/connections/{id}/read", h.MarkRead).Methods("POST")
	r.HandleFunc("/messages/{id}/pin", h.TogglePin).Methods("POST")
	r.HandleFunc("/messages/{id}/forward", h.Forward).Methods("POST")
	r.HandleFunc("/messages", h.DeleteMultiple).Methods("DELETE")
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	actor, ok := callerID(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}
	connID, ok := pathID(mux.Vars(r), "id")
	if !ok {
		http.Error(w, "invalid connection id", http.StatusBadRequest)
		return
	}

	var req struct {
		Content       string `json:"content"`
		AttachmentURL string `json:"attachmentUrl"`
		SessionID     string `json:"sessionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	dto, err := h.messages.Send(r.Context(), chat.SendMessageCommand{
		SenderID:        actor,
		ConnectionID:    connID,
		Content:         req.Content,
		AttachmentURL:   req.AttachmentURL,
		OriginSessionID: req.SessionID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto)
}

func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	actor, ok := callerID(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}
	connID, ok := pathID(mux.Vars(r), "id")
	if !ok {
		http.Error(w, "invalid connection id", http.StatusBadRequest)
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	msgs, err := h.messages.History(r.Context(), connID, actor, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *ChatHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actor, ok := callerID(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}
	connID, ok := pathID(mux.Vars(r), "id")
	if !ok {
		http.Error(w, "invalid connection id", http.StatusBadRequest)
		return
	}

	if err := h.messages.MarkRead(r.Context(), connID, actor); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHandler) TogglePin(w http.ResponseWriter, r *http.Request) {
	actor, ok := callerID(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}
	msgID, ok := pathID(mux.Vars(r), "id")
	if !ok {
		http.Error(w, "invalid message id", http.StatusBadRequest)
		return
	}

	dto, err := h.messages.TogglePin(r.Context(), msgID, actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *ChatHandler) Forward(w http.ResponseWriter, r *http.Request) {
	actor, ok := callerID(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}
	msgID, ok := pathID(mux.Vars(r), "id")
	if !ok {
		http.Error(w, "invalid message id", http.StatusBadRequest)
		return
	}

	var req struct {
		ConnectionID uuid.UUID `json:"connectionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ConnectionID == uuid.Nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	dto, err := h.messages.Forward(r.Context(), msgID, actor, req.ConnectionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto)
}

func (h *ChatHandler) DeleteMultiple(w http.ResponseWriter, r *http.Request) {
	actor, ok := callerID(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	var req struct {
		MessageIDs []uuid.UUID `json:"messageIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.MessageIDs) == 0 {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	report, err := h.messages.DeleteMultiple(r.Context(), req.MessageIDs, actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
